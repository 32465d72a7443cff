package dump

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	conf := NewConfig()
	assert.Equal(t, ProgressAuto, conf.Progress)
	require.NoError(t, conf.Validate())
	conf.Progress = "sometimes"
	assert.Error(t, conf.Validate())
}

func TestConfigNewReporter(t *testing.T) {
	conf := NewConfig()
	conf.Progress = ProgressNever
	assert.Equal(t, NopReporter{}, conf.NewReporter(os.Stderr))

	conf.Progress = ProgressAlways
	r, ok := conf.NewReporter(os.Stderr).(*TerminalReporter)
	require.True(t, ok)
	assert.True(t, r.Overwrite)
}

func TestConfigOpenOutput(t *testing.T) {
	conf := NewConfig()
	f, closeFn, err := conf.OpenOutput()
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)
	assert.NoError(t, closeFn())

	dir, err := ioutil.TempDir("", "dump")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	conf.Output = filepath.Join(dir, "rom.sfc")
	f, closeFn, err = conf.OpenOutput()
	require.NoError(t, err)
	_, err = f.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, closeFn())
	data, err := ioutil.ReadFile(conf.Output)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}
