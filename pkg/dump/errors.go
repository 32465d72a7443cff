package dump

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData indicates a read returned zero bytes without an error.
	ErrNoData = errors.New("no data")
	// ErrShortWrite indicates a write transferred fewer bytes than requested.
	ErrShortWrite = errors.New("short write")
)

// Stage identifies a step of a dump session.
type Stage int

// Stages in the order they run.
const (
	StageConfigure Stage = iota
	StageHandshake
	StageReadSize
	StageTransfer
)

var stageNames = [...]string{
	StageConfigure: "configure",
	StageHandshake: "handshake",
	StageReadSize:  "read size",
	StageTransfer:  "transfer",
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Error is the failure of a single stage. Every stage failure is fatal.
type Error struct {
	Stage Stage
	Err   error
}

// Error implements error.
func (e *Error) Error() string {
	return e.Stage.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func stageError(stage Stage, err error) error {
	return &Error{Stage: stage, Err: err}
}

func isStage(err error, stage Stage) bool {
	var e *Error
	return errors.As(err, &e) && e.Stage == stage
}

// IsConfigurationError reports whether err came from configuring the line.
func IsConfigurationError(err error) bool {
	return isStage(err, StageConfigure)
}

// IsHandshakeError reports whether err came from the handshake.
func IsHandshakeError(err error) bool {
	return isStage(err, StageHandshake)
}

// IsSizeReadError reports whether err came from reading the size header.
func IsSizeReadError(err error) bool {
	return isStage(err, StageReadSize)
}

// IsTransferError reports whether err came from the ROM body transfer.
func IsTransferError(err error) bool {
	return isStage(err, StageTransfer)
}
