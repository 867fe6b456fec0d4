package types

import "errors"

// Command parsing and argument errors.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidIndex   = errors.New("invalid entry index")
	ErrMissingArg     = errors.New("missing command argument")
)

// Session construction errors.
var (
	ErrNoStore   = errors.New("session requires a state store")
	ErrNoConsole = errors.New("session requires a console")
)

// State operation errors.
var (
	ErrNoEntryAtIndex = errors.New("no todo entry found at index")
)

// Snapshot errors.
var (
	ErrNoSnapshot     = errors.New("no state data file found")
	ErrSnapshotRead   = errors.New("read state data")
	ErrSnapshotParse  = errors.New("parse state data")
	ErrSnapshotEncode = errors.New("encode state data")
	ErrSnapshotWrite  = errors.New("write state data")
)
