package biocat

import (
	"io"
	"log"
)

var (
	Info *log.Logger
	Warn *log.Logger
)

func init() {
	// Commands replace these with real loggers.
	Info = log.New(io.Discard, "", 0)
	Warn = log.New(io.Discard, "", 0)
}

// Status classifies the outcome of an analysis for the presentation layer.
type Status int

const (
	StatusOK Status = iota
	StatusEmpty
	StatusShort
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusEmpty:
		return "no valid data"
	case StatusShort:
		return "insufficient data"
	default:
		return "error"
	}
}

// StatusOf maps the sentinel errors of this module onto a Status.
func StatusOf(err error) Status {
	switch err {
	case nil:
		return StatusOK
	case ErrEmptyInput, ErrNoData:
		return StatusEmpty
	case ErrInputTooShort:
		return StatusShort
	default:
		return StatusError
	}
}
