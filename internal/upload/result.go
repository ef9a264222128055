package upload

import (
	"github.com/nikmy/menuseed/internal/jsonfile"
	"github.com/nikmy/menuseed/pkg/errors"
)

type Outcome int

const (
	// Uploaded means the menu is stored under its outlet id
	Uploaded Outcome = iota

	// MissingCredentials is set when the credentials file does not exist
	MissingCredentials

	// InvalidCredentials is set when the credentials file is not a JSON object
	InvalidCredentials

	// SessionFailed is set when the document store can not be reached
	SessionFailed

	// MissingMenu is set when the menu file does not exist
	MissingMenu

	// InvalidMenu is set when the menu is not a JSON object or has no usable name
	InvalidMenu

	// Conflict is set when another outlet already owns the derived id
	Conflict

	// UploadFailed is set when the document store rejected the write
	UploadFailed
)

func (o Outcome) String() string {
	switch o {
	case Uploaded:
		return "uploaded"
	case MissingCredentials:
		return "missing credentials"
	case InvalidCredentials:
		return "invalid credentials"
	case SessionFailed:
		return "session failed"
	case MissingMenu:
		return "missing menu"
	case InvalidMenu:
		return "invalid menu"
	case Conflict:
		return "conflict"
	case UploadFailed:
		return "upload failed"
	default:
		return "unknown"
	}
}

func (o Outcome) ExitCode() int {
	if o == Uploaded {
		return 0
	}
	return 1
}

// Result describes how a single Run ended. Err is nil only for Uploaded.
type Result struct {
	Outcome    Outcome
	Collection string
	OutletID   string
	Err        error
}

func (r Result) ExitCode() int {
	return r.Outcome.ExitCode()
}

func (r Result) OK() bool {
	return r.Outcome == Uploaded
}

func (r Result) with(o Outcome, err error) Result {
	r.Outcome = o
	r.Err = err
	return r
}

// fileOutcome tells a missing input file from an unreadable one.
func fileOutcome(err error, missing Outcome, invalid Outcome) Outcome {
	if errors.Is(err, jsonfile.ErrNotExist) {
		return missing
	}
	return invalid
}
