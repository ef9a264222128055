package upload

import (
	"strings"

	"github.com/nikmy/menuseed/pkg/errors"
)

var ErrConflict = errors.Error("outlet id is taken by another outlet")

type ConflictPolicy int

const (
	// Overwrite replaces whatever is stored under the outlet id
	Overwrite ConflictPolicy = iota

	// Reject refuses to replace a document whose name differs
	Reject
)

func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch strings.ToLower(s) {
	case "", "overwrite":
		return Overwrite, nil
	case "reject":
		return Reject, nil
	default:
		return Overwrite, errors.Errorf("unknown conflict policy %q", s)
	}
}

func (p ConflictPolicy) String() string {
	if p == Reject {
		return "reject"
	}
	return "overwrite"
}
