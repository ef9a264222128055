// Package menu holds the outlet menu document read from disk.
package menu

import (
	"github.com/nikmy/menuseed/internal/jsonfile"
	"github.com/nikmy/menuseed/internal/slug"
	"github.com/nikmy/menuseed/pkg/errors"
)

const FieldName = "name"

var (
	ErrNoName  = errors.Error("menu has no string \"name\" field")
	ErrEmptyID = errors.Error("menu name produces an empty outlet id")
)

// Document is the menu exactly as decoded. Only the name field is
// interpreted; everything else is stored untouched.
type Document map[string]any

func Load(path string) (Document, error) {
	var d Document

	err := jsonfile.Read(path, &d)
	if err != nil {
		return nil, errors.WrapFail(err, "load menu")
	}

	if d == nil {
		return nil, errors.Wrapf(jsonfile.ErrMalformed, "load menu from %s: not an object", path)
	}

	return d, nil
}

func (d Document) Name() (string, error) {
	name, ok := d[FieldName].(string)
	if !ok {
		return "", ErrNoName
	}
	return name, nil
}

// OutletID is the storage key of the outlet described by d.
func (d Document) OutletID() (string, error) {
	name, err := d.Name()
	if err != nil {
		return "", err
	}

	id := slug.Make(name)
	if id == "" {
		return "", ErrEmptyID
	}

	return id, nil
}
