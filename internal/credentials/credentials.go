// Package credentials loads the secrets file used to reach the document store.
package credentials

import (
	"encoding/json"

	"github.com/nikmy/menuseed/internal/jsonfile"
	"github.com/nikmy/menuseed/pkg/errors"
)

// Credentials is the decoded credentials file, kept as is. Backends
// pick the fields they understand with Decode.
type Credentials map[string]any

func Load(path string) (Credentials, error) {
	var c Credentials

	err := jsonfile.Read(path, &c)
	if err != nil {
		return nil, errors.WrapFail(err, "load credentials")
	}

	if c == nil {
		return nil, errors.Wrapf(jsonfile.ErrMalformed, "load credentials from %s: not an object", path)
	}

	return c, nil
}

// Decode fills v, a pointer to a struct with json tags, from c.
func (c Credentials) Decode(v any) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return errors.WrapFail(err, "encode credentials")
	}

	return errors.WrapFail(json.Unmarshal(raw, v), "decode credentials")
}

func (c Credentials) String(key string) string {
	s, _ := c[key].(string)
	return s
}
