package core

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// StringSlice is an ordered list of strings stored as a JSON-encoded TEXT
// column. Decoding must yield the original sequence, including the empty one.
type StringSlice []string

var _ driver.Valuer = (StringSlice)(nil)

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "encoding string slice")
	}
	return string(data), nil
}

func (s *StringSlice) Scan(src interface{}) error {
	var data []byte
	switch src := src.(type) {
	case nil:
		*s = StringSlice{}
		return nil
	case string:
		data = []byte(src)
	case []byte:
		data = src
	default:
		return errors.Errorf("incompatible type %T for StringSlice", src)
	}
	if len(data) == 0 {
		*s = StringSlice{}
		return nil
	}
	if err := json.Unmarshal(data, s); err != nil {
		return errors.Wrap(err, "decoding string slice")
	}
	if *s == nil {
		*s = StringSlice{}
	}
	return nil
}
