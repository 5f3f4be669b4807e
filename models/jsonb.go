package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// JSONB stores a raw JSON document in a jsonb column. The payload is kept
// opaque because historical rows were written by several schema variants;
// decoding happens on the read path, not here.
type JSONB []byte

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		buf := make([]byte, len(v))
		copy(buf, v)
		*j = buf
		return nil
	case string:
		*j = JSONB(v)
		return nil
	default:
		return fmt.Errorf("jsonb: cannot scan %T", value)
	}
}

func (j JSONB) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSONB) UnmarshalJSON(data []byte) error {
	if j == nil {
		return errors.New("jsonb: unmarshal into nil pointer")
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	*j = buf
	return nil
}
