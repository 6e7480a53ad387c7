package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ColorList is stored as JSON text in a single column and exposed to the API
// as a plain string array.
type ColorList []string

func (c ColorList) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *ColorList) Scan(value any) error {
	if value == nil {
		*c = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ColorList", value)
	}

	if len(raw) == 0 {
		*c = nil
		return nil
	}

	return json.Unmarshal(raw, c)
}
