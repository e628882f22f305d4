package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AmenityMap maps an amenity category to the set of amenity names picked
// under it. Stored as jsonb; scanning rejects anything that is not a
// string-to-string-list object instead of coercing it.
type AmenityMap map[string][]string

func (m AmenityMap) Value() (driver.Value, error) {
	if m == nil {
		m = AmenityMap{}
	}
	return json.Marshal(m)
}

func (m *AmenityMap) Scan(value interface{}) error {
	b, err := jsonBytes("amenities", value)
	if err != nil {
		return err
	}
	if b == nil {
		*m = AmenityMap{}
		return nil
	}
	var decoded map[string][]string
	if err := json.Unmarshal(b, &decoded); err != nil {
		return fmt.Errorf("amenities: unrecognized shape: %w", err)
	}
	*m = decoded
	return nil
}

// StringList is a jsonb-backed list of names (room facilities).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	b, err := jsonBytes("facilities", value)
	if err != nil {
		return err
	}
	if b == nil {
		*l = StringList{}
		return nil
	}
	var decoded []string
	if err := json.Unmarshal(b, &decoded); err != nil {
		return fmt.Errorf("facilities: unrecognized shape: %w", err)
	}
	*l = decoded
	return nil
}

func jsonBytes(column string, value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%s: unsupported column type %T", column, value)
	}
}
