package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ApproachList is a list of therapy approaches stored as JSONB.
type ApproachList []TherapyApproach

// Value returns json value, implement driver.Valuer interface
func (l ApproachList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan scan value into the list, implements sql.Scanner interface
func (l *ApproachList) Scan(value interface{}) error {
	return scanJSONList(value, l)
}

// Contains reports whether the list includes the given approach.
func (l ApproachList) Contains(approach TherapyApproach) bool {
	for _, a := range l {
		if a == approach {
			return true
		}
	}
	return false
}

// Intersects reports whether the list shares at least one approach
// with the given set.
func (l ApproachList) Intersects(approaches []TherapyApproach) bool {
	for _, a := range approaches {
		if l.Contains(a) {
			return true
		}
	}
	return false
}

// StringList is a list of strings stored as JSONB.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSONList(value, l)
}

// ModalityList is a list of appointment modalities stored as JSONB.
type ModalityList []Modality

func (l ModalityList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *ModalityList) Scan(value interface{}) error {
	return scanJSONList(value, l)
}

// Contains reports whether the list includes the given modality.
func (l ModalityList) Contains(modality Modality) bool {
	for _, m := range l {
		if m == modality {
			return true
		}
	}
	return false
}

func scanJSONList(value interface{}, dst interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, dst)
}
