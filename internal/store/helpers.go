package store

import (
	"encoding/json"
	"time"
)

// now returns the current UTC time in a fixed-width nanosecond format so that
// lexical order equals temporal order and an update immediately after create
// still stamps a strictly greater updatedAt.
func now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000000Z")
}

// defaultStr returns v, or fallback when v is empty. Used to fill declared
// defaults for omitted optional fields at create time.
func defaultStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// encodeList marshals a string slice for a JSON text column. A nil slice is
// stored as an empty list, never as null.
func encodeList(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return string(b)
}

// decodeList unmarshals a JSON text column into a string slice.
func decodeList(raw string) []string {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil || values == nil {
		return []string{}
	}
	return values
}
