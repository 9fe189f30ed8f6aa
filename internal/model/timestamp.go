package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Timestamp is a server-assigned instant that decodes tolerantly.
// A missing, null or unparsable value yields Valid == false instead of an error.
type Timestamp struct {
	Time  time.Time
	Valid bool
	Raw   string
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Valid: true}
}

// ParseTimestamp accepts RFC 3339 with or without fractional seconds.
func ParseTimestamp(s string) Timestamp {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{Raw: s}
	}
	return Timestamp{Time: t, Valid: true, Raw: s}
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	*ts = Timestamp{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		ts.Raw = string(data)
		return nil
	}

	*ts = ParseTimestamp(s)
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Time.Format(time.RFC3339Nano))
}
