package ghost

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

var jsonNull = []byte("null")

// ID identifies a post or tag. Ghost 0.x uses integers and later versions use
// hex object ids; both are kept in their textual form.
type ID string

// UnmarshalJSON accepts a JSON number or string.
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

// Flag is a boolean stored either as a JSON bool or as 0/1.
type Flag bool

// UnmarshalJSON accepts true/false, numbers (non-zero is true) and null.
func (f *Flag) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, jsonNull):
		*f = false
	case bytes.Equal(data, []byte("true")):
		*f = true
	case bytes.Equal(data, []byte("false")):
		*f = false
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("decoding flag %s: %w", data, err)
		}
		*f = n != 0
	}
	return nil
}

// timestampLayouts are tried in order when parsing a string timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02",
}

// errNoTimestamp is returned by Timestamp.Time for a null or absent value.
var errNoTimestamp = errors.New("no timestamp")

// Timestamp is a raw publication timestamp, either a string or a number of
// milliseconds since the Unix epoch. Parsing is deferred to Time so that a
// bad value only fails the post that carries it.
type Timestamp struct {
	raw    string
	millis int64
	number bool
}

// NewTimestamp returns a Timestamp holding a string value.
func NewTimestamp(value string) Timestamp {
	return Timestamp{raw: value}
}

// UnmarshalJSON keeps the raw value; it never fails on unparseable strings.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	*ts = Timestamp{}
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &ts.raw)
	}
	ts.raw = string(data)
	n, err := strconv.ParseFloat(ts.raw, 64)
	if err != nil {
		return fmt.Errorf("decoding timestamp %s: %w", data, err)
	}
	ts.millis = int64(n)
	ts.number = true
	return nil
}

// MarshalJSON writes the original value back.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	switch {
	case ts.number:
		return []byte(strconv.FormatInt(ts.millis, 10)), nil
	case ts.raw == "":
		return jsonNull, nil
	default:
		return json.Marshal(ts.raw)
	}
}

// String returns the raw value as it appeared in the export.
func (ts Timestamp) String() string {
	return ts.raw
}

// IsZero reports whether no timestamp was present.
func (ts Timestamp) IsZero() bool {
	return ts.raw == ""
}

// Time parses the timestamp. String values keep their UTC offset; numeric
// values are read as epoch milliseconds in UTC.
func (ts Timestamp) Time() (time.Time, error) {
	if ts.number {
		return time.UnixMilli(ts.millis).UTC(), nil
	}
	if ts.raw == "" {
		return time.Time{}, errNoTimestamp
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts.raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format %q", ts.raw)
}
