package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one item of a loosely structured profile section: either plain
// text or a structured record such as {degree, institution, year}.
type Entry struct {
	Text   string
	Fields map[string]any
}

// TextEntry returns a plain-text entry.
func TextEntry(s string) Entry {
	return Entry{Text: s}
}

// RecordEntry returns a structured entry built from key/value pairs.
func RecordEntry(fields map[string]any) Entry {
	return Entry{Fields: fields}
}

// IsRecord reports whether the entry is a structured record.
func (e Entry) IsRecord() bool {
	return e.Fields != nil
}

// Field returns a record field formatted as text, or "" when absent.
func (e Entry) Field(key string) string {
	v, ok := e.Fields[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// MarshalJSON encodes records as objects and text entries as strings.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Fields != nil {
		return json.Marshal(e.Fields)
	}
	return json.Marshal(e.Text)
}

// UnmarshalJSON accepts an object, a string, or any other scalar.
func (e *Entry) UnmarshalJSON(data []byte) error {
	*e = Entry{}
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '{':
		var fields map[string]any
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		e.Fields = fields
		return nil
	case data[0] == '"':
		return json.Unmarshal(data, &e.Text)
	default:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		e.Text = fmt.Sprint(v)
		return nil
	}
}

// Entries is an ordered profile section. Stored data may hold the section
// as null, a bare string, a single object, or an array mixing objects and
// strings; all of those decode, and encoding always writes an array.
type Entries []Entry

// Texts returns the entries as plain strings, formatting records by their
// values in the given key order.
func (es Entries) Texts(keys ...string) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		if !e.IsRecord() {
			out = append(out, e.Text)
			continue
		}
		out = append(out, e.Summary(keys...))
	}
	return out
}

// Summary joins the non-empty record values for keys with " - ".
func (e Entry) Summary(keys ...string) string {
	if !e.IsRecord() {
		return e.Text
	}
	var buf bytes.Buffer
	for _, k := range keys {
		v := e.Field(k)
		if v == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString(" - ")
		}
		buf.WriteString(v)
	}
	return buf.String()
}

// UnmarshalJSON decodes every tolerated section shape.
func (es *Entries) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*es = nil
		return nil
	}
	if data[0] != '[' {
		var single Entry
		if err := single.UnmarshalJSON(data); err != nil {
			return err
		}
		*es = Entries{single}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Entries, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := e.UnmarshalJSON(item); err != nil {
			return err
		}
		out = append(out, e)
	}
	*es = out
	return nil
}
