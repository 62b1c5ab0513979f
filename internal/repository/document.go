package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
)

// KeyField is the JSON field holding a record's key. Patches never overwrite it.
const KeyField = "id"

// Filters are exact-equality constraints on top-level JSON fields; all of them must hold.
// Values compare against the field's JSON text: strings by value, numbers and booleans by literal.
type Filters map[string]string

var fieldNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate rejects field names that cannot be used as a JSON path segment.
func (f Filters) Validate() error {
	for k := range f {
		if !fieldNameRe.MatchString(k) {
			return fmt.Errorf("invalid filter field %q", k)
		}
	}
	return nil
}

// Keys returns filter fields in a stable order, so generated SQL is deterministic.
func (f Filters) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Patch is a partial record: the top-level JSON fields to overwrite on update.
// An explicit JSON null clears the field.
type Patch map[string]json.RawMessage

// Set encodes v and stores it under field.
func (p Patch) Set(field string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode patch field %s: %w", field, err)
	}
	p[field] = raw
	return nil
}

// Without returns a copy of p lacking the given fields.
func (p Patch) Without(fields ...string) Patch {
	out := make(Patch, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, f := range fields {
		delete(out, f)
	}
	return out
}

// Only returns a copy of p restricted to the allowed fields.
func (p Patch) Only(allowed map[string]struct{}) Patch {
	out := make(Patch, len(p))
	for k, v := range p {
		if _, ok := allowed[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Encode renders a record as its stored JSON document.
func Encode[T any](rec T) ([]byte, error) {
	doc, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return doc, nil
}

// Decode parses a stored JSON document back into a record.
func Decode[T any](doc []byte) (T, error) {
	var rec T
	if err := json.Unmarshal(doc, &rec); err != nil {
		return rec, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// Fields splits a stored document into its top-level fields.
func Fields(doc []byte) (map[string]json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(doc, &fields); err != nil {
		return nil, fmt.Errorf("decode document fields: %w", err)
	}
	return fields, nil
}

// MergeDocument overlays the patch on a stored document and returns the merged document.
// The key field is preserved.
func MergeDocument(doc []byte, p Patch) ([]byte, error) {
	fields, err := Fields(doc)
	if err != nil {
		return nil, err
	}
	for k, v := range p {
		if k == KeyField {
			continue
		}
		fields[k] = v
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode merged document: %w", err)
	}
	return out, nil
}

// ApplyPatch merges p over rec and returns the resulting record.
// Stores use it for updates and services use it to validate a patch before it is written.
func ApplyPatch[T any](rec T, p Patch) (T, error) {
	var zero T
	doc, err := Encode(rec)
	if err != nil {
		return zero, err
	}
	merged, err := MergeDocument(doc, p)
	if err != nil {
		return zero, err
	}
	return Decode[T](merged)
}

// MatchDocument reports whether a stored document satisfies every filter.
func MatchDocument(doc []byte, f Filters) (bool, error) {
	if len(f) == 0 {
		return true, nil
	}
	fields, err := Fields(doc)
	if err != nil {
		return false, err
	}
	return Matches(fields, f), nil
}

// Matches reports whether the decoded top-level fields satisfy every filter.
func Matches(fields map[string]json.RawMessage, f Filters) bool {
	for k, want := range f {
		got, ok := FieldText(fields[k])
		if !ok || got != want {
			return false
		}
	}
	return true
}

// FieldText returns the comparable text of a JSON value: the unquoted string for strings and the raw
// literal otherwise. Missing and null values report false.
func FieldText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}
	return string(raw), true
}
