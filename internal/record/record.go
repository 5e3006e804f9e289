// Package record provides read-only access to resource records.
//
// Records are JSON documents (a membership, space, message, reaction or
// space event) borrowed from whatever store owns them. Field access is
// gjson path lookup, so filter fields like "member.type" map directly
// onto nested keys. Absent paths yield zero values, never errors.
package record

import "github.com/tidwall/gjson"

// Record is a single resource object. The zero value is an empty record
// for which every lookup returns a zero value.
type Record struct {
	raw string
}

// FromJSON wraps a JSON document as a Record. The document is not
// validated here; malformed JSON simply yields zero values on lookup.
func FromJSON(data []byte) Record {
	return Record{raw: string(data)}
}

// FromString wraps a JSON document held as a string.
func FromString(data string) Record {
	return Record{raw: data}
}

// Raw returns the underlying JSON document.
func (r Record) Raw() string { return r.raw }

// String returns the value at path as a string, or "" if absent.
// Booleans and numbers render in their JSON form.
func (r Record) String(path string) string {
	return gjson.Get(r.raw, path).String()
}

// Bool returns the value at path as a boolean, or false if absent.
func (r Record) Bool(path string) bool {
	return gjson.Get(r.raw, path).Bool()
}

// Exists reports whether path is present in the record.
func (r Record) Exists(path string) bool {
	return gjson.Get(r.raw, path).Exists()
}

// Lookup returns the raw gjson result at path for callers that need to
// inspect the value type (sorting, output).
func (r Record) Lookup(path string) gjson.Result {
	return gjson.Get(r.raw, path)
}
