package record

import "testing"

func TestLookups(t *testing.T) {
	r := FromString(`{"name":"spaces/one","member":{"type":"HUMAN"},"archived":true,"count":3}`)

	if got := r.String("name"); got != "spaces/one" {
		t.Errorf("String(name) = %q", got)
	}
	if got := r.String("member.type"); got != "HUMAN" {
		t.Errorf("String(member.type) = %q", got)
	}
	if !r.Bool("archived") {
		t.Error("Bool(archived) = false, want true")
	}
	if got := r.String("count"); got != "3" {
		t.Errorf("String(count) = %q, want JSON form", got)
	}
	if !r.Exists("member.type") || r.Exists("member.role") {
		t.Error("Exists misreports nested paths")
	}
}

func TestZeroValues(t *testing.T) {
	var empty Record
	if empty.String("anything") != "" || empty.Bool("anything") {
		t.Error("zero record should yield zero values")
	}

	malformed := FromJSON([]byte(`{not json`))
	if malformed.String("name") != "" {
		t.Error("malformed document should yield zero values")
	}
}
