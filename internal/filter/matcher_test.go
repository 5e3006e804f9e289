package filter

import (
	"testing"

	"github.com/chatfilter/chatfilter/internal/record"
)

func rec(json string) record.Record {
	return record.FromString(json)
}

func TestMatches(t *testing.T) {
	table := testTable()
	tests := []struct {
		name   string
		filter string
		json   string
		want   bool
	}{
		{
			"equality match",
			`status = "OPEN"`,
			`{"status":"OPEN"}`,
			true,
		},
		{
			"equality is case insensitive",
			`display_name = "fun event"`,
			`{"displayName":"Fun Event"}`,
			true,
		},
		{
			"equality mismatch",
			`status = "OPEN"`,
			`{"status":"CLOSED"}`,
			false,
		},
		{
			"not equal",
			`status != "CLOSED"`,
			`{"status":"OPEN"}`,
			true,
		},
		{
			"missing field compares as zero",
			`status != "CLOSED"`,
			`{}`,
			true,
		},
		{
			"has matches substring",
			`display_name:"fun"`,
			`{"displayName":"Fun Event"}`,
			true,
		},
		{
			"has mismatch",
			`display_name:"gala"`,
			`{"displayName":"Fun Event"}`,
			false,
		},
		{
			"and requires both",
			`status = "OPEN" AND archived = false`,
			`{"status":"OPEN","archived":false}`,
			true,
		},
		{
			"and fails on one",
			`status = "OPEN" AND archived = false`,
			`{"status":"OPEN","archived":true}`,
			false,
		},
		{
			"or needs one branch",
			`status = "CLOSED" OR display_name = "Fun"`,
			`{"status":"OPEN","displayName":"Fun"}`,
			true,
		},
		{
			"bool absent field is false",
			`archived = false`,
			`{}`,
			true,
		},
		{
			"bool folded literal",
			`archived = TRUE`,
			`{"archived":true}`,
			true,
		},
		{
			"time greater",
			`create_time > "2024-01-01T00:00:00Z"`,
			`{"createTime":"2024-06-15T12:00:00Z"}`,
			true,
		},
		{
			"time window lower bound excluded",
			`create_time > "2024-06-15T12:00:00Z"`,
			`{"createTime":"2024-06-15T12:00:00Z"}`,
			false,
		},
		{
			"time greater equal includes bound",
			`create_time >= "2024-06-15T12:00:00Z"`,
			`{"createTime":"2024-06-15T12:00:00Z"}`,
			true,
		},
		{
			"absent timestamp never matches",
			`create_time > "2024-01-01T00:00:00Z"`,
			`{}`,
			false,
		},
		{
			"parenthesized or of substrings",
			`(display_name:"Fun" OR display_name:"Hello")`,
			`{"displayName":"Super Fun Event"}`,
			true,
		},
		{
			"time in the past fails greater",
			`create_time > "2023-01-01T00:00:00Z"`,
			`{"createTime":"2022-06-01T00:00:00Z"}`,
			false,
		},
		{
			"distributed and over or",
			`archived = false AND (status = "OPEN" OR status = "CLOSED")`,
			`{"archived":false,"status":"CLOSED"}`,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.filter, table)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.filter, err)
			}
			if got := f.Matches(rec(tt.json)); got != tt.want {
				t.Errorf("Matches(%s) with %q = %v, want %v", tt.json, tt.filter, got, tt.want)
			}
		})
	}
}

func TestNilFilterMatchesEverything(t *testing.T) {
	var f *Filter
	if !f.Matches(rec(`{"status":"OPEN"}`)) {
		t.Error("nil filter should match any record")
	}
}

func TestEvalConditionUnknownField(t *testing.T) {
	c := Condition{Field: "nope", Operator: OpEqual, Value: "x"}
	if EvalCondition(rec(`{"nope":"x"}`), c, testTable()) {
		t.Error("condition on a field outside the table should evaluate false")
	}
}

func TestFilterRecords(t *testing.T) {
	table := testTable()
	recs := []record.Record{
		rec(`{"status":"OPEN","displayName":"a"}`),
		rec(`{"status":"CLOSED","displayName":"b"}`),
		rec(`{"status":"OPEN","displayName":"c"}`),
	}

	f, err := Parse(`status = "OPEN"`, table)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	got := FilterRecords(recs, f)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	// Input order is preserved.
	if got[0].String("displayName") != "a" || got[1].String("displayName") != "c" {
		t.Errorf("order not preserved: %v, %v", got[0].Raw(), got[1].Raw())
	}

	if out := FilterRecords(recs, nil); len(out) != len(recs) {
		t.Errorf("nil filter returned %d records, want all %d", len(out), len(recs))
	}
}
