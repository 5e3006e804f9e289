package filter

import "strings"

// Matches reports whether a record satisfies the filter: OR across
// AND groups, AND within a group. A nil or empty filter matches
// everything. Evaluation never fails; a record with missing or
// malformed fields simply fails the conditions that read them.
func (f *Filter) Matches(rec Record) bool {
	if f == nil || len(f.Groups) == 0 {
		return true
	}
	for _, group := range f.Groups {
		if f.matchGroup(rec, group) {
			return true
		}
	}
	return false
}

func (f *Filter) matchGroup(rec Record, group AndGroup) bool {
	for _, c := range group {
		if !EvalCondition(rec, c, f.table) {
			return false
		}
	}
	return true
}

// EvalCondition applies one condition to a record using the field's
// comparison semantics from the table. A condition on a field the
// table does not know evaluates false rather than failing.
func EvalCondition(rec Record, c Condition, table FieldTable) bool {
	spec, ok := table.Fields[c.Field]
	if !ok {
		return false
	}

	switch spec.Kind {
	case KindBool:
		want := strings.EqualFold(c.Value, "true")
		got := rec.Bool(spec.Path)
		switch c.Operator {
		case OpEqual:
			return got == want
		case OpNotEqual:
			return got != want
		}
		return false

	case KindTime:
		// Validation guarantees uniform RFC-3339 literals, so ordering
		// is lexical on the raw strings. A record without the field
		// has nothing to compare and never matches.
		got := rec.String(spec.Path)
		if got == "" {
			return false
		}
		switch c.Operator {
		case OpEqual:
			return got == c.Value
		case OpGreater:
			return got > c.Value
		case OpLess:
			return got < c.Value
		case OpGreaterEqual:
			return got >= c.Value
		case OpLessEqual:
			return got <= c.Value
		}
		return false

	default: // KindText, KindEnum
		got := rec.String(spec.Path)
		switch c.Operator {
		case OpEqual:
			return strings.EqualFold(got, c.Value)
		case OpNotEqual:
			return !strings.EqualFold(got, c.Value)
		case OpHas:
			return strings.Contains(strings.ToLower(got), strings.ToLower(c.Value))
		}
		return false
	}
}

// FilterRecords returns the records matching f, preserving input
// order. A nil filter passes the input through unchanged.
func FilterRecords(recs []Record, f *Filter) []Record {
	if f == nil {
		return recs
	}
	var out []Record
	for _, r := range recs {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
