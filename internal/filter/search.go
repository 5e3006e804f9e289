package filter

// ParseQuery parses a raw expression and flattens the normalized form
// into a single conjunction of conditions. It serves the dialects
// whose callers evaluate each condition independently with
// EvalCondition instead of keeping the full DNF structure; membership
// listing and the event filter work this way.
func ParseQuery(raw string, table FieldTable) ([]Condition, error) {
	f, err := Parse(raw, table)
	if err != nil {
		return nil, err
	}
	var conds []Condition
	for _, group := range f.Groups {
		conds = append(conds, group...)
	}
	return conds, nil
}
