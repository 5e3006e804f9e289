package filter

import (
	"fmt"
	"strings"
)

// operatorOrder lists recognized operator spellings. Two-character
// forms come first so ">=" is never mis-split into ">" plus "=".
var operatorOrder = []struct {
	text string
	op   Operator
}{
	{">=", OpGreaterEqual},
	{"<=", OpLessEqual},
	{"!=", OpNotEqual},
	{">", OpGreater},
	{"<", OpLess},
	{"=", OpEqual},
	{":", OpHas},
}

// Parse parses a raw filter expression against a resource field table:
// split on AND/OR, parse leaf conditions, normalize to disjunctive
// normal form, then validate every condition (and, for strict tables,
// contradiction-check every AND group). The returned filter is fresh
// per call; nothing is cached or shared.
func Parse(raw string, table FieldTable) (*Filter, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty filter expression", ErrSyntax)
	}
	if err := checkBalanced(trimmed); err != nil {
		return nil, err
	}

	groups, err := parseExpr(trimmed, table)
	if err != nil {
		return nil, err
	}

	f := &Filter{Groups: groups, table: table}
	if err := Validate(f, table); err != nil {
		return nil, err
	}
	return f, nil
}

// checkBalanced rejects unbalanced parentheses and unterminated
// string literals up front, before any splitting happens.
func checkBalanced(s string) error {
	var depth int
	var inQuote bool
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '"':
			inQuote = !inQuote
		case inQuote:
		case s[i] == '(':
			depth++
		case s[i] == ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unbalanced parentheses in %q", ErrSyntax, s)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: unbalanced parentheses in %q", ErrSyntax, s)
	}
	if inQuote {
		return fmt.Errorf("%w: unterminated string literal in %q", ErrSyntax, s)
	}
	return nil
}

// parseExpr normalizes one (sub)expression to a list of AND groups.
// OR branches concatenate their group lists; AND branches combine by
// cartesian product, distributing AND over any nested OR.
func parseExpr(s string, table FieldTable) ([]AndGroup, error) {
	orParts := SplitTopLevel(s, "OR")
	if len(orParts) > 1 {
		var groups []AndGroup
		for _, part := range orParts {
			if part == "" {
				return nil, fmt.Errorf("%w: empty OR branch in %q", ErrSyntax, s)
			}
			sub, err := parseExpr(part, table)
			if err != nil {
				return nil, err
			}
			groups = append(groups, sub...)
		}
		if err := checkOrFields(groups, table, s); err != nil {
			return nil, err
		}
		return groups, nil
	}

	andParts := SplitTopLevel(s, "AND")
	if len(andParts) > 1 {
		product := []AndGroup{nil}
		for _, part := range andParts {
			if part == "" {
				return nil, fmt.Errorf("%w: empty AND branch in %q", ErrSyntax, s)
			}
			sub, err := parseExpr(part, table)
			if err != nil {
				return nil, err
			}
			product = crossProduct(product, sub)
		}
		return product, nil
	}

	seg := andParts[0]
	if seg == "" {
		return nil, fmt.Errorf("%w: empty filter segment", ErrSyntax)
	}
	if inner, ok := unwrapParens(seg); ok {
		return parseExpr(inner, table)
	}
	cond, err := parseLeaf(seg, table)
	if err != nil {
		return nil, err
	}
	return []AndGroup{{cond}}, nil
}

// crossProduct combines the groups of two AND branches: one new group
// per pairing, conditions concatenated in branch order.
func crossProduct(acc, next []AndGroup) []AndGroup {
	out := make([]AndGroup, 0, len(acc)*len(next))
	for _, a := range acc {
		for _, b := range next {
			g := make(AndGroup, 0, len(a)+len(b))
			g = append(g, a...)
			g = append(g, b...)
			out = append(out, g)
		}
	}
	return out
}

// checkOrFields enforces the no-or table flag: when the branches of an
// OR reference more than one distinct field, none of those fields may
// be flagged no-or.
func checkOrFields(groups []AndGroup, table FieldTable, expr string) error {
	fields := map[string]bool{}
	for _, g := range groups {
		for _, c := range g {
			fields[c.Field] = true
		}
	}
	if len(fields) <= 1 {
		return nil
	}
	for field := range fields {
		if spec, ok := table.Fields[field]; ok && spec.NoOr {
			return fmt.Errorf("%w: %q in %q", ErrCrossFieldOr, field, expr)
		}
	}
	return nil
}

// unwrapParens reports whether seg is fully wrapped in one matching
// pair of parentheses (depth returns to zero only at the very end) and
// returns the trimmed inner expression.
func unwrapParens(seg string) (string, bool) {
	if len(seg) < 2 || seg[0] != '(' || seg[len(seg)-1] != ')' {
		return "", false
	}
	var depth int
	var inQuote bool
	for i := 0; i < len(seg); i++ {
		switch {
		case seg[i] == '"':
			inQuote = !inQuote
		case inQuote:
		case seg[i] == '(':
			depth++
		case seg[i] == ')':
			depth--
			if depth == 0 && i != len(seg)-1 {
				return "", false
			}
		}
	}
	return strings.TrimSpace(seg[1 : len(seg)-1]), true
}

// parseLeaf converts one segment with no top-level boolean keyword
// into a condition. The operator is the earliest occurrence outside
// quotes, so literals containing "=" or ">" never confuse detection.
func parseLeaf(seg string, table FieldTable) (Condition, error) {
	bestIdx := -1
	var bestLen int
	var bestOp Operator
	for _, cand := range operatorOrder {
		idx := indexOutsideQuotes(seg, cand.text)
		if idx >= 0 && (bestIdx == -1 || idx < bestIdx) {
			bestIdx, bestLen, bestOp = idx, len(cand.text), cand.op
		}
	}
	if bestIdx == -1 {
		return Condition{}, fmt.Errorf("%w: no operator in segment %q", ErrSyntax, seg)
	}

	fieldRaw := strings.TrimSpace(seg[:bestIdx])
	if fieldRaw == "" {
		return Condition{}, fmt.Errorf("%w: missing field in segment %q", ErrSyntax, seg)
	}
	canonical, spec, ok := table.Resolve(fieldRaw)
	if !ok {
		return Condition{}, fmt.Errorf("%w: %q", ErrField, fieldRaw)
	}
	// Colon syntax is only valid on text-search-capable fields; using
	// it elsewhere is a field error, not a silently accepted operator.
	if bestOp == OpHas && !spec.AllowsOperator(OpHas) {
		return Condition{}, fmt.Errorf("%w: %q does not support the ':' search syntax", ErrField, canonical)
	}

	value, err := unquote(strings.TrimSpace(seg[bestIdx+bestLen:]))
	if err != nil {
		return Condition{}, err
	}
	if spec.FoldEnum {
		value = strings.ToUpper(value)
	}
	return Condition{Field: canonical, Operator: bestOp, Value: value}, nil
}

// unquote strips one pair of surrounding quotes from a literal.
// Unquoted literals pass through unchanged; an opening quote without
// its closing partner is a syntax error.
func unquote(v string) (string, error) {
	for _, q := range []byte{'"', '\''} {
		if len(v) > 0 && v[0] == q {
			if len(v) < 2 || v[len(v)-1] != q {
				return "", fmt.Errorf("%w: unterminated quote in %q", ErrSyntax, v)
			}
			return v[1 : len(v)-1], nil
		}
	}
	return v, nil
}

// normalizeField canonicalizes a field name for table lookup.
func normalizeField(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// squashUnderscores makes lookups underscore-insensitive so camelCase
// dialect spellings resolve to snake_case table entries.
func squashUnderscores(s string) string {
	return strings.ReplaceAll(s, "_", "")
}
