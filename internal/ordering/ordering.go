// Package ordering parses the orderBy dialect of space search
// ("create_time DESC") and sorts record collections by it.
package ordering

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/tidwall/gjson"

	"github.com/chatfilter/chatfilter/internal/record"
)

// orderExpr is the participle AST: a field with an optional direction.
type orderExpr struct {
	Field     string `parser:"@Field"`
	Direction string `parser:"@Direction?"`
}

// Direction must be lexed before Field so "ASC"/"DESC" are not
// swallowed by the identifier rule.
var orderLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Direction", Pattern: `(?i)\basc\b|\bdesc\b`},
	{Name: "Field", Pattern: `[a-zA-Z_][a-zA-Z0-9_.]*`},
})

var orderParser = participle.MustBuild[orderExpr](
	participle.Lexer(orderLexer),
	participle.CaseInsensitive("Direction"),
	participle.Elide("Whitespace"),
)

// Spec is a parsed orderBy clause.
type Spec struct {
	Field      string // canonical field name
	Path       string // gjson path used for sorting
	Descending bool
}

// SearchFields maps the sortable space-search fields to record paths.
var SearchFields = map[string]string{
	"create_time":      "createTime",
	"last_active_time": "lastActiveTime",
	"membership_count.joined_direct_human_user_count": "membershipCount.joinedDirectHumanUserCount",
}

// Default is the ordering applied when no orderBy is given.
func Default() Spec {
	return Spec{Field: "create_time", Path: "createTime"}
}

// Parse parses an orderBy clause against the set of sortable fields.
// Direction defaults to ascending.
func Parse(expr string, allowed map[string]string) (Spec, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Default(), nil
	}

	ast, err := orderParser.ParseString("", expr)
	if err != nil {
		return Spec{}, fmt.Errorf("invalid orderBy %q: %w", expr, err)
	}

	field := strings.ToLower(ast.Field)
	path, ok := allowed[field]
	if !ok {
		return Spec{}, fmt.Errorf("invalid orderBy %q: field %q is not sortable", expr, ast.Field)
	}
	return Spec{
		Field:      field,
		Path:       path,
		Descending: strings.EqualFold(ast.Direction, "desc"),
	}, nil
}

// Sort orders records in place by the spec's field. Numeric values
// compare numerically, everything else as strings; records missing
// the field sort first (ascending).
func Sort(recs []record.Record, s Spec) {
	sort.SliceStable(recs, func(i, j int) bool {
		if s.Descending {
			return lessByPath(recs[j], recs[i], s.Path)
		}
		return lessByPath(recs[i], recs[j], s.Path)
	})
}

func lessByPath(a, b record.Record, path string) bool {
	av, bv := a.Lookup(path), b.Lookup(path)
	if av.Type == gjson.Number && bv.Type == gjson.Number {
		return av.Num < bv.Num
	}
	return av.String() < bv.String()
}
