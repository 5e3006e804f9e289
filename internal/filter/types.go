// Package filter implements the filter expression engine shared by the
// chat resource listings: splitting a raw expression on AND/OR,
// parsing leaf conditions, normalizing to disjunctive normal form,
// validating against a per-resource field table and matching records.
package filter

import "github.com/chatfilter/chatfilter/internal/record"

// Operator is a comparison operator in a filter condition.
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	// OpHas is case-insensitive substring containment, written with
	// colon syntax in the query dialect (displayName:"Fun").
	OpHas Operator = "HAS"
)

// Kind is the value domain a field accepts.
type Kind int

const (
	KindText Kind = iota
	KindEnum
	KindBool
	KindTime
)

// Condition is a single field/operator/value comparison, the atomic
// unit of a filter. Field holds the canonical table name, Value the
// literal with quotes stripped and enum folding applied.
type Condition struct {
	Field    string
	Operator Operator
	Value    string
}

// AndGroup is one conjunctive clause: every condition must hold.
type AndGroup []Condition

// Filter is a parsed, validated filter in disjunctive normal form:
// a record matches when at least one AndGroup is fully satisfied.
// It retains the table it was parsed against for evaluation.
type Filter struct {
	Groups []AndGroup
	table  FieldTable
}

// Table returns the field table the filter was parsed with.
func (f *Filter) Table() FieldTable { return f.table }

// NewFilter assembles a filter from already-validated groups. Callers
// that rewrite a parsed filter (dropping a scope condition, merging
// groups) use it to keep the table attached.
func NewFilter(groups []AndGroup, table FieldTable) *Filter {
	return &Filter{Groups: groups, table: table}
}

// FieldSpec declares how a single field may be filtered and how its
// value is read from a record.
type FieldSpec struct {
	// Path is the gjson path into the record (e.g. "member.type").
	Path string
	// Kind is the value domain.
	Kind Kind
	// Operators is the allowed operator set.
	Operators []Operator
	// Enum lists the allowed values for KindEnum fields.
	Enum []string
	// FoldEnum upper-cases values before validation and comparison.
	FoldEnum bool
	// NoOr forbids the field from appearing in an OR group that
	// references more than one distinct field.
	NoOr bool
}

// AllowsOperator reports whether op is in the field's allowed set.
func (s FieldSpec) AllowsOperator(op Operator) bool {
	for _, o := range s.Operators {
		if o == op {
			return true
		}
	}
	return false
}

// FieldTable is the per-resource declaration of filterable fields.
// Tables are data: adding a field or operator is a table edit, not a
// parser change.
type FieldTable struct {
	// Fields maps canonical (snake_case, lower) field names to specs.
	Fields map[string]FieldSpec
	// Strict enables the contradiction check on every AndGroup.
	Strict bool
}

// Resolve maps a raw field name from a filter expression to its
// canonical table name. Lookup is trimmed and lower-cased; a
// camelCase spelling resolves to the snake_case entry through an
// underscore-insensitive fallback ("displayName" -> "display_name").
func (t FieldTable) Resolve(name string) (string, FieldSpec, bool) {
	key := normalizeField(name)
	if spec, ok := t.Fields[key]; ok {
		return key, spec, true
	}
	squashed := squashUnderscores(key)
	for canonical, spec := range t.Fields {
		if squashUnderscores(canonical) == squashed {
			return canonical, spec, true
		}
	}
	return "", FieldSpec{}, false
}

// Record is the resource object the evaluator reads field values from.
type Record = record.Record
