package filter

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks every condition in every AND group of a normalized
// filter against the field table: unknown fields, operators outside a
// field's allowed set and values outside its domain are rejected. For
// strict tables every AND group is also contradiction-checked.
func Validate(f *Filter, table FieldTable) error {
	if len(f.Groups) == 0 {
		return fmt.Errorf("%w: no conditions in filter", ErrSyntax)
	}
	for _, group := range f.Groups {
		if len(group) == 0 {
			return fmt.Errorf("%w: empty condition group", ErrSyntax)
		}
		for _, c := range group {
			if err := validateCondition(c, table); err != nil {
				return err
			}
		}
		if table.Strict {
			if err := CheckContradiction(group); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateCondition(c Condition, table FieldTable) error {
	spec, ok := table.Fields[c.Field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrField, c.Field)
	}
	if !spec.AllowsOperator(c.Operator) {
		return fmt.Errorf("%w: %q does not support %q", ErrOperator, c.Field, c.Operator)
	}

	switch spec.Kind {
	case KindEnum:
		for _, allowed := range spec.Enum {
			if c.Value == allowed {
				return nil
			}
		}
		return fmt.Errorf("%w: %q is not a valid value for %q (one of %s)",
			ErrValue, c.Value, c.Field, strings.Join(spec.Enum, ", "))
	case KindBool:
		switch strings.ToLower(c.Value) {
		case "true", "false":
			return nil
		}
		return fmt.Errorf("%w: %q is not a boolean literal for %q", ErrValue, c.Value, c.Field)
	case KindTime:
		if _, err := time.Parse(time.RFC3339, c.Value); err != nil {
			return fmt.Errorf("%w: %q is not an RFC-3339 timestamp for %q", ErrValue, c.Value, c.Field)
		}
	}
	return nil
}

// CheckContradiction rejects an AND group that can never match: the
// same value asserted both equal and not-equal for one field, or two
// different values both asserted equal for one field.
func CheckContradiction(group AndGroup) error {
	eq := map[string]map[string]bool{}
	ne := map[string]map[string]bool{}
	for _, c := range group {
		switch c.Operator {
		case OpEqual:
			if eq[c.Field] == nil {
				eq[c.Field] = map[string]bool{}
			}
			eq[c.Field][c.Value] = true
		case OpNotEqual:
			if ne[c.Field] == nil {
				ne[c.Field] = map[string]bool{}
			}
			ne[c.Field][c.Value] = true
		}
	}
	for field, values := range eq {
		if len(values) > 1 {
			return fmt.Errorf("%w: %q equals multiple values", ErrContradiction, field)
		}
		for v := range values {
			if ne[field][v] {
				return fmt.Errorf("%w: %q both equals and differs from %q", ErrContradiction, field, v)
			}
		}
	}
	return nil
}
