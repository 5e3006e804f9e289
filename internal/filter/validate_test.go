package filter

import (
	"errors"
	"testing"
)

func TestCheckContradiction(t *testing.T) {
	tests := []struct {
		name    string
		group   AndGroup
		wantErr bool
	}{
		{
			"no conflict",
			AndGroup{{"status", OpEqual, "OPEN"}, {"archived", OpEqual, "true"}},
			false,
		},
		{
			"same value repeated",
			AndGroup{{"status", OpEqual, "OPEN"}, {"status", OpEqual, "OPEN"}},
			false,
		},
		{
			"two different equals",
			AndGroup{{"status", OpEqual, "OPEN"}, {"status", OpEqual, "CLOSED"}},
			true,
		},
		{
			"equal and not equal same value",
			AndGroup{{"status", OpEqual, "OPEN"}, {"status", OpNotEqual, "OPEN"}},
			true,
		},
		{
			"equal and not equal different values",
			AndGroup{{"status", OpEqual, "OPEN"}, {"status", OpNotEqual, "CLOSED"}},
			false,
		},
		{
			"not equals alone never conflict",
			AndGroup{{"status", OpNotEqual, "OPEN"}, {"status", OpNotEqual, "CLOSED"}},
			false,
		},
		{
			"conflicts are per field",
			AndGroup{{"status", OpEqual, "OPEN"}, {"display_name", OpEqual, "CLOSED"}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckContradiction(tt.group)
			if tt.wantErr && !errors.Is(err, ErrContradiction) {
				t.Errorf("CheckContradiction(%v) = %v, want ErrContradiction", tt.group, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckContradiction(%v) = %v, want nil", tt.group, err)
			}
		})
	}
}

func TestValidateEmptyFilter(t *testing.T) {
	err := Validate(&Filter{}, testTable())
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("Validate(empty) = %v, want ErrSyntax", err)
	}
}

func TestStrictTableChecksEveryGroup(t *testing.T) {
	// The contradiction sits in the second OR branch only.
	_, err := Parse(`status = "OPEN" OR (status = "OPEN" AND status = "CLOSED")`, strictTestTable())
	if !errors.Is(err, ErrContradiction) {
		t.Errorf("Parse = %v, want ErrContradiction", err)
	}
}
