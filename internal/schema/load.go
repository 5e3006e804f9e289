package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chatfilter/chatfilter/internal/filter"
)

// yamlTable is the on-disk shape of a user-supplied field table.
type yamlTable struct {
	Strict bool                 `yaml:"strict"`
	Fields map[string]yamlField `yaml:"fields"`
}

type yamlField struct {
	Path      string   `yaml:"path"`
	Kind      string   `yaml:"kind"`
	Operators []string `yaml:"operators"`
	Enum      []string `yaml:"enum"`
	FoldEnum  bool     `yaml:"foldEnum"`
	NoOr      bool     `yaml:"noOr"`
}

// LoadTable parses a YAML field table, so a new resource dialect is a
// data file rather than a code change. Field names are canonicalized
// to lower case; Path defaults to the field name.
func LoadTable(data []byte) (filter.FieldTable, error) {
	var raw yamlTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return filter.FieldTable{}, fmt.Errorf("parsing field table: %w", err)
	}
	if len(raw.Fields) == 0 {
		return filter.FieldTable{}, fmt.Errorf("field table declares no fields")
	}

	table := filter.FieldTable{
		Strict: raw.Strict,
		Fields: make(map[string]filter.FieldSpec, len(raw.Fields)),
	}
	for name, f := range raw.Fields {
		kind, err := parseKind(f.Kind)
		if err != nil {
			return filter.FieldTable{}, fmt.Errorf("field %q: %w", name, err)
		}
		ops, err := parseOperators(f.Operators)
		if err != nil {
			return filter.FieldTable{}, fmt.Errorf("field %q: %w", name, err)
		}
		path := f.Path
		if path == "" {
			path = name
		}
		table.Fields[strings.ToLower(name)] = filter.FieldSpec{
			Path:      path,
			Kind:      kind,
			Operators: ops,
			Enum:      f.Enum,
			FoldEnum:  f.FoldEnum,
			NoOr:      f.NoOr,
		}
	}
	return table, nil
}

func parseKind(s string) (filter.Kind, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return filter.KindText, nil
	case "enum":
		return filter.KindEnum, nil
	case "bool", "boolean":
		return filter.KindBool, nil
	case "time", "timestamp":
		return filter.KindTime, nil
	}
	return 0, fmt.Errorf("unknown value kind %q", s)
}

func parseOperators(specs []string) ([]filter.Operator, error) {
	if len(specs) == 0 {
		return []filter.Operator{filter.OpEqual}, nil
	}
	ops := make([]filter.Operator, 0, len(specs))
	for _, s := range specs {
		switch strings.ToUpper(s) {
		case "=":
			ops = append(ops, filter.OpEqual)
		case "!=":
			ops = append(ops, filter.OpNotEqual)
		case ">":
			ops = append(ops, filter.OpGreater)
		case "<":
			ops = append(ops, filter.OpLess)
		case ">=":
			ops = append(ops, filter.OpGreaterEqual)
		case "<=":
			ops = append(ops, filter.OpLessEqual)
		case ":", "HAS":
			ops = append(ops, filter.OpHas)
		default:
			return nil, fmt.Errorf("unknown operator %q", s)
		}
	}
	return ops, nil
}
