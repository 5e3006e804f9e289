package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chatfilter/chatfilter/internal/filter"
	"github.com/chatfilter/chatfilter/internal/output"
	"github.com/chatfilter/chatfilter/internal/schema"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List built-in field tables",
	Long:  `Display the built-in field tables: every filterable field with its value kind and allowed operators.`,
	Args:  cobra.NoArgs,
	RunE:  runTables,
}

func runTables(cmd *cobra.Command, args []string) error {
	tw := output.NewTableWriter()
	tw.Header("RESOURCE", "FIELD", "KIND", "OPERATORS")

	for _, name := range schema.Names() {
		table := schema.Tables[name]
		fields := make([]string, 0, len(table.Fields))
		for field := range table.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			spec := table.Fields[field]
			tw.Row(name, field, kindName(spec.Kind), operatorNames(spec.Operators))
		}
	}

	fmt.Println(tw.String())
	return nil
}

func kindName(k filter.Kind) string {
	switch k {
	case filter.KindEnum:
		return "enum"
	case filter.KindBool:
		return "bool"
	case filter.KindTime:
		return "timestamp"
	default:
		return "text"
	}
}

func operatorNames(ops []filter.Operator) string {
	names := make([]string, len(ops))
	for i, op := range ops {
		if op == filter.OpHas {
			names[i] = ":"
		} else {
			names[i] = string(op)
		}
	}
	return strings.Join(names, " ")
}
