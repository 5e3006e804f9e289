package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chatfilter/chatfilter/internal/filter"
	"github.com/chatfilter/chatfilter/internal/output"
	"github.com/chatfilter/chatfilter/internal/schema"
)

var (
	checkJSON     bool
	checkResource string
	checkTable    string
)

var checkCmd = &cobra.Command{
	Use:   "check <filter>",
	Short: "Parse and validate a filter expression",
	Long:  `Parse a filter expression against a resource's field table and print its normalized form.`,
	Args:  cobra.ExactArgs(1),
	Example: `  chatfilter check -r membership 'role = "ROLE_MEMBER"'
  chatfilter check -r spacesearch 'customer = "customers/my_customer" AND space_type = "SPACE"'
  chatfilter check -t fields.yaml 'status = "OPEN" OR status = "CLOSED"'`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkJSON, "json", "j", false, "Output in JSON format")
	checkCmd.Flags().StringVarP(&checkResource, "resource", "r", "membership", "Built-in field table (one of: "+strings.Join(schema.Names(), ", ")+")")
	checkCmd.Flags().StringVarP(&checkTable, "table", "t", "", "YAML field table file (overrides --resource)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	table, err := resolveTable(checkResource, checkTable)
	if err != nil {
		return err
	}

	f, err := filter.Parse(args[0], table)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}

	report := &output.CheckReport{Expression: args[0], Filter: f}
	format := output.FormatText
	if checkJSON {
		format = output.FormatJSON
	}
	result, err := output.FormatOutput(report, format)
	if err != nil {
		return err
	}
	fmt.Println(result)

	return nil
}

// resolveTable picks the field table for a command: a YAML file when
// given, a built-in table otherwise.
func resolveTable(resource, tableFile string) (filter.FieldTable, error) {
	if tableFile != "" {
		data, err := os.ReadFile(tableFile)
		if err != nil {
			return filter.FieldTable{}, err
		}
		return schema.LoadTable(data)
	}
	table, ok := schema.Tables[strings.ToLower(resource)]
	if !ok {
		return filter.FieldTable{}, fmt.Errorf("unknown resource %q (have: %s)", resource, strings.Join(schema.Names(), ", "))
	}
	return table, nil
}
