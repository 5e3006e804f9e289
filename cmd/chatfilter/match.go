package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatfilter/chatfilter/internal/filter"
	"github.com/chatfilter/chatfilter/internal/ordering"
	"github.com/chatfilter/chatfilter/internal/output"
	"github.com/chatfilter/chatfilter/internal/record"
)

var (
	matchJSON     bool
	matchResource string
	matchTable    string
	matchFilter   string
	matchOrderBy  string
)

var matchCmd = &cobra.Command{
	Use:   "match [records.json]",
	Short: "Filter a set of JSON records",
	Long:  `Apply a filter expression to a JSON array of records and print the ones that match. Reads stdin when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	Example: `  chatfilter match -r membership -f 'role = "ROLE_MANAGER"' members.json
  chatfilter match -r spacesearch -f 'space_type = "SPACE"' --order-by 'create_time DESC' spaces.json
  cat spaces.json | chatfilter match -r space -f 'space_type = "GROUP_CHAT"'`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVarP(&matchJSON, "json", "j", false, "Output in JSON format")
	matchCmd.Flags().StringVarP(&matchResource, "resource", "r", "membership", "Built-in field table")
	matchCmd.Flags().StringVarP(&matchTable, "table", "t", "", "YAML field table file (overrides --resource)")
	matchCmd.Flags().StringVarP(&matchFilter, "filter", "f", "", "Filter expression")
	matchCmd.Flags().StringVar(&matchOrderBy, "order-by", "", `Sort clause, e.g. "create_time DESC"`)
}

func runMatch(cmd *cobra.Command, args []string) error {
	table, err := resolveTable(matchResource, matchTable)
	if err != nil {
		return err
	}

	var f *filter.Filter
	if matchFilter != "" {
		f, err = filter.Parse(matchFilter, table)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
	}

	recs, err := readRecords(args)
	if err != nil {
		return err
	}

	matched := filter.FilterRecords(recs, f)
	if matchOrderBy != "" {
		spec, err := ordering.Parse(matchOrderBy, ordering.SearchFields)
		if err != nil {
			return err
		}
		ordering.Sort(matched, spec)
	}

	if len(matched) > 0 {
		list := &output.RecordList{Records: matched}
		format := output.FormatText
		if matchJSON {
			format = output.FormatJSON
		}
		result, err := output.FormatOutput(list, format)
		if err != nil {
			return err
		}
		fmt.Println(result)
	}

	if len(matched) == 0 {
		os.Exit(ExitNoMatch)
	}
	return nil
}

// readRecords loads a JSON array of records from the named file or
// from stdin.
func readRecords(args []string) ([]record.Record, error) {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parsing records: %w", err)
	}
	recs := make([]record.Record, len(raws))
	for i, raw := range raws {
		recs[i] = record.FromJSON(raw)
	}
	return recs, nil
}
