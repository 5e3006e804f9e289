package output

import (
	"encoding/json"
	"fmt"

	"github.com/chatfilter/chatfilter/internal/filter"
)

// CheckReport implements Formatter for the result of checking a filter
// expression against a field table. It shows the normalized form: the
// OR of AND groups the expression flattens to.
type CheckReport struct {
	Expression string
	Filter     *filter.Filter
}

// FormatText formats the normalized filter as a table, one condition
// per row, with rows of the same group sharing a group number.
func (c *CheckReport) FormatText() string {
	tw := NewTableWriter()
	tw.Header("GROUP", "FIELD", "OPERATOR", "VALUE")

	for i, group := range c.Filter.Groups {
		for _, cond := range group {
			tw.Row(fmt.Sprintf("%d", i+1), cond.Field, string(cond.Operator), cond.Value)
		}
	}

	return tw.String()
}

// FormatJSON formats the normalized filter as JSON.
func (c *CheckReport) FormatJSON() ([]byte, error) {
	jr := jsonReport{
		Expression: c.Expression,
		Valid:      true,
		Groups:     make([][]jsonCondition, len(c.Filter.Groups)),
	}
	for i, group := range c.Filter.Groups {
		jr.Groups[i] = make([]jsonCondition, len(group))
		for j, cond := range group {
			jr.Groups[i][j] = jsonCondition{
				Field:    cond.Field,
				Operator: string(cond.Operator),
				Value:    cond.Value,
			}
		}
	}
	return json.MarshalIndent(jr, "", "  ")
}

// jsonReport is the JSON output structure.
type jsonReport struct {
	Expression string            `json:"expression"`
	Valid      bool              `json:"valid"`
	Groups     [][]jsonCondition `json:"groups"`
}

type jsonCondition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}
