package chat

import (
	"fmt"
	"strings"

	"github.com/chatfilter/chatfilter/internal/filter"
	"github.com/chatfilter/chatfilter/internal/log"
	"github.com/chatfilter/chatfilter/internal/ordering"
	"github.com/chatfilter/chatfilter/internal/record"
	"github.com/chatfilter/chatfilter/internal/schema"
)

// ListSpaces lists spaces matching an OR-only space_type filter. A
// top-level AND is rejected before parsing; a malformed filter is an
// error.
func (s *Store) ListSpaces(filterExpr string, page Page) ([]record.Record, string, error) {
	var f *filter.Filter
	if filterExpr != "" {
		if len(filter.SplitTopLevel(filterExpr, "AND")) > 1 {
			return nil, "", fmt.Errorf("%w: AND is not supported in space listing filters", filter.ErrSyntax)
		}
		var err error
		f, err = filter.Parse(filterExpr, schema.SpaceList)
		if err != nil {
			return nil, "", err
		}
	}

	matched := filter.FilterRecords(s.Spaces, f)
	log.Debugf("list spaces: %d of %d", len(matched), len(s.Spaces))
	return paginate(matched, page)
}

// SearchSpaces runs the admin search query over spaces. The query must
// pin customer to "customers/my_customer" and space_type to "SPACE";
// when either is missing the result is empty. Results are sorted by the
// orderBy clause, create_time ascending by default.
func (s *Store) SearchSpaces(query, orderBy string, page Page) ([]record.Record, string, error) {
	f, err := filter.Parse(query, schema.SpaceSearch)
	if err != nil {
		return nil, "", err
	}
	spec, err := ordering.Parse(orderBy, ordering.SearchFields)
	if err != nil {
		return nil, "", err
	}
	if !hasCondition(f, "customer", "customers/my_customer") || !hasCondition(f, "space_type", "SPACE") {
		return nil, "", nil
	}

	// Spaces carry no customer field; the condition is an access
	// scope, not a record predicate.
	matched := filter.FilterRecords(s.Spaces, stripField(f, "customer"))
	log.Debugf("search spaces: %d of %d, order by %s", len(matched), len(s.Spaces), spec.Field)

	sorted := make([]record.Record, len(matched))
	copy(sorted, matched)
	ordering.Sort(sorted, spec)
	return paginate(sorted, page)
}

// hasCondition reports whether every group of f constrains field to
// value with the equality operator.
func hasCondition(f *filter.Filter, field, value string) bool {
	if len(f.Groups) == 0 {
		return false
	}
	for _, group := range f.Groups {
		found := false
		for _, c := range group {
			if c.Field == field && c.Operator == filter.OpEqual && strings.EqualFold(c.Value, value) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// stripField returns a copy of f with the named field's conditions
// removed from every group.
func stripField(f *filter.Filter, field string) *filter.Filter {
	groups := make([]filter.AndGroup, 0, len(f.Groups))
	for _, group := range f.Groups {
		var kept filter.AndGroup
		for _, c := range group {
			if c.Field != field {
				kept = append(kept, c)
			}
		}
		groups = append(groups, kept)
	}
	return filter.NewFilter(groups, f.Table())
}
