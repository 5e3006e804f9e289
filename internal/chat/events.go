package chat

import (
	"fmt"

	"github.com/chatfilter/chatfilter/internal/filter"
	"github.com/chatfilter/chatfilter/internal/log"
	"github.com/chatfilter/chatfilter/internal/record"
	"github.com/chatfilter/chatfilter/internal/schema"
)

// ListSpaceEvents lists the events of a space. The filter is required
// and must name at least one event type; multiple event_types
// conditions select events matching any of them. start_time and
// end_time bound the event time window, inclusive at both ends; an
// event without a timestamp is listed unless a bound is set.
func (s *Store) ListSpaceEvents(parent, filterExpr string, page Page) ([]record.Record, string, error) {
	if err := checkSpaceParent(parent); err != nil {
		return nil, "", err
	}

	conds, err := filter.ParseQuery(filterExpr, schema.SpaceEvent)
	if err != nil {
		return nil, "", err
	}

	var eventTypes []string
	startTime, endTime := "", ""
	for _, c := range conds {
		switch c.Field {
		case "event_types", "event_type":
			eventTypes = append(eventTypes, c.Value)
		case "start_time":
			startTime = c.Value
		case "end_time":
			endTime = c.Value
		}
	}
	if len(eventTypes) == 0 {
		return nil, "", fmt.Errorf("%w: filter must include at least one event_types condition", filter.ErrSyntax)
	}

	recs := childrenOf(s.SpaceEvents, parent, "spaceEvents")
	var matched []record.Record
	for _, r := range recs {
		if !matchesAnyType(r.String("eventType"), eventTypes) {
			continue
		}
		if startTime != "" || endTime != "" {
			t := r.String("eventTime")
			if t == "" {
				continue
			}
			if startTime != "" && t < startTime {
				continue
			}
			if endTime != "" && t > endTime {
				continue
			}
		}
		matched = append(matched, r)
	}
	log.Debugf("list space events: %d of %d under %s", len(matched), len(recs), parent)

	return paginate(matched, page)
}

func matchesAnyType(eventType string, wanted []string) bool {
	for _, w := range wanted {
		if eventType == w {
			return true
		}
	}
	return false
}
