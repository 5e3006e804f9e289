package chat

import (
	"github.com/chatfilter/chatfilter/internal/filter"
	"github.com/chatfilter/chatfilter/internal/log"
	"github.com/chatfilter/chatfilter/internal/record"
	"github.com/chatfilter/chatfilter/internal/schema"
)

// ListMessages lists the messages of a space, filtered by the flat
// thread/create_time dialect. A filter that does not parse matches
// nothing rather than failing the call.
func (s *Store) ListMessages(parent, filterExpr string, page Page) ([]record.Record, string, error) {
	if err := checkSpaceParent(parent); err != nil {
		return nil, "", err
	}
	recs := childrenOf(s.Messages, parent, "messages")

	var conds []filter.Condition
	if filterExpr != "" {
		var err error
		conds, err = filter.ParseQuery(filterExpr, schema.Message)
		if err != nil {
			log.Debugf("list messages: unusable filter %q: %v", filterExpr, err)
			return nil, "", nil
		}
	}

	var matched []record.Record
	for _, r := range recs {
		ok := true
		for _, c := range conds {
			if !filter.EvalCondition(r, c, schema.Message) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, r)
		}
	}
	return paginate(matched, page)
}

// ListReactions lists the reactions of a message, filtered by the
// reaction dialect (OR within a field, AND across fields). Like message
// listing, an unusable filter matches nothing.
func (s *Store) ListReactions(parent, filterExpr string, page Page) ([]record.Record, string, error) {
	recs := childrenOf(s.Reactions, parent, "reactions")

	var f *filter.Filter
	if filterExpr != "" {
		var err error
		f, err = filter.Parse(filterExpr, schema.Reaction)
		if err != nil {
			log.Debugf("list reactions: unusable filter %q: %v", filterExpr, err)
			return nil, "", nil
		}
	}
	return paginate(filter.FilterRecords(recs, f), page)
}
