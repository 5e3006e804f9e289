// Package chat implements listing operations over an in-memory,
// JSON-seeded store of chat resources. Each operation applies its
// resource's filter dialect and paginates with offset tokens.
package chat

import (
	"encoding/json"
	"fmt"

	"github.com/chatfilter/chatfilter/internal/record"
)

// Store holds the seeded resource collections. It is read-only once
// loaded; the listing operations never mutate it.
type Store struct {
	Memberships []record.Record
	Spaces      []record.Record
	Messages    []record.Record
	Reactions   []record.Record
	SpaceEvents []record.Record
}

// seed is the on-disk shape of a store dump.
type seed struct {
	Memberships []json.RawMessage `json:"memberships"`
	Spaces      []json.RawMessage `json:"spaces"`
	Messages    []json.RawMessage `json:"messages"`
	Reactions   []json.RawMessage `json:"reactions"`
	SpaceEvents []json.RawMessage `json:"spaceEvents"`
}

// LoadStore parses a JSON store dump into a Store.
func LoadStore(data []byte) (*Store, error) {
	var s seed
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing store: %w", err)
	}
	return &Store{
		Memberships: toRecords(s.Memberships),
		Spaces:      toRecords(s.Spaces),
		Messages:    toRecords(s.Messages),
		Reactions:   toRecords(s.Reactions),
		SpaceEvents: toRecords(s.SpaceEvents),
	}, nil
}

func toRecords(raws []json.RawMessage) []record.Record {
	recs := make([]record.Record, len(raws))
	for i, raw := range raws {
		recs[i] = record.FromJSON(raw)
	}
	return recs
}

// childrenOf returns the records whose name starts with parent plus the
// given collection segment, e.g. parent "spaces/one" and collection
// "members" selects "spaces/one/members/*".
func childrenOf(recs []record.Record, parent, collection string) []record.Record {
	prefix := parent + "/" + collection + "/"
	var out []record.Record
	for _, r := range recs {
		name := r.String("name")
		if len(name) > len(prefix) && name[:len(prefix)] == prefix {
			out = append(out, r)
		}
	}
	return out
}
