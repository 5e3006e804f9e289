package chat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chatfilter/chatfilter/internal/filter"
	"github.com/chatfilter/chatfilter/internal/log"
	"github.com/chatfilter/chatfilter/internal/record"
	"github.com/chatfilter/chatfilter/internal/schema"
)

// ErrParent indicates a malformed parent resource name.
var ErrParent = errors.New("invalid parent")

// ErrAdminFilter indicates a membership filter that violates the admin
// access rules.
var ErrAdminFilter = errors.New("invalid admin filter")

// MembershipOptions are the arguments of ListMemberships beyond the
// parent space.
type MembershipOptions struct {
	Filter         string
	ShowGroups     bool
	ShowInvited    bool
	UseAdminAccess bool
	Page           Page
}

// ListMemberships lists the memberships of a space. The filter uses the
// strict membership dialect; a malformed filter is an error. Group
// memberships and invited members are hidden unless their option is
// set. Admin access hides the calling app's membership and requires
// the filter to pin member.type to humans.
func (s *Store) ListMemberships(parent string, opts MembershipOptions) ([]record.Record, string, error) {
	if err := checkSpaceParent(parent); err != nil {
		return nil, "", err
	}

	var conds []filter.Condition
	if opts.Filter != "" {
		var err error
		conds, err = filter.ParseQuery(opts.Filter, schema.Membership)
		if err != nil {
			return nil, "", err
		}
	}
	if opts.UseAdminAccess {
		if err := checkAdminFilter(conds); err != nil {
			return nil, "", err
		}
	}

	recs := childrenOf(s.Memberships, parent, "members")
	var matched []record.Record
	for _, r := range recs {
		if opts.UseAdminAccess && strings.HasSuffix(r.String("name"), "/members/app") {
			continue
		}
		if !opts.ShowGroups && strings.HasPrefix(r.String("member.name"), "groups/") {
			continue
		}
		if !opts.ShowInvited && r.String("state") == "INVITED" {
			continue
		}
		ok := true
		for _, c := range conds {
			if !filter.EvalCondition(r, c, schema.Membership) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, r)
		}
	}
	log.Debugf("list memberships: %d of %d under %s", len(matched), len(recs), parent)

	return paginate(matched, opts.Page)
}

// checkAdminFilter enforces the admin access rule: the filter must
// restrict member.type to humans, either directly or by excluding bots,
// and must not select bots.
func checkAdminFilter(conds []filter.Condition) error {
	ok := false
	for _, c := range conds {
		if c.Field != "member.type" {
			continue
		}
		switch {
		case c.Operator == filter.OpEqual && c.Value == "HUMAN":
			ok = true
		case c.Operator == filter.OpNotEqual && c.Value == "BOT":
			ok = true
		case c.Operator == filter.OpEqual && c.Value == "BOT":
			return fmt.Errorf("%w: member.type = BOT is not allowed with admin access", ErrAdminFilter)
		}
	}
	if !ok {
		return fmt.Errorf(`%w: filter must include member.type = "HUMAN" or member.type != "BOT"`, ErrAdminFilter)
	}
	return nil
}

func checkSpaceParent(parent string) error {
	rest, ok := strings.CutPrefix(parent, "spaces/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return fmt.Errorf("%w: %q is not a space name", ErrParent, parent)
	}
	return nil
}
