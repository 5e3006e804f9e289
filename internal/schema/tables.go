// Package schema declares the per-resource field tables the filter
// engine is parameterized by. Each table enumerates the filterable
// fields of one listing dialect: the record path, value domain,
// allowed operators and flags. Resource quirks (OR restricted to a
// single field, case-folded enums, contradiction checking) live here
// as data, not in the parser.
package schema

import "github.com/chatfilter/chatfilter/internal/filter"

var (
	eqOnly   = []filter.Operator{filter.OpEqual}
	eqNotEq  = []filter.Operator{filter.OpEqual, filter.OpNotEqual}
	eqHas    = []filter.Operator{filter.OpEqual, filter.OpHas}
	hasOnly  = []filter.Operator{filter.OpHas}
	ordering = []filter.Operator{
		filter.OpEqual, filter.OpGreater, filter.OpLess,
		filter.OpGreaterEqual, filter.OpLessEqual,
	}
)

var spaceTypes = []string{"SPACE", "GROUP_CHAT", "DIRECT_MESSAGE"}

// SpaceEventTypes are the event names accepted by the space-event
// filter's event_types condition.
var SpaceEventTypes = []string{
	"google.workspace.chat.message.v1.created",
	"google.workspace.chat.message.v1.updated",
	"google.workspace.chat.message.v1.deleted",
	"google.workspace.chat.message.v1.batchCreated",
	"google.workspace.chat.message.v1.batchUpdated",
	"google.workspace.chat.message.v1.batchDeleted",
	"google.workspace.chat.space.v1.updated",
	"google.workspace.chat.space.v1.batchUpdated",
	"google.workspace.chat.membership.v1.created",
	"google.workspace.chat.membership.v1.updated",
	"google.workspace.chat.membership.v1.deleted",
	"google.workspace.chat.membership.v1.batchCreated",
	"google.workspace.chat.membership.v1.batchUpdated",
	"google.workspace.chat.membership.v1.batchDeleted",
	"google.workspace.chat.reaction.v1.created",
	"google.workspace.chat.reaction.v1.deleted",
	"google.workspace.chat.reaction.v1.batchCreated",
	"google.workspace.chat.reaction.v1.batchDeleted",
}

// Membership is the strict dialect of membership listing. Role and
// member type values are upper-cased before validation so
// 'role = "role_member"' still resolves.
var Membership = filter.FieldTable{
	Strict: true,
	Fields: map[string]filter.FieldSpec{
		"role": {
			Path:      "role",
			Kind:      filter.KindEnum,
			Operators: eqNotEq,
			Enum:      []string{"MEMBERSHIP_ROLE_UNSPECIFIED", "ROLE_MEMBER", "ROLE_MANAGER"},
			FoldEnum:  true,
		},
		"member.type": {
			Path:      "member.type",
			Kind:      filter.KindEnum,
			Operators: eqNotEq,
			Enum:      []string{"TYPE_UNSPECIFIED", "HUMAN", "BOT"},
			FoldEnum:  true,
		},
	},
}

// SpaceList is the space listing dialect: space type only, OR only
// (the AND restriction is enforced at the call site).
var SpaceList = filter.FieldTable{
	Fields: map[string]filter.FieldSpec{
		"space_type": {
			Path:      "spaceType",
			Kind:      filter.KindEnum,
			Operators: eqOnly,
			Enum:      spaceTypes,
			FoldEnum:  true,
		},
	},
}

// SpaceSearch is the admin search-query dialect: HAS and ordering
// operators, with customer and space_type barred from mixed OR groups.
var SpaceSearch = filter.FieldTable{
	Fields: map[string]filter.FieldSpec{
		"customer": {
			Path:      "customer",
			Kind:      filter.KindText,
			Operators: eqOnly,
			NoOr:      true,
		},
		"space_type": {
			Path:      "spaceType",
			Kind:      filter.KindEnum,
			Operators: eqOnly,
			Enum:      spaceTypes,
			FoldEnum:  true,
			NoOr:      true,
		},
		"display_name": {
			Path:      "displayName",
			Kind:      filter.KindText,
			Operators: eqHas,
		},
		"external_user_allowed": {
			Path:      "externalUserAllowed",
			Kind:      filter.KindBool,
			Operators: eqOnly,
		},
		"space_history_state": {
			Path:      "spaceHistoryState",
			Kind:      filter.KindEnum,
			Operators: eqOnly,
			Enum:      []string{"HISTORY_STATE_UNSPECIFIED", "HISTORY_OFF", "HISTORY_ON"},
			FoldEnum:  true,
		},
		"create_time": {
			Path:      "createTime",
			Kind:      filter.KindTime,
			Operators: ordering,
		},
		"last_active_time": {
			Path:      "lastActiveTime",
			Kind:      filter.KindTime,
			Operators: ordering,
		},
	},
}

// Message is the message listing dialect.
var Message = filter.FieldTable{
	Fields: map[string]filter.FieldSpec{
		"thread.name": {
			Path:      "thread.name",
			Kind:      filter.KindText,
			Operators: eqOnly,
		},
		"create_time": {
			Path:      "createTime",
			Kind:      filter.KindTime,
			Operators: ordering,
		},
	},
}

// Reaction is the reaction listing dialect: exact match only, OR
// within a field and AND across fields.
var Reaction = filter.FieldTable{
	Fields: map[string]filter.FieldSpec{
		"user.name": {
			Path:      "user.name",
			Kind:      filter.KindText,
			Operators: eqOnly,
		},
		"emoji.unicode": {
			Path:      "emoji.unicode",
			Kind:      filter.KindText,
			Operators: eqOnly,
		},
		"emoji.custom_emoji.uid": {
			Path:      "emoji.customEmoji.uid",
			Kind:      filter.KindText,
			Operators: eqOnly,
		},
	},
}

// SpaceEvent is the space-event listing dialect: event types via the
// ':' search syntax plus an optional time window. The singular
// "event_type" spelling is accepted as an alias.
var SpaceEvent = filter.FieldTable{
	Fields: map[string]filter.FieldSpec{
		"event_types": {
			Path:      "eventType",
			Kind:      filter.KindEnum,
			Operators: hasOnly,
			Enum:      SpaceEventTypes,
		},
		"event_type": {
			Path:      "eventType",
			Kind:      filter.KindEnum,
			Operators: hasOnly,
			Enum:      SpaceEventTypes,
		},
		"start_time": {
			Path:      "eventTime",
			Kind:      filter.KindTime,
			Operators: eqOnly,
		},
		"end_time": {
			Path:      "eventTime",
			Kind:      filter.KindTime,
			Operators: eqOnly,
		},
	},
}

// Tables maps resource names to their built-in field tables.
var Tables = map[string]filter.FieldTable{
	"membership":  Membership,
	"space":       SpaceList,
	"spacesearch": SpaceSearch,
	"message":     Message,
	"reaction":    Reaction,
	"spaceevent":  SpaceEvent,
}

// Names returns the built-in table names in stable order.
func Names() []string {
	return []string{"membership", "space", "spacesearch", "message", "reaction", "spaceevent"}
}
