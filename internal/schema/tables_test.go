package schema

import (
	"errors"
	"testing"

	"github.com/chatfilter/chatfilter/internal/filter"
)

// Representative expressions per built-in table, valid and invalid.
func TestBuiltinTables(t *testing.T) {
	tests := []struct {
		name    string
		table   filter.FieldTable
		input   string
		wantErr error
	}{
		{"membership role", Membership, `role = "ROLE_MEMBER"`, nil},
		{"membership folded role", Membership, `role = "role_manager"`, nil},
		{"membership member type", Membership, `member.type != "BOT"`, nil},
		{"membership strict contradiction", Membership, `role = "ROLE_MEMBER" AND role = "ROLE_MANAGER"`, filter.ErrContradiction},
		{"membership bad role", Membership, `role = "ROLE_OWNER"`, filter.ErrValue},
		{"membership no ordering ops", Membership, `role > "ROLE_MEMBER"`, filter.ErrOperator},

		{"space type", SpaceList, `space_type = "GROUP_CHAT"`, nil},
		{"space or", SpaceList, `space_type = "SPACE" OR space_type = "GROUP_CHAT"`, nil},
		{"space unknown field", SpaceList, `display_name = "x"`, filter.ErrField},
		{"space not equal rejected", SpaceList, `space_type != "SPACE"`, filter.ErrOperator},

		{"search full query", SpaceSearch, `customer = "customers/my_customer" AND space_type = "SPACE"`, nil},
		{"search display name has", SpaceSearch, `display_name:"Fun"`, nil},
		{"search bool", SpaceSearch, `external_user_allowed = true`, nil},
		{"search history state", SpaceSearch, `space_history_state = "HISTORY_ON"`, nil},
		{"search time range", SpaceSearch, `create_time >= "2024-01-01T00:00:00Z" AND last_active_time < "2024-06-01T00:00:00Z"`, nil},
		{"search customer mixed or", SpaceSearch, `customer = "customers/my_customer" OR display_name = "x"`, filter.ErrCrossFieldOr},
		{"search space type mixed or", SpaceSearch, `space_type = "SPACE" OR display_name = "x"`, filter.ErrCrossFieldOr},
		{"search camel case spelling", SpaceSearch, `spaceType = "SPACE" AND externalUserAllowed = false`, nil},

		{"message thread", Message, `thread.name = "spaces/s/threads/t"`, nil},
		{"message time", Message, `create_time > "2024-01-01T00:00:00Z"`, nil},
		{"message bad time", Message, `create_time > "today"`, filter.ErrValue},

		{"reaction user", Reaction, `user.name = "users/alice"`, nil},
		{"reaction emoji or", Reaction, `emoji.unicode = "😀" OR emoji.unicode = "😎"`, nil},
		{"reaction custom emoji", Reaction, `emoji.custom_emoji.uid = "uid-1"`, nil},
		{"reaction has rejected", Reaction, `user.name:"alice"`, filter.ErrField},

		{"event type", SpaceEvent, `event_types:"google.workspace.chat.message.v1.created"`, nil},
		{"event singular spelling", SpaceEvent, `event_type:"google.workspace.chat.message.v1.created"`, nil},
		{"event window", SpaceEvent, `event_types:"google.workspace.chat.space.v1.updated" AND start_time = "2024-01-01T00:00:00Z"`, nil},
		{"event unknown type", SpaceEvent, `event_types:"google.workspace.chat.space.v9.imploded"`, filter.ErrValue},
		{"event equality rejected", SpaceEvent, `event_types = "google.workspace.chat.space.v1.updated"`, filter.ErrOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := filter.Parse(tt.input, tt.table)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Parse(%q) error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want kind %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestNamesMatchTables(t *testing.T) {
	names := Names()
	if len(names) != len(Tables) {
		t.Fatalf("Names() has %d entries, Tables has %d", len(names), len(Tables))
	}
	for _, name := range names {
		if _, ok := Tables[name]; !ok {
			t.Errorf("Names() lists %q which is not in Tables", name)
		}
	}
}
