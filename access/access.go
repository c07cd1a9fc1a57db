// Package access decides whether a user may perform an action on a help
// request. Decisions are pure functions of the user row and the request
// row as currently read; the store's conditional writes remain the final
// arbiter for racing mutations.
package access

import (
	"fmt"

	"github.com/community-help/portal-api/schema"
)

type Action string

const (
	ActionCreate       Action = "create"
	ActionAccept       Action = "accept"
	ActionStart        Action = "start"
	ActionComplete     Action = "complete"
	ActionUpdateStatus Action = "update-status"
	ActionChat         Action = "chat"
)

var (
	ErrForbidden        = fmt.Errorf("not authorized")
	ErrBlocked          = fmt.Errorf("this account has been blocked")
	ErrChatNotAvailable = fmt.Errorf("chat opens only after a helper accepts the request")
)

// Allowed reports whether user may perform action on request. A blocked
// user is denied everything before any role or binding logic runs. The
// request may be nil only for ActionCreate.
func Allowed(action Action, user *schema.User, request *schema.HelpRequest) error {
	if user.IsBlocked {
		return ErrBlocked
	}

	switch action {
	case ActionCreate:
		if user.Role != schema.ROLE_RESIDENT {
			return ErrForbidden
		}
		return nil

	case ActionAccept:
		if user.Role != schema.ROLE_HELPER {
			return ErrForbidden
		}
		if request.Status != schema.HELP_PENDING {
			return ErrForbidden
		}
		return nil

	case ActionStart, ActionComplete:
		if !request.IsBoundHelper(user.ID) {
			return ErrForbidden
		}
		return nil

	case ActionUpdateStatus:
		if !request.IsParticipant(user.ID) {
			return ErrForbidden
		}
		return nil

	case ActionChat:
		return Chat(user, request)
	}

	return ErrForbidden
}

// Chat gates the chat channel of a request: only the two bound
// participants are eligible, and only once a helper is assigned. A bound
// resident without a helper yet gets ErrChatNotAvailable, which is
// distinct from not being a participant at all.
func Chat(user *schema.User, request *schema.HelpRequest) error {
	if user.IsBlocked {
		return ErrBlocked
	}
	if !request.IsParticipant(user.ID) {
		return ErrForbidden
	}
	if !request.HelperAssigned() {
		return ErrChatNotAvailable
	}
	return nil
}
