package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/community-help/portal-api/schema"
)

var (
	residentID = uuid.New()
	helperID   = uuid.New()
	strangerID = uuid.New()
)

func resident() *schema.User {
	return &schema.User{ID: residentID, Role: schema.ROLE_RESIDENT}
}

func helper() *schema.User {
	return &schema.User{ID: helperID, Role: schema.ROLE_HELPER}
}

func stranger() *schema.User {
	return &schema.User{ID: strangerID, Role: schema.ROLE_HELPER}
}

func pendingRequest() *schema.HelpRequest {
	return &schema.HelpRequest{ID: uuid.New(), ResidentID: residentID, Status: schema.HELP_PENDING}
}

func acceptedRequest() *schema.HelpRequest {
	h := helperID
	return &schema.HelpRequest{ID: uuid.New(), ResidentID: residentID, HelperID: &h, Status: schema.HELP_ACCEPTED}
}

func TestBlockedUserDeniedEverything(t *testing.T) {
	u := helper()
	u.IsBlocked = true
	for _, action := range []Action{ActionCreate, ActionAccept, ActionStart, ActionComplete, ActionUpdateStatus, ActionChat} {
		assert.Equal(t, ErrBlocked, Allowed(action, u, acceptedRequest()), string(action))
	}
}

func TestCreateIsResidentOnly(t *testing.T) {
	assert.NoError(t, Allowed(ActionCreate, resident(), nil))
	assert.Equal(t, ErrForbidden, Allowed(ActionCreate, helper(), nil))

	admin := &schema.User{ID: uuid.New(), Role: schema.ROLE_ADMIN}
	assert.Equal(t, ErrForbidden, Allowed(ActionCreate, admin, nil))
}

func TestAcceptRequiresHelperRoleAndPendingRequest(t *testing.T) {
	assert.NoError(t, Allowed(ActionAccept, helper(), pendingRequest()))
	assert.Equal(t, ErrForbidden, Allowed(ActionAccept, resident(), pendingRequest()))
	assert.Equal(t, ErrForbidden, Allowed(ActionAccept, helper(), acceptedRequest()))
}

func TestStartAndCompleteRequireBoundHelper(t *testing.T) {
	req := acceptedRequest()

	assert.NoError(t, Allowed(ActionStart, helper(), req))
	assert.NoError(t, Allowed(ActionComplete, helper(), req))

	// another helper, and the resident, are both outsiders here
	assert.Equal(t, ErrForbidden, Allowed(ActionStart, stranger(), req))
	assert.Equal(t, ErrForbidden, Allowed(ActionComplete, resident(), req))

	// no helper bound yet
	assert.Equal(t, ErrForbidden, Allowed(ActionStart, helper(), pendingRequest()))
}

func TestUpdateStatusRequiresParticipant(t *testing.T) {
	req := acceptedRequest()

	assert.NoError(t, Allowed(ActionUpdateStatus, resident(), req))
	assert.NoError(t, Allowed(ActionUpdateStatus, helper(), req))
	assert.Equal(t, ErrForbidden, Allowed(ActionUpdateStatus, stranger(), req))
}

func TestChatGate(t *testing.T) {
	// chat only exists once a helper is assigned
	assert.Equal(t, ErrChatNotAvailable, Chat(resident(), pendingRequest()))

	req := acceptedRequest()
	assert.NoError(t, Chat(resident(), req))
	assert.NoError(t, Chat(helper(), req))

	// a non-participant is forbidden, not merely "too early"
	assert.Equal(t, ErrForbidden, Chat(stranger(), req))

	blocked := resident()
	blocked.IsBlocked = true
	assert.Equal(t, ErrBlocked, Chat(blocked, req))
}

func TestChatViaAllowed(t *testing.T) {
	assert.NoError(t, Allowed(ActionChat, helper(), acceptedRequest()))
	assert.Equal(t, ErrChatNotAvailable, Allowed(ActionChat, resident(), pendingRequest()))
}
