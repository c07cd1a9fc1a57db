package background

import (
	"github.com/community-help/portal-api/schema"
)

const (
	TaskBroadcastNewHelp   = "broadcast_new_help"
	TaskNotifyHelpAccepted = "notify_help_accepted"
)

const (
	templateBroadcastNewHelp   = "c4f8a6a1-51dd-4a5f-9f63-6a3f7d0b2a51"
	templateNotifyHelpAccepted = "8f2b2e44-9c27-4f4d-a1d2-5f4f4a9f0de2"
)

// BroadcastNewHelp notifies every registered helper that a new help
// request is open for claiming.
func (m *BackgroundManager) BroadcastNewHelp(helpID string) error {
	members, err := m.store.ListMembers()
	if err != nil {
		return err
	}

	helperIDs := []string{}
	for _, u := range members {
		if u.Role == schema.ROLE_HELPER && !u.IsBlocked {
			helperIDs = append(helperIDs, u.ID.String())
		}
	}
	if len(helperIDs) == 0 {
		return nil
	}

	return m.notifier.NotifyUsersByTemplate(helperIDs, templateBroadcastNewHelp, map[string]interface{}{
		"notification_type": "BROADCAST_NEW_HELP",
		"help_id":           helpID,
	})
}

// NotifyHelpAccepted tells the resident that a helper has claimed their
// request.
func (m *BackgroundManager) NotifyHelpAccepted(helpID, residentID string) error {
	return m.notifier.NotifyUsersByTemplate([]string{residentID}, templateNotifyHelpAccepted, map[string]interface{}{
		"notification_type": "NOTIFY_HELP_ACCEPTED",
		"help_id":           helpID,
	})
}
