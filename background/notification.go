package background

import (
	"context"

	"github.com/community-help/portal-api/external/onesignal"
)

type NotificationCenter interface {
	NotifyUsersByTemplate(userIDs []string, templateID string, data map[string]interface{}) error
}

type OnesignalNotificationCenter struct {
	appID  string
	client *onesignal.OneSignalClient
}

func NewOnesignalNotificationCenter(appID string, client *onesignal.OneSignalClient) *OnesignalNotificationCenter {
	return &OnesignalNotificationCenter{
		appID:  appID,
		client: client,
	}
}

// NotifyUsersByTemplate pushes a templated notification to the devices
// tagged with the given user ids, batching 100 filters per call.
func (o *OnesignalNotificationCenter) NotifyUsersByTemplate(userIDs []string, templateID string, data map[string]interface{}) error {
	filters := []map[string]string{}
	for i, id := range userIDs {
		if i%100 == 0 {
			filters = append(filters, map[string]string{
				"field":    "tag",
				"key":      "user_id",
				"relation": "=",
				"value":    id,
			})
		} else {
			filters = append(filters,
				map[string]string{"operator": "OR"},
				map[string]string{
					"field":    "tag",
					"key":      "user_id",
					"relation": "=",
					"value":    id,
				})
		}
		if i%100 == 99 {
			req := &onesignal.NotificationRequest{
				AppID:          o.appID,
				TemplateID:     templateID,
				Filters:        filters,
				Data:           data,
				LocalChannelID: "important_alert",
			}
			if err := o.client.SendNotification(context.Background(), req); err != nil {
				return err
			}
			filters = []map[string]string{}
		}
	}

	if len(filters) == 0 {
		return nil
	}

	// send rest of notification
	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		TemplateID:     templateID,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return o.client.SendNotification(context.Background(), req)
}
