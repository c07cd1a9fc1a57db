package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/viper"
)

const apiEndpoint = "https://onesignal.com/api/v1/notifications"

// NotificationRequest is the payload of a OneSignal create-notification
// call.
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

// OneSignalClient is a client for sending push notifications via OneSignal
type OneSignalClient struct {
	httpClient *http.Client
	apiKey     string
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		httpClient: client,
		apiKey:     viper.GetString("onesignal.key"),
	}
}

// SendNotification submits one notification request and fails on any
// non-200 response.
func (c *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("onesignal responded with status %d", resp.StatusCode)
	}

	return nil
}
