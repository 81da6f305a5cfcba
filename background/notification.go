package background

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/bitmark-inc/relief-api/schema"
)

type NotificationCenter interface {
	NotifyRequester(requesterID string, headings, contents map[string]string, data map[string]interface{}) error
	NotifyRoles(roles []schema.Role, headings, contents map[string]string, data map[string]interface{}) error
}

// NotificationRequest is the payload posted to the notification webhook.
// Headings and contents are keyed by language code.
type NotificationRequest struct {
	Receivers []string               `json:"receivers,omitempty"`
	Roles     []schema.Role          `json:"roles,omitempty"`
	Headings  map[string]string      `json:"headings"`
	Contents  map[string]string      `json:"contents"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// WebhookNotificationCenter delivers notifications by posting them to a
// webhook which fans them out to the actual channels
type WebhookNotificationCenter struct {
	url    string
	client *http.Client
}

func NewWebhookNotificationCenter(url string, client *http.Client) *WebhookNotificationCenter {
	return &WebhookNotificationCenter{
		url:    url,
		client: client,
	}
}

func (w *WebhookNotificationCenter) NotifyRequester(requesterID string, headings, contents map[string]string, data map[string]interface{}) error {
	return w.send(context.Background(), &NotificationRequest{
		Receivers: []string{requesterID},
		Headings:  headings,
		Contents:  contents,
		Data:      data,
	})
}

func (w *WebhookNotificationCenter) NotifyRoles(roles []schema.Role, headings, contents map[string]string, data map[string]interface{}) error {
	return w.send(context.Background(), &NotificationRequest{
		Roles:    roles,
		Headings: headings,
		Contents: contents,
		Data:     data,
	})
}

func (w *WebhookNotificationCenter) send(ctx context.Context, req *NotificationRequest) error {
	if w.url == "" {
		log.WithField("data", req.Data).Warn("notification webhook is not configured, drop the notification")
		return nil
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	r.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := ioutil.ReadAll(resp.Body)
		return fmt.Errorf("notification webhook responded %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
