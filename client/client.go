package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/bitmark-inc/relief-api/lifecycle"
	"github.com/bitmark-inc/relief-api/schema"
)

// APIError is an error response of the relief api
type APIError struct {
	StatusCode int    `json:"-"`
	Code       int64  `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d (code %d): %s", e.StatusCode, e.Code, e.Message)
}

// Client calls the help request api on behalf of an actor
type Client struct {
	url        string
	actor      lifecycle.Actor
	httpClient *http.Client
}

func New(serverURL string, actor lifecycle.Actor) *Client {
	return &Client{
		url:   serverURL,
		actor: actor,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Actor is the identity requests are made on behalf of
func (c *Client) Actor() lifecycle.Actor {
	return c.actor
}

// NewHelp is the payload of a new help request
type NewHelp struct {
	RequesterID string `json:"requesterId,omitempty"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Urgency     int    `json:"urgency"`
}

// ListOptions narrows ListHelps
type ListOptions struct {
	RequesterID string
	Statuses    []string
	Types       []string
}

func (c *Client) CreateHelp(help NewHelp) (*schema.HelpRequest, error) {
	var result schema.HelpRequest
	if err := c.do(http.MethodPost, "/api/helps", nil, help, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListHelps(opts ListOptions) ([]schema.HelpRequest, error) {
	query := url.Values{}
	if opts.RequesterID != "" {
		query.Set("requesterId", opts.RequesterID)
	}
	for _, s := range opts.Statuses {
		query.Add("status", s)
	}
	for _, t := range opts.Types {
		query.Add("type", t)
	}

	result := make([]schema.HelpRequest, 0)
	if err := c.do(http.MethodGet, "/api/helps", query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetHelp(helpID string) (*schema.HelpRequest, error) {
	var result schema.HelpRequest
	if err := c.do(http.MethodGet, "/api/helps/"+url.PathEscape(helpID), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Transition(helpID, targetStatus string) (*schema.HelpRequest, error) {
	body := map[string]string{
		"id":           helpID,
		"targetStatus": targetStatus,
	}

	var result schema.HelpRequest
	if err := c.do(http.MethodPut, "/api/helps/transition", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) History(helpID string) ([]schema.HelpTransition, error) {
	result := make([]schema.HelpTransition, 0)
	if err := c.do(http.MethodGet, "/api/helps/"+url.PathEscape(helpID)+"/history", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Severity() (*lifecycle.Summary, error) {
	var result lifecycle.Summary
	if err := c.do(http.MethodGet, "/api/reports/severity", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(method, path string, query url.Values, body, result interface{}) error {
	u := c.url + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(b)
	}

	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Actor-Id", c.actor.ID)
	req.Header.Set("Actor-Role", string(c.actor.Role))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(d, apiErr); err != nil {
			apiErr.Message = string(d)
		}
		return apiErr
	}

	return json.Unmarshal(d, result)
}
