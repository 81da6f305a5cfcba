package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/background/mocks"
	"github.com/bitmark-inc/relief-api/lifecycle"
	lifecycleMocks "github.com/bitmark-inc/relief-api/lifecycle/mocks"
	"github.com/bitmark-inc/relief-api/schema"
)

func init() {
	gin.SetMode(gin.TestMode)
	viper.Set("server.apikey.metric", "metric-secret")
}

func actorHeaders(id string, role schema.Role) map[string]string {
	return map[string]string{
		"Actor-Id":   id,
		"Actor-Role": string(role),
	}
}

func performRequest(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	return resp
}

func newTestHelp(id, requesterID string, status schema.HelpStatus) *schema.HelpRequest {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &schema.HelpRequest{
		ID:            id,
		RequesterID:   requesterID,
		Type:          "Food",
		Description:   "no food since yesterday",
		Location:      "Shelter 7",
		Urgency:       4,
		Status:        status,
		SchemaVersion: schema.HelpSchemaVersion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newMockedServer(t *testing.T) (*gomock.Controller, *lifecycleMocks.MockLifecycle, *mocks.MockDispatcher, http.Handler) {
	ctl := gomock.NewController(t)
	helps := lifecycleMocks.NewMockLifecycle(ctl)
	dispatcher := mocks.NewMockDispatcher(ctl)

	s := NewServer(helps, dispatcher)
	return ctl, helps, dispatcher, s.setupRouter()
}

func TestCreateHelp(t *testing.T) {
	ctl, helps, dispatcher, router := newMockedServer(t)
	defer ctl.Finish()

	help := newTestHelp("h1", "alice", schema.HelpPending)
	helps.EXPECT().Create("alice", "Food", "no food since yesterday", "Shelter 7", 4).Return(help, nil)
	dispatcher.EXPECT().HelpCreated(help)

	w := performRequest(router, "POST", "/api/helps", map[string]interface{}{
		"type":        "Food",
		"description": "no food since yesterday",
		"location":    "Shelter 7",
		"urgency":     4,
	}, actorHeaders("alice", schema.RoleRequester))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "h1", resp["id"])
	assert.Equal(t, "alice", resp["requesterId"])
	assert.Equal(t, "Pending", resp["status"])
	assert.Equal(t, float64(1), resp["schemaVersion"])
	assert.NotContains(t, resp, "seq")
}

func TestCreateHelpOnBehalfOfOthers(t *testing.T) {
	ctl, helps, dispatcher, router := newMockedServer(t)
	defer ctl.Finish()

	body := map[string]interface{}{
		"requesterId": "bob",
		"description": "trapped on the roof",
		"location":    "Hill Rd 3",
		"urgency":     5,
	}

	w := performRequest(router, "POST", "/api/helps", body, actorHeaders("alice", schema.RoleRequester))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1005), decodeError(t, w).Code)

	help := newTestHelp("h2", "bob", schema.HelpPending)
	helps.EXPECT().Create("bob", "", "trapped on the roof", "Hill Rd 3", 5).Return(help, nil)
	dispatcher.EXPECT().HelpCreated(help)

	w = performRequest(router, "POST", "/api/helps", body, actorHeaders("carol", schema.RoleVolunteer))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateHelpValidation(t *testing.T) {
	ctl, helps, _, router := newMockedServer(t)
	defer ctl.Finish()

	helps.EXPECT().Create("alice", "Food", "", "Shelter 7", 4).
		Return(nil, fmt.Errorf("%w: description is required", lifecycle.ErrValidation))

	w := performRequest(router, "POST", "/api/helps", map[string]interface{}{
		"type":     "Food",
		"location": "Shelter 7",
		"urgency":  4,
	}, actorHeaders("alice", schema.RoleRequester))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, int64(1203), resp.Code)
	assert.Equal(t, "invalid help request: description is required", resp.Message)
}

func TestCreateHelpMalformedBody(t *testing.T) {
	ctl, _, _, router := newMockedServer(t)
	defer ctl.Finish()

	w := performRequest(router, "POST", "/api/helps", map[string]interface{}{
		"urgency": "very",
	}, actorHeaders("alice", schema.RoleRequester))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1011), decodeError(t, w).Code)
}

func TestActorHeaders(t *testing.T) {
	ctl, _, _, router := newMockedServer(t)
	defer ctl.Finish()

	w := performRequest(router, "GET", "/api/helps", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1004), decodeError(t, w).Code)

	w = performRequest(router, "GET", "/api/helps", nil, map[string]string{
		"Actor-Id":   "alice",
		"Actor-Role": "mayor",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1004), decodeError(t, w).Code)

	w = performRequest(router, "GET", "/api/information", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListHelpsForRequester(t *testing.T) {
	ctl, helps, _, router := newMockedServer(t)
	defer ctl.Finish()

	own := []schema.HelpRequest{
		*newTestHelp("h2", "alice", schema.HelpCancelled),
		*newTestHelp("h1", "alice", schema.HelpPending),
	}
	helps.EXPECT().ListForRequester("alice").Return(own, nil)
	helps.EXPECT().ListAll(lifecycle.Filter{
		RequesterID: "alice",
		Statuses:    []schema.HelpStatus{schema.HelpPending},
	}).Return(own[1:], nil)

	w := performRequest(router, "GET", "/api/helps", nil, actorHeaders("alice", schema.RoleRequester))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []schema.HelpRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "h2", resp[0].ID)

	w = performRequest(router, "GET", "/api/helps?status=Pending", nil, actorHeaders("alice", schema.RoleRequester))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "h1", resp[0].ID)

	w = performRequest(router, "GET", "/api/helps?requesterId=bob", nil, actorHeaders("alice", schema.RoleRequester))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1005), decodeError(t, w).Code)
}

func TestListHelpsWithFilter(t *testing.T) {
	ctl, helps, _, router := newMockedServer(t)
	defer ctl.Finish()

	helps.EXPECT().ListAll(lifecycle.Filter{
		Statuses: []schema.HelpStatus{schema.HelpInProgress, schema.HelpPending},
		Types:    []string{"Food"},
	}).Return([]schema.HelpRequest{}, nil)

	w := performRequest(router, "GET", "/api/helps?status=In%20Progress&status=pending&type=Food", nil,
		actorHeaders("red-cross", schema.RoleReliefProvider))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	helps.EXPECT().ListForRequester("bob").Return([]schema.HelpRequest{}, nil)
	w = performRequest(router, "GET", "/api/helps?requesterId=bob", nil, actorHeaders("fema", schema.RoleGovernmentAgency))
	assert.Equal(t, http.StatusOK, w.Code)

	helps.EXPECT().ListAll(lifecycle.Filter{
		RequesterID: "bob",
		Types:       []string{"Shelter"},
	}).Return([]schema.HelpRequest{}, nil)
	w = performRequest(router, "GET", "/api/helps?requesterId=bob&type=Shelter", nil, actorHeaders("fema", schema.RoleGovernmentAgency))
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "GET", "/api/helps?status=Expired", nil, actorHeaders("root", schema.RoleAdmin))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)
}

func TestGetHelp(t *testing.T) {
	ctl, helps, _, router := newMockedServer(t)
	defer ctl.Finish()

	helps.EXPECT().Get("h1").Return(newTestHelp("h1", "alice", schema.HelpPending), nil).Times(3)
	helps.EXPECT().Get("missing").Return(nil, fmt.Errorf("%w: missing", lifecycle.ErrNotFound))

	w := performRequest(router, "GET", "/api/helps/h1", nil, actorHeaders("alice", schema.RoleRequester))
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "GET", "/api/helps/h1", nil, actorHeaders("bob", schema.RoleVolunteer))
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "GET", "/api/helps/h1", nil, actorHeaders("mallory", schema.RoleRequester))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1200), decodeError(t, w).Code)

	w = performRequest(router, "GET", "/api/helps/missing", nil, actorHeaders("root", schema.RoleAdmin))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1200), decodeError(t, w).Code)
}

func TestTransitionHelp(t *testing.T) {
	ctl, helps, dispatcher, router := newMockedServer(t)
	defer ctl.Finish()

	provider := lifecycle.Actor{ID: "red-cross", Role: schema.RoleReliefProvider}
	updated := newTestHelp("h1", "alice", schema.HelpInProgress)

	helps.EXPECT().Transition("h1", schema.HelpInProgress, provider).Return(updated, nil)
	dispatcher.EXPECT().HelpTransitioned(updated)

	w := performRequest(router, "PUT", "/api/helps/transition", map[string]string{
		"id":           "h1",
		"targetStatus": "In Progress",
	}, actorHeaders("red-cross", "Relief Provider"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp schema.HelpRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, schema.HelpInProgress, resp.Status)
}

func TestTransitionHelpErrors(t *testing.T) {
	ctl, helps, _, router := newMockedServer(t)
	defer ctl.Finish()

	admin := lifecycle.Actor{ID: "root", Role: schema.RoleAdmin}

	cases := []struct {
		target string
		err    error
		status int
		code   int64
	}{
		{"Resolved", fmt.Errorf("%w: h1", lifecycle.ErrNotFound), http.StatusNotFound, 1200},
		{"Resolved", fmt.Errorf("%w: admin may not move a request from Pending to Resolved", lifecycle.ErrInvalidTransition), http.StatusConflict, 1201},
		{"Expired", fmt.Errorf("%w: admin may not move a request from Pending to Expired", lifecycle.ErrInvalidTransition), http.StatusConflict, 1201},
		{"Cancelled", fmt.Errorf("%w: request h1 is now Resolved", lifecycle.ErrConcurrentConflict), http.StatusConflict, 1202},
		{"Cancelled", fmt.Errorf("connection reset"), http.StatusInternalServerError, 999},
	}

	for _, c := range cases {
		helps.EXPECT().Transition("h1", schema.HelpStatus(c.target), admin).Return(nil, c.err)

		w := performRequest(router, "PUT", "/api/helps/transition", map[string]string{
			"id":           "h1",
			"targetStatus": c.target,
		}, actorHeaders("root", schema.RoleAdmin))

		assert.Equal(t, c.status, w.Code, c.err.Error())
		assert.Equal(t, c.code, decodeError(t, w).Code, c.err.Error())
	}

	w := performRequest(router, "PUT", "/api/helps/transition", map[string]string{
		"id": "h1",
	}, actorHeaders("root", schema.RoleAdmin))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1011), decodeError(t, w).Code)
}

func TestHelpHistory(t *testing.T) {
	ctl, helps, _, router := newMockedServer(t)
	defer ctl.Finish()

	helps.EXPECT().Get("h1").Return(newTestHelp("h1", "alice", schema.HelpCancelled), nil).Times(2)
	helps.EXPECT().History("h1").Return([]schema.HelpTransition{
		{ID: "t1", HelpID: "h1", From: schema.HelpPending, To: schema.HelpCancelled, ActorID: "alice", ActorRole: schema.RoleRequester},
	}, nil)

	w := performRequest(router, "GET", "/api/helps/h1/history", nil, actorHeaders("alice", schema.RoleRequester))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []schema.HelpTransition
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, schema.HelpCancelled, resp[0].To)

	w = performRequest(router, "GET", "/api/helps/h1/history", nil, actorHeaders("bob", schema.RoleRequester))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
