package handlers_fiber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"school-activities-service/config"
	"school-activities-service/internal/api"
	"school-activities-service/internal/repository/memory"
	"school-activities-service/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestApp builds the full route stack over a freshly seeded memory backend.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{}
	repo := memory.New(context.Background(), zap.NewNop().Sugar(), cfg)
	require.NoError(t, repo.OnStart(context.Background()))

	uc := usecase.New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)
	app := fiber.New()
	NewHandler(zap.NewNop().Sugar(), uc).Register(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	return resp
}

func decodeDirectory(t *testing.T, resp *http.Response) map[string]api.ActivityView {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]api.ActivityView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRootRedirectsToStaticIndex(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/")
	defer resp.Body.Close()

	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	require.Equal(t, "/static/index.html", resp.Header.Get("Location"))
}

func TestGetActivitiesReturnsAll(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeDirectory(t, resp)
	require.Len(t, body, 9)
	require.Contains(t, body, "Chess Club")
	require.Contains(t, body, "Programming Class")

	chess := body["Chess Club"]
	require.Equal(t, "Learn strategies and compete in chess tournaments", chess.Description)
	require.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestSignupSuccess(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/activities/Chess%20Club/signup?email=test@mergington.edu")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Signed up test@mergington.edu for Chess Club", body.Message)

	listing := decodeDirectory(t, doRequest(t, app, http.MethodGet, "/activities"))
	require.Equal(t,
		[]string{"michael@mergington.edu", "daniel@mergington.edu", "test@mergington.edu"},
		listing["Chess Club"].Participants,
	)
}

func TestSignupUnknownActivity(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/activities/Nonexistent%20Activity/signup?email=test@mergington.edu")
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Activity not found", body.Detail)
}

func TestSignupDuplicate(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/activities/Chess%20Club/signup?email=test@mergington.edu")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/activities/Chess%20Club/signup?email=test@mergington.edu")
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Student already signed up for this activity", body.Detail)

	listing := decodeDirectory(t, doRequest(t, app, http.MethodGet, "/activities"))
	require.Len(t, listing["Chess Club"].Participants, 3)
}

func TestSignupMissingEmail(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/activities/Chess%20Club/signup")
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnregisterSuccess(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodDelete, "/activities/Chess%20Club/unregister?email=michael@mergington.edu")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Unregistered michael@mergington.edu from Chess Club", body.Message)

	listing := decodeDirectory(t, doRequest(t, app, http.MethodGet, "/activities"))
	require.Equal(t, []string{"daniel@mergington.edu"}, listing["Chess Club"].Participants)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodDelete, "/activities/Nonexistent%20Activity/unregister?email=test@mergington.edu")
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Activity not found", body.Detail)
}

func TestUnregisterNotSignedUp(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodDelete, "/activities/Chess%20Club/unregister?email=notregistered@mergington.edu")
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Student is not signed up for this activity", body.Detail)
}

func TestSignupUnregisterWorkflow(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/activities/Art%20Studio/signup?email=workflow@mergington.edu")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listing := decodeDirectory(t, doRequest(t, app, http.MethodGet, "/activities"))
	require.Contains(t, listing["Art Studio"].Participants, "workflow@mergington.edu")

	resp = doRequest(t, app, http.MethodDelete, "/activities/Art%20Studio/unregister?email=workflow@mergington.edu")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listing = decodeDirectory(t, doRequest(t, app, http.MethodGet, "/activities"))
	require.Equal(t, []string{"emily@mergington.edu"}, listing["Art Studio"].Participants)
}

func TestMultipleSignupsDifferentActivities(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/activities/Chess%20Club/signup?email=multitasker@mergington.edu")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/activities/Art%20Studio/signup?email=multitasker@mergington.edu")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listing := decodeDirectory(t, doRequest(t, app, http.MethodGet, "/activities"))
	require.Contains(t, listing["Chess Club"].Participants, "multitasker@mergington.edu")
	require.Contains(t, listing["Art Studio"].Participants, "multitasker@mergington.edu")
}
