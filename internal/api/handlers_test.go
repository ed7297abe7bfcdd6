// internal/api/handlers_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/registry"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestMux(t *testing.T) (*http.ServeMux, *registry.Registry) {
	reg, err := registry.NewDefault()
	require.NoError(t, err)

	h := NewHandler(reg, logger.NewTestLogger(t))
	mux := http.NewServeMux()
	RegisterRoutes(mux, h)
	return mux, reg
}

func doRequest(mux *http.ServeMux, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func signupPath(activity, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
}

func removePath(activity, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/remove-participant?email=" + url.QueryEscape(email)
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Detail
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	var body MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Message
}

// ==========================
// GET /activities Tests
// ==========================

func TestGetActivities(t *testing.T) {
	mux, _ := createTestMux(t)

	rr := doRequest(mux, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var activities map[string]registry.Activity
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &activities))

	require.Len(t, activities, 6)
	assert.Contains(t, activities, "Chess Club")
	assert.Contains(t, activities, "Programming Class")
	assert.Contains(t, activities, "Gym Class")

	for name, act := range activities {
		assert.NotEmpty(t, act.Description, "description missing for %s", name)
		assert.NotEmpty(t, act.Schedule, "schedule missing for %s", name)
		assert.Positive(t, act.MaxParticipants, "capacity missing for %s", name)
		assert.NotNil(t, act.Participants, "participants not a list for %s", name)
	}
}

func TestGetActivities_EmptyRostersSerializeAsArrays(t *testing.T) {
	mux, _ := createTestMux(t)

	rr := doRequest(mux, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["Basketball"]["participants"]))
}

// ==========================
// Signup Endpoint Tests
// ==========================

func TestSignup(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantCode    int
		wantMessage string
		wantDetail  string
	}{
		{
			name:        "success",
			path:        signupPath("Basketball", "test@mergington.edu"),
			wantCode:    http.StatusOK,
			wantMessage: "Signed up test@mergington.edu for Basketball",
		},
		{
			name:       "activity not found",
			path:       signupPath("Nonexistent", "test@mergington.edu"),
			wantCode:   http.StatusNotFound,
			wantDetail: "Activity not found",
		},
		{
			name:       "existing participant conflicts",
			path:       signupPath("Chess Club", "michael@mergington.edu"),
			wantCode:   http.StatusBadRequest,
			wantDetail: "Student is already signed up",
		},
		{
			name:       "missing email",
			path:       "/activities/Basketball/signup",
			wantCode:   http.StatusBadRequest,
			wantDetail: "Request validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := createTestMux(t)

			rr := doRequest(mux, http.MethodPost, tt.path)
			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
			}
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, rr))
			}
		})
	}
}

func TestSignup_DuplicateRegistration(t *testing.T) {
	mux, reg := createTestMux(t)
	email := "duplicate@mergington.edu"

	rr := doRequest(mux, http.MethodPost, signupPath("Basketball", email))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(mux, http.MethodPost, signupPath("Basketball", email))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeDetail(t, rr), "already signed up")

	// Still exactly one roster entry after the rejected duplicate.
	count := 0
	for _, p := range reg.Snapshot()["Basketball"].Participants {
		if p == email {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSignup_MalformedEmailIsAccepted(t *testing.T) {
	// Participants are opaque identifiers: an odd-looking email is
	// warned about but not rejected.
	mux, reg := createTestMux(t)

	rr := doRequest(mux, http.MethodPost, signupPath("Painting", "not-an-email"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, reg.Snapshot()["Painting"].Participants, "not-an-email")
}

// ==========================
// Remove Participant Tests
// ==========================

func TestRemoveParticipant(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantCode    int
		wantMessage string
		wantDetail  string
	}{
		{
			name:        "success",
			path:        removePath("Chess Club", "michael@mergington.edu"),
			wantCode:    http.StatusOK,
			wantMessage: "Removed michael@mergington.edu from Chess Club",
		},
		{
			name:       "activity not found",
			path:       removePath("Nonexistent", "test@mergington.edu"),
			wantCode:   http.StatusNotFound,
			wantDetail: "Activity not found",
		},
		{
			name:       "participant not enrolled",
			path:       removePath("Basketball", "notregistered@mergington.edu"),
			wantCode:   http.StatusNotFound,
			wantDetail: "Participant not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := createTestMux(t)

			rr := doRequest(mux, http.MethodPost, tt.path)
			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
			}
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, rr))
			}
		})
	}
}

func TestRemoveParticipant_AllowsResignup(t *testing.T) {
	mux, _ := createTestMux(t)
	email := "test@mergington.edu"

	rr := doRequest(mux, http.MethodPost, signupPath("Basketball", email))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(mux, http.MethodPost, removePath("Basketball", email))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(mux, http.MethodPost, signupPath("Basketball", email))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRemoveParticipant_StateActuallyChanges(t *testing.T) {
	mux, reg := createTestMux(t)
	email := "michael@mergington.edu"

	require.Contains(t, reg.Snapshot()["Chess Club"].Participants, email)

	rr := doRequest(mux, http.MethodPost, removePath("Chess Club", email))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, reg.Snapshot()["Chess Club"].Participants, email)
}

// ==========================
// Probe Tests
// ==========================

func TestHealthAndReady(t *testing.T) {
	mux, _ := createTestMux(t)

	for _, path := range []string{"/health", "/ready"} {
		rr := doRequest(mux, http.MethodGet, path)
		require.Equal(t, http.StatusOK, rr.Code, path)

		var body StatusResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Status)
		assert.NotEmpty(t, body.Time)
	}
}
