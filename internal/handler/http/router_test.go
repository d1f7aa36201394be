package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartattend/attendance-backend-go/internal/pkg/jwt"
	"github.com/smartattend/attendance-backend-go/internal/pkg/kv"
	attendanceService "github.com/smartattend/attendance-backend-go/internal/service/attendance"
	authService "github.com/smartattend/attendance-backend-go/internal/service/auth"
	broadcastService "github.com/smartattend/attendance-backend-go/internal/service/broadcast"
	holidayService "github.com/smartattend/attendance-backend-go/internal/service/holiday"
	leaveService "github.com/smartattend/attendance-backend-go/internal/service/leave"
	reportService "github.com/smartattend/attendance-backend-go/internal/service/report"
	userService "github.com/smartattend/attendance-backend-go/internal/service/user"
	"github.com/smartattend/attendance-backend-go/internal/state"
)

// newTestServer stands up the full router over an in-memory mirror with
// the seed dataset. The attendance clock is frozen at a working Wednesday
// morning.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := state.Load(context.Background(), kv.NewMemory(), state.Seed(time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)))
	jwtService := jwt.NewJWTService("test-secret", "1h")
	clock := func() time.Time { return time.Date(2026, 1, 7, 9, 45, 0, 0, time.UTC) }

	router := NewRouter(jwtService, Handlers{
		Auth:       NewAuthHandler(authService.NewAuthService(store, jwtService)),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(store, time.Sunday, clock)),
		Leave:      NewLeaveHandler(leaveService.NewLeaveService(store, clock)),
		Holiday:    NewHolidayHandler(holidayService.NewHolidayService(store)),
		Broadcast:  NewBroadcastHandler(broadcastService.NewBroadcastService(store, clock)),
		User:       NewUserHandler(userService.NewUserService(store)),
		Report:     NewReportHandler(reportService.NewReportService(store)),
	}, "test")

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.NotEmpty(t, payload.Data.AccessToken)
	return payload.Data.AccessToken
}

func do(t *testing.T, srv *httptest.Server, method, path, token string, body []byte) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"username": "kavin", "password": "nope"})
	resp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCheckInRequiresAuthentication(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/v1/attendance/check-in", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCheckInFlow(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "kavin", "1234")

	resp := do(t, srv, http.MethodPost, "/api/v1/attendance/check-in", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Second attempt conflicts.
	resp2 := do(t, srv, http.MethodPost, "/api/v1/attendance/check-in", token, nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusConflict, resp2.StatusCode)

	resp3 := do(t, srv, http.MethodPost, "/api/v1/attendance/check-out", token, nil)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusOK, resp3.StatusCode)
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "kavin", "1234")

	resp := do(t, srv, http.MethodGet, "/api/v1/users", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp2 := do(t, srv, http.MethodGet, "/api/v1/reports/attendance", token, nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
}

func TestAdminCanManageDirectoryAndReports(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "admin", "1234")

	resp := do(t, srv, http.MethodGet, "/api/v1/users", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2 := do(t, srv, http.MethodGet, "/api/v1/reports/attendance?search=kavin", token, nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestLeaveDecisionFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	userToken := login(t, srv, "kavin", "1234")
	adminToken := login(t, srv, "admin", "1234")

	body, _ := json.Marshal(map[string]string{
		"type":       "CASUAL",
		"start_date": "2026-01-12",
		"end_date":   "2026-01-13",
		"reason":     "personal work",
	})
	resp := do(t, srv, http.MethodPost, "/api/v1/leaves", userToken, body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	// A regular user cannot decide requests.
	decision, _ := json.Marshal(map[string]string{"status": "APPROVED"})
	resp2 := do(t, srv, http.MethodPut, "/api/v1/leaves/"+created.Data.ID+"/decision", userToken, decision)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)

	resp3 := do(t, srv, http.MethodPut, "/api/v1/leaves/"+created.Data.ID+"/decision", adminToken, decision)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusOK, resp3.StatusCode)
}

func TestOwnProfileShowsBalanceAfterApproval(t *testing.T) {
	srv := newTestServer(t)
	userToken := login(t, srv, "kavin", "1234")
	adminToken := login(t, srv, "admin", "1234")

	body, _ := json.Marshal(map[string]string{
		"type":       "CASUAL",
		"start_date": "2026-01-12",
		"end_date":   "2026-01-14",
		"reason":     "travel",
	})
	resp := do(t, srv, http.MethodPost, "/api/v1/leaves", userToken, body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	decision, _ := json.Marshal(map[string]string{"status": "APPROVED"})
	resp2 := do(t, srv, http.MethodPut, "/api/v1/leaves/"+created.Data.ID+"/decision", adminToken, decision)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	resp3 := do(t, srv, http.MethodGet, "/api/v1/users/me", userToken, nil)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusOK, resp3.StatusCode)

	var me struct {
		Data struct {
			Username     string `json:"username"`
			LeaveBalance struct {
				Casual int `json:"casual"`
				Sick   int `json:"sick"`
			} `json:"leave_balance"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp3.Body).Decode(&me))
	assert.Equal(t, "kavin", me.Data.Username)
	assert.Equal(t, 2, me.Data.LeaveBalance.Casual)
	assert.Equal(t, 4, me.Data.LeaveBalance.Sick)
}

func TestMetricsEndpointExposed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
