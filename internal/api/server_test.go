package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/vacuumsim/internal/controller"
	"github.com/banshee-data/vacuumsim/internal/testutil"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	seed := int64(7)
	mode := "zigzag"
	steps := 5000
	cfg := controller.EmptyConfig()
	cfg.RandomSeed = &seed
	cfg.CleaningMode = &mode
	cfg.MaxSteps = &steps

	container, err := NewContainer(cfg)
	require.NoError(t, err)
	return NewServer(container, nil)
}

func TestHandleStatusReturnsRobotStatus(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	req := testutil.NewTestRequest(http.MethodGet, "/status")
	w := testutil.NewTestRecorder()
	s.ServeMux().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp RobotStatus
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "idle", resp.State)
}

func TestHandleStatusRejectsPost(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	req := testutil.NewTestRequest(http.MethodPost, "/status")
	w := testutil.NewTestRecorder()
	s.ServeMux().ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleStepAdvancesState(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	req := testutil.NewTestRequest(http.MethodPost, "/step")
	w := testutil.NewTestRecorder()
	s.ServeMux().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var snap Snapshot
	require.NoError(t, json.NewDecoder(w.Body).Decode(&snap))
	assert.True(t, snap.Continuing)
	assert.Equal(t, 1, snap.Statistics.Steps)
}

func TestHandleStartSetsModeAndState(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	body := `{"mode":"spiral"}`
	req := testutil.NewTestRequestWithBody(http.MethodPost, "/start", strings.NewReader(body))
	w := testutil.NewTestRecorder()
	s.ServeMux().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	statusReq := testutil.NewTestRequest(http.MethodGet, "/status")
	statusW := testutil.NewTestRecorder()
	s.ServeMux().ServeHTTP(statusW, statusReq)
	var status RobotStatus
	require.NoError(t, json.NewDecoder(statusW.Body).Decode(&status))
	assert.Equal(t, "cleaning", status.State)
	assert.Equal(t, "spiral", status.Mode)
}

func TestHandleStartRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	req := testutil.NewTestRequestWithBody(http.MethodPost, "/start", strings.NewReader(`{"mode":"teleport"}`))
	w := testutil.NewTestRecorder()
	s.ServeMux().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleInitRejectsUnknownRoomType(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	req := testutil.NewTestRequestWithBody(http.MethodPost, "/init", strings.NewReader(`{"room_type":"nonexistent"}`))
	w := testutil.NewTestRecorder()
	s.ServeMux().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleResetLazilyRebuilds(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	resetReq := testutil.NewTestRequest(http.MethodPost, "/reset")
	resetW := testutil.NewTestRecorder()
	s.ServeMux().ServeHTTP(resetW, resetReq)
	require.Equal(t, http.StatusOK, resetW.Code)

	statusReq := testutil.NewTestRequest(http.MethodGet, "/status")
	statusW := testutil.NewTestRecorder()
	s.ServeMux().ServeHTTP(statusW, statusReq)
	assert.Equal(t, http.StatusOK, statusW.Code)
}

func TestHandleSLAMReturnsNullWhenDisabled(t *testing.T) {
	t.Parallel()

	enableSLAM := false
	cfg := controller.EmptyConfig()
	cfg.EnableSLAM = &enableSLAM
	container, err := NewContainer(cfg)
	require.NoError(t, err)
	s := NewServer(container, nil)

	req := testutil.NewTestRequest(http.MethodGet, "/slam")
	w := testutil.NewTestRecorder()
	s.ServeMux().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null\n", w.Body.String())
}

func TestHandleRoomTypesAndModesListEverything(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	modesReq := testutil.NewTestRequest(http.MethodGet, "/modes")
	modesW := testutil.NewTestRecorder()
	s.ServeMux().ServeHTTP(modesW, modesReq)
	var modes []string
	require.NoError(t, json.NewDecoder(modesW.Body).Decode(&modes))
	assert.Contains(t, modes, "spiral")

	roomsReq := testutil.NewTestRequest(http.MethodGet, "/room-types")
	roomsW := testutil.NewTestRecorder()
	s.ServeMux().ServeHTTP(roomsW, roomsReq)
	var rooms []string
	require.NoError(t, json.NewDecoder(roomsW.Body).Decode(&rooms))
	assert.Contains(t, rooms, "furnished")
}
