package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/banshee-data/vacuumsim/internal/controller"
	"github.com/banshee-data/vacuumsim/internal/environment"
	"github.com/banshee-data/vacuumsim/internal/httputil"
	"github.com/banshee-data/vacuumsim/internal/runlog"
)

// Server is the HTTP query/command layer over a Container. It holds no
// simulation state of its own beyond the Container and the run log.
type Server struct {
	container *Container
	runs      *runlog.Store
	hub       *hub
}

// NewServer builds a Server. runs may be nil, in which case GET /runs
// always reports an empty list.
func NewServer(container *Container, runs *runlog.Store) *Server {
	return &Server{container: container, runs: runs, hub: newHub()}
}

// ServeMux builds the route table mirroring the query/command verbs.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/environment", s.handleEnvironment)
	mux.HandleFunc("/statistics", s.handleStatistics)
	mux.HandleFunc("/slam", s.handleSLAM)
	mux.HandleFunc("/coverage-map", s.handleCoverageMap)
	mux.HandleFunc("/path", s.handlePath)
	mux.HandleFunc("/modes", s.handleModes)
	mux.HandleFunc("/room-types", s.handleRoomTypes)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/runs", s.handleRuns)

	mux.HandleFunc("/start", s.handleStart)
	mux.HandleFunc("/stop", s.handleStop)
	mux.HandleFunc("/return-to-dock", s.handleReturnToDock)
	mux.HandleFunc("/init", s.handleInit)
	mux.HandleFunc("/step", s.handleStep)
	mux.HandleFunc("/reset", s.handleReset)

	mux.HandleFunc("/stream", s.handleStream)
	return mux
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	httputil.WriteJSONOK(w, v)
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return false
	}
	return true
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return false
	}
	return true
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	speedUnits := r.URL.Query().Get("units")
	var resp RobotStatus
	if err := s.container.WithReadLock(func(c *controller.Controller) { resp = robotStatus(c, speedUnits) }); err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handleEnvironment(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	var resp environment.Statistics
	if err := s.container.WithReadLock(func(c *controller.Controller) { resp = environmentInfo(c) }); err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	var resp StatisticsResponse
	if err := s.container.WithReadLock(func(c *controller.Controller) { resp = statisticsResponse(c) }); err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handleSLAM(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	var resp *SLAMResponse
	if err := s.container.WithReadLock(func(c *controller.Controller) { resp = slamResponse(c) }); err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handleCoverageMap(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	var resp CoverageMapResponse
	if err := s.container.WithReadLock(func(c *controller.Controller) { resp = coverageMap(c) }); err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	var resp *PathResponse
	if err := s.container.WithReadLock(func(c *controller.Controller) { resp = pathResponse(c) }); err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handleModes(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	writeJSON(w, controller.CleaningModes())
}

func (s *Server) handleRoomTypes(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	writeJSON(w, environment.RoomTypes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	if s.runs == nil {
		writeJSON(w, []runlog.RunRecord{})
		return
	}
	runs, err := s.runs.ListRuns(100)
	if err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	writeJSON(w, runs)
}

type startRequest struct {
	Mode *string `json:"mode"`
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req startRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	var parseErr error
	err := s.container.WithWriteLock(func(c *controller.Controller) {
		if req.Mode != nil {
			mode, perr := controller.ParseCleaningMode(*req.Mode)
			if perr != nil {
				parseErr = perr
				return
			}
			c.Mode = mode
		}
		c.State = controller.Cleaning
	})
	if err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	if parseErr != nil {
		httputil.BadRequest(w, parseErr.Error())
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	err := s.container.WithWriteLock(func(c *controller.Controller) { c.State = controller.Idle })
	if err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleReturnToDock(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	err := s.container.WithWriteLock(func(c *controller.Controller) {
		c.State = controller.ReturningToDock
		c.CurrentPath = nil
		c.PathIndex = 0
	})
	if err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	cfg, err := decodeConfig(r)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	if err := s.container.Init(cfg); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func decodeConfig(r *http.Request) (*controller.Config, error) {
	if r.Body == nil {
		return controller.EmptyConfig(), nil
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return controller.EmptyConfig(), nil
	}
	return controller.ParseConfig(data)
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var snap Snapshot
	err := s.container.WithWriteLock(func(c *controller.Controller) {
		continuing := c.Step()
		snap = buildSnapshot(c, continuing)
	})
	if err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	s.hub.broadcast(snap)
	writeJSON(w, snap)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	s.container.Reset()
	writeJSON(w, map[string]string{"status": "ok"})
}
