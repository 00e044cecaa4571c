package server

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/renderer"
	"github.com/labstack/echo/v4"
)

var errNoSession = errors.New("no active session")

// Session is the interactive camera shared by the session endpoints
type Session struct {
	mu      sync.Mutex
	sceneID string
	camera  *renderer.Camera
	closed  bool
}

// Close stops the session's workers
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.camera.Close()
}

// SessionInfo describes the state of the interactive camera
type SessionInfo struct {
	Scene        string     `json:"scene"`
	Width        int        `json:"width"`  // Render width
	Height       int        `json:"height"` // Render height
	DisplayScale int        `json:"displayScale"`
	Samples      int        `json:"samples"`
	Position     [3]float32 `json:"position"`
	Pitch        float32    `json:"pitch"`
	Yaw          float32    `json:"yaw"`
	Exposure     float32    `json:"exposure"`
	Resets       int        `json:"resets"`
}

// info must be called with s.mu held
func (s *Session) info() SessionInfo {
	width, height := s.camera.Size()
	pitch, yaw := s.camera.PitchYaw()
	return SessionInfo{
		Scene:        s.sceneID,
		Width:        width,
		Height:       height,
		DisplayScale: s.camera.DisplayScale(),
		Samples:      s.camera.Samples(),
		Position:     toVec3Array(s.camera.Position()),
		Pitch:        pitch,
		Yaw:          yaw,
		Exposure:     s.camera.Exposure(),
		Resets:       s.camera.Stats().Resets,
	}
}

// MoveRequest moves the camera along its own axes
type MoveRequest struct {
	Forward float32 `json:"forward"`
	Right   float32 `json:"right"`
	Up      float32 `json:"up"`
}

// LookRequest turns the camera by degree offsets
type LookRequest struct {
	Pitch float32 `json:"pitch"`
	Yaw   float32 `json:"yaw"`
}

// LensRequest replaces the camera's lens
type LensRequest struct {
	VFov          float32 `json:"vfov"`
	DefocusAngle  float32 `json:"defocusAngle"`
	FocusDistance float32 `json:"focusDistance"`
}

// ExposureRequest changes tone-mapping without restarting accumulation
type ExposureRequest struct {
	Exposure float32 `json:"exposure"`
}

func (s *Server) currentSession() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, errNoSession
	}
	return s.session, nil
}

// withSession runs fn on the locked session and replies with its state
func (s *Server) withSession(c echo.Context, fn func(cam *renderer.Camera) error) error {
	sess, err := s.currentSession()
	if err != nil {
		return jsonError(c, http.StatusNotFound, err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return jsonError(c, http.StatusNotFound, errNoSession)
	}
	if err := fn(sess.camera); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, sess.info())
}

func (s *Server) handleCreateSession(c echo.Context) error {
	req := ViewRequest{}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	if req.Scene == "" {
		req.Scene = "cornell-box"
	}

	cam, err := s.newCamera(req)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	sess := &Session{sceneID: req.Scene, camera: cam}

	s.mu.Lock()
	old := s.session
	s.session = sess
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}
	logger.Infof("started session for scene %s", req.Scene)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return c.JSON(http.StatusOK, sess.info())
}

func (s *Server) handleSessionInfo(c echo.Context) error {
	return s.withSession(c, func(*renderer.Camera) error { return nil })
}

func (s *Server) handleCloseSession(c echo.Context) error {
	s.mu.Lock()
	sess := s.session
	s.session = nil
	s.mu.Unlock()

	if sess == nil {
		return jsonError(c, http.StatusNotFound, errNoSession)
	}
	sess.Close()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleMove(c echo.Context) error {
	req := MoveRequest{}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	return s.withSession(c, func(cam *renderer.Camera) error {
		step := cam.Forward().Multiply(req.Forward).
			Add(cam.Right().Multiply(req.Right)).
			Add(cam.Up().Multiply(req.Up))
		cam.MoveBy(step)
		return nil
	})
}

func (s *Server) handleLook(c echo.Context) error {
	req := LookRequest{}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	return s.withSession(c, func(cam *renderer.Camera) error {
		cam.ChangePitchYawBy(req.Pitch, req.Yaw)
		return nil
	})
}

func (s *Server) handleLens(c echo.Context) error {
	req := LensRequest{}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	return s.withSession(c, func(cam *renderer.Camera) error {
		return cam.SetLens(req.VFov, req.DefocusAngle, req.FocusDistance)
	})
}

func (s *Server) handleExposure(c echo.Context) error {
	req := ExposureRequest{}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	return s.withSession(c, func(cam *renderer.Camera) error {
		cam.SetExposure(req.Exposure)
		return nil
	})
}

// handleFrame renders more samples and returns the display-size frame as PNG
func (s *Server) handleFrame(c echo.Context) error {
	samples, err := parseIntParam(c.QueryParams(), "samples", 1, 0, 64)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}

	sess, err := s.currentSession()
	if err != nil {
		return jsonError(c, http.StatusNotFound, err)
	}

	sess.mu.Lock()
	if sess.closed {
		sess.mu.Unlock()
		return jsonError(c, http.StatusNotFound, errNoSession)
	}
	sess.camera.RenderSamples(samples)
	img := sess.camera.Image()
	scale := sess.camera.DisplayScale()
	total := sess.camera.Samples()
	sess.mu.Unlock()

	data, err := encodeFrame(img, scale)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, err)
	}
	c.Response().Header().Set("X-Samples", strconv.Itoa(total))
	return c.Blob(http.StatusOK, "image/png", data)
}

// toVec3Array flattens a vector for JSON
func toVec3Array(v core.Vec3) [3]float32 {
	return [3]float32{v.X(), v.Y(), v.Z()}
}
