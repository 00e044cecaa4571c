package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/df07/go-interactive-pathtracer/pkg/renderer"
	"github.com/df07/go-interactive-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// ViewRequest selects a scene and how it is displayed. Zero values keep the
// scene's own settings.
type ViewRequest struct {
	Scene    string  `json:"scene"`
	Width    int     `json:"width"`    // Display width
	Height   int     `json:"height"`   // Display height
	Scale    int     `json:"scale"`    // Display pixels per rendered pixel
	MaxDepth int     `json:"maxDepth"` // Maximum bounces per path
	Exposure float64 `json:"exposure"` // 0 for gamma-only tone mapping
}

// RenderRequest represents a progressive render request from the client
type RenderRequest struct {
	ViewRequest
	Passes int `json:"passes"` // Samples per pixel to accumulate
}

// ProgressUpdate represents a single progressive update sent via SSE
type ProgressUpdate struct {
	PassNumber  int        `json:"passNumber"`
	TotalPasses int        `json:"totalPasses"`
	ImageData   string     `json:"imageData"` // Base64 encoded PNG
	Stats       FrameStats `json:"stats"`
	IsComplete  bool       `json:"isComplete"`
	ElapsedMs   int64      `json:"elapsedMs"`
}

// FrameStats represents render statistics
type FrameStats struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	Samples          int     `json:"samples"`
	Workers          int     `json:"workers"`
	PassMs           float64 `json:"passMs"`
	SamplesPerSecond float64 `json:"samplesPerSecond"`
	Resets           int     `json:"resets"`
}

func newFrameStats(s renderer.RenderStats) FrameStats {
	return FrameStats{
		Width:            s.Width,
		Height:           s.Height,
		Samples:          s.Samples,
		Workers:          s.Workers,
		PassMs:           float64(s.PassTime.Microseconds()) / 1000,
		SamplesPerSecond: s.SamplesPerSecond(),
		Resets:           s.Resets,
	}
}

// SSEEvent is a single server-sent event
type SSEEvent struct {
	Type string `json:"type"` // "console", "progress", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// parseRenderRequest parses and validates the query of a render request
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{}

	req.Scene = values.Get("scene")
	if req.Scene == "" {
		req.Scene = "cornell-box"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 16, 4096); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 0, 16, 4096); err != nil {
		return nil, err
	}
	if req.Scale, err = parseIntParam(values, "scale", 1, 1, 8); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "maxDepth", 0, 1, 1000); err != nil {
		return nil, err
	}
	if req.Exposure, err = parseFloatParam(values, "exposure", 0, 0, 100); err != nil {
		return nil, err
	}
	if req.Passes, err = parseIntParam(values, "passes", 16, 1, 10000); err != nil {
		return nil, err
	}

	if req.Width*req.Height > 1920*1080 && req.Passes > 100 {
		logger.Warningf("large render of %dx%d with %d passes may be slow", req.Width, req.Height, req.Passes)
	}
	return req, nil
}

// newCamera builds a camera session for the requested view
func (s *Server) newCamera(req ViewRequest) (*renderer.Camera, error) {
	sc, err := scene.Load(req.Scene, s.opts)
	if err != nil {
		return nil, err
	}

	config := sc.RendererConfig()
	if req.Width > 0 {
		config.Width = req.Width
	}
	if req.Height > 0 {
		config.Height = req.Height
	}
	if req.Scale > 0 {
		config.DisplayScale = req.Scale
	}
	if req.MaxDepth > 0 {
		config.MaxDepth = req.MaxDepth
	}
	config.Exposure = float32(req.Exposure)

	cam, err := renderer.NewCamera(config)
	if err != nil {
		return nil, err
	}
	if err := cam.SetWorld(sc.World); err != nil {
		cam.Close()
		return nil, err
	}
	return cam, nil
}

// handleRender streams a progressive render of a scene via SSE
func (s *Server) handleRender(c echo.Context) error {
	w := c.Response()
	setSSEHeaders(w)
	w.WriteHeader(http.StatusOK)

	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
	}

	con := newConsole(fmt.Sprintf("render-%d", time.Now().UnixNano()), w)

	cam, err := s.newCamera(req.ViewRequest)
	if err != nil {
		return sendSSEError(w, err.Error())
	}
	defer cam.Close()

	width, height := cam.Size()
	if err := con.Printf("rendering %s at %dx%d, scale %d, %d passes", req.Scene, width, height, cam.DisplayScale(), req.Passes); err != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	startTime := time.Now()
	passChan, errChan := cam.RenderProgressive(ctx, req.Passes)

	for result := range passChan {
		if err := s.sendProgress(w, result, req.Passes, cam.DisplayScale(), startTime); err != nil {
			// Client went away: stop after the pass in flight
			cancel()
			for range passChan {
			}
			return nil
		}
	}

	if err := <-errChan; err != nil {
		if ctx.Err() != nil {
			logger.Infof("render of %s cancelled", req.Scene)
			return nil
		}
		return sendSSEError(w, fmt.Sprintf("Render error: %v", err))
	}

	if err := con.Printf("render complete in %v", time.Since(startTime).Round(time.Millisecond)); err != nil {
		return nil
	}
	return writeSSEEvent(w, SSEEvent{Type: "complete", Data: `"Rendering completed"`})
}

func (s *Server) sendProgress(w *echo.Response, result renderer.PassResult, passes, scale int, startTime time.Time) error {
	imageData, err := encodeFrameBase64(result.Image, scale)
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	update := ProgressUpdate{
		PassNumber:  result.Samples,
		TotalPasses: passes,
		ImageData:   imageData,
		Stats:       newFrameStats(result.Stats),
		IsComplete:  result.IsLast,
		ElapsedMs:   time.Since(startTime).Milliseconds(),
	}
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return writeSSEEvent(w, SSEEvent{Type: "progress", Data: string(data)})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func setSSEHeaders(w *echo.Response) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
}

// writeSSEEvent writes and flushes one event
func writeSSEEvent(w *echo.Response, event SSEEvent) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
		return err
	}
	w.Flush()
	return nil
}

// sendSSEError reports a failure to the client and ends the stream
func sendSSEError(w *echo.Response, message string) error {
	logger.Warningf("render failed: %s", message)
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return writeSSEEvent(w, SSEEvent{Type: "error", Data: string(data)})
}
