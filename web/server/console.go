package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// console mirrors render progress to the server log and to the client's
// web console. It writes to the event stream directly, so it must only be
// used by the goroutine serving the request.
type console struct {
	renderID string
	w        *echo.Response
}

func newConsole(renderID string, w *echo.Response) *console {
	return &console{renderID: renderID, w: w}
}

// Printf logs a message and sends it as a console event
func (c *console) Printf(format string, args ...interface{}) error {
	message := fmt.Sprintf(format, args...)
	logger.Infof("[%s] %s", c.renderID, message)

	data, err := json.Marshal(ConsoleMessage{
		RenderID:  c.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     "info",
	})
	if err != nil {
		return err
	}
	return writeSSEEvent(c.w, SSEEvent{Type: "console", Data: string(data)})
}
