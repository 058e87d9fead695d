package site

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/masterclass/internal/runner"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type string `json:"type"` // "run" or "steps"
	Code string `json:"code"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type    string   `json:"type"` // "status", "output", "steps" or "error"
	Content string   `json:"content,omitempty"`
	Steps   []string `json:"steps,omitempty"`
}

func (s *Site) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", "error", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.send(conn, wsResponse{Type: "error", Content: "invalid message format"})
			continue
		}

		switch req.Type {
		case "run":
			s.streamRun(conn, r, req.Code)
		case "steps":
			s.send(conn, wsResponse{Type: "steps", Steps: runner.Steps(req.Code)})
		default:
			s.send(conn, wsResponse{Type: "error", Content: "unknown message type: " + req.Type})
		}
	}
}

// streamRun sends the placeholder as a status frame and the final text as an
// output frame.
func (s *Site) streamRun(conn *websocket.Conn, r *http.Request, code string) {
	if s.runner == nil {
		s.logger.Error("code run requested without a runner configured")
		s.send(conn, wsResponse{Type: "status", Content: runner.RunningText})
		s.send(conn, wsResponse{Type: "output", Content: runner.ErrorText})
		return
	}

	frames := 0
	display := runner.DisplayFunc(func(text string) {
		kind := "output"
		if frames == 0 {
			kind = "status"
		}
		frames++
		s.send(conn, wsResponse{Type: kind, Content: text})
	})
	s.runner.Run(r.Context(), code, display)
}

func (s *Site) send(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		s.logger.Warn("websocket write failed", "error", err)
	}
}
