package bridge

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/coder/websocket"

	"github.com/aposine/monsoon/event"
)

// outboundMessage is the wire envelope for every forwarded event
type outboundMessage struct {
	Type string `json:"type"`

	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	SessionID      string `json:"session_id,omitempty"`
	SurvivalTimeMs int64  `json:"survival_time_ms,omitempty"`
	Score          int64  `json:"score,omitempty"`

	Intensity float64 `json:"intensity,omitempty"`
}

// WebsocketSink streams outbound events to a websocket peer as JSON text
// messages. Sink calls enqueue onto a buffered channel and never block;
// when the peer cannot keep up, new messages are dropped and logged
type WebsocketSink struct {
	conn   *websocket.Conn
	out    chan outboundMessage
	cancel context.CancelFunc
	done   chan struct{}
}

const outboundBuffer = 64

// DialWebsocketSink connects to a peer and starts the writer goroutine
func DialWebsocketSink(ctx context.Context, url string) (*WebsocketSink, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithCancel(context.Background())
	s := &WebsocketSink{
		conn:   conn,
		out:    make(chan outboundMessage, outboundBuffer),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.writeLoop(writeCtx)
	return s, nil
}

func (s *WebsocketSink) StateChanged(p *event.StateChangedPayload) {
	s.enqueue(outboundMessage{
		Type: "state_changed",
		From: p.From.String(),
		To:   p.To.String(),
	})
}

func (s *WebsocketSink) ScoreSubmit(p *event.ScoreSubmitPayload) {
	s.enqueue(outboundMessage{
		Type:           "score_submit",
		SessionID:      p.SessionID,
		SurvivalTimeMs: p.SurvivalTimeMs,
		Score:          p.Score,
	})
}

func (s *WebsocketSink) Haptic(p *event.HapticTriggerPayload) {
	s.enqueue(outboundMessage{
		Type:      "haptic",
		Intensity: p.Intensity,
	})
}

func (s *WebsocketSink) enqueue(msg outboundMessage) {
	select {
	case s.out <- msg:
	default:
		slog.Warn("bridge buffer full, dropping message", "type", msg.Type)
	}
}

func (s *WebsocketSink) writeLoop(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.out:
			data, err := json.Marshal(msg)
			if err != nil {
				slog.Error("bridge marshal failed", "err", err)
				continue
			}
			if err := s.conn.Write(ctx, websocket.MessageText, data); err != nil {
				slog.Error("bridge write failed", "err", err)
				return
			}
		}
	}
}

// Close stops the writer and closes the connection
func (s *WebsocketSink) Close() error {
	s.cancel()
	<-s.done
	return s.conn.Close(websocket.StatusNormalClosure, "session over")
}

var _ Sink = (*WebsocketSink)(nil)
