package net

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"riftlane/server/internal/protocol"
	"riftlane/server/internal/room"
)

// Session is one websocket connection. The read loop runs on the serving
// goroutine; a writer goroutine drains the bounded egress channel so a
// slow client never blocks a room tick. Frames that do not fit in the
// egress queue are shed; reliable events survive through retries.
type Session struct {
	gw     *Gateway
	conn   *websocket.Conn
	logger *zap.Logger

	egress    chan []byte
	closed    chan struct{}
	closeOnce sync.Once

	playerID  string
	malformed int
}

func newSession(gw *Gateway, conn *websocket.Conn) *Session {
	return &Session{
		gw:     gw,
		conn:   conn,
		logger: gw.logger,
		egress: make(chan []byte, gw.cfg.EgressQueue),
		closed: make(chan struct{}),
	}
}

// Send queues a frame for delivery. Never blocks; a full egress queue
// sheds the frame.
func (s *Session) Send(frame []byte) bool {
	select {
	case <-s.closed:
		return false
	default:
	}
	select {
	case s.egress <- frame:
		return true
	default:
		s.gw.metrics.Add("egress_dropped", 1)
		return false
	}
}

func (s *Session) writeLoop() {
	for {
		select {
		case <-s.closed:
			// Best-effort flush of whatever is already queued.
			for {
				select {
				case frame := <-s.egress:
					s.conn.SetWriteDeadline(time.Now().Add(s.gw.cfg.WriteTimeout))
					if s.conn.WriteMessage(websocket.TextMessage, frame) != nil {
						return
					}
				default:
					return
				}
			}
		case frame := <-s.egress:
			s.conn.SetWriteDeadline(time.Now().Add(s.gw.cfg.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		}
	}
}

// serve runs the session until the connection drops or misbehaves.
func (s *Session) serve() {
	go s.writeLoop()
	defer s.teardown()

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.gw.cfg.IdleTimeout))
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		frame, err := protocol.DecodeClientFrame(payload)
		if err != nil {
			s.malformed++
			s.gw.metrics.Add("frames_malformed", 1)
			s.logger.Warn("malformed frame",
				zap.String("player_id", s.playerID),
				zap.Error(err))
			if s.malformed > s.gw.cfg.MalformedFrameLimit {
				s.logger.Warn("closing connection after repeated malformed frames",
					zap.String("player_id", s.playerID))
				return
			}
			continue
		}
		if !s.handleFrame(frame) {
			return
		}
	}
}

func (s *Session) handleFrame(frame protocol.ClientFrame) bool {
	switch frame.Type {
	case protocol.TypePing:
		data, err := protocol.EncodePong(protocol.Pong{
			ClientTimestamp: frame.Timestamp,
			ServerTimestamp: time.Now().UnixMilli(),
		})
		if err == nil {
			s.Send(data)
		}
	case protocol.TypeReady:
		s.handleReady(frame)
	case protocol.TypeInput:
		if s.playerID == "" {
			s.sendError("READY required before INPUT")
			return true
		}
		s.gw.manager.Route(s.playerID, room.Inbound{
			Kind:  room.InboundInput,
			Input: *frame.Input,
		})
	case protocol.TypeEventAck:
		if s.playerID == "" {
			return true
		}
		s.gw.manager.Route(s.playerID, room.Inbound{
			Kind:        room.InboundEventAck,
			LastEventID: frame.LastEventID,
		})
	default:
		s.logger.Warn("unknown frame type",
			zap.String("player_id", s.playerID),
			zap.String("frame_type", frame.Type))
	}
	return true
}

// handleReady binds the session to a player id, then either resumes the
// player's existing match or enters them into quick-match intake.
func (s *Session) handleReady(frame protocol.ClientFrame) {
	if frame.PlayerID == "" {
		s.sendError("READY requires playerId")
		return
	}
	if s.playerID != "" && s.playerID != frame.PlayerID {
		s.sendError("session already bound to another player")
		return
	}
	s.playerID = frame.PlayerID
	if prev := s.gw.sessions.bind(s.playerID, s); prev != nil {
		prev.close()
	}
	s.gw.metrics.Store("connections", uint64(s.gw.sessions.Count()))

	if _, ok := s.gw.manager.GameFor(s.playerID); ok {
		s.gw.manager.Reconnect(s.playerID)
		return
	}
	if err := s.gw.intake.Ready(s.playerID, frame.ChampionID); err != nil {
		s.sendError(err.Error())
	}
}

func (s *Session) sendError(message string) {
	if data, err := protocol.EncodeError(message); err == nil {
		s.Send(data)
	}
}

func (s *Session) close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		s.conn.Close()
	})
}

func (s *Session) teardown() {
	s.close()
	if s.playerID != "" {
		s.gw.sessions.unbind(s.playerID, s)
		s.gw.intake.Remove(s.playerID)
		s.gw.manager.Disconnect(s.playerID)
		s.gw.metrics.Store("connections", uint64(s.gw.sessions.Count()))
	}
}
