package api

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	reqdto "stay-admin/internal/handler/dto/request"
	resdto "stay-admin/internal/handler/dto/response"
	"stay-admin/internal/pkg/config"
	"stay-admin/internal/pkg/generation"
	"stay-admin/internal/pkg/metrics"
	"stay-admin/internal/usecase/commands"
	"stay-admin/internal/usecase/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gorilla/websocket"
)

const (
	sessionWriteWait  = 10 * time.Second
	sessionReadLimit  = 16 << 10
	messageTypeQuote  = "quote"
	messageTypeError  = "error"
	messageTypeReject = "invalid"
)

// SessionMessage is one frame pushed to the booking form.
type SessionMessage struct {
	Type   string                `json:"type"`
	Token  generation.Token      `json:"token,omitempty"`
	Quote  *resdto.QuoteResponse `json:"quote,omitempty"`
	Status int                   `json:"status,omitempty"`
	Error  string                `json:"error,omitempty"`
	Detail any                   `json:"detail,omitempty"`
}

type SessionHandler struct {
	quoter   session.Quoter
	upgrader websocket.Upgrader
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewSessionHandler(cmds commands.BookingCommands, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *SessionHandler {
	origins := cfg.CORS.AllowOrigins
	return &SessionHandler{
		quoter: cmds,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(origins, origin)
			},
		},
		metrics: m,
		logger:  logger,
	}
}

// @Summary Live quote session
// @Description Websocket. Each QuoteRequest frame supersedes the previous one; only the latest quote is pushed.
// @Tags bookings
// @Security BearerAuth
// @Success 101 "Switching Protocols"
// @Router /bookings/session [get]
func (h *SessionHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written the HTTP error
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(sessionReadLimit)

	sess := session.NewBookingSession(h.quoter, h.metrics, h.logger)
	rejects := make(chan SessionMessage, 1)
	done := make(chan struct{})
	go h.writeLoop(conn, sess, rejects, done)

	ctx := c.Request.Context()
	for {
		var req reqdto.QuoteRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("booking session read ended", "session_id", sess.ID(), "error", err)
			}
			break
		}
		if err := binding.Validator.ValidateStruct(&req); err != nil {
			select {
			case rejects <- SessionMessage{Type: messageTypeReject, Status: http.StatusBadRequest, Error: err.Error()}:
			default:
			}
			continue
		}
		sess.Submit(ctx, toQuoteCommand(req))
	}

	sess.Close()
	close(rejects)
	<-done
}

// writeLoop is the only writer on conn.
func (h *SessionHandler) writeLoop(conn *websocket.Conn, sess *session.BookingSession, rejects <-chan SessionMessage, done chan<- struct{}) {
	defer close(done)
	updates := sess.Updates()
	for updates != nil || rejects != nil {
		var msg SessionMessage
		select {
		case u, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			msg = updateMessage(u)
		case r, ok := <-rejects:
			if !ok {
				rejects = nil
				continue
			}
			msg = r
		}
		_ = conn.SetWriteDeadline(time.Now().Add(sessionWriteWait))
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Debug("booking session write failed", "session_id", sess.ID(), "error", err)
			// keep draining so Close never blocks on a full channel
			continue
		}
	}
}

func updateMessage(u session.Update) SessionMessage {
	if u.Err != nil {
		status, msg, detail := classify(u.Err)
		return SessionMessage{Type: messageTypeError, Token: u.Token, Status: status, Error: msg, Detail: detail}
	}
	return SessionMessage{Type: messageTypeQuote, Token: u.Token, Quote: resdto.FromQuoteResult(u.Result)}
}
