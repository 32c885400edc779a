package realtime

import (
	"context"
	"encoding/json"
	"github.com/fasthttp/websocket"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.uber.org/zap"
	"messenger/internal/chat"
	"messenger/internal/identity"
	"messenger/internal/storage"
	"messenger/internal/storage/zapadapter"
	"net/http"
	"time"
)

//go:generate mockgen -source=gateway.go -destination=mocks/pipeline.go -package=mocks

// Pipeline is the chat capability invoked by socket events, implemented by *chat.Service
type Pipeline interface {
	SendMessage(ctx context.Context, nm storage.NewMessage) (storage.Message, error)
	DeleteMessage(ctx context.Context, userID, chatID, messageID string) (chat.DeletedMessage, error)
	CreateDirectChat(ctx context.Context, userID, otherUserID, content string) (chat.DirectResult, error)
	CheckMember(ctx context.Context, chatID, userID string) error
	MarkRead(ctx context.Context, chatID, userID string) error
	TouchLastSeen(ctx context.Context, userID string) (time.Time, error)
}

// Gateway serves socket connections: it dispatches inbound events to Pipeline
// and fans results out through Hub
type Gateway struct {
	logger   *zap.SugaredLogger
	hub      *Hub
	pipeline Pipeline
	validate *validator.Validate
	upgrader websocket.Upgrader
	timeout  time.Duration
}

func NewGateway(logger *zap.SugaredLogger, hub *Hub, pipeline Pipeline, timeout time.Duration) *Gateway {
	return &Gateway{
		logger:   logger,
		hub:      hub,
		pipeline: pipeline,
		validate: validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		timeout: timeout,
	}
}

// ServeWS upgrades HTTP connection of verified session and serves it until it is closed
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request, s identity.Session) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader has already replied with an HTTP error
		g.logger.Debugf("websocket upgrade: %v", err)
		return
	}

	g.Serve(conn, s)
}

// Serve runs connection of session, it returns after the connection is closed
func (g *Gateway) Serve(conn Conn, s identity.Session) {
	c := NewClient(conn, s)

	g.logger.Infof("User (id: %s) connected", s.ID)
	if g.hub.Register(c) {
		g.broadcastOnline()
	}

	go c.writePump()

	if err := c.readPump(g.handle); err != nil {
		g.logger.Warnf("Connection of user (id: %s) closed unexpectedly: %v", s.ID, err)
	}

	if !g.hub.Unregister(c) {
		return
	}
	g.logger.Infof("User (id: %s) is offline", s.ID)

	ctx, cancel := g.context(s.ID)
	defer cancel()
	if _, err := g.pipeline.TouchLastSeen(ctx, s.ID); err != nil {
		g.logger.Errorf("touching last seen of user (id: %s): %v", s.ID, err)
	}
	g.broadcastOnline()
}

func (g *Gateway) context(userID string) (context.Context, context.CancelFunc) {
	ctx := zapadapter.NewContextWithID(context.Background(), xid.New().String())
	ctx = zapadapter.NewContextWithUserID(ctx, userID)
	return context.WithTimeout(ctx, g.timeout)
}

// handle dispatches inbound frame; a failed event is reported to its sender only
func (g *Gateway) handle(c *Client, frame []byte) {
	var in inbound
	if err := json.Unmarshal(frame, &in); err != nil {
		g.replyError(c, "", errors.WithMessage(chat.ErrInvalidInput, "malformed frame"))
		return
	}

	ctx, cancel := g.context(c.Session.ID)
	defer cancel()

	var err error
	switch in.Event {
	case EventChatMessage:
		err = g.send(EventChatMessage, in.Data, g.hub.BroadcastAll)
	case EventJoinGroup:
		err = g.joinGroup(ctx, c, in.Data)
	case EventLeaveGroup:
		err = g.leaveGroup(c, in.Data)
	case EventSendMessage:
		err = g.sendMessage(ctx, c, in.Data)
	case EventRemoveMessage:
		err = g.removeMessage(ctx, c, in.Data)
	case EventSendDM:
		err = g.sendDM(ctx, c, in.Data)
	case EventRead:
		err = g.read(ctx, c, in.Data)
	case EventGetOnlineUsers:
		err = g.send(EventGetOnlineUsers, g.hub.Online(), func(frame []byte) { g.hub.SendToClient(c, frame) })
	default:
		err = errors.WithMessagef(chat.ErrInvalidInput, "unknown event %q", in.Event)
	}

	if err != nil {
		g.replyError(c, in.Event, err)
	}
}

func (g *Gateway) decode(data json.RawMessage, v interface{}) error {
	if len(data) == 0 {
		return errors.WithMessage(chat.ErrInvalidInput, "missing data")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WithMessage(chat.ErrInvalidInput, "malformed data")
	}
	if err := g.validate.Struct(v); err != nil {
		return errors.WithMessage(chat.ErrInvalidInput, err.Error())
	}
	return nil
}

func (g *Gateway) joinGroup(ctx context.Context, c *Client, data json.RawMessage) error {
	var e roomEvent
	if err := g.decode(data, &e); err != nil {
		return err
	}
	if err := g.pipeline.CheckMember(ctx, e.ChatID, c.Session.ID); err != nil {
		return err
	}

	g.hub.Join(c, e.ChatID)
	return nil
}

func (g *Gateway) leaveGroup(c *Client, data json.RawMessage) error {
	var e roomEvent
	if err := g.decode(data, &e); err != nil {
		return err
	}

	g.hub.Leave(c, e.ChatID)
	return nil
}

func (g *Gateway) sendMessage(ctx context.Context, c *Client, data json.RawMessage) error {
	var e sendMessageEvent
	if err := g.decode(data, &e); err != nil {
		return err
	}

	msg, err := g.pipeline.SendMessage(ctx, storage.NewMessage{
		ChatID:    e.ChatID,
		SenderID:  c.Session.ID,
		Content:   e.Content,
		ReplyToID: e.ReplyToID,
		Media:     e.Media,
	})
	if err != nil {
		return err
	}

	return g.PublishMessage(msg)
}

func (g *Gateway) removeMessage(ctx context.Context, c *Client, data json.RawMessage) error {
	var e removeMessageEvent
	if err := g.decode(data, &e); err != nil {
		return err
	}

	deleted, err := g.pipeline.DeleteMessage(ctx, c.Session.ID, e.ChatID, e.MessageID)
	if err != nil {
		return err
	}

	return g.PublishRemoval(deleted)
}

func (g *Gateway) sendDM(ctx context.Context, c *Client, data json.RawMessage) error {
	var e sendDMEvent
	if err := g.decode(data, &e); err != nil {
		return err
	}

	res, err := g.pipeline.CreateDirectChat(ctx, c.Session.ID, e.OtherUserID, e.Content)
	if err != nil {
		return err
	}

	return g.PublishDirect(c.Session.ID, res)
}

func (g *Gateway) read(ctx context.Context, c *Client, data json.RawMessage) error {
	var e roomEvent
	if err := g.decode(data, &e); err != nil {
		return err
	}
	return g.pipeline.MarkRead(ctx, e.ChatID, c.Session.ID)
}

// PublishMessage sends new message to its chat room
func (g *Gateway) PublishMessage(msg storage.Message) error {
	return g.send(EventSendMessage, msg, func(frame []byte) { g.hub.SendToRoom(msg.ChatID, frame) })
}

// PublishRemoval notifies chat room about deleted message
func (g *Gateway) PublishRemoval(deleted chat.DeletedMessage) error {
	return g.send(EventRemoveMessage, deleted, func(frame []byte) { g.hub.SendToRoom(deleted.ChatID, frame) })
}

// LeaveRoom stops room broadcasts to user who is no longer a member of chat
func (g *Gateway) LeaveRoom(userID, chatID string) {
	g.hub.LeaveUser(userID, chatID)
}

// PublishDirect delivers direct message to both participants, each with own chat list entry
func (g *Gateway) PublishDirect(senderID string, res chat.DirectResult) error {
	err := g.send(EventSendDM, res, func(frame []byte) { g.hub.SendToUser(senderID, frame) })
	if err != nil {
		return err
	}

	peer := chat.DirectResult{Chatlist: res.Peer, Message: res.Message}
	return g.send(EventSendDM, peer, func(frame []byte) { g.hub.SendToUser(res.OtherUserID, frame) })
}

func (g *Gateway) broadcastOnline() {
	if err := g.send(EventGetOnlineUsers, g.hub.Online(), g.hub.BroadcastAll); err != nil {
		g.logger.Errorf("broadcasting online users: %v", err)
	}
}

func (g *Gateway) send(event string, data interface{}, deliver func(frame []byte)) error {
	frame, err := Frame(event, data)
	if err != nil {
		return errors.Wrap(err, "gateway.send.marshal")
	}
	deliver(frame)
	return nil
}

func (g *Gateway) replyError(c *Client, event string, err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, chat.ErrNotFound),
		errors.Is(err, chat.ErrInvalidInput),
		errors.Is(err, chat.ErrForbidden),
		errors.Is(err, chat.ErrConflict):
		g.logger.Debugf("Event %q of user (id: %s) rejected: %v", event, c.Session.ID, err)
	default:
		g.logger.Errorf("Event %q of user (id: %s) failed: %v", event, c.Session.ID, err)
		msg = http.StatusText(http.StatusInternalServerError)
	}

	if err := g.send(EventError, errorEvent{Event: event, Message: msg}, func(frame []byte) { g.hub.SendToClient(c, frame) }); err != nil {
		g.logger.Error(err)
	}
}
