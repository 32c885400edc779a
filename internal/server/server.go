package server

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"messenger/internal/chat"
	"messenger/internal/identity"
	"messenger/internal/storage"
	"net/http"
	"os"
	"os/signal"
	"time"
)

//go:generate mockgen -source=server.go -destination=mocks/server.go -package=mocks

// Service is the chat capability served over HTTP, implemented by *chat.Service
type Service interface {
	ListChats(ctx context.Context, userID string) ([]chat.Chatlist, error)
	ChatDetail(ctx context.Context, chatID, userID string) (chat.ChatDetail, error)
	ListMessages(ctx context.Context, chatID, userID, cursor string) (chat.MessagesPage, error)
	SearchMessages(ctx context.Context, chatID, userID, query string) ([]storage.Message, error)
	MarkRead(ctx context.Context, chatID, userID string) error
	RemoveChat(ctx context.Context, userID, chatID string) (string, error)

	SendMessage(ctx context.Context, nm storage.NewMessage) (storage.Message, error)
	DeleteMessage(ctx context.Context, userID, chatID, messageID string) (chat.DeletedMessage, error)

	CreateGroupChat(ctx context.Context, userID, username, name, image string) (chat.Chatlist, error)
	ChatByInviteCode(ctx context.Context, code, userID string) (chat.ChatDetail, error)
	UpdateGroup(ctx context.Context, chatID, userID string, upd storage.GroupUpdate) (chat.ChatDetail, error)
	LeaveGroup(ctx context.Context, chatID, userID string) (string, error)
	AddMember(ctx context.Context, chatID, userID, name string) (string, error)
	CreateDirectChat(ctx context.Context, userID, otherUserID, content string) (chat.DirectResult, error)

	Profile(ctx context.Context, viewerID, targetID string) (storage.Profile, error)
	UpdateProfile(ctx context.Context, userID string, upd storage.ProfileUpdate) (storage.User, error)
	AddContact(ctx context.Context, ownerID, friendID string) error
}

// Realtime serves socket connections and pushes results of HTTP operations to them,
// implemented by *realtime.Gateway
type Realtime interface {
	ServeWS(w http.ResponseWriter, r *http.Request, s identity.Session)
	LeaveRoom(userID, chatID string)
	PublishMessage(msg storage.Message) error
	PublishRemoval(deleted chat.DeletedMessage) error
	PublishDirect(senderID string, res chat.DirectResult) error
}

// Server defines fields used in HTTP processing
type Server struct {
	logger        *zap.SugaredLogger
	httpServer    *http.Server
	afterShutdown []func()
}

// NewServer returns new Server serving chat routes of svc and socket connections of rt,
// every route requires a session verified by v
func NewServer(logger *zap.SugaredLogger, svc Service, rt Realtime, v *identity.Verifier, opts ...Option) (*Server, error) {
	h := &handler{
		logger: logger,
		svc:    svc,
		rt:     rt,
	}

	cfg := &config{
		httpServer: &http.Server{
			Addr:              "0.0.0.0:9000",
			ReadHeaderTimeout: 5 * time.Second,
		},
		handlers: h.routes(),
		streams: map[string]http.Handler{
			"GET /ws": http.HandlerFunc(h.serveWS),
		},
	}

	// user options go first so TimeoutHandler wraps bare handlers
	for _, opt := range opts {
		opt.apply(cfg)
	}

	for _, opt := range []Option{
		applyAuthenticate(v),
		applyLog(logger.Desugar()),
		registerHandlers(),
	} {
		opt.apply(cfg)
	}

	return &Server{
		logger:        logger,
		httpServer:    cfg.httpServer,
		afterShutdown: cfg.afterShutdown,
	}, nil
}

// Start calls ListenAndServe on http.Server instance inside Server struct
// and implements graceful shutdown via goroutine waiting for signals
func (s *Server) Start() error {
	idleConnsClosed := make(chan struct{})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		s.logger.Info("Shutting down HTTP server")

		if err := s.httpServer.Shutdown(context.Background()); err != nil {
			s.logger.Errorf("srv.Shutdown: %v", err)
		}
		s.logger.Info("HTTP server is stopped")

		close(idleConnsClosed)
	}()

	s.logger.Infof("Starting HTTP server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("s.httpServer.ListenAndServe: %v", err)
	}

	<-idleConnsClosed

	for _, f := range s.afterShutdown {
		f()
	}

	return nil
}
