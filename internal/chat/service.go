// Package chat implements chat and message operations on top of the entity store:
// membership, chat lists, the message pipeline, chat creation and soft deletion.
package chat

import (
	"context"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"messenger/internal/storage"
	"time"
)

//go:generate mockgen -source=service.go -destination=mocks/repository.go -package=mocks

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
)

// Repository is the entity store consumed by Service, implemented by *storage.Store
type Repository interface {
	UserByID(ctx context.Context, id string) (storage.User, error)
	Profile(ctx context.Context, viewerID, targetID string) (storage.Profile, error)
	UpdateProfile(ctx context.Context, id string, upd storage.ProfileUpdate) (storage.User, error)
	TouchLastSeen(ctx context.Context, id string) (time.Time, error)
	AddContact(ctx context.Context, ownerID, friendID string) error

	AddMember(ctx context.Context, chatID, userID, name string) error
	RemoveMember(ctx context.Context, chatID, userID string) (bool, error)
	Member(ctx context.Context, chatID, userID string) (storage.Member, error)
	IsMember(ctx context.Context, chatID, userID string) (bool, error)
	MarkRead(ctx context.Context, chatID, userID string) error

	ChatByID(ctx context.Context, id string) (storage.Chat, error)
	ChatByInviteCode(ctx context.Context, code string) (storage.Chat, error)
	ChatsByUserID(ctx context.Context, userID string) ([]storage.ChatRow, error)
	UpdateGroup(ctx context.Context, id string, upd storage.GroupUpdate) (storage.Chat, error)
	CreateGroupChat(ctx context.Context, creatorID, creatorName, name, image string) (storage.Chat, error)
	FindDirectChat(ctx context.Context, userID, otherID string) (string, error)
	CreateDirectChat(ctx context.Context, senderID, otherID, content string) (string, storage.Message, error)
	ContinueDirectChat(ctx context.Context, chatID, senderID, otherID, content string) (storage.Message, error)

	SendMessage(ctx context.Context, nm storage.NewMessage) (storage.Message, error)
	MessagesByChatID(ctx context.Context, chatID, userID string, before *storage.Cursor, limit int) ([]storage.Message, error)
	SearchMessages(ctx context.Context, chatID, userID, query string) ([]storage.Message, error)
	DeleteMessage(ctx context.Context, userID, chatID, messageID string) error

	RemoveChat(ctx context.Context, userID, chatID string) error
}

// Service holds business rules of chats, members and messages
type Service struct {
	logger *zap.SugaredLogger
	repo   Repository
}

func NewService(logger *zap.SugaredLogger, repo Repository) *Service {
	return &Service{
		logger: logger,
		repo:   repo,
	}
}

// translate maps storage errors onto service error kinds, unknown errors are returned as is
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrUserNotExist),
		errors.Is(err, storage.ErrChatNotExist),
		errors.Is(err, storage.ErrMemberNotExist),
		errors.Is(err, storage.ErrUserNotChatMember),
		errors.Is(err, storage.ErrMessageNotExist):
		return errors.WithMessage(ErrNotFound, err.Error())
	case errors.Is(err, storage.ErrReplyNotInChat):
		return errors.WithMessage(ErrInvalidInput, err.Error())
	case errors.Is(err, storage.ErrUserExists),
		errors.Is(err, storage.ErrDirectChatExists):
		return errors.WithMessage(ErrConflict, err.Error())
	}
	return err
}

func invalid(msg string) error {
	return errors.WithMessage(ErrInvalidInput, msg)
}
