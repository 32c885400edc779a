package chat

import (
	"context"
	"github.com/pkg/errors"
	"messenger/internal/storage"
	"strings"
)

// directAttempts bounds lookup-or-create rounds lost to concurrent creation of the same direct chat
const directAttempts = 3

// CreateGroupChat creates group with creator as its admin
func (s *Service) CreateGroupChat(ctx context.Context, userID, username, name, image string) (Chatlist, error) {
	if strings.TrimSpace(name) == "" {
		return Chatlist{}, invalid("empty group name")
	}

	c, err := s.repo.CreateGroupChat(ctx, userID, username, name, image)
	if err != nil {
		return Chatlist{}, translate(err)
	}

	return newChatlist(storage.ChatRow{Chat: c}, userID), nil
}

// CreateDirectChat sends content to other user, reusing their direct chat if there is one.
// A reused chat is restored for both users.
func (s *Service) CreateDirectChat(ctx context.Context, userID, otherUserID, content string) (DirectResult, error) {
	if userID == otherUserID {
		return DirectResult{}, invalid("direct chat with yourself")
	}
	if strings.TrimSpace(content) == "" {
		return DirectResult{}, invalid("empty message")
	}

	if _, err := s.repo.UserByID(ctx, otherUserID); err != nil {
		return DirectResult{}, translate(err)
	}

	var (
		chatID string
		msg    storage.Message
		err    error
	)
	for attempt := 1; ; attempt++ {
		chatID, err = s.repo.FindDirectChat(ctx, userID, otherUserID)
		if err == nil {
			msg, err = s.repo.ContinueDirectChat(ctx, chatID, userID, otherUserID, content)
			if err != nil {
				return DirectResult{}, translate(err)
			}
			break
		}
		if !errors.Is(err, storage.ErrChatNotExist) {
			return DirectResult{}, err
		}

		chatID, msg, err = s.repo.CreateDirectChat(ctx, userID, otherUserID, content)
		if err == nil {
			break
		}
		if !errors.Is(err, storage.ErrDirectChatExists) {
			return DirectResult{}, translate(err)
		}
		if attempt == directAttempts {
			return DirectResult{}, translate(err)
		}
		s.logger.Debugf("Direct chat between users (%s, %s) created concurrently, retrying", userID, otherUserID)
	}

	c, err := s.repo.ChatByID(ctx, chatID)
	if err != nil {
		return DirectResult{}, translate(err)
	}

	return DirectResult{
		Chatlist:    directChatlist(c, msg, userID),
		Message:     msg,
		Peer:        directChatlist(c, msg, otherUserID),
		OtherUserID: otherUserID,
	}, nil
}

func directChatlist(c storage.Chat, msg storage.Message, viewerID string) Chatlist {
	row := storage.ChatRow{Chat: c, LastMessage: msg.Content, LastMessageSent: &msg.CreatedAt}
	for _, m := range c.Members {
		if m.UserID == viewerID {
			row.UnreadCount = m.UnreadCount
		}
	}
	return newChatlist(row, viewerID)
}
