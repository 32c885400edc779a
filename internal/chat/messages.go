package chat

import (
	"context"
	"github.com/pkg/errors"
	"messenger/internal/storage"
	"strconv"
	"strings"
	"time"
)

// PageSize is the number of messages returned by ListMessages
const PageSize = 10

// EncodeCursor returns opaque position of message in chat history
func EncodeCursor(m storage.Message) string {
	return strconv.FormatInt(m.CreatedAt.UnixMicro(), 10) + ":" + m.ID
}

// DecodeCursor parses cursor made by EncodeCursor, empty cursor means the latest message
func DecodeCursor(cursor string) (*storage.Cursor, error) {
	if cursor == "" {
		return nil, nil
	}

	micros, id, ok := strings.Cut(cursor, ":")
	if !ok || id == "" {
		return nil, invalid("malformed cursor")
	}
	v, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return nil, invalid("malformed cursor")
	}

	return &storage.Cursor{CreatedAt: time.UnixMicro(v).UTC(), ID: id}, nil
}

// SendMessage stores message of chat member and returns it joined with sender, media and reply
func (s *Service) SendMessage(ctx context.Context, nm storage.NewMessage) (storage.Message, error) {
	if nm.Content != nil && strings.TrimSpace(*nm.Content) == "" {
		nm.Content = nil
	}
	if nm.Content == nil && len(nm.Media) == 0 {
		return storage.Message{}, invalid("message must have content or media")
	}
	for _, m := range nm.Media {
		if strings.TrimSpace(m) == "" {
			return storage.Message{}, invalid("empty media value")
		}
	}
	if nm.ReplyToID != nil && *nm.ReplyToID == "" {
		nm.ReplyToID = nil
	}

	msg, err := s.repo.SendMessage(ctx, nm)
	if err != nil {
		return storage.Message{}, translate(err)
	}
	return msg, nil
}

// ListMessages returns page of messages visible to user, starting right after cursor
func (s *Service) ListMessages(ctx context.Context, chatID, userID, cursor string) (MessagesPage, error) {
	before, err := DecodeCursor(cursor)
	if err != nil {
		return MessagesPage{}, err
	}
	if err := s.CheckMember(ctx, chatID, userID); err != nil {
		return MessagesPage{}, err
	}

	messages, err := s.repo.MessagesByChatID(ctx, chatID, userID, before, PageSize+1)
	if err != nil {
		return MessagesPage{}, err
	}

	page := MessagesPage{Messages: messages}
	if len(messages) > PageSize {
		page.Messages = messages[:PageSize]
		next := EncodeCursor(page.Messages[PageSize-1])
		page.NextCursor = &next
	}
	return page, nil
}

// DeleteMessage deletes message of its sender; foreign and missing messages look the same
func (s *Service) DeleteMessage(ctx context.Context, userID, chatID, messageID string) (DeletedMessage, error) {
	if err := s.repo.DeleteMessage(ctx, userID, chatID, messageID); err != nil {
		return DeletedMessage{}, translate(err)
	}
	return DeletedMessage{ChatID: chatID, MessageID: messageID}, nil
}

func (s *Service) SearchMessages(ctx context.Context, chatID, userID, query string) ([]storage.Message, error) {
	if strings.TrimSpace(query) == "" {
		return nil, invalid("empty search query")
	}
	if err := s.CheckMember(ctx, chatID, userID); err != nil {
		return nil, err
	}

	messages, err := s.repo.SearchMessages(ctx, chatID, userID, query)
	if err != nil {
		return nil, errors.WithMessage(err, "search")
	}
	return messages, nil
}
