package chat

import (
	"context"
	"github.com/pkg/errors"
	"messenger/internal/storage"
	"strings"
)

// ListChats returns visible chats of user, most recently active first
func (s *Service) ListChats(ctx context.Context, userID string) ([]Chatlist, error) {
	rows, err := s.repo.ChatsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	chats := make([]Chatlist, 0, len(rows))
	for _, row := range rows {
		chats = append(chats, newChatlist(row, userID))
	}
	return chats, nil
}

func (s *Service) ChatDetail(ctx context.Context, chatID, userID string) (ChatDetail, error) {
	if err := s.CheckMember(ctx, chatID, userID); err != nil {
		return ChatDetail{}, err
	}

	c, err := s.repo.ChatByID(ctx, chatID)
	if err != nil {
		return ChatDetail{}, translate(err)
	}
	return newChatDetail(c, userID), nil
}

// ChatByInviteCode returns group chat to be joined by invite code
func (s *Service) ChatByInviteCode(ctx context.Context, code, userID string) (ChatDetail, error) {
	if strings.TrimSpace(code) == "" {
		return ChatDetail{}, invalid("empty invite code")
	}

	c, err := s.repo.ChatByInviteCode(ctx, code)
	if err != nil {
		return ChatDetail{}, translate(err)
	}
	return newChatDetail(c, userID), nil
}

// UpdateGroup changes group details, allowed only to members having access
func (s *Service) UpdateGroup(ctx context.Context, chatID, userID string, upd storage.GroupUpdate) (ChatDetail, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return ChatDetail{}, invalid("empty group name")
	}

	c, err := s.repo.ChatByID(ctx, chatID)
	if err != nil {
		return ChatDetail{}, translate(err)
	}
	if !c.IsGroup {
		return ChatDetail{}, invalid("direct chat can not be updated")
	}

	m, err := s.repo.Member(ctx, chatID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrMemberNotExist) {
			return ChatDetail{}, ErrForbidden
		}
		return ChatDetail{}, err
	}
	if !m.HaveAccess {
		return ChatDetail{}, ErrForbidden
	}

	updated, err := s.repo.UpdateGroup(ctx, chatID, upd)
	if err != nil {
		return ChatDetail{}, translate(err)
	}
	return newChatDetail(updated, userID), nil
}
