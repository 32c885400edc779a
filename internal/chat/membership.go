package chat

import (
	"context"
)

// AddMember joins user to group chat, joining twice changes nothing
func (s *Service) AddMember(ctx context.Context, chatID, userID, name string) (string, error) {
	c, err := s.repo.ChatByID(ctx, chatID)
	if err != nil {
		return "", translate(err)
	}
	if !c.IsGroup {
		return "", invalid("direct chat can not get new members")
	}

	if err := s.repo.AddMember(ctx, chatID, userID, name); err != nil {
		return "", translate(err)
	}
	return chatID, nil
}

// LeaveGroup removes user from group chat, the chat is deleted after its last member leaves
func (s *Service) LeaveGroup(ctx context.Context, chatID, userID string) (string, error) {
	c, err := s.repo.ChatByID(ctx, chatID)
	if err != nil {
		return "", translate(err)
	}
	if !c.IsGroup {
		return "", invalid("direct chat can only be removed")
	}

	deleted, err := s.repo.RemoveMember(ctx, chatID, userID)
	if err != nil {
		return "", translate(err)
	}
	if deleted {
		s.logger.Infof("Group chat (id: %s) deleted after its last member left", chatID)
	}
	return chatID, nil
}

// MarkRead resets unread counter of user in chat
func (s *Service) MarkRead(ctx context.Context, chatID, userID string) error {
	return translate(s.repo.MarkRead(ctx, chatID, userID))
}

// CheckMember returns ErrNotFound when user is not a member of chat
func (s *Service) CheckMember(ctx context.Context, chatID, userID string) error {
	ok, err := s.repo.IsMember(ctx, chatID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
