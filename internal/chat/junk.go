package chat

import "context"

// RemoveChat hides chat from user together with its current history.
// The chat comes back once the direct conversation continues.
func (s *Service) RemoveChat(ctx context.Context, userID, chatID string) (string, error) {
	if err := s.CheckMember(ctx, chatID, userID); err != nil {
		return "", err
	}

	if err := s.repo.RemoveChat(ctx, userID, chatID); err != nil {
		return "", translate(err)
	}
	return chatID, nil
}
