package chat

import (
	"context"
	"messenger/internal/storage"
	"strings"
	"time"
)

func (s *Service) Profile(ctx context.Context, viewerID, targetID string) (storage.Profile, error) {
	p, err := s.repo.Profile(ctx, viewerID, targetID)
	if err != nil {
		return storage.Profile{}, translate(err)
	}
	return p, nil
}

// AddContact adds friend to contacts of owner
func (s *Service) AddContact(ctx context.Context, ownerID, friendID string) error {
	if ownerID == friendID {
		return invalid("user can not be own contact")
	}
	return translate(s.repo.AddContact(ctx, ownerID, friendID))
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, upd storage.ProfileUpdate) (storage.User, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return storage.User{}, invalid("empty name")
	}

	u, err := s.repo.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return storage.User{}, translate(err)
	}
	return u, nil
}

// TouchLastSeen records that user has just been online
func (s *Service) TouchLastSeen(ctx context.Context, userID string) (time.Time, error) {
	seen, err := s.repo.TouchLastSeen(ctx, userID)
	if err != nil {
		return time.Time{}, translate(err)
	}
	return seen, nil
}
