package storage

import (
	"context"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/pkg/errors"
)

// AddMember inserts member with "member" role, an existing membership is left untouched
func (s *Store) AddMember(ctx context.Context, chatID, userID, name string) error {
	s.logger.Debugf("Adding user (id: %s) to chat (id: %s)", userID, chatID)

	sql := "insert into members (id, chat_id, user_id, name, role, have_access, unread_count, created_at, updated_at) " +
		"values ($1, $2, $3, $4, $5, false, 0, $6, $6) on conflict (chat_id, user_id) do nothing"
	_, err := s.db.Exec(ctx, sql, uuid.NewString(), chatID, userID, name, RoleMember, now())
	if err != nil {
		if pgErr, ok := asPgError(err); ok {
			switch pgErr.ConstraintName {
			case "members_chat_id_fkey":
				return ErrChatNotExist
			case "members_user_id_fkey":
				return ErrUserNotExist
			}
		}
		return errors.Wrap(err, "store.AddMember")
	}
	return nil
}

// RemoveMember deletes membership; the chat itself is deleted along with its last member.
// Returns whether the chat was deleted.
func (s *Store) RemoveMember(ctx context.Context, chatID, userID string) (bool, error) {
	s.logger.Debugf("Removing user (id: %s) from chat (id: %s)", userID, chatID)

	var chatDeleted bool
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		// leaves of one chat are serialized so the last one always sees an empty chat
		var locked string
		err := tx.QueryRow(ctx, "select id from chats where id = $1 for update", chatID).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrChatNotExist
			}
			return errors.Wrap(err, "store.RemoveMember.lock")
		}

		tag, err := tx.Exec(ctx, "delete from members where chat_id = $1 and user_id = $2", chatID, userID)
		if err != nil {
			return errors.Wrap(err, "store.RemoveMember.delete")
		}
		if tag.RowsAffected() == 0 {
			return ErrMemberNotExist
		}

		var left int
		if err := tx.QueryRow(ctx, "select count(*) from members where chat_id = $1", chatID).Scan(&left); err != nil {
			return errors.Wrap(err, "store.RemoveMember.count")
		}
		if left > 0 {
			return nil
		}

		if _, err := tx.Exec(ctx, "delete from chats where id = $1", chatID); err != nil {
			return errors.Wrap(err, "store.RemoveMember.deleteChat")
		}
		chatDeleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return chatDeleted, nil
}

// Member returns membership of user in chat
func (s *Store) Member(ctx context.Context, chatID, userID string) (Member, error) {
	sql := `select id, chat_id, user_id, name, role, have_access, unread_count, created_at
			  from members
			 where chat_id = $1 and user_id = $2`

	var m Member
	err := s.db.QueryRow(ctx, sql, chatID, userID).
		Scan(&m.ID, &m.ChatID, &m.UserID, &m.Name, &m.Role, &m.HaveAccess, &m.UnreadCount, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Member{}, ErrMemberNotExist
		}
		return Member{}, errors.Wrap(err, "store.Member")
	}
	return m, nil
}

// IsMember reports whether user is a member of chat
func (s *Store) IsMember(ctx context.Context, chatID, userID string) (bool, error) {
	return isMember(ctx, s.db, chatID, userID)
}

func isMember(ctx context.Context, q querier, chatID, userID string) (bool, error) {
	var ok bool
	err := q.QueryRow(ctx, "select exists(select 1 from members where chat_id = $1 and user_id = $2)", chatID, userID).Scan(&ok)
	if err != nil {
		return false, errors.Wrap(err, "store.isMember")
	}
	return ok, nil
}

// IncrementUnread increments unread counter of every chat member except provided one
func (s *Store) IncrementUnread(ctx context.Context, chatID, excludeUserID string) error {
	return incrementUnread(ctx, s.db, chatID, excludeUserID)
}

func incrementUnread(ctx context.Context, q querier, chatID, excludeUserID string) error {
	sql := "update members set unread_count = unread_count + 1 where chat_id = $1 and user_id <> $2"
	if _, err := q.Exec(ctx, sql, chatID, excludeUserID); err != nil {
		return errors.Wrap(err, "store.incrementUnread")
	}
	return nil
}

// MarkRead resets unread counter of member
func (s *Store) MarkRead(ctx context.Context, chatID, userID string) error {
	tag, err := s.db.Exec(ctx, "update members set unread_count = 0 where chat_id = $1 and user_id = $2", chatID, userID)
	if err != nil {
		return errors.Wrap(err, "store.MarkRead")
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotExist
	}
	return nil
}
