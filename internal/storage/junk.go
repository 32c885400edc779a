package storage

import (
	"context"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/pkg/errors"
	"time"
)

// RemoveChat hides chat from user's chat list and moves user's read floor to current time.
// Repeating the call refreshes both markers.
func (s *Store) RemoveChat(ctx context.Context, userID, chatID string) error {
	s.logger.Debugf("Removing chat (id: %s) for user (id: %s)", chatID, userID)

	return s.inTx(ctx, func(tx pgx.Tx) error {
		t := now()
		for _, table := range []string{"junk", "junk_messages"} {
			sql := "insert into " + table + " (user_id, chat_id, created_at, updated_at) values ($1, $2, $3, $3) " +
				"on conflict (user_id, chat_id) do update set created_at = excluded.created_at, updated_at = excluded.updated_at"
			if _, err := tx.Exec(ctx, sql, userID, chatID, t); err != nil {
				if pgErr, ok := asPgError(err); ok && pgErr.Code == pgerrcode.ForeignKeyViolation {
					return ErrChatNotExist
				}
				return errors.Wrapf(err, "store.RemoveChat.%s", table)
			}
		}
		return nil
	})
}

// restoreChat returns chat to chat lists of provided users, read floors stay in place
func restoreChat(ctx context.Context, q querier, chatID string, userIDs ...string) error {
	_, err := q.Exec(ctx, "delete from junk where chat_id = $1 and user_id = any($2)", chatID, userIDs)
	return err
}

// ReadFloor returns time of the last chat removal made by user, nil if user never removed the chat
func (s *Store) ReadFloor(ctx context.Context, userID, chatID string) (*time.Time, error) {
	var floor pgtype.Timestamptz
	sql := "select max(created_at) from junk_messages where user_id = $1 and chat_id = $2"
	if err := s.db.QueryRow(ctx, sql, userID, chatID).Scan(&floor); err != nil {
		return nil, errors.Wrap(err, "store.ReadFloor")
	}
	if floor.Status != pgtype.Present {
		return nil, nil
	}
	t := floor.Time.UTC()
	return &t, nil
}
