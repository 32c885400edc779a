package storage

import (
	"context"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"time"
)

// membersJSON aggregates members of chat aliased as "c" together with their user profiles
const membersJSON = `coalesce((
		select jsonb_agg(jsonb_build_object(
				   'id', mb.id,
				   'chatId', mb.chat_id,
				   'userId', mb.user_id,
				   'name', mb.name,
				   'role', mb.role,
				   'haveAccess', mb.have_access,
				   'unreadCount', mb.unread_count,
				   'createdAt', mb.created_at,
				   'user', jsonb_build_object(
					   'id', u.id,
					   'name', u.name,
					   'username', u.username,
					   'image', u.image,
					   'banner', u.banner,
					   'status', u.status,
					   'lastSeen', u.last_seen
				   )) order by mb.created_at, mb.id)
		  from members mb
		  join users u
			on u.id = mb.user_id
		 where mb.chat_id = c.id
	), '[]'::jsonb)`

const chatColumns = "c.id, c.name, c.image, c.description, c.invited_code, c.is_group, c.created_at, c.updated_at, " + membersJSON

func scanChat(row pgx.Row, extra ...interface{}) (Chat, error) {
	var (
		c       Chat
		members pgtype.JSONB
	)
	dest := append([]interface{}{&c.ID, &c.Name, &c.Image, &c.Description, &c.InvitedCode, &c.IsGroup,
		&c.CreatedAt, &c.UpdatedAt, &members}, extra...)
	if err := row.Scan(dest...); err != nil {
		return Chat{}, err
	}
	if err := members.AssignTo(&c.Members); err != nil {
		return Chat{}, err
	}
	return c, nil
}

func insertChat(ctx context.Context, q querier, c Chat) error {
	sql := "insert into chats (id, name, image, description, invited_code, is_group, created_at, updated_at) " +
		"values ($1, $2, $3, $4, $5, $6, $7, $7)"
	_, err := q.Exec(ctx, sql, c.ID, c.Name, c.Image, c.Description, c.InvitedCode, c.IsGroup, c.CreatedAt)
	return err
}

func insertMember(ctx context.Context, q querier, m Member) error {
	sql := "insert into members (id, chat_id, user_id, name, role, have_access, unread_count, created_at, updated_at) " +
		"values ($1, $2, $3, $4, $5, $6, $7, $8, $8)"
	_, err := q.Exec(ctx, sql, m.ID, m.ChatID, m.UserID, m.Name, m.Role, m.HaveAccess, m.UnreadCount, m.CreatedAt)
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgerrcode.ForeignKeyViolation {
			switch pgErr.ConstraintName {
			case "members_user_id_fkey":
				return ErrUserNotExist
			case "members_chat_id_fkey":
				return ErrChatNotExist
			}
		}
		return err
	}
	return nil
}

// CreateGroupChat performs two-step transaction to create group chat
// (1. insert chat record; 2. insert creator as admin member) and returns it
func (s *Store) CreateGroupChat(ctx context.Context, creatorID, creatorName, name, image string) (Chat, error) {
	s.logger.Debugf("Creating group chat (%s) by user (id: %s)", name, creatorID)

	t := now()
	chat := Chat{
		ID:          uuid.NewString(),
		Name:        name,
		Image:       image,
		InvitedCode: xid.New().String(),
		IsGroup:     true,
		CreatedAt:   t,
		UpdatedAt:   t,
	}
	admin := Member{
		ID:         uuid.NewString(),
		ChatID:     chat.ID,
		UserID:     creatorID,
		Name:       creatorName,
		Role:       RoleAdmin,
		HaveAccess: true,
		CreatedAt:  t,
	}

	err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := insertChat(ctx, tx, chat); err != nil {
			return errors.Wrap(err, "store.CreateGroupChat.insertChat")
		}
		if err := insertMember(ctx, tx, admin); err != nil {
			if errors.Is(err, ErrUserNotExist) {
				return err
			}
			return errors.Wrap(err, "store.CreateGroupChat.insertMember")
		}
		return nil
	})
	if err != nil {
		return Chat{}, err
	}

	chat.Members = []Member{admin}

	s.logger.Debugf("Created group chat (%s) with id %s", name, chat.ID)

	return chat, nil
}

// FindDirectChat returns id of the non-group chat whose members are exactly the two provided users
func (s *Store) FindDirectChat(ctx context.Context, userID, otherID string) (string, error) {
	sql := `select c.id
			  from chats c
			 where c.is_group = false
			   and c.id in (
					select m.chat_id
					  from members m
					 where m.user_id = $1 or m.user_id = $2
					 group by m.chat_id
					having count(distinct m.user_id) = 2
			   )
			 limit 1`

	var id string
	err := s.db.QueryRow(ctx, sql, userID, otherID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrChatNotExist
		}
		return "", errors.Wrap(err, "store.FindDirectChat")
	}
	return id, nil
}

// CreateDirectChat creates a direct chat between sender and other, with the first message inside.
// The receiver starts with one unread message. A concurrent creation for the same pair fails with
// ErrDirectChatExists and leaves no trace.
func (s *Store) CreateDirectChat(ctx context.Context, senderID, otherID, content string) (string, Message, error) {
	s.logger.Debugf("Creating direct chat between users (%s, %s)", senderID, otherID)

	low, high := senderID, otherID
	if high < low {
		low, high = high, low
	}

	t := now()
	chat := Chat{
		ID:          uuid.NewString(),
		InvitedCode: xid.New().String(),
		CreatedAt:   t,
		UpdatedAt:   t,
	}

	var msg Message
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := insertChat(ctx, tx, chat); err != nil {
			return errors.Wrap(err, "store.CreateDirectChat.insertChat")
		}

		sql := "insert into direct_chats (chat_id, user_low, user_high) values ($1, $2, $3)"
		if _, err := tx.Exec(ctx, sql, chat.ID, low, high); err != nil {
			if pgErr, ok := asPgError(err); ok && pgErr.Code == pgerrcode.UniqueViolation {
				return ErrDirectChatExists
			}
			return errors.Wrap(err, "store.CreateDirectChat.insertPair")
		}

		members := []Member{
			{ID: uuid.NewString(), ChatID: chat.ID, UserID: senderID, Role: RoleSender, CreatedAt: t},
			{ID: uuid.NewString(), ChatID: chat.ID, UserID: otherID, Role: RoleReceiver, UnreadCount: 1, CreatedAt: t},
		}
		for _, m := range members {
			if err := insertMember(ctx, tx, m); err != nil {
				if errors.Is(err, ErrUserNotExist) {
					return err
				}
				return errors.Wrap(err, "store.CreateDirectChat.insertMember")
			}
		}

		id, err := insertMessage(ctx, tx, NewMessage{ChatID: chat.ID, SenderID: senderID, Content: &content}, t)
		if err != nil {
			return errors.Wrap(err, "store.CreateDirectChat.insertMessage")
		}

		msg, err = messageByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return "", Message{}, err
	}

	s.logger.Debugf("Created direct chat with id %s", chat.ID)

	return chat.ID, msg, nil
}

// ContinueDirectChat restores the chat for both participants and sends a new message into it
func (s *Store) ContinueDirectChat(ctx context.Context, chatID, senderID, otherID, content string) (Message, error) {
	s.logger.Debugf("Continuing direct chat (id: %s) by user (id: %s)", chatID, senderID)

	var msg Message
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := restoreChat(ctx, tx, chatID, senderID, otherID); err != nil {
			return errors.Wrap(err, "store.ContinueDirectChat.restore")
		}

		var err error
		msg, err = sendMessage(ctx, tx, NewMessage{ChatID: chatID, SenderID: senderID, Content: &content})
		return err
	})
	if err != nil {
		return Message{}, err
	}
	return msg, nil
}

// ChatByID returns chat with its members
func (s *Store) ChatByID(ctx context.Context, id string) (Chat, error) {
	c, err := scanChat(s.db.QueryRow(ctx, "select "+chatColumns+" from chats c where c.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Chat{}, ErrChatNotExist
		}
		return Chat{}, errors.Wrap(err, "store.ChatByID")
	}
	return c, nil
}

// ChatByInviteCode returns group chat with its members by invite code
func (s *Store) ChatByInviteCode(ctx context.Context, code string) (Chat, error) {
	sql := "select " + chatColumns + " from chats c where c.invited_code = $1 and c.is_group"
	c, err := scanChat(s.db.QueryRow(ctx, sql, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Chat{}, ErrChatNotExist
		}
		return Chat{}, errors.Wrap(err, "store.ChatByInviteCode")
	}
	return c, nil
}

// ChatsByUserID returns chats user is member of, except hidden ones, with the most recent message
// visible to that user, sorted by the time of that message (from latest to oldest)
func (s *Store) ChatsByUserID(ctx context.Context, userID string) ([]ChatRow, error) {
	s.logger.Debugf("Retrieving chats for user (id: %s)", userID)

	sql := `select ` + chatColumns + `,
				   me.unread_count,
				   lm.content,
				   lm.created_at
			  from members me
			  join chats c
				on c.id = me.chat_id
			  left join junk_messages jm
				on jm.chat_id = c.id and jm.user_id = me.user_id
			  left join lateral (
					select m.content, m.created_at
					  from messages m
					 where m.chat_id = c.id
					   and (jm.created_at is null or m.created_at > jm.created_at)
					 order by m.created_at desc, m.id desc
					 limit 1
			  ) lm on true
			 where me.user_id = $1
			   and not exists (select 1 from junk j where j.chat_id = c.id and j.user_id = me.user_id)
			 order by coalesce(lm.created_at, c.created_at) desc, c.id`

	rows, err := s.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, errors.Wrap(err, "store.ChatsByUserID")
	}
	defer rows.Close()

	var chats []ChatRow
	for rows.Next() {
		var (
			row      ChatRow
			lastSent *time.Time
		)
		row.Chat, err = scanChat(rows, &row.UnreadCount, &row.LastMessage, &lastSent)
		if err != nil {
			return nil, errors.Wrap(err, "store.ChatsByUserID.scan")
		}
		row.LastMessageSent = lastSent
		chats = append(chats, row)
	}

	if rows.Err() != nil {
		return nil, errors.Wrap(rows.Err(), "store.ChatsByUserID.rows")
	}

	s.logger.Debugf("Retrieved %d chats", len(chats))

	return chats, nil
}

// UpdateGroup sets non-nil fields of a group chat and returns it
func (s *Store) UpdateGroup(ctx context.Context, id string, upd GroupUpdate) (Chat, error) {
	s.logger.Debugf("Updating group chat (id: %s)", id)

	sql := `update chats
			   set name        = coalesce($2, name),
				   description = coalesce($3, description),
				   image       = coalesce($4, image),
				   updated_at  = $5
			 where id = $1 and is_group
		 returning id`

	var updated string
	err := s.db.QueryRow(ctx, sql, id, upd.Name, upd.Description, upd.Image, now()).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Chat{}, ErrChatNotExist
		}
		return Chat{}, errors.Wrap(err, "store.UpdateGroup")
	}

	return s.ChatByID(ctx, updated)
}
