package storage

import (
	"context"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/pkg/errors"
	"strings"
	"time"
)

// messageView selects message "m" joined with its sender, media and one level of reply context
const messageView = `select m.id,
				   m.chat_id,
				   m.sender_id,
				   m.content,
				   m.reply_to_id,
				   m.created_at,
				   s.id,
				   s.name,
				   s.username,
				   s.image,
				   coalesce(mm.items, '[]'::jsonb),
				   r.id,
				   r.content,
				   r.sender_id,
				   r.created_at,
				   rs.name,
				   rs.username,
				   rs.image,
				   coalesce(rm.items, '[]'::jsonb)
			  from messages m
			  join users s
				on s.id = m.sender_id
			  left join lateral (` + mediaItems + ` where md.message_id = m.id) mm on true
			  left join messages r
				on r.id = m.reply_to_id
			  left join users rs
				on rs.id = r.sender_id
			  left join lateral (` + mediaItems + ` where md.message_id = r.id) rm on true`

const mediaItems = `select jsonb_agg(jsonb_build_object(
					   'id', md.id,
					   'messageId', md.message_id,
					   'value', md.value,
					   'caption', md.caption,
					   'createdAt', md.created_at
				   ) order by md.created_at, md.id) as items
			  from media md`

// readFloor filters out messages of chat $1 created before the last soft delete made by user $2
const readFloor = ` m.created_at > coalesce(
				(select jm.created_at from junk_messages jm where jm.chat_id = $1 and jm.user_id = $2),
				'-infinity'::timestamptz)`

func scanMessage(row pgx.Row) (Message, error) {
	var (
		m     Message
		media pgtype.JSONB

		replyID        *string
		replyContent   *string
		replySenderID  *string
		replyCreatedAt *time.Time
		replyName      *string
		replyUsername  *string
		replyImage     *string
		replyMedia     pgtype.JSONB
	)

	err := row.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.Content, &m.ReplyToID, &m.CreatedAt,
		&m.Sender.ID, &m.Sender.Name, &m.Sender.Username, &m.Sender.Image, &media,
		&replyID, &replyContent, &replySenderID, &replyCreatedAt, &replyName, &replyUsername, &replyImage, &replyMedia)
	if err != nil {
		return Message{}, err
	}

	if err := media.AssignTo(&m.Media); err != nil {
		return Message{}, err
	}

	if m.ReplyToID == nil {
		return m, nil
	}

	if replyID == nil {
		m.ReplyTo = &Reply{ID: *m.ReplyToID, Deleted: true}
		return m, nil
	}

	reply := &Reply{
		ID:        *replyID,
		Content:   replyContent,
		CreatedAt: replyCreatedAt,
	}
	if replySenderID != nil {
		reply.SenderID = *replySenderID
		reply.Sender = &Sender{ID: *replySenderID}
		if replyName != nil {
			reply.Sender.Name = *replyName
		}
		if replyUsername != nil {
			reply.Sender.Username = *replyUsername
		}
		if replyImage != nil {
			reply.Sender.Image = *replyImage
		}
	}
	if err := replyMedia.AssignTo(&reply.Media); err != nil {
		return Message{}, err
	}
	m.ReplyTo = reply

	return m, nil
}

func scanMessages(rows pgx.Rows) ([]Message, error) {
	defer rows.Close()

	messages := make([]Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return messages, nil
}

func messageByID(ctx context.Context, q querier, id string) (Message, error) {
	m, err := scanMessage(q.QueryRow(ctx, messageView+" where m.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Message{}, ErrMessageNotExist
		}
		return Message{}, errors.Wrap(err, "store.messageByID")
	}
	return m, nil
}

func insertMessage(ctx context.Context, q querier, nm NewMessage, t time.Time) (string, error) {
	id := uuid.NewString()
	sql := "insert into messages (id, chat_id, sender_id, content, reply_to_id, created_at, updated_at) " +
		"values ($1, $2, $3, $4, $5, $6, $6)"
	if _, err := q.Exec(ctx, sql, id, nm.ChatID, nm.SenderID, nm.Content, nm.ReplyToID, t); err != nil {
		return "", err
	}
	return id, nil
}

// sendMessage inserts message with media and bumps unread counters of other members
func sendMessage(ctx context.Context, tx pgx.Tx, nm NewMessage) (Message, error) {
	ok, err := isMember(ctx, tx, nm.ChatID, nm.SenderID)
	if err != nil {
		return Message{}, err
	}
	if !ok {
		return Message{}, ErrUserNotChatMember
	}

	if nm.ReplyToID != nil {
		var sameChat bool
		sql := "select exists(select 1 from messages where id = $1 and chat_id = $2)"
		if err := tx.QueryRow(ctx, sql, *nm.ReplyToID, nm.ChatID).Scan(&sameChat); err != nil {
			return Message{}, errors.Wrap(err, "store.sendMessage.reply")
		}
		if !sameChat {
			return Message{}, ErrReplyNotInChat
		}
	}

	t := now()
	id, err := insertMessage(ctx, tx, nm, t)
	if err != nil {
		return Message{}, errors.Wrap(err, "store.sendMessage.insert")
	}

	if len(nm.Media) > 0 {
		rows := make([]mediaRow, 0, len(nm.Media))
		for _, v := range nm.Media {
			rows = append(rows, mediaRow{id: uuid.NewString(), messageID: id, value: v, createdAt: t})
		}

		// bulk insert
		_, err = tx.CopyFrom(ctx, pgx.Identifier{"media"}, mediaColumns, copyFromMedia(rows))
		if err != nil {
			return Message{}, errors.Wrap(err, "store.sendMessage.media")
		}
	}

	if err := incrementUnread(ctx, tx, nm.ChatID, nm.SenderID); err != nil {
		return Message{}, err
	}

	return messageByID(ctx, tx, id)
}

// SendMessage creates message together with its media and increments unread counters in one transaction
func (s *Store) SendMessage(ctx context.Context, nm NewMessage) (Message, error) {
	s.logger.Debugf("Creating message from user (id: %s) in chat (id: %s)", nm.SenderID, nm.ChatID)

	var msg Message
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		msg, err = sendMessage(ctx, tx, nm)
		return err
	})
	if err != nil {
		return Message{}, err
	}
	return msg, nil
}

// MessagesByChatID returns up to limit messages of chat visible to user, older than provided cursor,
// sorted by message creation time (from latest to earliest)
func (s *Store) MessagesByChatID(ctx context.Context, chatID, userID string, before *Cursor, limit int) ([]Message, error) {
	s.logger.Debugf("Retrieving messages for chat (id: %s)", chatID)

	var (
		beforeTime *time.Time
		beforeID   string
	)
	if before != nil {
		beforeTime, beforeID = &before.CreatedAt, before.ID
	}

	sql := messageView + `
			 where m.chat_id = $1
			   and` + readFloor + `
			   and ($3::timestamptz is null or (m.created_at, m.id) < ($3::timestamptz, $4::varchar))
			 order by m.created_at desc, m.id desc
			 limit $5`

	rows, err := s.db.Query(ctx, sql, chatID, userID, beforeTime, beforeID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "store.MessagesByChatID")
	}

	messages, err := scanMessages(rows)
	if err != nil {
		return nil, errors.Wrap(err, "store.MessagesByChatID.scan")
	}

	s.logger.Debugf("Retrieved %d messages", len(messages))

	return messages, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchMessages returns messages of chat visible to user whose content contains query, case-insensitive
func (s *Store) SearchMessages(ctx context.Context, chatID, userID, query string) ([]Message, error) {
	s.logger.Debugf("Searching messages in chat (id: %s)", chatID)

	sql := messageView + `
			 where m.chat_id = $1
			   and` + readFloor + `
			   and m.content ilike '%' || $3 || '%' escape '\'
			 order by m.created_at desc, m.id desc`

	rows, err := s.db.Query(ctx, sql, chatID, userID, likeEscaper.Replace(query))
	if err != nil {
		return nil, errors.Wrap(err, "store.SearchMessages")
	}

	messages, err := scanMessages(rows)
	if err != nil {
		return nil, errors.Wrap(err, "store.SearchMessages.scan")
	}
	return messages, nil
}

// DeleteMessage deletes message only if it was sent by user into provided chat
func (s *Store) DeleteMessage(ctx context.Context, userID, chatID, messageID string) error {
	s.logger.Debugf("Deleting message (id: %s) of user (id: %s) in chat (id: %s)", messageID, userID, chatID)

	sql := "delete from messages where id = $1 and chat_id = $2 and sender_id = $3"
	tag, err := s.db.Exec(ctx, sql, messageID, chatID, userID)
	if err != nil {
		return errors.Wrap(err, "store.DeleteMessage")
	}
	if tag.RowsAffected() == 0 {
		return ErrMessageNotExist
	}
	return nil
}
