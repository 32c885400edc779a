package storage

import (
	"github.com/jackc/pgx/v4"
	"time"
)

type mediaRow struct {
	id, messageID, value string
	createdAt           time.Time
}

type mediaBulk struct {
	rows []mediaRow
	idx  int
}

var mediaColumns = []string{"id", "message_id", "value", "caption", "created_at", "updated_at"}

func (r mediaRow) toInterface() []interface{} {
	return []interface{}{r.id, r.messageID, r.value, "", r.createdAt, r.createdAt}
}

func copyFromMedia(rows []mediaRow) pgx.CopyFromSource {
	return &mediaBulk{
		rows: rows,
		idx:  -1,
	}
}

func (mb *mediaBulk) Next() bool {
	mb.idx++
	return mb.idx < len(mb.rows)
}

func (mb *mediaBulk) Values() ([]interface{}, error) {
	return mb.rows[mb.idx].toInterface(), nil
}

func (mb *mediaBulk) Err() error {
	return nil
}
