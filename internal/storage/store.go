package storage

import (
	"context"
	_ "embed"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"messenger/internal/storage/zapadapter"
	"time"
)

//go:embed schema.sql
var schema string

var (
	ErrUserExists        = errors.New("user already exists")
	ErrUserNotExist      = errors.New("user does not exist")
	ErrChatNotExist      = errors.New("chat does not exist")
	ErrDirectChatExists  = errors.New("direct chat already exists")
	ErrMemberNotExist    = errors.New("member does not exist")
	ErrUserNotChatMember = errors.New("user is not chat member")
	ErrMessageNotExist   = errors.New("message does not exist")
	ErrReplyNotInChat    = errors.New("replied message does not belong to chat")
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Store defines fields used in db interaction processes
type Store struct {
	logger *zap.SugaredLogger
	db     *pgxpool.Pool
}

// New sets provided zap.Logger via zapadapter to pgxpool.Pool and returns instance of Store struct
func New(ctx context.Context, logger *zap.SugaredLogger, cfg Config, opts ...Option) (*Store, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, err
	}
	config.ConnConfig.Logger = zapadapter.NewLogger(logger.Desugar())

	for _, opt := range opts {
		opt.apply(config)
	}

	pool, err := pgxpool.ConnectConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	s := &Store{
		logger: logger,
		db:     pool,
	}

	if cfg.Migrate {
		if err := s.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return s, nil
}

// Migrate applies embedded schema; every statement is idempotent
func (s *Store) Migrate(ctx context.Context) error {
	s.logger.Debug("Applying schema")

	if _, err := s.db.Exec(ctx, schema); err != nil {
		return errors.Wrap(err, "store.Migrate")
	}
	return nil
}

// Close closes all pooled connections
func (s *Store) Close() {
	s.db.Close()
}

// inTx runs fn inside a transaction, fn error rolls everything back
func (s *Store) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "store.begin")
	}
	// error handling can be omitted for rollback according docs
	// see https://pkg.go.dev/github.com/jackc/pgx/v4?tab=doc#hdr-Transactions or any source comment on Rollback
	defer tx.Rollback(context.Background())

	if err := fn(tx); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(ctx), "store.commit")
}

// now is truncated to microseconds so values read back from postgres compare equal
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}
