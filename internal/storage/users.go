package storage

import (
	"context"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	"github.com/pkg/errors"
	"time"
)

const userColumns = "id, name, email, username, image, bio, banner, status, last_seen, created_at, updated_at"

func scanUser(row pgx.Row) (User, error) {
	var (
		u         User
		updatedAt time.Time
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Username, &u.Image, &u.Bio, &u.Banner, &u.Status,
		&u.LastSeen, &u.CreatedAt, &updatedAt)
	if err != nil {
		return User{}, err
	}
	u.UpdatedAt = &updatedAt
	return u, nil
}

// CreateUser creates user and returns it, id is generated when blank
func (s *Store) CreateUser(ctx context.Context, u User) (User, error) {
	s.logger.Debugf("Creating user (%s)", u.Username)

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	t := now()

	sql := "insert into users (id, name, email, username, image, bio, banner, status, last_seen, created_at, updated_at) " +
		"values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9, $9) returning " + userColumns
	created, err := scanUser(s.db.QueryRow(ctx, sql, u.ID, u.Name, u.Email, u.Username, u.Image, u.Bio, u.Banner, u.Status, t))
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return User{}, ErrUserExists
		}
		return User{}, errors.Wrap(err, "store.CreateUser")
	}

	s.logger.Debugf("Created user (%s) with id %s", u.Username, created.ID)

	return created, nil
}

// UserByID returns user with provided id
func (s *Store) UserByID(ctx context.Context, id string) (User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, "select "+userColumns+" from users where id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotExist
		}
		return User{}, errors.Wrap(err, "store.UserByID")
	}
	return u, nil
}

// Profile returns public profile of target; IsContact reports whether target keeps viewer in contacts
func (s *Store) Profile(ctx context.Context, viewerID, targetID string) (Profile, error) {
	sql := `select u.id, u.name, u.username, u.image, u.banner, u.bio, u.status, u.last_seen,
				   exists(select 1 from contacts c where c.owner_id = u.id and c.friend_id = $2)
			  from users u
			 where u.id = $1`

	var p Profile
	err := s.db.QueryRow(ctx, sql, targetID, viewerID).
		Scan(&p.ID, &p.Name, &p.Username, &p.Image, &p.Banner, &p.Bio, &p.Status, &p.LastSeen, &p.IsContact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrUserNotExist
		}
		return Profile{}, errors.Wrap(err, "store.Profile")
	}
	return p, nil
}

// UpdateProfile sets non-nil fields and returns updated user
func (s *Store) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (User, error) {
	s.logger.Debugf("Updating profile of user (id: %s)", id)

	sql := `update users
			   set name       = coalesce($2, name),
				   image      = coalesce($3, image),
				   banner     = coalesce($4, banner),
				   status     = coalesce($5, status),
				   bio        = coalesce($6, bio),
				   updated_at = $7
			 where id = $1
		 returning ` + userColumns

	u, err := scanUser(s.db.QueryRow(ctx, sql, id, upd.Name, upd.Image, upd.Banner, upd.Status, upd.Bio, now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotExist
		}
		return User{}, errors.Wrap(err, "store.UpdateProfile")
	}
	return u, nil
}

// TouchLastSeen sets last_seen of user to current time and returns it
func (s *Store) TouchLastSeen(ctx context.Context, id string) (time.Time, error) {
	var seen time.Time
	err := s.db.QueryRow(ctx, "update users set last_seen = $2 where id = $1 returning last_seen", id, now()).Scan(&seen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, ErrUserNotExist
		}
		return time.Time{}, errors.Wrap(err, "store.TouchLastSeen")
	}
	return seen, nil
}

// AddContact stores directed owner -> friend edge, repeating the call is a no-op
func (s *Store) AddContact(ctx context.Context, ownerID, friendID string) error {
	s.logger.Debugf("Adding contact (%s -> %s)", ownerID, friendID)

	sql := "insert into contacts (owner_id, friend_id, created_at) values ($1, $2, $3) on conflict (owner_id, friend_id) do nothing"
	_, err := s.db.Exec(ctx, sql, ownerID, friendID, now())
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrUserNotExist
		}
		return errors.Wrap(err, "store.AddContact")
	}
	return nil
}
