package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/moodmenu/recipe-api/internal/core/domain"
	"github.com/moodmenu/recipe-api/internal/ids"
)

type IdentityRepository struct {
	db *DB
}

func NewIdentityRepository(db *DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

// Create relies on the UNIQUE constraint on login_key; there is no separate
// existence check.
func (r *IdentityRepository) Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	created := *identity
	if created.ID == "" {
		created.ID = ids.New()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now()
	}
	created.CreatedAt = created.CreatedAt.UTC().Truncate(time.Millisecond)

	_, err := r.db.sql.ExecContext(ctx,
		r.db.rebind(`INSERT INTO identities (id, login_key, secret_hash, role, created_at) VALUES (?, ?, ?, ?, ?)`),
		created.ID, created.LoginKey, created.SecretHash, string(created.Role), toMillis(created.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, storageErr("insert identity", err)
	}
	return &created, nil
}

func (r *IdentityRepository) FindByLoginKey(ctx context.Context, loginKey string) (*domain.Identity, error) {
	row := r.db.sql.QueryRowContext(ctx,
		r.db.rebind(`SELECT id, login_key, secret_hash, role, created_at FROM identities WHERE login_key = ?`),
		loginKey,
	)
	identity, err := scanIdentity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, storageErr("find identity", err)
	}
	return identity, nil
}

func (r *IdentityRepository) List(ctx context.Context) ([]*domain.Identity, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT id, login_key, secret_hash, role, created_at FROM identities ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, storageErr("list identities", err)
	}
	defer rows.Close()

	out := []*domain.Identity{}
	for rows.Next() {
		identity, err := scanIdentity(rows)
		if err != nil {
			return nil, storageErr("scan identity", err)
		}
		out = append(out, identity)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list identities", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIdentity(s scanner) (*domain.Identity, error) {
	var (
		identity  domain.Identity
		role      string
		createdAt int64
	)
	if err := s.Scan(&identity.ID, &identity.LoginKey, &identity.SecretHash, &role, &createdAt); err != nil {
		return nil, err
	}
	identity.Role = domain.Role(role)
	identity.CreatedAt = fromMillis(createdAt)
	return &identity, nil
}
