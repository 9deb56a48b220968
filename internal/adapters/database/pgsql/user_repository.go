package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/floor_assignment_app/internal/core/domain"
	portsrepo "github.com/SscSPs/floor_assignment_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

var FULL_USER_SELECT_QUERY = `
SELECT u.id, u.username, u.password_hash, u.created_at
FROM users u
`

// getUsers private func to get users from the select query filters
func (r *PgxUserRepository) getUsers(ctx context.Context, filterQuery string, args ...any) ([]domain.User, error) {
	users, err := collect[domain.User](ctx, r.Pool, FULL_USER_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, mapWriteError(err, "query users", "", "")
	}
	return users, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u.id = $1`, userID)
	if err != nil {
		return nil, err
	}
	return first(users, fmt.Sprintf("user %d not found", userID))
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u.username = $1`, username)
	if err != nil {
		return nil, err
	}
	return first(users, "user not found")
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at`

	saved, err := collect[domain.User](ctx, r.Pool, query, user.Username, user.PasswordHash)
	if err != nil {
		return nil, mapWriteError(err, "save user "+user.Username, "username already in use", "")
	}
	return first(saved, "user was not saved")
}
