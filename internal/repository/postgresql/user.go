package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/user"
	"github.com/simpeg-app/simpeg-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, nik, name, email, password_hash, role, image, bio, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.NIK, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.Image, &u.Bio, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to scan user: %w", err)
	}
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return user.User{}, fmt.Errorf("failed to generate user id: %w", err)
	}
	newUser.ID = id.String()

	query := `
		INSERT INTO users (id, nik, name, email, password_hash, role, image, bio, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		newUser.ID,
		newUser.NIK,
		newUser.Name,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.Image,
		newUser.Bio,
		newUser.IsActive,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "users_nik_key") {
			return user.User{}, user.ErrNIKExists
		}
		if isUniqueViolation(err, "users_email_key") {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByNIK implements user.UserRepository.
func (r *userRepository) GetByNIK(ctx context.Context, nik string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE nik = $1`
	return scanUser(q.QueryRow(ctx, query, nik))
}

// List implements user.UserRepository.
func (r *userRepository) List(ctx context.Context, filter user.UserFilter) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Role != nil && *filter.Role != "" {
		baseWhere += fmt.Sprintf(" AND role = $%d", argIdx)
		args = append(args, *filter.Role)
		argIdx++
	}
	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}
	if filter.Name != nil && *filter.Name != "" {
		baseWhere += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + baseWhere + ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, image = $4, bio = $5, is_active = $6, updated_at = $7
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.Image, u.Bio, u.IsActive, time.Now(), u.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		if isUniqueViolation(err, "users_email_key") {
			return user.ErrEmailExists
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateRole implements user.UserRepository.
func (r *userRepository) UpdateRole(ctx context.Context, id string, role user.Role) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, role, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to update user role: %w", err)
	}

	return nil
}

// Deactivate implements user.UserRepository.
func (r *userRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	return nil
}

// Delete implements user.UserRepository.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
