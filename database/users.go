package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"LearningHubBackend/models"
)

var ErrEmailTaken = errors.New("email already registered")

const userColumns = `id, user_id, name, email, password, role, COALESCE(profile_pic, ''), created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.UserID, &u.Name, &u.Email, &u.Password, &u.Role, &u.ProfilePic, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO users (user_id, name, email, password, role, created_at, updated_at)
		VALUES ($1, $2, LOWER($3), $4, $5, $6, $7)
		RETURNING id`,
		u.UserID, u.Name, u.Email, u.Password, u.Role, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("CreateUser query failed: %w", err)
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1) LIMIT 1`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail query failed: %w", err)
	}
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (*models.User, error) {
	u, err := scanUser(s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetUser query failed: %w", err)
	}
	return u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListUsers query failed: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers scan failed: %w", err)
		}
		u.Password = ""
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Team lists staff members for the public team page.
func (s *Store) Team(ctx context.Context) ([]models.TeamMember, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT user_id, name, role, COALESCE(profile_pic, '')
		FROM users
		WHERE role IN ('admin', 'instructor')
		ORDER BY role, name`)
	if err != nil {
		return nil, fmt.Errorf("Team query failed: %w", err)
	}
	defer rows.Close()

	team := []models.TeamMember{}
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.UserID, &m.Name, &m.Role, &m.ProfilePic); err != nil {
			return nil, fmt.Errorf("Team scan failed: %w", err)
		}
		team = append(team, m)
	}
	return team, rows.Err()
}

func (s *Store) UpdateUserProfile(ctx context.Context, userID, name, passwordHash string) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE users SET
			name = COALESCE(NULLIF($2, ''), name),
			password = COALESCE(NULLIF($3, ''), password),
			updated_at = NOW()
		WHERE user_id = $1`, userID, name, passwordHash)
	if err != nil {
		return fmt.Errorf("UpdateUserProfile query failed: %w", err)
	}
	return expectOne(res)
}

func (s *Store) UpdateProfilePicture(ctx context.Context, userID, url string) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET profile_pic = $2, updated_at = NOW() WHERE user_id = $1`, userID, url)
	if err != nil {
		return fmt.Errorf("UpdateProfilePicture query failed: %w", err)
	}
	return expectOne(res)
}

func (s *Store) UpdateUserRole(ctx context.Context, userID string, role models.Role) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET role = $2, updated_at = NOW() WHERE user_id = $1`, userID, role)
	if err != nil {
		return fmt.Errorf("UpdateUserRole query failed: %w", err)
	}
	return expectOne(res)
}

func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("DeleteUser query failed: %w", err)
	}
	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
