package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"LearningHubBackend/models"
)

func (s *Store) CreatePost(ctx context.Context, userID, content, imagePath string) (*models.Post, error) {
	p := models.Post{UserID: userID, Content: content, ImagePath: imagePath}
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO posts (user_id, content, image_path)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`, userID, content, nullString(imagePath),
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("CreatePost query failed: %w", err)
	}
	return &p, nil
}

func (s *Store) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT p.id, p.user_id, u.name, COALESCE(u.profile_pic, ''), p.content, COALESCE(p.image_path, ''),
		       (SELECT COUNT(*) FROM reactions r WHERE r.post_id = p.id),
		       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id),
		       p.created_at
		FROM posts p
		JOIN users u ON u.user_id = p.user_id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPosts query failed: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.AuthorName, &p.AuthorPic, &p.Content, &p.ImagePath,
			&p.Reactions, &p.Comments, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListPosts scan failed: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *Store) PostOwner(ctx context.Context, postID int64) (string, error) {
	var owner string
	err := s.DB.QueryRowContext(ctx, `SELECT user_id FROM posts WHERE id = $1`, postID).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("PostOwner query failed: %w", err)
	}
	return owner, nil
}

func (s *Store) DeletePost(ctx context.Context, postID int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("DeletePost query failed: %w", err)
	}
	return expectOne(res)
}

func (s *Store) CreateComment(ctx context.Context, postID int64, userID, content string) (*models.Comment, error) {
	c := models.Comment{PostID: postID, UserID: userID, Content: content}
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO comments (post_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`, postID, userID, content,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("CreateComment query failed: %w", err)
	}
	return &c, nil
}

func (s *Store) PostComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT c.id, c.post_id, c.user_id, u.name, COALESCE(u.profile_pic, ''), c.content, c.created_at
		FROM comments c
		JOIN users u ON u.user_id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at`, postID)
	if err != nil {
		return nil, fmt.Errorf("PostComments query failed: %w", err)
	}
	defer rows.Close()

	out := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.AuthorName, &c.AuthorPic, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("PostComments scan failed: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ToggleReaction removes a reaction of the same type, replaces one of a
// different type, and otherwise adds it. The row lock keeps concurrent
// toggles by the same user on the same post serialized.
func (s *Store) ToggleReaction(ctx context.Context, postID int64, userID, reactionType string) (models.ReactionOutcome, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("ToggleReaction begin failed: %w", err)
	}
	defer tx.Rollback()

	var current sql.NullString
	err = tx.QueryRowContext(ctx,
		`SELECT type FROM reactions WHERE post_id = $1 AND user_id = $2 FOR UPDATE`, postID, userID,
	).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("ToggleReaction lookup failed: %w", err)
	}

	var outcome models.ReactionOutcome
	switch {
	case current.Valid && current.String == reactionType:
		_, err = tx.ExecContext(ctx, `DELETE FROM reactions WHERE post_id = $1 AND user_id = $2`, postID, userID)
		outcome = models.ReactionRemoved
	default:
		_, err = tx.ExecContext(ctx, `
			INSERT INTO reactions (post_id, user_id, type, created_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (post_id, user_id) DO UPDATE SET type = EXCLUDED.type, created_at = NOW()`,
			postID, userID, reactionType)
		outcome = models.ReactionAdded
		if current.Valid {
			outcome = models.ReactionUpdated
		}
	}
	if err != nil {
		return "", fmt.Errorf("ToggleReaction write failed: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("ToggleReaction commit failed: %w", err)
	}
	return outcome, nil
}
