package database

import (
	"context"
	"fmt"

	"LearningHubBackend/models"
)

func (s *Store) CreateSponsor(ctx context.Context, sp *models.Sponsor) error {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO sponsors_partners (name, kind, logo_path, website)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		sp.Name, sp.Kind, nullString(sp.LogoPath), nullString(sp.Website),
	).Scan(&sp.ID, &sp.CreatedAt)
	if err != nil {
		return fmt.Errorf("CreateSponsor query failed: %w", err)
	}
	return nil
}

func (s *Store) ListSponsors(ctx context.Context) ([]models.Sponsor, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, kind, COALESCE(logo_path, ''), COALESCE(website, ''), created_at
		FROM sponsors_partners
		ORDER BY kind, name`)
	if err != nil {
		return nil, fmt.Errorf("ListSponsors query failed: %w", err)
	}
	defer rows.Close()

	out := []models.Sponsor{}
	for rows.Next() {
		var sp models.Sponsor
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Kind, &sp.LogoPath, &sp.Website, &sp.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListSponsors scan failed: %w", err)
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (s *Store) DeleteSponsor(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM sponsors_partners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteSponsor query failed: %w", err)
	}
	return expectOne(res)
}
