package database

import (
	"context"
	"errors"
	"fmt"

	"projectvault/logging"
	"projectvault/models"
)

// FindRating returns the rating a session gave a project, or nil when the
// session has not rated it.
func (db *DB) FindRating(ctx context.Context, projectID, session string) (*models.ProjectRating, error) {
	qb := NewQueryBuilder()
	qb.AddUUIDCondition(columnProjectID, projectID)
	qb.AddCondition(columnUserSession, session)

	query := fmt.Sprintf(`
		SELECT id::text, project_id::text, user_session, rating, created_at, updated_at
		FROM project_ratings
		%s
	`, qb.WhereClause())

	var r models.ProjectRating
	err := db.Pool.QueryRow(ctx, query, qb.Args()...).Scan(
		&r.ID, &r.ProjectID, &r.UserSession, &r.Rating, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return &r, nil
}

// UpsertRating calls the upsert_project_rating procedure, which writes the
// (project, session) row and recomputes the project's rating aggregates.
func (db *DB) UpsertRating(ctx context.Context, projectID, session string, rating int) error {
	_, err := db.Pool.Exec(ctx,
		`SELECT upsert_project_rating($1::uuid, $2, $3)`,
		projectID, session, rating)
	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}

	logging.Debug().Str("project_id", projectID).Int("rating", rating).Msg("Upserted rating")
	return nil
}
