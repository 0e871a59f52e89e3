package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"projectvault/logging"
	"projectvault/models"
)

const projectColumns = `id::text, title, project_lead, year, category, abstract,
	description, technologies, github_url, demo_url, linkedin_url, image_url,
	likes_count, average_rating::float8, rating_count, created_at, updated_at`

// FindProjects runs a filtered, ordered, paginated read of the projects table.
// Returns an empty slice (not nil) when nothing matches.
func (db *DB) FindProjects(ctx context.Context, q models.ProjectQuery) ([]models.Project, error) {
	start := time.Now()
	defer func() {
		logging.Debug().
			Dur("duration", time.Since(start)).
			Str("category", q.Category).
			Int("year", q.Year).
			Str("search", q.Search).
			Msg("FindProjects")
	}()

	qb := NewQueryBuilder()
	if q.ID != "" {
		qb.AddUUIDCondition(columnID, q.ID)
	}
	if q.Category != "" {
		qb.AddILike(columnCategory, q.Category)
	}
	if q.Year != 0 {
		qb.AddCondition(columnYear, q.Year)
	}
	if q.Search != "" {
		qb.AddAnyILike(searchColumns, q.Search)
	}

	// SAFETY: all user input is parameterized. The WHERE and ORDER BY
	// clauses only contain column constants and SQL operators.
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		%s
		%s
	`, projectColumns, qb.WhereClause(), OrderClause(q.OrderBy))
	query += qb.AddPage(q.Limit, q.Offset)

	rows, err := db.Pool.Query(ctx, query, qb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// FindProject returns one project or ErrNoRows.
func (db *DB) FindProject(ctx context.Context, id string) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1::uuid`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// CategoryValues returns the category column of every project, ordered,
// duplicates included.
func (db *DB) CategoryValues(ctx context.Context) ([]string, error) {
	rows, err := db.Pool.Query(ctx, `SELECT category FROM projects ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return values, nil
}

// YearValues returns the year column of every project, newest first,
// duplicates included.
func (db *DB) YearValues(ctx context.Context) ([]int, error) {
	rows, err := db.Pool.Query(ctx, `SELECT year FROM projects ORDER BY year DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query years: %w", err)
	}
	defer rows.Close()

	values := []int{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating years: %w", err)
	}
	return values, nil
}

// UpdateLikesCount overwrites likes_count and updated_at and returns the
// updated row. It does not read the previous count.
func (db *DB) UpdateLikesCount(ctx context.Context, id string, count int, updatedAt time.Time) (*models.Project, error) {
	query := fmt.Sprintf(`
		UPDATE projects
		SET likes_count = $2, updated_at = $3
		WHERE id = $1::uuid
		RETURNING %s
	`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, id, count, updatedAt))
	if err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("failed to update likes: %w", err)
	}

	logging.Debug().Str("project_id", id).Int("likes_count", count).Msg("Updated likes count")
	return project, nil
}

// InsertProject adds a catalog entry. ID, counters and ratings are assigned
// by the database; CreatedAt is honoured when set.
func (db *DB) InsertProject(ctx context.Context, p models.Project) (*models.Project, error) {
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	technologies := p.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	query := fmt.Sprintf(`
		INSERT INTO projects (title, project_lead, year, category, abstract,
			description, technologies, github_url, demo_url, linkedin_url, image_url,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING %s
	`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query,
		p.Title, p.ProjectLead, p.Year, p.Category, p.Abstract,
		p.Description, technologies, p.GithubURL, p.DemoURL, p.LinkedinURL, p.ImageURL,
		createdAt))
	if err != nil {
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	logging.Debug().Str("project_id", project.ID).Str("title", project.Title).Msg("Inserted project")
	return project, nil
}

// Helper functions

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.ProjectLead,
		&project.Year,
		&project.Category,
		&project.Abstract,
		&project.Description,
		&project.Technologies,
		&project.GithubURL,
		&project.DemoURL,
		&project.LinkedinURL,
		&project.ImageURL,
		&project.LikesCount,
		&project.AverageRating,
		&project.RatingCount,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	return &project, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}
