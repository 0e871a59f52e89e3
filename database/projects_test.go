package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectvault/models"
)

func fixtureIDs(t *testing.T, seeded []TestProject, stored []models.Project) []string {
	t.Helper()

	byID := map[string]string{}
	for _, s := range seeded {
		byID[s.ID] = s.FixtureID
	}
	out := []string{}
	for _, p := range stored {
		out = append(out, byID[p.ID])
	}
	return out
}

func TestFindProjects_NewestFirst(t *testing.T) {
	db := GetTestDB(t)
	CleanupTestDB(t, db)
	seeded := SeedTestDB(t, db)

	projects, err := db.FindProjects(context.Background(), models.ProjectQuery{OrderBy: newestFirst})
	require.NoError(t, err)

	require.Len(t, projects, 20)
	got := fixtureIDs(t, seeded, projects)
	assert.Equal(t, "20", got[0])
	assert.Equal(t, "1", got[19])
}

func TestFindProjects_Search(t *testing.T) {
	db := GetTestDB(t)
	CleanupTestDB(t, db)
	seeded := SeedTestDB(t, db)

	projects, err := db.FindProjects(context.Background(), models.ProjectQuery{
		Search:  "ROBOT",
		OrderBy: newestFirst,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"17", "7"}, fixtureIDs(t, seeded, projects))
}

func TestFindProjects_CategoryYearAndPage(t *testing.T) {
	db := GetTestDB(t)
	CleanupTestDB(t, db)
	seeded := SeedTestDB(t, db)
	ctx := context.Background()

	projects, err := db.FindProjects(ctx, models.ProjectQuery{Category: "iot", Year: 2024, OrderBy: newestFirst})
	require.NoError(t, err)
	assert.Equal(t, []string{"13", "11", "4"}, fixtureIDs(t, seeded, projects))

	projects, err = db.FindProjects(ctx, models.ProjectQuery{Year: 2023})
	require.NoError(t, err)
	assert.Empty(t, projects)

	projects, err = db.FindProjects(ctx, models.ProjectQuery{OrderBy: newestFirst, Limit: 2, Offset: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"15", "14"}, fixtureIDs(t, seeded, projects))
}

func TestFindProjects_WildcardsMatchLiterally(t *testing.T) {
	db := GetTestDB(t)
	CleanupTestDB(t, db)
	SeedTestDB(t, db)

	projects, err := db.FindProjects(context.Background(), models.ProjectQuery{Search: "%"})
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestFindProject(t *testing.T) {
	db := GetTestDB(t)
	CleanupTestDB(t, db)
	seeded := SeedTestDB(t, db)
	ctx := context.Background()

	p, err := db.FindProject(ctx, seeded[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "BIONIC ARM", p.Title)
	assert.Equal(t, 2024, p.Year)
	require.NotNil(t, p.LinkedinURL)
	assert.NotNil(t, p.Technologies)

	_, err = db.FindProject(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestCategoryAndYearValues(t *testing.T) {
	db := GetTestDB(t)
	CleanupTestDB(t, db)
	SeedTestDB(t, db)
	ctx := context.Background()

	categories, err := db.CategoryValues(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 20)

	years, err := db.YearValues(ctx)
	require.NoError(t, err)
	assert.Len(t, years, 20)
	assert.Equal(t, 2024, years[0])
}

func TestUpdateLikesCount(t *testing.T) {
	db := GetTestDB(t)
	CleanupTestDB(t, db)
	seeded := SeedTestDB(t, db)
	ctx := context.Background()
	at := time.Now().UTC().Truncate(time.Second)

	p, err := db.UpdateLikesCount(ctx, seeded[0].ID, 4, at)
	require.NoError(t, err)
	assert.Equal(t, 4, p.LikesCount)
	assert.True(t, p.UpdatedAt.Equal(at))

	_, err = db.UpdateLikesCount(ctx, uuid.New().String(), 1, at)
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestUpsertRating(t *testing.T) {
	db := GetTestDB(t)
	CleanupTestDB(t, db)
	seeded := SeedTestDB(t, db)
	ctx := context.Background()
	id := seeded[2].ID

	r, err := db.FindRating(ctx, id, "anon_a")
	require.NoError(t, err)
	assert.Nil(t, r)

	require.NoError(t, db.UpsertRating(ctx, id, "anon_a", 3))
	require.NoError(t, db.UpsertRating(ctx, id, "anon_a", 5))
	require.NoError(t, db.UpsertRating(ctx, id, "anon_b", 4))

	r, err = db.FindRating(ctx, id, "anon_a")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, 5, r.Rating)

	var rows int
	err = db.Pool.QueryRow(ctx, `SELECT count(*) FROM project_ratings WHERE project_id = $1::uuid`, id).Scan(&rows)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	p, err := db.FindProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, p.RatingCount)
	assert.InDelta(t, 4.5, p.AverageRating, 0.001)
}

func TestUpsertRating_OutOfRangeRejectedByDatabase(t *testing.T) {
	db := GetTestDB(t)
	CleanupTestDB(t, db)
	seeded := SeedTestDB(t, db)

	err := db.UpsertRating(context.Background(), seeded[0].ID, "anon_a", 9)
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	db := GetTestDB(t)

	assert.NoError(t, db.Ping(context.Background()))
}
