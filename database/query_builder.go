package database

import (
	"fmt"
	"strings"

	"projectvault/models"
)

const (
	columnID            = "id"
	columnTitle         = "title"
	columnProjectLead   = "project_lead"
	columnYear          = "year"
	columnCategory      = "category"
	columnAbstract      = "abstract"
	columnLikesCount    = "likes_count"
	columnAverageRating = "average_rating"
	columnCreatedAt     = "created_at"
	columnUpdatedAt     = "updated_at"
	columnProjectID     = "project_id"
	columnUserSession   = "user_session"

	maxLimit = 1000
)

// searchColumns are OR-ed together for a free-text search.
var searchColumns = []string{columnTitle, columnAbstract, columnProjectLead}

// orderableColumns guards ORDER BY against arbitrary identifiers.
var orderableColumns = map[string]bool{
	columnCreatedAt:     true,
	columnUpdatedAt:     true,
	columnLikesCount:    true,
	columnAverageRating: true,
	columnYear:          true,
	columnTitle:         true,
	columnCategory:      true,
}

// QueryBuilder helps build WHERE clauses safely
type QueryBuilder struct {
	conditions []string
	args       []interface{}
	argCount   int
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		conditions: []string{},
		args:       []interface{}{},
		argCount:   1,
	}
}

func (qb *QueryBuilder) AddCondition(column string, value interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s = $%d", column, qb.argCount))
	qb.args = append(qb.args, value)
	qb.argCount++
}

// AddUUIDCondition matches a uuid column against a text parameter.
func (qb *QueryBuilder) AddUUIDCondition(column, value string) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s = $%d::uuid", column, qb.argCount))
	qb.args = append(qb.args, value)
	qb.argCount++
}

// AddILike adds a case-insensitive substring match on one column.
func (qb *QueryBuilder) AddILike(column, term string) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s ILIKE $%d", column, qb.argCount))
	qb.args = append(qb.args, likePattern(term))
	qb.argCount++
}

// AddAnyILike adds one parenthesised OR group matching term against each
// column. All columns share a single placeholder.
func (qb *QueryBuilder) AddAnyILike(columns []string, term string) {
	if len(columns) == 0 {
		return
	}
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, fmt.Sprintf("%s ILIKE $%d", column, qb.argCount))
	}
	qb.conditions = append(qb.conditions, "("+strings.Join(parts, " OR ")+")")
	qb.args = append(qb.args, likePattern(term))
	qb.argCount++
}

func (qb *QueryBuilder) WhereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

func (qb *QueryBuilder) Args() []interface{} {
	return qb.args
}

func (qb *QueryBuilder) NextArgNum() int {
	return qb.argCount
}

// AddPage appends LIMIT/OFFSET placeholders. A zero limit leaves the result
// unbounded; a zero offset is omitted.
func (qb *QueryBuilder) AddPage(limit, offset int) string {
	clause := ""
	if limit = validateLimit(limit, maxLimit); limit > 0 {
		clause += fmt.Sprintf(" LIMIT $%d", qb.argCount)
		qb.args = append(qb.args, limit)
		qb.argCount++
	}
	if offset = validateOffset(offset); offset > 0 {
		clause += fmt.Sprintf(" OFFSET $%d", qb.argCount)
		qb.args = append(qb.args, offset)
		qb.argCount++
	}
	return clause
}

// OrderClause renders ORDER BY for whitelisted columns, skipping any other.
func OrderClause(orders []models.Order) string {
	terms := []string{}
	for _, o := range orders {
		if !orderableColumns[o.Column] {
			continue
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		terms = append(terms, o.Column+" "+dir)
	}
	if len(terms) == 0 {
		return ""
	}
	return "ORDER BY " + strings.Join(terms, ", ")
}

// Helper functions

func validateLimit(limit, maxLimit int) int {
	if limit <= 0 {
		return 0
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func validateOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
