package database

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns a user term into an ILIKE substring pattern.
// LIKE wildcards inside the term are escaped so that they match literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// containsFold reports whether s contains substr, ignoring case.
// It is the in-memory counterpart of likePattern + ILIKE.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// matchesSearch reports whether term occurs in any searchable field.
func matchesSearch(title, abstract, projectLead, term string) bool {
	return containsFold(title, term) ||
		containsFold(abstract, term) ||
		containsFold(projectLead, term)
}
