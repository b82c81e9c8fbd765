package question

import "strings"

// ContainsFold reports whether term occurs in text, ignoring case. It is a
// plain substring test: no tokenizing, stemming or ranking.
func ContainsFold(text, term string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

// Matches reports whether the question text contains term.
func Matches(q Question, term string) bool {
	return ContainsFold(q.Text, term)
}

func isBlank(term string) bool {
	return strings.TrimSpace(term) == ""
}
