package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("What is the largest lake in Africa?", "africa"))
	assert.True(t, ContainsFold("Who discovered penicillin?", "PENI"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("Who discovered penicillin?", "impossible123"))
}

func TestMatchesUsesQuestionTextOnly(t *testing.T) {
	q := Question{Text: "Who invented Peanut Butter?", Answer: "George Washington Carver"}

	assert.True(t, Matches(q, "peanut"))
	assert.False(t, Matches(q, "Carver"))
}
