package question

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quizSelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "quiz_selections_total",
		Help:      "Quiz question requests by outcome (picked or exhausted).",
	}, []string{"outcome"})

	importedQuestions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "imported_questions_total",
		Help:      "Questions processed by the importer by result.",
	}, []string{"result"})
)

func observeQuizSelection(picked *Question) {
	if picked == nil {
		quizSelections.WithLabelValues("exhausted").Inc()
		return
	}
	quizSelections.WithLabelValues("picked").Inc()
}
