package question

// Defaults shared by every paginated listing and the quiz selector.
const (
	// DefaultPageSize is the number of questions per page unless configured otherwise.
	DefaultPageSize = 10
	// AnyCategory is the quiz category id meaning "no category filter".
	AnyCategory = 0
	// MaxDifficulty bounds the difficulty scale; 0 means unspecified.
	MaxDifficulty = 5
)

// Question is the wire representation of a stored question.
type Question struct {
	ID         int    `json:"id"`
	Text       string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category pairs an id with its display label.
type Category struct {
	ID    int
	Label string
}

// CategoryMap maps category ids to labels. encoding/json writes the keys in
// sorted order, so responses are deterministic.
type CategoryMap map[int]string

// CategoryList is the result of listing categories.
type CategoryList struct {
	Categories CategoryMap
	Total      int
}

// QuestionPage is one page of an ordered question listing. Total counts the
// full (possibly filtered) result set, not the page.
type QuestionPage struct {
	Questions       []Question
	Total           int
	Categories      CategoryMap
	CurrentCategory string
}

// NewQuestion carries the fields accepted when creating a question.
type NewQuestion struct {
	Text       string `json:"question" validate:"notblank"`
	Answer     string `json:"answer" validate:"notblank"`
	CategoryID int    `json:"category" validate:"required,gt=0,max=2147483647"`
	Difficulty int    `json:"difficulty" validate:"omitempty,min=1,max=5"`
}

// QuizRequest asks for the next quiz question. CategoryID AnyCategory selects
// from every category; PreviousQuestions lists ids already asked.
type QuizRequest struct {
	CategoryID        int
	PreviousQuestions []int
}
