package entity

type QuizState string

const (
	QuizStateNotStarted              QuizState = "NOT_STARTED"
	QuizStateAwaitingInput           QuizState = "AWAITING_INPUT"
	QuizStateAwaitingAcknowledgement QuizState = "AWAITING_ACKNOWLEDGEMENT"
	QuizStateFinished                QuizState = "FINISHED"
)

// Request untuk mulai quiz
type StartQuizRequest struct {
	Set string `json:"set" validate:"required"`
}

// Request untuk submit jawaban. Answer is compared untrimmed, so an empty
// string is a legitimate (wrong) answer.
type QuizAnswerRequest struct {
	Answer string `json:"answer"`
}

// Request untuk key event
type QuizKeyRequest struct {
	Key string `json:"key" validate:"required"`
}

// Result of a single submission
type QuizAnswerResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
}

// QuizView is what the client renders for a session
type QuizView struct {
	SessionID        string       `json:"session_id"`
	Set              string       `json:"set"`
	State            QuizState    `json:"state"`
	Definition       string       `json:"definition,omitempty"`
	CorrectAnswer    string       `json:"correct_answer,omitempty"`
	Score            int          `json:"score"`
	Served           int          `json:"served"`
	Total            int          `json:"total"`
	IncorrectAnswers []WordRecord `json:"incorrect_answers,omitempty"`
}

// Response untuk submit jawaban
type QuizAnswerResponse struct {
	Result QuizAnswerResult `json:"result"`
	Quiz   QuizView         `json:"quiz"`
}

// Response untuk hint
type QuizHintResponse struct {
	SessionID string `json:"session_id"`
	Hint      string `json:"hint"`
	Source    string `json:"source"` // ai, fallback
}
