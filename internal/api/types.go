package api

// Difficulty levels issued by the backend. The six-question interview is
// always 2 easy + 2 medium + 2 hard for a total achievable score of 20.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// TotalQuestions is the fixed interview length.
const TotalQuestions = 6

// TotalScore is the fixed total achievable score.
const TotalScore = 20

// MaxScore returns the maximum score for a question of the given difficulty.
func MaxScore(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return 2
	case DifficultyHard:
		return 5
	default:
		return 3
	}
}

// DefaultTimeLimit returns the time budget in seconds for the given
// difficulty, used when the backend omits a per-question limit.
func DefaultTimeLimit(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return 20
	case DifficultyHard:
		return 120
	default:
		return 60
	}
}

// ParsedResume holds the fields extracted from an uploaded resume, staged
// client-side until the candidate record is created.
type ParsedResume struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ResumeText string `json:"resumeText,omitempty"`
	ResumeURL  string `json:"resumeUrl,omitempty"`
}

// UploadResumeResponse is returned by POST /interview/upload-resume.
type UploadResumeResponse struct {
	ParsedData    ParsedResume `json:"parsedData"`
	MissingFields []string     `json:"missingFields"`
}

// CandidateData carries the stored profile of an existing candidate.
type CandidateData struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ResumeURL  string `json:"resumeUrl"`
	FinalScore *int   `json:"final_score"`
	Summary    string `json:"summary"`
}

// CreateOrCheckResponse is returned by POST /interview/create-or-check-candidate.
type CreateOrCheckResponse struct {
	Exists        bool           `json:"exists"`
	CandidateID   string         `json:"candidateId"`
	Status        string         `json:"status"`
	IsCompleted   bool           `json:"isCompleted"`
	CandidateData *CandidateData `json:"candidateData,omitempty"`
}

// Question is a single interview question. Immutable once issued by the
// backend; the client only ever attaches the answer.
type Question struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	Difficulty string  `json:"difficulty"`
	TimeLimit  int     `json:"time_limit"`
	Answer     *string `json:"answer,omitempty"`
	Score      *int    `json:"score,omitempty"`
	Feedback   string  `json:"feedback,omitempty"`
	StartTime  string  `json:"start_time,omitempty"`
	EndTime    string  `json:"end_time,omitempty"`
}

// EffectiveTimeLimit returns the question's time limit, falling back to the
// difficulty default when the backend left it unset.
func (q *Question) EffectiveTimeLimit() int {
	if q.TimeLimit > 0 {
		return q.TimeLimit
	}
	return DefaultTimeLimit(q.Difficulty)
}

// StartInterviewResponse is returned by POST /interview/start-interview/{id}.
// Exactly one of three shapes applies: interview already completed, resuming
// an in-flight session, or a fresh start with question 1.
type StartInterviewResponse struct {
	InterviewCompleted bool       `json:"interview_completed"`
	SessionID          string     `json:"session_id"`
	Question           *Question  `json:"question,omitempty"`
	Resuming           bool       `json:"resuming"`
	QuestionNumber     int        `json:"question_number"`
	ElapsedTime        int        `json:"elapsed_time"`
	FinalScore         *int       `json:"final_score,omitempty"`
	Summary            string     `json:"summary,omitempty"`
	Questions          []Question `json:"questions,omitempty"`
	CompletedAt        string     `json:"completed_at,omitempty"`
}

// Evaluation is the score and feedback for one submitted answer.
type Evaluation struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// SubmitAnswerResponse is returned by POST /interview/submit-answer/{id}.
type SubmitAnswerResponse struct {
	AlreadyAnswered bool        `json:"already_answered"`
	Completed       bool        `json:"completed"`
	Evaluation      *Evaluation `json:"evaluation,omitempty"`
	NextQuestion    *Question   `json:"next_question,omitempty"`
	QuestionNumber  int         `json:"question_number"`
	FinalScore      *int        `json:"final_score,omitempty"`
	Summary         string      `json:"summary,omitempty"`
}

// SessionDetail is the interview session embedded in a candidate detail.
type SessionDetail struct {
	ID          string     `json:"id"`
	Questions   []Question `json:"questions"`
	StartTime   string     `json:"start_time,omitempty"`
	EndTime     string     `json:"end_time,omitempty"`
	IsCompleted bool       `json:"is_completed"`
}

// Candidate is a backend candidate record as returned by the candidates
// endpoints.
type Candidate struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Status     string         `json:"status"`
	FinalScore *int           `json:"final_score"`
	Summary    string         `json:"summary,omitempty"`
	ResumeURL  string         `json:"resume_url,omitempty"`
	ResumeText string         `json:"resume_text,omitempty"`
	CreatedAt  string         `json:"created_at,omitempty"`
	Session    *SessionDetail `json:"session,omitempty"`
}
