package dto

import (
	"time"

	"github.com/google/uuid"

	model "acadex_backend/internals/features/quizzes/model"
)

/* ==============================
   START (POST /quizzes/:quiz_id/attempt)
============================== */

type StartAttemptResponse struct {
	AttemptID    uuid.UUID                 `json:"attempt_id"`
	QuizID       uuid.UUID                 `json:"quiz_id"`
	QuizTitle    string                    `json:"quiz_title"`
	Instructions string                    `json:"instructions"`
	StartTime    time.Time                 `json:"start_time"`
	EndTime      time.Time                 `json:"end_time"`
	Questions    []AttemptQuestionResponse `json:"questions"`
}

func NewStartAttemptResponse(attempt *model.QuizAttemptModel, quiz *model.QuizModel) StartAttemptResponse {
	questions := make([]AttemptQuestionResponse, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		questions = append(questions, NewAttemptQuestionResponse(&quiz.Questions[i]))
	}
	return StartAttemptResponse{
		AttemptID:    attempt.AttemptID,
		QuizID:       quiz.QuizID,
		QuizTitle:    quiz.QuizTitle,
		Instructions: quiz.QuizInstructions,
		StartTime:    attempt.AttemptTime,
		EndTime:      attempt.AttemptEndTime,
		Questions:    questions,
	}
}

/* ==============================
   SUBMIT (POST /quizzes/:quiz_id/attempt/submit)
============================== */

type SubmittedAnswer struct {
	QuestionID       uuid.UUID `json:"question_id" validate:"required"`
	SelectedOptionID uuid.UUID `json:"selected_option_id" validate:"required"`
}

type SubmitAttemptRequest struct {
	AttemptID uuid.UUID         `json:"attempt_id" validate:"required"`
	Answers   []SubmittedAnswer `json:"answers" validate:"dive"`
}

// FeedbackItem is one per quiz question, answered or not. Selected text is
// null for unanswered questions; the correct option text is only revealed
// when the question was missed.
type FeedbackItem struct {
	QuestionID         uuid.UUID `json:"question_id"`
	QuestionText       string    `json:"question_text"`
	SelectedOptionText *string   `json:"selected_option_text"`
	IsCorrect          bool      `json:"is_correct"`
	CorrectOptionText  string    `json:"correct_option_text,omitempty"`
}

type SubmitAttemptResponse struct {
	AttemptID      uuid.UUID      `json:"attempt_id"`
	QuizID         uuid.UUID      `json:"quiz_id"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	Feedback       []FeedbackItem `json:"quiz_questions"`
}

/* ==============================
   Result / reporting views
============================== */

type AttemptSummaryResponse struct {
	AttemptID    uuid.UUID `json:"attempt_id"`
	QuizID       uuid.UUID `json:"quiz_id"`
	QuizTitle    string    `json:"quiz_title"`
	MatricNumber string    `json:"matric_number,omitempty"`
	StudentName  string    `json:"student_name,omitempty"`
	Score        int       `json:"score"`
	Status       string    `json:"status"`
	AttemptTime  time.Time `json:"attempt_time"`
}

type AttemptResultResponse struct {
	AttemptSummaryResponse
	TotalQuestions int            `json:"total_questions"`
	Feedback       []FeedbackItem `json:"quiz_questions"`
}
