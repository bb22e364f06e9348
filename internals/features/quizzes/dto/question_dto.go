package dto

import (
	"github.com/google/uuid"

	model "acadex_backend/internals/features/quizzes/model"
)

/* ==============================
   Bulk CREATE (POST /quizzes/:quiz_id/questions)
============================== */

type AnswerCreateRequest struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionCreateRequest struct {
	Text    string                `json:"text" validate:"required"`
	Answers []AnswerCreateRequest `json:"answers" validate:"required,min=2,dive"`
}

type BulkCreateQuestionsRequest struct {
	Questions []QuestionCreateRequest `json:"questions" validate:"required,min=1,dive"`
}

func (q *QuestionCreateRequest) ToModel(quizID uuid.UUID) model.QuestionModel {
	answers := make([]model.AnswerModel, 0, len(q.Answers))
	for _, a := range q.Answers {
		answers = append(answers, model.AnswerModel{
			AnswerText:      a.Text,
			AnswerIsCorrect: a.IsCorrect,
		})
	}
	return model.QuestionModel{
		QuestionQuizID: quizID,
		QuestionText:   q.Text,
		Answers:        answers,
	}
}

/* ==============================
   UPDATE (PATCH /quizzes/:quiz_id/questions/:question_id)
   Answer patches are merged into the existing answer set by id.
============================== */

type AnswerPatch struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Text      *string   `json:"text"`
	IsCorrect *bool     `json:"is_correct"`
}

type UpdateQuestionRequest struct {
	Text    *string       `json:"text"`
	Answers []AnswerPatch `json:"answers" validate:"omitempty,dive"`
}

/* ==============================
   Responses
============================== */

// AnswerResponse carries the correctness flag. Instructor views only.
type AnswerResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsCorrect bool      `json:"is_correct"`
}

type QuestionResponse struct {
	ID      uuid.UUID        `json:"id"`
	Text    string           `json:"text"`
	Answers []AnswerResponse `json:"answers"`
}

func NewQuestionResponse(m *model.QuestionModel) QuestionResponse {
	answers := make([]AnswerResponse, 0, len(m.Answers))
	for _, a := range m.Answers {
		answers = append(answers, AnswerResponse{
			ID:        a.AnswerID,
			Text:      a.AnswerText,
			IsCorrect: a.AnswerIsCorrect,
		})
	}
	return QuestionResponse{ID: m.QuestionID, Text: m.QuestionText, Answers: answers}
}

// AnswerOptionResponse is the student-facing shape. No correctness flag.
type AnswerOptionResponse struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type AttemptQuestionResponse struct {
	ID      uuid.UUID              `json:"id"`
	Text    string                 `json:"text"`
	Answers []AnswerOptionResponse `json:"answers"`
}

func NewAttemptQuestionResponse(m *model.QuestionModel) AttemptQuestionResponse {
	answers := make([]AnswerOptionResponse, 0, len(m.Answers))
	for _, a := range m.Answers {
		answers = append(answers, AnswerOptionResponse{ID: a.AnswerID, Text: a.AnswerText})
	}
	return AttemptQuestionResponse{ID: m.QuestionID, Text: m.QuestionText, Answers: answers}
}
