package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuestionModel is one free-text prompt in a quiz. Its options live in
// AnswerModel rows; exactly one of them is correct.
type QuestionModel struct {
	QuestionID        uuid.UUID `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuestionQuizID    uuid.UUID `gorm:"column:question_quiz_id;type:uuid;not null;index" json:"-"`
	QuestionText      string    `gorm:"column:question_text;type:text;not null" json:"text"`
	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"-"`

	Answers []AnswerModel `gorm:"foreignKey:AnswerQuestionID" json:"answers"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

type AnswerModel struct {
	AnswerID         uuid.UUID `gorm:"column:answer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AnswerQuestionID uuid.UUID `gorm:"column:answer_question_id;type:uuid;not null;index" json:"-"`
	AnswerText       string    `gorm:"column:answer_text;type:text;not null" json:"text"`
	AnswerIsCorrect  bool      `gorm:"column:answer_is_correct;not null;default:false" json:"is_correct"`
}

func (AnswerModel) TableName() string {
	return "answers"
}

// CorrectAnswer returns the single correct option, or nil if the invariant
// is broken in storage.
func (m *QuestionModel) CorrectAnswer() *AnswerModel {
	for i := range m.Answers {
		if m.Answers[i].AnswerIsCorrect {
			return &m.Answers[i]
		}
	}
	return nil
}

// ValidateAnswerSet mirrors the DB-side invariant so a bad batch fails fast:
// at least two options, non-empty texts, exactly one is_correct=true.
func (m *QuestionModel) ValidateAnswerSet() error {
	if len(m.Answers) < 2 {
		return errors.New("a question needs at least two answer options")
	}
	correct := 0
	for _, a := range m.Answers {
		if strings.TrimSpace(a.AnswerText) == "" {
			return errors.New("answer text must not be empty")
		}
		if a.AnswerIsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return errors.New("exactly one answer must be marked as correct")
	}
	return nil
}
