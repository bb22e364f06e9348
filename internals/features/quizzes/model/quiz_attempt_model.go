package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	userModel "acadex_backend/internals/features/accounts/user/model"
)

// Attempt lifecycle. CREATED means the row exists and no answers have been
// recorded; SUBMITTED is terminal.
type QuizAttemptStatus string

const (
	QuizAttemptCreated   QuizAttemptStatus = "created"
	QuizAttemptSubmitted QuizAttemptStatus = "submitted"
)

// QuizAttemptModel is one per (quiz, student); the unique index is the
// serialization point for concurrent attempt starts.
type QuizAttemptModel struct {
	AttemptID        uuid.UUID         `gorm:"column:attempt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attempt_id"`
	AttemptQuizID    uuid.UUID         `gorm:"column:attempt_quiz_id;type:uuid;not null;uniqueIndex:uq_attempt_quiz_student" json:"quiz_id"`
	AttemptStudentID uuid.UUID         `gorm:"column:attempt_student_id;type:uuid;not null;uniqueIndex:uq_attempt_quiz_student" json:"student_id"`
	AttemptTime      time.Time         `gorm:"column:attempt_time;not null" json:"attempt_time"`
	AttemptEndTime   time.Time         `gorm:"column:attempt_end_time;not null" json:"end_time"`
	AttemptScore     int               `gorm:"column:attempt_score;not null;default:0" json:"score"`
	AttemptStatus    QuizAttemptStatus `gorm:"column:attempt_status;type:varchar(12);not null;default:'created'" json:"status"`

	// Raw submitted payload, kept for audit. Written once at submission.
	AttemptSubmission datatypes.JSON `gorm:"column:attempt_submission;type:jsonb" json:"-"`

	AttemptCreatedAt time.Time `gorm:"column:attempt_created_at;autoCreateTime" json:"-"`
	AttemptUpdatedAt time.Time `gorm:"column:attempt_updated_at;autoUpdateTime" json:"-"`

	Quiz    *QuizModel              `gorm:"foreignKey:AttemptQuizID;constraint:OnDelete:CASCADE" json:"-"`
	Student *userModel.StudentModel `gorm:"foreignKey:AttemptStudentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuizAttemptModel) TableName() string {
	return "quiz_attempts"
}

func (m *QuizAttemptModel) IsSubmitted() bool {
	return m.AttemptStatus == QuizAttemptSubmitted
}

// StudentAnswerModel snapshots one selected option per (attempt, question).
// IsCorrect is recorded at submission time and never recomputed.
type StudentAnswerModel struct {
	StudentAnswerID         uuid.UUID `gorm:"column:student_answer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentAnswerAttemptID  uuid.UUID `gorm:"column:student_answer_attempt_id;type:uuid;not null;uniqueIndex:uq_student_answer_attempt_question" json:"attempt_id"`
	StudentAnswerQuestionID uuid.UUID `gorm:"column:student_answer_question_id;type:uuid;not null;uniqueIndex:uq_student_answer_attempt_question" json:"question_id"`
	StudentAnswerSelectedID uuid.UUID `gorm:"column:student_answer_selected_id;type:uuid;not null" json:"selected_option_id"`
	StudentAnswerIsCorrect  bool      `gorm:"column:student_answer_is_correct;not null" json:"is_correct"`
	StudentAnswerCreatedAt  time.Time `gorm:"column:student_answer_created_at;autoCreateTime" json:"-"`

	Attempt  *QuizAttemptModel `gorm:"foreignKey:StudentAnswerAttemptID;constraint:OnDelete:CASCADE" json:"-"`
	Question *QuestionModel    `gorm:"foreignKey:StudentAnswerQuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Selected *AnswerModel      `gorm:"foreignKey:StudentAnswerSelectedID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StudentAnswerModel) TableName() string {
	return "student_answers"
}
