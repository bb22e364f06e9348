package model

import (
	"time"

	"github.com/google/uuid"

	courseModel "acadex_backend/internals/features/courses/model"
)

// QuizModel belongs to one course. AllottedTimeSec is the per-attempt time
// budget; the scheduling window is [StartDateTime, EndDateTime].
type QuizModel struct {
	QuizID              uuid.UUID `gorm:"column:quiz_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuizCourseID        uuid.UUID `gorm:"column:quiz_course_id;type:uuid;not null;index" json:"course"`
	QuizTitle           string    `gorm:"column:quiz_title;size:255;not null" json:"title"`
	QuizInstructions    string    `gorm:"column:quiz_instructions;type:text;not null" json:"instructions"`
	QuizStartDateTime   time.Time `gorm:"column:quiz_start_date_time;not null" json:"start_date_time"`
	QuizEndDateTime     time.Time `gorm:"column:quiz_end_date_time;not null" json:"end_date_time"`
	QuizNumberOfQs      int       `gorm:"column:quiz_number_of_questions;not null" json:"number_of_questions"`
	QuizAllottedTimeSec int       `gorm:"column:quiz_allotted_time_sec;not null" json:"-"`
	QuizIsActive        bool      `gorm:"column:quiz_is_active;not null;default:true" json:"is_active"`
	QuizCreatedAt       time.Time `gorm:"column:quiz_created_at;autoCreateTime" json:"created_at"`

	Course    *courseModel.CourseModel `gorm:"foreignKey:QuizCourseID;constraint:OnDelete:CASCADE" json:"-"`
	Questions []QuestionModel          `gorm:"foreignKey:QuestionQuizID" json:"-"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}

func (q *QuizModel) AllottedTime() time.Duration {
	return time.Duration(q.QuizAllottedTimeSec) * time.Second
}

// AttemptEndTime computes the deadline for an attempt started at now:
// min(now + allotted_time, quiz end).
func (q *QuizModel) AttemptEndTime(now time.Time) time.Time {
	end := now.Add(q.AllottedTime())
	if end.After(q.QuizEndDateTime) {
		return q.QuizEndDateTime
	}
	return end
}

// WindowOpen reports whether now falls inside the scheduling window.
func (q *QuizModel) WindowOpen(now time.Time) bool {
	return !q.QuizStartDateTime.After(now) && !q.QuizEndDateTime.Before(now)
}
