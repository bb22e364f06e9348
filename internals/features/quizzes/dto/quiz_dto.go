package dto

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	model "acadex_backend/internals/features/quizzes/model"
	helper "acadex_backend/internals/helpers"
)

/* ==============================
   Schedule validation
============================== */

// ValidateSchedule enforces the quiz window rules at create/update time:
// start strictly before end, no date in the past, and a same-day timestamp
// must still be ahead of now.
func ValidateSchedule(start, end, now time.Time) error {
	if !start.Before(end) {
		return errors.New("Start date/time must be before end date/time.")
	}

	nowDate := now.Truncate(24 * time.Hour)
	if start.Truncate(24 * time.Hour).Before(nowDate) {
		return errors.New("Start date must be today or in the future.")
	}
	if end.Truncate(24 * time.Hour).Before(nowDate) {
		return errors.New("End date must be today or in the future.")
	}
	if sameDay(start, now) && !start.After(now) {
		return errors.New("Start time must be in the future if set for today.")
	}
	if sameDay(end, now) && !end.After(now) {
		return errors.New("End time must be in the future if set for today.")
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

/* ==============================
   CREATE (POST /quizzes)
============================== */

type CreateQuizRequest struct {
	Title             string    `json:"title" validate:"required,max=255"`
	Instructions      string    `json:"instructions" validate:"required"`
	CourseID          uuid.UUID `json:"course" validate:"required"`
	StartDateTime     time.Time `json:"start_date_time" validate:"required"`
	EndDateTime       time.Time `json:"end_date_time" validate:"required"`
	NumberOfQuestions int       `json:"number_of_questions" validate:"required,gte=1"`
	AllottedTime      string    `json:"allotted_time" validate:"required"`
	IsActive          *bool     `json:"is_active"`
}

func (r *CreateQuizRequest) ToModel() (*model.QuizModel, error) {
	allotted, err := helper.ParseAllottedTime(r.AllottedTime)
	if err != nil {
		return nil, err
	}
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &model.QuizModel{
		QuizCourseID:        r.CourseID,
		QuizTitle:           r.Title,
		QuizInstructions:    r.Instructions,
		QuizStartDateTime:   r.StartDateTime,
		QuizEndDateTime:     r.EndDateTime,
		QuizNumberOfQs:      r.NumberOfQuestions,
		QuizAllottedTimeSec: int(allotted.Seconds()),
		QuizIsActive:        isActive,
	}, nil
}

/* ==============================
   UPDATE (PATCH /quizzes/detail/:id)
   Unknown fields are rejected.
============================== */

type UpdateQuizRequest struct {
	Title             *string    `json:"title"`
	Instructions      *string    `json:"instructions"`
	StartDateTime     *time.Time `json:"start_date_time"`
	EndDateTime       *time.Time `json:"end_date_time"`
	NumberOfQuestions *int       `json:"number_of_questions"`
	AllottedTime      *string    `json:"allotted_time"`
	IsActive          *bool      `json:"is_active"`
}

var quizUpdateFields = map[string]struct{}{
	"title":               {},
	"instructions":        {},
	"start_date_time":     {},
	"end_date_time":       {},
	"number_of_questions": {},
	"allotted_time":       {},
	"is_active":           {},
}

// CheckUnknownFields rejects payload keys outside the updatable set.
func (r *UpdateQuizRequest) CheckUnknownFields(raw []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return errors.New("Invalid payload")
	}
	for k := range m {
		if _, ok := quizUpdateFields[k]; !ok {
			return errors.New("Unexpected field(s): " + k)
		}
	}
	return nil
}

// Apply merges the patch into the model. Schedule validation happens against
// the merged state.
func (r *UpdateQuizRequest) Apply(m *model.QuizModel, now time.Time) error {
	if r.Title != nil {
		m.QuizTitle = *r.Title
	}
	if r.Instructions != nil {
		m.QuizInstructions = *r.Instructions
	}
	if r.StartDateTime != nil {
		m.QuizStartDateTime = *r.StartDateTime
	}
	if r.EndDateTime != nil {
		m.QuizEndDateTime = *r.EndDateTime
	}
	if r.NumberOfQuestions != nil {
		if *r.NumberOfQuestions < 1 {
			return errors.New("number_of_questions must be at least 1")
		}
		m.QuizNumberOfQs = *r.NumberOfQuestions
	}
	if r.AllottedTime != nil {
		allotted, err := helper.ParseAllottedTime(*r.AllottedTime)
		if err != nil {
			return err
		}
		m.QuizAllottedTimeSec = int(allotted.Seconds())
	}
	if r.IsActive != nil {
		m.QuizIsActive = *r.IsActive
	}
	// The merged state must satisfy the schedule rules on every update,
	// even when the patch touches neither timestamp.
	return ValidateSchedule(m.QuizStartDateTime, m.QuizEndDateTime, now)
}

/* ==============================
   Responses
============================== */

type QuizResponse struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Instructions      string    `json:"instructions"`
	CourseID          uuid.UUID `json:"course"`
	StartDateTime     time.Time `json:"start_date_time"`
	EndDateTime       time.Time `json:"end_date_time"`
	NumberOfQuestions int       `json:"number_of_questions"`
	AllottedTime      string    `json:"allotted_time"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewQuizResponse(m *model.QuizModel) QuizResponse {
	return QuizResponse{
		ID:                m.QuizID,
		Title:             m.QuizTitle,
		Instructions:      m.QuizInstructions,
		CourseID:          m.QuizCourseID,
		StartDateTime:     m.QuizStartDateTime,
		EndDateTime:       m.QuizEndDateTime,
		NumberOfQuestions: m.QuizNumberOfQs,
		AllottedTime:      helper.FormatAllottedTime(m.QuizAllottedTimeSec),
		IsActive:          m.QuizIsActive,
		CreatedAt:         m.QuizCreatedAt,
	}
}

type CourseDetails struct {
	Title        string `json:"title"`
	CourseCode   string `json:"course_code"`
	LecturerName string `json:"lecturer_name"`
}

// Quiz listing is grouped by course.
type CourseQuizGroup struct {
	CourseID      uuid.UUID      `json:"course_id"`
	CourseDetails CourseDetails  `json:"course_details"`
	Quizzes       []QuizResponse `json:"quizzes"`
}
