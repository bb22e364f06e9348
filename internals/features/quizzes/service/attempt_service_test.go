package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"acadex_backend/internals/features/quizzes/dto"
	model "acadex_backend/internals/features/quizzes/model"
)

func buildQuestion(text string, correctIdx int, options ...string) model.QuestionModel {
	q := model.QuestionModel{QuestionID: uuid.New(), QuestionText: text}
	for i, opt := range options {
		q.Answers = append(q.Answers, model.AnswerModel{
			AnswerID:         uuid.New(),
			AnswerQuestionID: q.QuestionID,
			AnswerText:       opt,
			AnswerIsCorrect:  i == correctIdx,
		})
	}
	return q
}

func TestGradeScoresAndFeedback(t *testing.T) {
	attemptID := uuid.New()
	q1 := buildQuestion("2+2?", 1, "3", "4", "5")
	q2 := buildQuestion("Capital of France?", 0, "Paris", "Lyon")
	q3 := buildQuestion("Largest planet?", 2, "Mars", "Earth", "Jupiter")

	submitted := []dto.SubmittedAnswer{
		{QuestionID: q1.QuestionID, SelectedOptionID: q1.Answers[1].AnswerID}, // correct
		{QuestionID: q2.QuestionID, SelectedOptionID: q2.Answers[1].AnswerID}, // wrong
		// q3 left unanswered
	}

	res, err := Grade(attemptID, []model.QuestionModel{q1, q2, q3}, submitted)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}

	if res.Score != 1 {
		t.Errorf("score = %d, want 1", res.Score)
	}
	if res.Total != 3 {
		t.Errorf("total = %d, want 3", res.Total)
	}
	if len(res.Feedback) != 3 {
		t.Fatalf("feedback items = %d, want 3", len(res.Feedback))
	}
	if len(res.Rows) != 2 {
		t.Fatalf("answer rows = %d, want 2 (unanswered question must not produce a row)", len(res.Rows))
	}

	// Correct answer: no correct_option_text revealed.
	f1 := res.Feedback[0]
	if !f1.IsCorrect || f1.SelectedOptionText == nil || *f1.SelectedOptionText != "4" || f1.CorrectOptionText != "" {
		t.Errorf("correct answer feedback = %+v", f1)
	}

	// Wrong answer: selected text plus the correct option revealed.
	f2 := res.Feedback[1]
	if f2.IsCorrect || f2.SelectedOptionText == nil || *f2.SelectedOptionText != "Lyon" || f2.CorrectOptionText != "Paris" {
		t.Errorf("wrong answer feedback = %+v", f2)
	}

	// Unanswered: null selection, correct option revealed.
	f3 := res.Feedback[2]
	if f3.IsCorrect || f3.SelectedOptionText != nil || f3.CorrectOptionText != "Jupiter" {
		t.Errorf("unanswered feedback = %+v", f3)
	}

	for _, row := range res.Rows {
		if row.StudentAnswerAttemptID != attemptID {
			t.Errorf("row attempt id = %s, want %s", row.StudentAnswerAttemptID, attemptID)
		}
	}
}

func TestGradeRejectsBadSubmissions(t *testing.T) {
	attemptID := uuid.New()
	q := buildQuestion("Q?", 0, "a", "b")
	other := buildQuestion("Other?", 0, "x", "y")

	tests := []struct {
		name      string
		submitted []dto.SubmittedAnswer
	}{
		{
			name: "unknown question",
			submitted: []dto.SubmittedAnswer{
				{QuestionID: other.QuestionID, SelectedOptionID: other.Answers[0].AnswerID},
			},
		},
		{
			name: "duplicate question",
			submitted: []dto.SubmittedAnswer{
				{QuestionID: q.QuestionID, SelectedOptionID: q.Answers[0].AnswerID},
				{QuestionID: q.QuestionID, SelectedOptionID: q.Answers[1].AnswerID},
			},
		},
		{
			name: "foreign option",
			submitted: []dto.SubmittedAnswer{
				{QuestionID: q.QuestionID, SelectedOptionID: other.Answers[0].AnswerID},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Grade(attemptID, []model.QuestionModel{q}, tt.submitted); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestGradeEmptySubmission(t *testing.T) {
	q1 := buildQuestion("Q1?", 0, "a", "b")
	q2 := buildQuestion("Q2?", 1, "c", "d")

	res, err := Grade(uuid.New(), []model.QuestionModel{q1, q2}, nil)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 0 || len(res.Rows) != 0 || len(res.Feedback) != 2 {
		t.Errorf("empty submission: score=%d rows=%d feedback=%d", res.Score, len(res.Rows), len(res.Feedback))
	}
}

func TestAttemptEndTimeClampsToQuizEnd(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	quiz := model.QuizModel{
		QuizStartDateTime:   now.Add(-time.Hour),
		QuizEndDateTime:     now.Add(20 * time.Minute),
		QuizAllottedTimeSec: 3600,
	}

	// Allotted time would overrun the quiz window; the window wins.
	if got := quiz.AttemptEndTime(now); !got.Equal(quiz.QuizEndDateTime) {
		t.Errorf("end time = %s, want quiz end %s", got, quiz.QuizEndDateTime)
	}

	// Plenty of window left; the allotted time wins.
	quiz.QuizEndDateTime = now.Add(3 * time.Hour)
	if got, want := quiz.AttemptEndTime(now), now.Add(time.Hour); !got.Equal(want) {
		t.Errorf("end time = %s, want %s", got, want)
	}
}

func TestCheckSubmittable(t *testing.T) {
	owner := uuid.New()
	end := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)

	base := func() *model.QuizAttemptModel {
		return &model.QuizAttemptModel{
			AttemptID:        uuid.New(),
			AttemptStudentID: owner,
			AttemptEndTime:   end,
			AttemptStatus:    model.QuizAttemptCreated,
		}
	}

	tests := []struct {
		name     string
		mutate   func(*model.QuizAttemptModel)
		student  uuid.UUID
		now      time.Time
		wantCode int // 0 means allowed
	}{
		{
			name:    "before end time",
			student: owner,
			now:     end.Add(-10 * time.Minute),
		},
		{
			name:    "just inside grace",
			student: owner,
			now:     end.Add(SubmissionGrace - time.Second),
		},
		{
			name:     "past grace",
			student:  owner,
			now:      end.Add(2 * time.Minute),
			wantCode: 400,
		},
		{
			name:     "someone else's attempt",
			student:  uuid.New(),
			now:      end.Add(-10 * time.Minute),
			wantCode: 403,
		},
		{
			name:     "already submitted",
			mutate:   func(a *model.QuizAttemptModel) { a.AttemptStatus = model.QuizAttemptSubmitted },
			student:  owner,
			now:      end.Add(-10 * time.Minute),
			wantCode: 400,
		},
		{
			name:     "ownership beats submitted state",
			mutate:   func(a *model.QuizAttemptModel) { a.AttemptStatus = model.QuizAttemptSubmitted },
			student:  uuid.New(),
			now:      end.Add(-10 * time.Minute),
			wantCode: 403,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempt := base()
			if tt.mutate != nil {
				tt.mutate(attempt)
			}
			err := CheckSubmittable(attempt, tt.student, tt.now)
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("expected submittable, got %v", err)
				}
				return
			}
			fe, ok := err.(*fiber.Error)
			if !ok {
				t.Fatalf("expected *fiber.Error, got %v", err)
			}
			if fe.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (%s)", fe.Code, tt.wantCode, fe.Message)
			}
		})
	}
}
