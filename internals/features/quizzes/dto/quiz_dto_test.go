package dto

import (
	"testing"
	"time"

	model "acadex_backend/internals/features/quizzes/model"
)

func TestValidateSchedule(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{
			name:  "future window",
			start: now.Add(24 * time.Hour),
			end:   now.Add(48 * time.Hour),
		},
		{
			name:  "same day later today",
			start: now.Add(2 * time.Hour),
			end:   now.Add(4 * time.Hour),
		},
		{
			name:    "start equals end",
			start:   now.Add(24 * time.Hour),
			end:     now.Add(24 * time.Hour),
			wantErr: true,
		},
		{
			name:    "start after end",
			start:   now.Add(48 * time.Hour),
			end:     now.Add(24 * time.Hour),
			wantErr: true,
		},
		{
			name:    "start date in the past",
			start:   now.Add(-48 * time.Hour),
			end:     now.Add(24 * time.Hour),
			wantErr: true,
		},
		{
			name:    "same day but already past",
			start:   now.Add(-time.Hour),
			end:     now.Add(4 * time.Hour),
			wantErr: true,
		},
		{
			name:    "same day end already past",
			start:   now.Add(-2 * time.Hour),
			end:     now.Add(-time.Hour),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchedule(tt.start, tt.end, now)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSchedule(%s, %s) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}

func TestUpdateQuizRequestCheckUnknownFields(t *testing.T) {
	var r UpdateQuizRequest

	if err := r.CheckUnknownFields([]byte(`{"title":"New title","is_active":false}`)); err != nil {
		t.Errorf("known fields rejected: %v", err)
	}
	if err := r.CheckUnknownFields([]byte(`{"title":"x","course":"other-course"}`)); err == nil {
		t.Error("unknown field accepted")
	}
	if err := r.CheckUnknownFields([]byte(`not json`)); err == nil {
		t.Error("malformed payload accepted")
	}
}

func TestUpdateQuizRequestApply(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	quiz := mustQuiz(t, now)
	newTitle := "Midterm (rescheduled)"
	newAllotted := "00:45:00"
	r := UpdateQuizRequest{Title: &newTitle, AllottedTime: &newAllotted}
	if err := r.Apply(quiz, now); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if quiz.QuizTitle != newTitle {
		t.Errorf("title = %q", quiz.QuizTitle)
	}
	if quiz.QuizAllottedTimeSec != 45*60 {
		t.Errorf("allotted seconds = %d, want %d", quiz.QuizAllottedTimeSec, 45*60)
	}

	// A patch that moves the start past the end is rejected.
	quiz = mustQuiz(t, now)
	badStart := quiz.QuizEndDateTime.Add(time.Hour)
	r = UpdateQuizRequest{StartDateTime: &badStart}
	if err := r.Apply(quiz, now); err == nil {
		t.Error("expected schedule error, got nil")
	}
}

func TestUpdateQuizRequestApplyRevalidatesUntouchedSchedule(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Window already over; even a patch that leaves the schedule alone
	// must fail the merged-state validation.
	quiz := mustQuiz(t, now)
	quiz.QuizStartDateTime = now.Add(-72 * time.Hour)
	quiz.QuizEndDateTime = now.Add(-48 * time.Hour)

	title := "Renamed"
	r := UpdateQuizRequest{Title: &title}
	if err := r.Apply(quiz, now); err == nil {
		t.Error("title-only patch on a past-window quiz accepted, want schedule error")
	}

	inactive := false
	r = UpdateQuizRequest{IsActive: &inactive}
	if err := r.Apply(quiz, now); err == nil {
		t.Error("is_active-only patch on a past-window quiz accepted, want schedule error")
	}
}

func mustQuiz(t *testing.T, now time.Time) *model.QuizModel {
	t.Helper()
	req := CreateQuizRequest{
		Title:             "Midterm",
		Instructions:      "Answer everything.",
		StartDateTime:     now.Add(24 * time.Hour),
		EndDateTime:       now.Add(26 * time.Hour),
		NumberOfQuestions: 10,
		AllottedTime:      "01:00:00",
	}
	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	return m
}
