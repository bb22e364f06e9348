package dto

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

func TestSubmitAttemptResponseWireShape(t *testing.T) {
	selected := "Paris"
	resp := SubmitAttemptResponse{
		AttemptID:      uuid.New(),
		QuizID:         uuid.New(),
		Score:          1,
		TotalQuestions: 2,
		Feedback: []FeedbackItem{
			{QuestionID: uuid.New(), QuestionText: "Capital of France?", SelectedOptionText: &selected, IsCorrect: true},
			{QuestionID: uuid.New(), QuestionText: "Largest planet?", SelectedOptionText: nil, CorrectOptionText: "Jupiter"},
		},
	}

	raw, err := sonic.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)

	if !strings.Contains(body, `"quiz_questions":[`) {
		t.Errorf("feedback array not keyed as quiz_questions: %s", body)
	}
	if strings.Contains(body, `"feedback"`) {
		t.Errorf("stray feedback key in payload: %s", body)
	}
	if !strings.Contains(body, `"selected_option_text":"Paris"`) {
		t.Errorf("answered question missing selected text: %s", body)
	}
	if !strings.Contains(body, `"selected_option_text":null`) {
		t.Errorf("unanswered question should carry a null selection: %s", body)
	}
}
