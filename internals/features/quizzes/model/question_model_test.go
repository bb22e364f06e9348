package model

import "testing"

func answers(correct ...bool) []AnswerModel {
	out := make([]AnswerModel, 0, len(correct))
	for i, c := range correct {
		out = append(out, AnswerModel{AnswerText: string(rune('a' + i)), AnswerIsCorrect: c})
	}
	return out
}

func TestValidateAnswerSet(t *testing.T) {
	tests := []struct {
		name    string
		answers []AnswerModel
		wantErr bool
	}{
		{"valid pair", answers(true, false), false},
		{"valid four options", answers(false, false, true, false), false},
		{"single option", answers(true), true},
		{"no options", nil, true},
		{"no correct option", answers(false, false, false), true},
		{"two correct options", answers(true, true, false), true},
		{"blank answer text", []AnswerModel{
			{AnswerText: "  ", AnswerIsCorrect: true},
			{AnswerText: "b", AnswerIsCorrect: false},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuestionModel{QuestionText: "q", Answers: tt.answers}
			err := q.ValidateAnswerSet()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAnswerSet() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCorrectAnswer(t *testing.T) {
	q := QuestionModel{Answers: answers(false, true, false)}
	if got := q.CorrectAnswer(); got == nil || !got.AnswerIsCorrect {
		t.Fatalf("CorrectAnswer() = %+v, want the correct option", got)
	}

	broken := QuestionModel{Answers: answers(false, false)}
	if got := broken.CorrectAnswer(); got != nil {
		t.Errorf("CorrectAnswer() on a set with no correct option = %+v, want nil", got)
	}
}
