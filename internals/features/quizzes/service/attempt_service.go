package service

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	userModel "acadex_backend/internals/features/accounts/user/model"
	courseModel "acadex_backend/internals/features/courses/model"
	"acadex_backend/internals/features/quizzes/dto"
	model "acadex_backend/internals/features/quizzes/model"
	helper "acadex_backend/internals/helpers"
)

// SubmissionGrace is how long after an attempt's end time a submission is
// still accepted, to absorb network latency on the final send.
const SubmissionGrace = time.Minute

/* ==============================
   START
============================== */

// StartAttempt runs the gate checks in a fixed order and creates the attempt
// row. Preloads the quiz's questions and answers so the controller can build
// the question payload without another round trip.
func StartAttempt(db *gorm.DB, student *userModel.StudentModel, quizID uuid.UUID, now time.Time) (*model.QuizAttemptModel, *model.QuizModel, error) {
	var quiz model.QuizModel
	if err := db.
		Preload("Questions.Answers").
		First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Quiz not found")
		}
		return nil, nil, err
	}

	var enrolled int64
	if err := db.Model(&courseModel.CourseEnrollmentModel{}).
		Where("enrollment_student_id = ? AND enrollment_course_id = ?", student.ID, quiz.QuizCourseID).
		Count(&enrolled).Error; err != nil {
		return nil, nil, err
	}
	if enrolled == 0 {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "You are not enrolled in the course for this quiz.")
	}

	var attempted int64
	if err := db.Model(&model.QuizAttemptModel{}).
		Where("attempt_quiz_id = ? AND attempt_student_id = ?", quiz.QuizID, student.ID).
		Count(&attempted).Error; err != nil {
		return nil, nil, err
	}
	if attempted > 0 {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "You have already attempted this quiz.")
	}

	if len(quiz.Questions) == 0 {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "This quiz has no questions yet.")
	}
	if !quiz.QuizIsActive || !quiz.WindowOpen(now) {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "This quiz is not open for attempts.")
	}

	attempt := model.QuizAttemptModel{
		AttemptQuizID:    quiz.QuizID,
		AttemptStudentID: student.ID,
		AttemptTime:      now,
		AttemptEndTime:   quiz.AttemptEndTime(now),
		AttemptStatus:    model.QuizAttemptCreated,
	}
	if err := db.Create(&attempt).Error; err != nil {
		// Lost the race against a concurrent start by the same student.
		if helper.IsUniqueViolation(err) {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "You have already attempted this quiz.")
		}
		return nil, nil, err
	}

	log.Printf("[ATTEMPT] started attempt=%s quiz=%s student=%s end=%s",
		attempt.AttemptID, quiz.QuizID, student.ID, attempt.AttemptEndTime.Format(time.RFC3339))
	return &attempt, &quiz, nil
}

/* ==============================
   GRADING (pure)
============================== */

// GradeResult is the in-memory outcome of grading a submission against a
// quiz's question set.
type GradeResult struct {
	Score    int
	Total    int
	Feedback []dto.FeedbackItem
	Rows     []model.StudentAnswerModel
}

// Grade scores the submitted (question, option) pairs against the loaded
// questions. Every quiz question produces a feedback item in question order;
// only answered questions produce answer rows. A pair referencing an unknown
// question, a duplicate question, or an option that does not belong to its
// question is rejected.
func Grade(attemptID uuid.UUID, questions []model.QuestionModel, submitted []dto.SubmittedAnswer) (*GradeResult, error) {
	byQuestion := make(map[uuid.UUID]*model.QuestionModel, len(questions))
	for i := range questions {
		byQuestion[questions[i].QuestionID] = &questions[i]
	}

	selected := make(map[uuid.UUID]uuid.UUID, len(submitted))
	for _, s := range submitted {
		if _, ok := byQuestion[s.QuestionID]; !ok {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Answer references a question that is not part of this quiz.")
		}
		if _, dup := selected[s.QuestionID]; dup {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Duplicate answer for the same question.")
		}
		selected[s.QuestionID] = s.SelectedOptionID
	}

	res := &GradeResult{Total: len(questions)}
	for i := range questions {
		q := &questions[i]
		correct := q.CorrectAnswer()

		item := dto.FeedbackItem{
			QuestionID:   q.QuestionID,
			QuestionText: q.QuestionText,
		}

		optionID, answered := selected[q.QuestionID]
		if !answered {
			if correct != nil {
				item.CorrectOptionText = correct.AnswerText
			}
			res.Feedback = append(res.Feedback, item)
			continue
		}

		var option *model.AnswerModel
		for j := range q.Answers {
			if q.Answers[j].AnswerID == optionID {
				option = &q.Answers[j]
				break
			}
		}
		if option == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Selected option does not belong to its question.")
		}

		item.SelectedOptionText = &option.AnswerText
		item.IsCorrect = option.AnswerIsCorrect
		if option.AnswerIsCorrect {
			res.Score++
		} else if correct != nil {
			item.CorrectOptionText = correct.AnswerText
		}
		res.Feedback = append(res.Feedback, item)

		res.Rows = append(res.Rows, model.StudentAnswerModel{
			StudentAnswerAttemptID:  attemptID,
			StudentAnswerQuestionID: q.QuestionID,
			StudentAnswerSelectedID: option.AnswerID,
			StudentAnswerIsCorrect:  option.AnswerIsCorrect,
		})
	}
	return res, nil
}

/* ==============================
   SUBMIT
============================== */

// CheckSubmittable decides whether a loaded attempt may accept a submission
// from the given student at the given instant. Ownership is checked before
// state so a stranger never learns whether the attempt was submitted.
func CheckSubmittable(attempt *model.QuizAttemptModel, studentID uuid.UUID, now time.Time) error {
	if attempt.AttemptStudentID != studentID {
		return fiber.NewError(fiber.StatusForbidden, "This attempt does not belong to you.")
	}
	if attempt.IsSubmitted() {
		return fiber.NewError(fiber.StatusBadRequest, "This attempt has already been submitted.")
	}
	if now.After(attempt.AttemptEndTime.Add(SubmissionGrace)) {
		return fiber.NewError(fiber.StatusBadRequest, "Submission time has passed.")
	}
	return nil
}

// SubmitAttempt validates ownership and timing, grades the payload, and
// persists answers, score, status, and the raw submission snapshot in one
// transaction.
func SubmitAttempt(db *gorm.DB, student *userModel.StudentModel, req *dto.SubmitAttemptRequest, now time.Time) (*dto.SubmitAttemptResponse, error) {
	var attempt model.QuizAttemptModel
	if err := db.First(&attempt, "attempt_id = ?", req.AttemptID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Attempt not found")
		}
		return nil, err
	}
	if err := CheckSubmittable(&attempt, student.ID, now); err != nil {
		return nil, err
	}

	var questions []model.QuestionModel
	if err := db.Preload("Answers").
		Where("question_quiz_id = ?", attempt.AttemptQuizID).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	graded, err := Grade(attempt.AttemptID, questions, req.Answers)
	if err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		if len(graded.Rows) > 0 {
			if err := tx.Create(&graded.Rows).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.QuizAttemptModel{}).
			Where("attempt_id = ?", attempt.AttemptID).
			Updates(map[string]interface{}{
				"attempt_score":      graded.Score,
				"attempt_status":     model.QuizAttemptSubmitted,
				"attempt_submission": datatypes.JSON(snapshot),
			}).Error
	}); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "This attempt has already been submitted.")
		}
		return nil, err
	}

	log.Printf("[ATTEMPT] submitted attempt=%s score=%d/%d", attempt.AttemptID, graded.Score, graded.Total)
	return &dto.SubmitAttemptResponse{
		AttemptID:      attempt.AttemptID,
		QuizID:         attempt.AttemptQuizID,
		Score:          graded.Score,
		TotalQuestions: graded.Total,
		Feedback:       graded.Feedback,
	}, nil
}

/* ==============================
   RESULT FEEDBACK (read path)
============================== */

// BuildFeedback reconstructs the per-question feedback for a submitted
// attempt from the stored answer rows. Shares its shape with the submission
// response.
func BuildFeedback(db *gorm.DB, attempt *model.QuizAttemptModel) ([]dto.FeedbackItem, int, error) {
	var questions []model.QuestionModel
	if err := db.Preload("Answers").
		Where("question_quiz_id = ?", attempt.AttemptQuizID).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.StudentAnswerModel
	if err := db.
		Where("student_answer_attempt_id = ?", attempt.AttemptID).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	selectedByQuestion := make(map[uuid.UUID]uuid.UUID, len(rows))
	for _, r := range rows {
		selectedByQuestion[r.StudentAnswerQuestionID] = r.StudentAnswerSelectedID
	}

	feedback := make([]dto.FeedbackItem, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		correct := q.CorrectAnswer()

		item := dto.FeedbackItem{QuestionID: q.QuestionID, QuestionText: q.QuestionText}
		if optionID, ok := selectedByQuestion[q.QuestionID]; ok {
			for j := range q.Answers {
				if q.Answers[j].AnswerID == optionID {
					item.SelectedOptionText = &q.Answers[j].AnswerText
					item.IsCorrect = q.Answers[j].AnswerIsCorrect
					break
				}
			}
		}
		if !item.IsCorrect && correct != nil {
			item.CorrectOptionText = correct.AnswerText
		}
		feedback = append(feedback, item)
	}
	return feedback, len(questions), nil
}
