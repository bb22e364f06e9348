package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "acadex_backend/internals/features/quizzes/dto"
	model "acadex_backend/internals/features/quizzes/model"
	helper "acadex_backend/internals/helpers"
	helperAuth "acadex_backend/internals/helpers/auth"
)

type QuestionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{
		DB:        db,
		Validator: validator.New(),
	}
}

// loadOwnedQuiz resolves the quiz and checks the caller teaches its course.
func (ctrl *QuestionController) loadOwnedQuiz(c *fiber.Ctx) (*model.QuizModel, error) {
	quizID, err := uuid.Parse(c.Params("quiz_id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid quiz id")
	}

	lecturer, err := helperAuth.GetLecturerProfile(c, ctrl.DB)
	if err != nil {
		return nil, err
	}

	var quiz model.QuizModel
	if err := ctrl.DB.Preload("Course").First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Quiz not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load quiz")
	}
	if quiz.Course == nil || quiz.Course.CourseInstructor != lecturer.ID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You can only manage questions for your own quizzes.")
	}
	return &quiz, nil
}

// POST /api/quizzes/:quiz_id/questions (owning lecturer only)
// One-shot population: the batch must match the quiz's declared question
// count exactly and lands atomically or not at all.
func (ctrl *QuestionController) BulkCreate(c *fiber.Ctx) error {
	quiz, err := ctrl.loadOwnedQuiz(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.BulkCreateQuestionsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var existing int64
	if err := ctrl.DB.Model(&model.QuestionModel{}).
		Where("question_quiz_id = ?", quiz.QuizID).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check quiz questions")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "This quiz already has its questions.")
	}

	if len(body.Questions) != quiz.QuizNumberOfQs {
		return helper.JsonError(c, fiber.StatusBadRequest, fmt.Sprintf(
			"This quiz expects exactly %d questions, got %d.",
			quiz.QuizNumberOfQs, len(body.Questions),
		))
	}

	questions := make([]model.QuestionModel, 0, len(body.Questions))
	for i := range body.Questions {
		q := body.Questions[i].ToModel(quiz.QuizID)
		if err := q.ValidateAnswerSet(); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, fmt.Sprintf("Question %d: %s", i+1, err.Error()))
		}
		questions = append(questions, q)
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create questions")
	}

	out := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, dto.NewQuestionResponse(&questions[i]))
	}
	return helper.JsonCreated(c, "Questions created", out)
}

// GET /api/quizzes/:quiz_id/questions (owning lecturer only)
// Instructor view: correctness flags included.
func (ctrl *QuestionController) List(c *fiber.Ctx) error {
	quiz, err := ctrl.loadOwnedQuiz(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var questions []model.QuestionModel
	if err := ctrl.DB.Preload("Answers").
		Where("question_quiz_id = ?", quiz.QuizID).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list questions")
	}

	out := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, dto.NewQuestionResponse(&questions[i]))
	}
	return helper.JsonOK(c, "Questions", out)
}

// PATCH /api/quizzes/:quiz_id/questions/:question_id (owning lecturer only)
// Answer patches merge into the stored set by id; the merged set must still
// hold exactly one correct option.
func (ctrl *QuestionController) Update(c *fiber.Ctx) error {
	quiz, err := ctrl.loadOwnedQuiz(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	questionID, err := uuid.Parse(c.Params("question_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var question model.QuestionModel
	if err := ctrl.DB.Preload("Answers").
		First(&question, "question_id = ? AND question_quiz_id = ?", questionID, quiz.QuizID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load question")
	}

	if body.Text != nil {
		question.QuestionText = *body.Text
	}
	for _, patch := range body.Answers {
		found := false
		for i := range question.Answers {
			if question.Answers[i].AnswerID == patch.ID {
				if patch.Text != nil {
					question.Answers[i].AnswerText = *patch.Text
				}
				if patch.IsCorrect != nil {
					question.Answers[i].AnswerIsCorrect = *patch.IsCorrect
				}
				found = true
				break
			}
		}
		if !found {
			return helper.JsonError(c, fiber.StatusBadRequest, "Answer patch references an option that does not belong to this question.")
		}
	}
	if err := question.ValidateAnswerSet(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.QuestionModel{}).
			Where("question_id = ?", question.QuestionID).
			Update("question_text", question.QuestionText).Error; err != nil {
			return err
		}
		for i := range question.Answers {
			a := &question.Answers[i]
			if err := tx.Model(&model.AnswerModel{}).
				Where("answer_id = ?", a.AnswerID).
				Updates(map[string]interface{}{
					"answer_text":       a.AnswerText,
					"answer_is_correct": a.AnswerIsCorrect,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}

	return helper.JsonUpdated(c, "Question updated", dto.NewQuestionResponse(&question))
}
