package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "acadex_backend/internals/features/quizzes/dto"
	"acadex_backend/internals/features/quizzes/service"
	helper "acadex_backend/internals/helpers"
	helperAuth "acadex_backend/internals/helpers/auth"
)

type AttemptController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttemptController(db *gorm.DB) *AttemptController {
	return &AttemptController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/quizzes/:quiz_id/attempt (student only)
// Returns the question payload with correctness flags stripped.
func (ctrl *AttemptController) Start(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quiz_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	student, err := helperAuth.GetStudentProfile(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	attempt, quiz, err := service.StartAttempt(ctrl.DB, student, quizID, time.Now())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Attempt started", dto.NewStartAttemptResponse(attempt, quiz))
}

// POST /api/quizzes/attempt/submit (student only)
// The attempt id in the body identifies the quiz.
func (ctrl *AttemptController) Submit(c *fiber.Ctx) error {
	var body dto.SubmitAttemptRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	student, err := helperAuth.GetStudentProfile(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result, err := service.SubmitAttempt(ctrl.DB, student, &body, time.Now())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Attempt submitted", result)
}
