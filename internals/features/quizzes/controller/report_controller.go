package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "acadex_backend/internals/features/accounts/user/model"
	dto "acadex_backend/internals/features/quizzes/dto"
	model "acadex_backend/internals/features/quizzes/model"
	"acadex_backend/internals/features/quizzes/service"
	helper "acadex_backend/internals/helpers"
	helperAuth "acadex_backend/internals/helpers/auth"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func summaryOf(a *model.QuizAttemptModel) dto.AttemptSummaryResponse {
	s := dto.AttemptSummaryResponse{
		AttemptID:   a.AttemptID,
		QuizID:      a.AttemptQuizID,
		Score:       a.AttemptScore,
		Status:      string(a.AttemptStatus),
		AttemptTime: a.AttemptTime,
	}
	if a.Quiz != nil {
		s.QuizTitle = a.Quiz.QuizTitle
	}
	if a.Student != nil {
		s.MatricNumber = a.Student.MatricNumber
		if a.Student.User != nil {
			s.StudentName = a.Student.User.FullName()
		}
	}
	return s
}

// GET /api/quizzes/:quiz_id/attempts (owning lecturer only)
func (ctrl *ReportController) QuizAttempts(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quiz_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	lecturer, err := helperAuth.GetLecturerProfile(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var quiz model.QuizModel
	if err := ctrl.DB.Preload("Course").First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load quiz")
	}
	if quiz.Course == nil || quiz.Course.CourseInstructor != lecturer.ID {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only view attempts for your own quizzes.")
	}

	var attempts []model.QuizAttemptModel
	if err := ctrl.DB.
		Preload("Quiz").
		Preload("Student.User").
		Where("attempt_quiz_id = ?", quizID).
		Order("attempt_score DESC, attempt_time ASC").
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list attempts")
	}

	out := make([]dto.AttemptSummaryResponse, 0, len(attempts))
	for i := range attempts {
		out = append(out, summaryOf(&attempts[i]))
	}
	return helper.JsonOK(c, "Quiz attempts", out)
}

// GET /api/quizzes/results/:quiz_id/:matric (owning lecturer only)
// One student's graded result, with per-question feedback.
func (ctrl *ReportController) StudentResult(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quiz_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}
	matric := strings.ToUpper(strings.TrimSpace(c.Params("matric")))
	if matric == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid matric number")
	}

	lecturer, err := helperAuth.GetLecturerProfile(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var quiz model.QuizModel
	if err := ctrl.DB.Preload("Course").First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load quiz")
	}
	if quiz.Course == nil || quiz.Course.CourseInstructor != lecturer.ID {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only view results for your own quizzes.")
	}

	var student userModel.StudentModel
	if err := ctrl.DB.Preload("User").First(&student, "matric_number = ?", matric).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	var attempt model.QuizAttemptModel
	if err := ctrl.DB.
		Preload("Quiz").
		First(&attempt, "attempt_quiz_id = ? AND attempt_student_id = ?", quizID, student.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "This student has not attempted the quiz.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attempt")
	}
	attempt.Student = &student

	feedback, total, err := service.BuildFeedback(ctrl.DB, &attempt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build result")
	}

	return helper.JsonOK(c, "Student result", dto.AttemptResultResponse{
		AttemptSummaryResponse: summaryOf(&attempt),
		TotalQuestions:         total,
		Feedback:               feedback,
	})
}

// GET /api/quizzes/students/attempts (student only)
func (ctrl *ReportController) MyAttempts(c *fiber.Ctx) error {
	student, err := helperAuth.GetStudentProfile(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var attempts []model.QuizAttemptModel
	if err := ctrl.DB.
		Preload("Quiz").
		Where("attempt_student_id = ?", student.ID).
		Order("attempt_time DESC").
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list attempts")
	}

	out := make([]dto.AttemptSummaryResponse, 0, len(attempts))
	for i := range attempts {
		s := summaryOf(&attempts[i])
		// Own listing, matric is implied.
		s.MatricNumber = ""
		s.StudentName = ""
		out = append(out, s)
	}
	return helper.JsonOK(c, "My attempts", out)
}

// GET /api/quizzes/:quiz_id/students/result (student only)
func (ctrl *ReportController) MyResult(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quiz_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	student, err := helperAuth.GetStudentProfile(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var attempt model.QuizAttemptModel
	if err := ctrl.DB.
		Preload("Quiz").
		First(&attempt, "attempt_quiz_id = ? AND attempt_student_id = ?", quizID, student.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "You have not attempted this quiz.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attempt")
	}
	if !attempt.IsSubmitted() {
		return helper.JsonError(c, fiber.StatusBadRequest, "This attempt has not been submitted yet.")
	}

	feedback, total, err := service.BuildFeedback(ctrl.DB, &attempt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build result")
	}

	res := dto.AttemptResultResponse{
		AttemptSummaryResponse: summaryOf(&attempt),
		TotalQuestions:         total,
		Feedback:               feedback,
	}
	res.MatricNumber = ""
	res.StudentName = ""
	return helper.JsonOK(c, "My result", res)
}
