package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "acadex_backend/internals/features/quizzes/controller"
)

func QuizzesRoutes(r fiber.Router, db *gorm.DB) {
	quizzes := quizController.NewQuizController(db)
	questions := quizController.NewQuestionController(db)
	attempts := quizController.NewAttemptController(db)
	reports := quizController.NewReportController(db)

	g := r.Group("/quizzes")
	g.Post("/", quizzes.Create)
	g.Get("/all", quizzes.List)
	g.Patch("/detail/:quiz_id", quizzes.Update)

	// literal-prefixed routes before the :quiz_id ones
	g.Post("/attempt/submit", attempts.Submit)
	g.Get("/students/attempts", reports.MyAttempts)
	g.Get("/results/:quiz_id/:matric", reports.StudentResult)

	g.Post("/:quiz_id/questions", questions.BulkCreate)
	g.Get("/:quiz_id/questions", questions.List)
	g.Patch("/:quiz_id/questions/:question_id", questions.Update)

	g.Post("/:quiz_id/attempt", attempts.Start)

	g.Get("/:quiz_id/attempts", reports.QuizAttempts)
	g.Get("/:quiz_id/students/result", reports.MyResult)
}
