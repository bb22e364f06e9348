package dto

import (
	"time"

	"github.com/google/uuid"

	model "acadex_backend/internals/features/courses/model"
)

/* ==============================
   Courses
============================== */

type CreateCourseRequest struct {
	CourseCode  string  `json:"course_code" validate:"required,max=10"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty"`
}

type CourseResponse struct {
	CourseID       uuid.UUID `json:"course_id"`
	CourseCode     string    `json:"course_code"`
	Title          string    `json:"title"`
	Description    *string   `json:"description,omitempty"`
	InstructorName string    `json:"instructor_name"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewCourseResponse(m *model.CourseModel) CourseResponse {
	resp := CourseResponse{
		CourseID:    m.CourseID,
		CourseCode:  m.CourseCode,
		Title:       m.CourseTitle,
		Description: m.CourseDesc,
		CreatedAt:   m.CourseCreatedAt,
	}
	if m.Instructor != nil && m.Instructor.User != nil {
		resp.InstructorName = m.Instructor.User.FullName()
	}
	return resp
}

/* ==============================
   Enrollments
============================== */

type EnrollmentResponse struct {
	EnrollmentID   uuid.UUID `json:"enrollment_id"`
	StudentID      uuid.UUID `json:"student"`
	CourseID       uuid.UUID `json:"course"`
	StudentName    string    `json:"student_name"`
	MatricNumber   string    `json:"matric_number,omitempty"`
	CourseTitle    string    `json:"course_title"`
	EnrollmentDate time.Time `json:"enrollment_date"`
}

func NewEnrollmentResponse(m *model.CourseEnrollmentModel) EnrollmentResponse {
	resp := EnrollmentResponse{
		EnrollmentID:   m.EnrollmentID,
		StudentID:      m.EnrollmentStudentID,
		CourseID:       m.EnrollmentCourseID,
		EnrollmentDate: m.EnrollmentDate,
	}
	if m.Student != nil {
		resp.MatricNumber = m.Student.MatricNumber
		if m.Student.User != nil {
			resp.StudentName = m.Student.User.FullName()
		}
	}
	if m.Course != nil {
		resp.CourseTitle = m.Course.CourseTitle
	}
	return resp
}
