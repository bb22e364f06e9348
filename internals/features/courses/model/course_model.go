package model

import (
	"time"

	"github.com/google/uuid"

	userModel "acadex_backend/internals/features/accounts/user/model"
)

// CourseModel is owned by exactly one lecturer. The (code, instructor) pair
// is unique; the same code may exist under different instructors.
type CourseModel struct {
	CourseID         uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseCode       string    `gorm:"column:course_code;size:10;not null;uniqueIndex:uq_course_code_instructor" json:"course_code"`
	CourseTitle      string    `gorm:"column:course_title;size:200;not null" json:"title"`
	CourseDesc       *string   `gorm:"column:course_description" json:"description,omitempty"`
	CourseInstructor uuid.UUID `gorm:"column:course_instructor_id;type:uuid;not null;uniqueIndex:uq_course_code_instructor" json:"instructor_id"`
	CourseCreatedAt  time.Time `gorm:"column:course_created_at;autoCreateTime" json:"created_at"`

	Instructor *userModel.LecturerModel `gorm:"foreignKey:CourseInstructor;constraint:OnDelete:CASCADE" json:"instructor,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}

// CourseEnrollmentModel links a student to a course, once.
type CourseEnrollmentModel struct {
	EnrollmentID        uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`
	EnrollmentStudentID uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_course" json:"student_id"`
	EnrollmentCourseID  uuid.UUID `gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_course" json:"course_id"`
	EnrollmentDate      time.Time `gorm:"column:enrollment_date;autoCreateTime" json:"enrollment_date"`

	Student *userModel.StudentModel `gorm:"foreignKey:EnrollmentStudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Course  *CourseModel            `gorm:"foreignKey:EnrollmentCourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
}

func (CourseEnrollmentModel) TableName() string {
	return "course_enrollments"
}
