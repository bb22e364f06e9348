package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserModel is the shared identity. Exactly one of a StudentModel or
// LecturerModel row attaches 1:1; Role mirrors which one it is.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName string    `gorm:"size:30;not null" json:"first_name" validate:"required,max=30"`
	LastName  string    `gorm:"size:30;not null" json:"last_name" validate:"required,max=30"`
	Email     *string   `gorm:"size:255;uniqueIndex" json:"email,omitempty" validate:"omitempty,email"`
	Password  string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role      string    `gorm:"type:varchar(10);not null" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// StudentModel is the student sub-profile, keyed by matric number.
type StudentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	MatricNumber string    `gorm:"size:15;not null;uniqueIndex" json:"matric_number"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}

// LecturerModel is the lecturer sub-profile, keyed by staff id.
type LecturerModel struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	StaffID string    `gorm:"size:15;not null;uniqueIndex" json:"staff_id"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (LecturerModel) TableName() string {
	return "lecturers"
}
