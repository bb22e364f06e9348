package dto

/* ==============================
   Registration
============================== */

type RegisterStudentRequest struct {
	MatricNumber string  `json:"matric_number" validate:"required,max=15"`
	FirstName    string  `json:"first_name" validate:"required,max=30"`
	LastName     string  `json:"last_name" validate:"required,max=30"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Password     string  `json:"password" validate:"required,min=8"`
}

type RegisterLecturerRequest struct {
	StaffID   string  `json:"staff_id" validate:"required,max=15"`
	FirstName string  `json:"first_name" validate:"required,max=30"`
	LastName  string  `json:"last_name" validate:"required,max=30"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  string  `json:"password" validate:"required,min=8"`
}

// Password is never echoed back.
type RegisterStudentResponse struct {
	MatricNumber string  `json:"matric_number"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        *string `json:"email,omitempty"`
}

type RegisterLecturerResponse struct {
	StaffID   string  `json:"staff_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email,omitempty"`
}

/* ==============================
   Token obtain / refresh
============================== */

// Username is a matric number or a staff id; the student table is checked
// first.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	UserID    string `json:"user_id"`
	UserRole  string `json:"user_role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
