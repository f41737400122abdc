package models

import "time"

// Data Transfer Objects

type CreateStudentRequest struct {
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	EnrollmentDate *time.Time `json:"enrollment_date,omitempty"`
}
