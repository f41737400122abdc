package models

import (
	"time"
)

// Student mirrors one row of the students table. EnrollmentDate is a
// pointer because the column is nullable.
type Student struct {
	ID             int64      `json:"student_id" db:"student_id"`
	FirstName      string     `json:"first_name" db:"first_name"`
	LastName       string     `json:"last_name" db:"last_name"`
	Email          string     `json:"email" db:"email"`
	EnrollmentDate *time.Time `json:"enrollment_date,omitempty" db:"enrollment_date"`
}
