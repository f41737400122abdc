package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/studentctl/internal/models"
)

type StudentRepository interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, req *models.CreateStudentRequest) (int64, error)
	UpdateEmail(ctx context.Context, id int64, email string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type studentRepository struct {
	*PostgresRepository
}

func NewStudentRepository(db *sql.DB, logger zerolog.Logger) StudentRepository {
	return &studentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *studentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT student_id, first_name, last_name, email, enrollment_date
		FROM students
		ORDER BY student_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var student models.Student
		err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.Email,
			&student.EnrollmentDate,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

func (r *studentRepository) Create(ctx context.Context, req *models.CreateStudentRequest) (int64, error) {
	query := `
		INSERT INTO students (first_name, last_name, email, enrollment_date)
		VALUES ($1, $2, $3, $4)
		RETURNING student_id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		req.FirstName,
		req.LastName,
		req.Email,
		req.EnrollmentDate,
	).Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}

	return id, nil
}

// UpdateEmail returns the number of rows touched; zero means no student has
// the given id.
func (r *studentRepository) UpdateEmail(ctx context.Context, id int64, email string) (int64, error) {
	query := `UPDATE students SET email = $1 WHERE student_id = $2`

	res, err := r.db.ExecContext(ctx, query, email, id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}

	return res.RowsAffected()
}

func (r *studentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM students WHERE student_id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
