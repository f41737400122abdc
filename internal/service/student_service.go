package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/studentctl/internal/models"
	"github.com/RubachokBoss/studentctl/internal/repository"
)

type StudentService interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	AddStudent(ctx context.Context, req *models.CreateStudentRequest) (int64, error)
	UpdateEmail(ctx context.Context, id int64, email string) (int64, error)
	DeleteStudent(ctx context.Context, id int64) (int64, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	logger      zerolog.Logger
}

func NewStudentService(studentRepo repository.StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func (s *studentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return students, nil
}

// AddStudent inserts the student and returns the generated id. Email
// uniqueness is left entirely to the database constraint; a collision comes
// back wrapped around repository.ErrDuplicateEmail.
func (s *studentService) AddStudent(ctx context.Context, req *models.CreateStudentRequest) (int64, error) {
	id, err := s.studentRepo.Create(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info().
		Int64("student_id", id).
		Str("email", req.Email).
		Msg("Student created")

	return id, nil
}

// UpdateEmail returns the number of students touched; zero means the id does
// not exist and is not an error.
func (s *studentService) UpdateEmail(ctx context.Context, id int64, email string) (int64, error) {
	updated, err := s.studentRepo.UpdateEmail(ctx, id, email)
	if err != nil {
		return 0, fmt.Errorf("failed to update email: %w", err)
	}

	if updated > 0 {
		s.logger.Info().
			Int64("student_id", id).
			Str("email", email).
			Msg("Student email updated")
	}

	return updated, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete student: %w", err)
	}

	if deleted > 0 {
		s.logger.Info().
			Int64("student_id", id).
			Msg("Student deleted")
	}

	return deleted, nil
}
