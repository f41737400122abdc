package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/RubachokBoss/studentctl/internal/models"
)

// fakeService implements service.StudentService for command tests, recording
// arguments and returning canned results.
type fakeService struct {
	students []models.Student
	addID    int64
	affected int64
	err      error
	listErr  error

	gotCreate *models.CreateStudentRequest
	gotID     int64
	gotEmail  string
	listCalls int
}

func (f *fakeService) ListStudents(_ context.Context) ([]models.Student, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.students, nil
}

func (f *fakeService) AddStudent(_ context.Context, req *models.CreateStudentRequest) (int64, error) {
	f.gotCreate = req
	if f.err != nil {
		return 0, f.err
	}
	return f.addID, nil
}

func (f *fakeService) UpdateEmail(_ context.Context, id int64, email string) (int64, error) {
	f.gotID, f.gotEmail = id, email
	if f.err != nil {
		return 0, f.err
	}
	return f.affected, nil
}

func (f *fakeService) DeleteStudent(_ context.Context, id int64) (int64, error) {
	f.gotID = id
	if f.err != nil {
		return 0, f.err
	}
	return f.affected, nil
}

func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)

	return cmd, out
}

func newExecuteCmd(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	return root, out
}
