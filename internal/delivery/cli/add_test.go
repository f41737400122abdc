package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RubachokBoss/studentctl/internal/models"
	"github.com/RubachokBoss/studentctl/internal/repository"
)

func TestAddCommandRequiresFlags(t *testing.T) {
	root, _ := newExecuteCmd(t, "add", "--first", "Ada")

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s)")
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "last")
}

func TestRunAddPrintsIDAndTable(t *testing.T) {
	svc := &fakeService{
		addID: 7,
		students: []models.Student{
			{ID: 7, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		},
	}
	cmd, out := newTestCmd(t)
	opts := &AddOptions{
		RootOptions: &RootOptions{},
		First:       "Ada",
		Last:        "Lovelace",
		Email:       "ada@example.com",
	}

	err := runAdd(cmd, opts, svc)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Inserted student_id=7\n")
	assert.Contains(t, out.String(), "| ada@example.com |")
	require.NotNil(t, svc.gotCreate)
	assert.Equal(t, "Ada", svc.gotCreate.FirstName)
	assert.Equal(t, "Lovelace", svc.gotCreate.LastName)
	assert.Nil(t, svc.gotCreate.EnrollmentDate, "omitted --date maps to NULL")
}

func TestRunAddParsesDate(t *testing.T) {
	svc := &fakeService{addID: 1}
	cmd, _ := newTestCmd(t)
	opts := &AddOptions{
		RootOptions: &RootOptions{},
		First:       "Ada",
		Last:        "Lovelace",
		Email:       "ada@example.com",
		Date:        "2023-09-01",
		NoList:      true,
	}

	err := runAdd(cmd, opts, svc)

	require.NoError(t, err)
	require.NotNil(t, svc.gotCreate)
	require.NotNil(t, svc.gotCreate.EnrollmentDate)
	assert.Equal(t, "2023-09-01", svc.gotCreate.EnrollmentDate.Format(dateLayout))
}

func TestRunAddRejectsMalformedDate(t *testing.T) {
	svc := &fakeService{}
	cmd, out := newTestCmd(t)
	opts := &AddOptions{
		RootOptions: &RootOptions{},
		First:       "Ada",
		Last:        "Lovelace",
		Email:       "ada@example.com",
		Date:        "01/02/2023",
	}

	err := runAdd(cmd, opts, svc)

	require.NoError(t, err, "malformed input is reported, not fatal")
	assert.Contains(t, out.String(), "Unexpected error:")
	assert.Contains(t, out.String(), "expected YYYY-MM-DD")
	assert.Nil(t, svc.gotCreate, "nothing reaches the service when the date fails to parse")
}

func TestRunAddDuplicateEmail(t *testing.T) {
	svc := &fakeService{err: fmt.Errorf("failed to create student: %w", repository.ErrDuplicateEmail)}
	cmd, out := newTestCmd(t)
	opts := &AddOptions{
		RootOptions: &RootOptions{},
		First:       "Ada",
		Last:        "Lovelace",
		Email:       "ada@example.com",
	}

	err := runAdd(cmd, opts, svc)

	require.NoError(t, err)
	assert.Equal(t, "Error: Email must be unique. Choose a different email.\n", out.String())
	assert.Zero(t, svc.listCalls, "no re-list after a failed insert")
}

func TestRunAddNoList(t *testing.T) {
	svc := &fakeService{addID: 3}
	cmd, out := newTestCmd(t)
	opts := &AddOptions{
		RootOptions: &RootOptions{},
		First:       "Ada",
		Last:        "Lovelace",
		Email:       "ada@example.com",
		NoList:      true,
	}

	err := runAdd(cmd, opts, svc)

	require.NoError(t, err)
	assert.Equal(t, "Inserted student_id=3\n", out.String())
	assert.Zero(t, svc.listCalls)
}

func TestRunAddReportsListFailure(t *testing.T) {
	svc := &fakeService{addID: 3, listErr: errors.New("connection reset")}
	cmd, out := newTestCmd(t)
	opts := &AddOptions{
		RootOptions: &RootOptions{},
		First:       "Ada",
		Last:        "Lovelace",
		Email:       "ada@example.com",
	}

	err := runAdd(cmd, opts, svc)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Inserted student_id=3\n")
	assert.Contains(t, out.String(), "Unexpected error: connection reset")
}
