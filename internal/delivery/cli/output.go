package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RubachokBoss/studentctl/internal/config"
	"github.com/RubachokBoss/studentctl/internal/repository"
	"github.com/RubachokBoss/studentctl/internal/service"
)

// reportOpError prints an operational failure and swallows it so the process
// still exits zero: a duplicate email or an unreachable server is an outcome
// to report, not a crash.
func reportOpError(cmd *cobra.Command, err error) error {
	out := cmd.OutOrStdout()
	if errors.Is(err, repository.ErrDuplicateEmail) {
		fmt.Fprintln(out, "Error: Email must be unique. Choose a different email.")
		return nil
	}
	fmt.Fprintf(out, "Unexpected error: %v\n", err)
	return nil
}

// reportStartupError classifies failures from building the app: missing
// connection variables are fatal and propagate to a non-zero exit, anything
// else is an ordinary operational failure.
func reportStartupError(cmd *cobra.Command, err error) error {
	var missing *config.MissingEnvError
	if errors.As(err, &missing) {
		return err
	}
	return reportOpError(cmd, err)
}

// listAfter re-reads the table after a mutation so the caller sees the
// resulting state without a second command. --no-list skips it.
func listAfter(cmd *cobra.Command, noList bool, students service.StudentService) error {
	if noList {
		return nil
	}

	rows, err := students.ListStudents(cmd.Context())
	if err != nil {
		return reportOpError(cmd, err)
	}

	renderStudents(cmd.OutOrStdout(), rows)
	return nil
}
