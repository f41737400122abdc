package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RubachokBoss/studentctl/internal/app"
	"github.com/RubachokBoss/studentctl/internal/service"
)

// UpdateEmailOptions holds flags for the update-email command.
type UpdateEmailOptions struct {
	*RootOptions
	ID     int64
	Email  string
	NoList bool
}

// NewUpdateEmailCommand creates the update-email command.
func NewUpdateEmailCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UpdateEmailOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "update-email",
		Short:         "Change a student's email address by id",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cmd.Context(), opts.ConfigPath)
			if err != nil {
				return reportStartupError(cmd, err)
			}
			defer a.Close()

			return runUpdateEmail(cmd, opts, a.Students)
		},
	}

	cmd.Flags().Int64Var(&opts.ID, "id", 0, "student id")
	cmd.Flags().StringVar(&opts.Email, "email", "", "new email address, must be unique")
	cmd.Flags().BoolVar(&opts.NoList, "no-list", false, "skip printing the table afterwards")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runUpdateEmail(cmd *cobra.Command, opts *UpdateEmailOptions, students service.StudentService) error {
	updated, err := students.UpdateEmail(cmd.Context(), opts.ID, opts.Email)
	if err != nil {
		return reportOpError(cmd, err)
	}

	if updated == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No student found with id %d\n", opts.ID)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Updated email for student_id=%d\n", opts.ID)
	}

	return listAfter(cmd, opts.NoList, students)
}
