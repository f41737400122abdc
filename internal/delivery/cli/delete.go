package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RubachokBoss/studentctl/internal/app"
	"github.com/RubachokBoss/studentctl/internal/service"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
	ID     int64
	NoList bool
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "delete",
		Short:         "Delete a student by id",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cmd.Context(), opts.ConfigPath)
			if err != nil {
				return reportStartupError(cmd, err)
			}
			defer a.Close()

			return runDelete(cmd, opts, a.Students)
		},
	}

	cmd.Flags().Int64Var(&opts.ID, "id", 0, "student id")
	cmd.Flags().BoolVar(&opts.NoList, "no-list", false, "skip printing the table afterwards")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func runDelete(cmd *cobra.Command, opts *DeleteOptions, students service.StudentService) error {
	deleted, err := students.DeleteStudent(cmd.Context(), opts.ID)
	if err != nil {
		return reportOpError(cmd, err)
	}

	if deleted == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No student found with id %d\n", opts.ID)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted student_id=%d\n", opts.ID)
	}

	return listAfter(cmd, opts.NoList, students)
}
