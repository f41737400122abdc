package cli

import (
	"github.com/spf13/cobra"

	"github.com/RubachokBoss/studentctl/internal/app"
	"github.com/RubachokBoss/studentctl/internal/service"
)

// NewListAllCommand creates the list-all command.
func NewListAllCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list-all",
		Aliases:       []string{"list"},
		Short:         "Print every student as a table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cmd.Context(), rootOpts.ConfigPath)
			if err != nil {
				return reportStartupError(cmd, err)
			}
			defer a.Close()

			return runListAll(cmd, a.Students)
		},
	}

	return cmd
}

func runListAll(cmd *cobra.Command, students service.StudentService) error {
	rows, err := students.ListStudents(cmd.Context())
	if err != nil {
		return reportOpError(cmd, err)
	}

	renderStudents(cmd.OutOrStdout(), rows)
	return nil
}
