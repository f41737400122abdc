package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RubachokBoss/studentctl/internal/app"
	"github.com/RubachokBoss/studentctl/internal/models"
	"github.com/RubachokBoss/studentctl/internal/service"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	First  string
	Last   string
	Email  string
	Date   string
	NoList bool
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Insert a new student",
		Long: `Insert a new student and print the generated id.

Example:
  studentctl add --first Ada --last Lovelace --email ada@example.com --date 1833-06-05`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cmd.Context(), opts.ConfigPath)
			if err != nil {
				return reportStartupError(cmd, err)
			}
			defer a.Close()

			return runAdd(cmd, opts, a.Students)
		},
	}

	cmd.Flags().StringVar(&opts.First, "first", "", "first name")
	cmd.Flags().StringVar(&opts.Last, "last", "", "last name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "email address, must be unique")
	cmd.Flags().StringVar(&opts.Date, "date", "", "enrollment date as YYYY-MM-DD")
	cmd.Flags().BoolVar(&opts.NoList, "no-list", false, "skip printing the table afterwards")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runAdd(cmd *cobra.Command, opts *AddOptions, students service.StudentService) error {
	var enrolled *time.Time
	if opts.Date != "" {
		parsed, err := time.Parse(dateLayout, opts.Date)
		if err != nil {
			return reportOpError(cmd, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", opts.Date))
		}
		enrolled = &parsed
	}

	id, err := students.AddStudent(cmd.Context(), &models.CreateStudentRequest{
		FirstName:      opts.First,
		LastName:       opts.Last,
		Email:          opts.Email,
		EnrollmentDate: enrolled,
	})
	if err != nil {
		return reportOpError(cmd, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Inserted student_id=%d\n", id)
	return listAfter(cmd, opts.NoList, students)
}
