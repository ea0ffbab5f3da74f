package cli

import (
	"strings"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/jobtrack/jobtrack-go/internal/password"
)

func newStrengthCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "strength [PASSWORD]",
		Short: "Show how strong a password is",
		Args:  cobra.MaximumNArgs(1),
		Example: `# Prompt for the password
signup strength

# Check a password given on the command line
signup strength 'Ab3!xyz9'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pwd string
			if len(args) == 1 {
				pwd = args[0]
			} else {
				opt, err := cli.surveyIO()
				if err != nil {
					return err
				}
				if err := survey.AskOne(&survey.Password{Message: "Password:"}, &pwd, opt); err != nil {
					return err
				}
			}

			printStrength(cli, password.Analyze(pwd))
			return nil
		},
	}
}

// printStrength renders the five-segment indicator and the checklist.
func printStrength(cli *CLI, r password.Report) {
	var bars strings.Builder
	var labels []string
	for _, bar := range r.Bars {
		if bar.Active {
			bars.WriteString("■")
			labels = append(labels, bar.Label)
		} else {
			bars.WriteString("□")
		}
	}

	cli.Output("Password strength: %s", r.Text)
	if len(labels) > 0 {
		cli.Output("  %s  %s", bars.String(), strings.Join(labels, " · "))
	} else {
		cli.Output("  %s", bars.String())
	}

	if r.Level == password.Empty {
		return
	}
	for _, req := range r.Checklist {
		mark := "✗"
		if req.Met {
			mark = "✓"
		}
		cli.Output("  %s %s", mark, req.Text)
	}
}
