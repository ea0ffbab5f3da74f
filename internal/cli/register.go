package cli

import (
	"errors"
	"os"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/jobtrack/jobtrack-go/internal/client"
	"github.com/jobtrack/jobtrack-go/internal/signup"
)

type registerCmdOptions struct {
	Server          string
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	RememberMe      bool
}

func newRegisterCmd(cli *CLI) *cobra.Command {
	var options registerCmdOptions

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		Example: `# Prompt for every field
signup register

# Non-interactive
export SIGNUP_PASSWORD='Abcdefg1!'
signup register --name Jo --email jo@example.com --server https://jobtrack.example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("server") {
				if server, ok := os.LookupEnv("SIGNUP_SERVER"); ok {
					options.Server = server
				}
			}
			if options.Password == "" {
				options.Password = os.Getenv("SIGNUP_PASSWORD")
			}
			if options.ConfirmPassword == "" {
				options.ConfirmPassword = options.Password
			}
			return register(cmd, cli, options, client.New(options.Server, nil))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&options.Server, "server", defaultServer, "Address of the jobtrack API")
	flags.StringVar(&options.Name, "name", "", "Full name")
	flags.StringVar(&options.Email, "email", "", "Email address")
	flags.StringVar(&options.Password, "password", "", "Password (prefer SIGNUP_PASSWORD or the prompt)")
	flags.StringVar(&options.ConfirmPassword, "confirm-password", "", "Password confirmation (defaults to --password)")
	flags.BoolVar(&options.RememberMe, "remember-me", false, "Keep me signed in")

	return cmd
}

func register(cmd *cobra.Command, cli *CLI, options registerCmdOptions, creator signup.Creator) error {
	form := signup.NewForm(creator, cli.logger)
	form.SetRememberMe(options.RememberMe)

	if err := promptMissing(cli, form, options); err != nil {
		return err
	}

	out, err := form.Submit(cmd.Context())
	if err != nil {
		if msg := form.Error(); msg != "" {
			return errors.New(msg)
		}
		return err
	}

	cli.Output("Account created for %s <%s>.", out.Session.Name, out.Session.Email)
	if out.RememberMe {
		cli.Output("You will stay signed in on this device.")
	}
	return nil
}

// promptMissing fills the form from options, prompting for anything left
// empty. Each value is fed through Set as if it were typed.
func promptMissing(cli *CLI, form *signup.Form, options registerCmdOptions) error {
	ask := func(p survey.Prompt, v *string) error {
		opt, err := cli.surveyIO()
		if err != nil {
			return err
		}
		return survey.AskOne(p, v, opt)
	}

	if options.Name == "" {
		if err := ask(&survey.Input{Message: "Full name:"}, &options.Name); err != nil {
			return err
		}
	}
	form.Set(signup.FieldName, options.Name)

	if options.Email == "" {
		if err := ask(&survey.Input{Message: "Email address:"}, &options.Email); err != nil {
			return err
		}
	}
	form.Set(signup.FieldEmail, options.Email)

	prompted := options.Password == ""
	if prompted {
		if err := ask(&survey.Password{Message: "Password:"}, &options.Password); err != nil {
			return err
		}
	}
	form.Set(signup.FieldPassword, options.Password)
	printStrength(cli, form.Strength())

	if prompted {
		if err := ask(&survey.Password{Message: "Confirm password:"}, &options.ConfirmPassword); err != nil {
			return err
		}
	}
	form.Set(signup.FieldConfirmPassword, options.ConfirmPassword)

	switch form.Match() {
	case signup.MatchMismatch:
		cli.Output("  ✗ Passwords do not match")
	case signup.MatchOK:
		cli.Output("  ✓ Passwords match")
	}
	return nil
}
