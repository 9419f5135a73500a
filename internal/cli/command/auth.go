package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/skillshare/skillshare-go/internal/core/domain"
	"github.com/skillshare/skillshare-go/internal/core/form"
	"github.com/skillshare/skillshare-go/internal/core/validate"
)

// AuthCommand returns the auth subcommand group.
func AuthCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the signed-in session",
		Subcommands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Account password (prompted when omitted)",
					},
				},
				Action: authLogin,
			},
			{
				Name:  "register",
				Usage: "Create a new account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Account password (prompted when omitted)",
					},
					&cli.StringFlag{
						Name:  "confirm",
						Usage: "Password confirmation (prompted when omitted)",
					},
				},
				Action: authRegister,
			},
			{
				Name:   "logout",
				Usage:  "Sign out and discard the stored token",
				Action: authLogout,
			},
			{
				Name:    "whoami",
				Aliases: []string{"status"},
				Usage:   "Show the signed-in user",
				Action:  authWhoami,
			},
		},
	}
}

func authLogin(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	password := c.String("password")
	if password == "" {
		password = promptSecret(c, "Password: ")
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	err = rt.session.Login(ctx, domain.LoginCredentials{
		Email:    c.String("email"),
		Password: password,
	})
	if err != nil {
		return loginError(err)
	}

	snap := rt.session.Current()
	fmt.Fprintf(c.App.Writer, "Signed in as %s <%s>\n", snap.User.DisplayName(), snap.User.Email)
	return nil
}

func authRegister(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	password := c.String("password")
	if password == "" {
		password = promptSecret(c, "Password: ")
	}
	confirmPassword := c.String("confirm")
	if confirmPassword == "" {
		confirmPassword = promptSecret(c, "Confirm password: ")
	}

	// Validate locally before touching the network, mirroring the
	// registration form's rules.
	f := form.New(form.Values{
		"name":            c.String("name"),
		"email":           c.String("email"),
		"password":        password,
		"confirmPassword": confirmPassword,
	}, func(values form.Values) validate.Schema {
		return validate.Schema{
			"name":            {validate.Required()},
			"email":           {validate.Required(), validate.Email()},
			"password":        {validate.Required(), validate.MinLength(6)},
			"confirmPassword": {validate.Required(), validate.Match(values["password"], "Passwords do not match")},
		}
	})
	if err := validateInput(f, "name", "email", "password", "confirmPassword"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	err = rt.session.Register(ctx, domain.RegisterCredentials{
		Name:            f.Value("name"),
		Email:           f.Value("email"),
		Password:        f.Value("password"),
		ConfirmPassword: f.Value("confirmPassword"),
	})
	if err != nil {
		return loginError(err)
	}

	snap := rt.session.Current()
	fmt.Fprintf(c.App.Writer, "Account created. Signed in as %s <%s>\n",
		snap.User.DisplayName(), snap.User.Email)
	return nil
}

func authLogout(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	rt.session.Logout()
	fmt.Fprintln(c.App.Writer, "Signed out.")
	return nil
}

func authWhoami(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, requestTimeout)
	defer cancel()

	if err := rt.session.ValidateToken(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	snap := rt.session.Current()
	if !snap.Authenticated() {
		fmt.Fprintln(c.App.Writer, "Not signed in.")
		return nil
	}

	return formatter(c, rt).Format(c.App.Writer, snap.User)
}

// loginError turns a session error into a message suitable for the
// terminal, surfacing field-level backend errors.
func loginError(err error) error {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		if authErr.Field != "" {
			return fmt.Errorf("%s: %s", authErr.Field, authErr.Message)
		}
		return errors.New(authErr.Message)
	}
	return err
}

// promptSecret reads a value from stdin. The prompt goes to the app writer so
// tests can capture it.
func promptSecret(c *cli.Context, prompt string) string {
	fmt.Fprint(c.App.Writer, prompt)
	var value string
	fmt.Scanln(&value)
	return value
}
