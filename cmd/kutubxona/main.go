package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one command line and releases everything it opened
func run(args []string, stdout, stderr io.Writer) error {
	opts := &rootOptions{stdout: stdout, stderr: stderr}
	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	defer opts.close()
	return root.Execute()
}

// rootOptions holds the persistent flags and the app built from them
type rootOptions struct {
	configPath string
	email      string
	password   string
	google     bool

	// Sign-up form, login command only
	signUp          bool
	name            string
	confirmPassword string

	stdout io.Writer
	stderr io.Writer

	app *app
}

func (o *rootOptions) close() {
	if o.app != nil {
		o.app.close()
		o.app = nil
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "kutubxona",
		Short:         "Browse, save and manage the book catalog",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.app != nil {
				return nil
			}
			a, err := newApp(opts.configPath, opts.stdout, opts.stderr)
			if err != nil {
				return err
			}
			opts.app = a
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/kutubxona/config.yaml)")
	flags.StringVar(&opts.email, "email", "", "email to sign in with")
	flags.StringVar(&opts.password, "password", "", "password (prompted when omitted on a terminal)")
	flags.BoolVar(&opts.google, "google", false, "sign in with the Google demo account")

	root.AddCommand(
		newListCmd(opts),
		newCategoriesCmd(opts),
		newShowCmd(opts),
		newSaveCmd(opts),
		newUnsaveCmd(opts),
		newDownloadCmd(opts),
		newSavedCmd(opts),
		newLoginCmd(opts),
		newThemeCmd(opts),
		newResetCmd(opts),
		newConfigCmd(opts),
		newAdminCmd(opts),
	)

	return root
}
