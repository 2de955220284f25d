package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/AlexZinkM/pagekit/internal/client"
	"github.com/AlexZinkM/pagekit/internal/config"
	"github.com/AlexZinkM/pagekit/internal/console"
	"github.com/AlexZinkM/pagekit/internal/model"
	"github.com/AlexZinkM/pagekit/internal/ui"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

// errShown marks a failure that the banner already reported
var errShown = errors.New("request failed")

var promptForPassword = config.PromptForPassword

type app struct {
	stdout  io.Writer
	stderr  io.Writer
	baseURL string
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "pagekit",
		Short:         "Call the pagekit JSON API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "API base URL (default $API_BASE_URL)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		a.callCmd("get", http.MethodGet),
		a.callCmd("post", http.MethodPost),
		a.registerCmd(),
	)
	return root
}

func (a *app) callCmd(name, method string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " PATH [key=value...]",
		Short: fmt.Sprintf("Send a %s request and print the JSON result", method),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parsePairs(args[1:])
			if err != nil {
				return a.fail(err)
			}
			return a.submit(method, args[0], data)
		},
	}
}

func (a *app) registerCmd() *cobra.Command {
	var req model.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a user; the password is prompted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptForPassword("Password")
			if err != nil {
				return a.fail(err)
			}
			defer clear(password)
			req.Password = string(password)
			return a.submit(http.MethodPost, "/api/users", req)
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	return cmd
}

func (a *app) logger() *zap.Logger {
	if !a.verbose {
		return zap.NewNop()
	}
	cfg := *config.Get()
	cfg.LogLevel = "debug"
	l, err := cfg.NewLogger()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func (a *app) page() *ui.Page {
	base := a.baseURL
	if base == "" {
		base = config.GetBaseURL()
	}
	alert := console.NewAlert(a.stderr)
	c := client.NewClient(base, client.WithLogger(a.logger()))
	loader := ui.NewLoader(ui.NewNode(), console.NewIcon(a.stderr))
	return ui.NewPage(c, ui.NewBanner(alert), loader)
}

func (a *app) submit(method, path string, data any) error {
	result := <-a.page().Submit(method, path, data, func(body json.RawMessage) {
		a.print(body)
	})
	if result.Err != nil {
		return errShown
	}
	return nil
}

// fail reports a local error through the banner
func (a *app) fail(err error) error {
	ui.NewBanner(console.NewAlert(a.stderr)).ShowError(err)
	return errShown
}

func (a *app) print(body json.RawMessage) {
	if body == nil {
		return
	}
	out := pretty.Pretty(body)
	if console.IsTerminal(a.stdout) {
		out = pretty.Color(out, nil)
	}
	a.stdout.Write(out)
}

// parsePairs turns key=value arguments into form values; repeated keys accumulate
func parsePairs(args []string) (url.Values, error) {
	values := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q: expected key=value", arg)
		}
		values.Add(key, value)
	}
	return values, nil
}
