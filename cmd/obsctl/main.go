package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"obsctl/internal/config"
	"obsctl/internal/obs"
	"obsctl/internal/output"
)

const (
	exitSuccess     = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
	version         = "1.0.0"
)

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func main() {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigc
		fmt.Fprintln(os.Stderr, "Interrupted (Ctrl-C)")
		os.Exit(exitInterrupted)
	}()

	a := &app{}
	if err := a.rootCommand().Execute(); err != nil {
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr, ue.msg)
			os.Exit(exitUsage)
		}
		a.errorOut().Error("Error: " + err.Error())
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}

type app struct {
	out *output.Output

	host     string
	port     int
	password string
	jsonOut  bool
	quiet    bool
	verbose  bool
	noColor  bool
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "obsctl",
		Short:         "Remote-control OBS Studio over obs-websocket",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			a.out = output.New(output.Options{
				JSON:    a.jsonOut,
				Quiet:   a.quiet,
				Verbose: a.verbose,
				NoColor: a.noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb",
			})
		},
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error() + "\n(run with --help for usage)"}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.host, "host", "", "obs-websocket host (overrides config)")
	pf.IntVar(&a.port, "port", 0, "obs-websocket port (overrides config)")
	pf.StringVar(&a.password, "password", "", "obs-websocket password (overrides config)")
	pf.BoolVar(&a.jsonOut, "json", false, "Output machine-readable JSON")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "Suppress non-essential output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		a.versionCommand(),
		a.statusCommand(),
		a.sceneCommand(),
		a.sourceCommand(),
		a.inputCommand(),
		a.audioCommand(),
		a.recordCommand(),
		a.streamCommand(),
		a.initCommand(),
	)
	return root
}

// connect loads the config, applies flag overrides, and opens the session.
// A missing config file is tolerated when --host supplies the endpoint.
func (a *app) connect() (*obs.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		if !errors.Is(err, config.ErrNoConfig) || a.host == "" {
			return nil, err
		}
		cfg = config.Config{Port: config.DefaultPort}
	}
	if a.host != "" {
		cfg.Host = a.host
	}
	if a.port != 0 {
		cfg.Port = a.port
	}
	if a.password != "" {
		cfg.Password = a.password
	}
	return obs.Connect(cfg)
}

// withSession runs fn against a freshly opened session and closes it after.
func (a *app) withSession(fn func(s *obs.Session, args []string) error) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		session, err := a.connect()
		if err != nil {
			return err
		}
		defer func() { _ = session.Close() }()
		return fn(session, args)
	}
}

// errorOut returns the configured output, or a bare one for errors raised
// before flag parsing has built it.
func (a *app) errorOut() *output.Output {
	if a.out != nil {
		return a.out
	}
	return output.New(output.Options{})
}

// noArgs and exactArgs classify argument-count mistakes as usage errors so
// they exit 2 instead of 1.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{msg: err.Error()}
	}
	return nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{msg: err.Error()}
		}
		return nil
	}
}
