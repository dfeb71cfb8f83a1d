// Povctl configures AIDA POV cameras over their HTTP/JSON control interface.
//
// It reads system information, shows and changes image settings, lists
// stream URLs, and keeps a registry of named cameras so a host does not have
// to be typed every time. Passwords are never saved.
//
// Usage:
//
//	povctl [command] [flags]
//
// See 'povctl --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aidapov/povctl/internal/camera"
	"github.com/aidapov/povctl/internal/logging"
	"github.com/aidapov/povctl/internal/ui"
	"github.com/aidapov/povctl/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	err := root.ExecuteContext(ctx)
	logging.Sync()
	if err != nil {
		reportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// app carries per-invocation state shared by all subcommands.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		out:    out,
		errOut: errOut,
	}

	rootCmd := &cobra.Command{
		Use:   "povctl",
		Short: "AIDA POV camera control utility",
		Long: `Configure AIDA POV cameras over their HTTP control interface.

Read camera information, inspect and change exposure, color and picture
settings, and list stream URLs. Cameras can be saved by name with
'povctl camera add' so that --camera accepts the name instead of a host.

Flags can also be set through the environment:
  POVCTL_HOST, POVCTL_USERNAME, POVCTL_PASSWORD, POVCTL_TIMEOUT, POVCTL_LOG_LEVEL`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Initialize(a.v.GetString("log_level"))
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringP("camera", "c", "", "Saved camera name or host[:port]")
	flags.StringP("username", "u", "", "Login username (default from registry, then admin)")
	flags.String("password", "", "Login password (prompted when omitted)")
	flags.Int("timeout", 0, "Request timeout in seconds (default 10)")
	flags.String("log-level", "", "Diagnostic logging to stderr: debug, info, warn, error")
	flags.StringP("output", "o", "text", "Output format: text or json")

	a.v.SetEnvPrefix("POVCTL")
	a.v.AutomaticEnv()
	_ = a.v.BindPFlag("host", flags.Lookup("camera"))
	_ = a.v.BindPFlag("username", flags.Lookup("username"))
	_ = a.v.BindPFlag("password", flags.Lookup("password"))
	_ = a.v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("output", flags.Lookup("output"))

	rootCmd.AddCommand(
		a.infoCmd(),
		a.showCmd(),
		a.getCmd(),
		a.setCmd(),
		a.paramsCmd(),
		a.streamCmd(),
		a.profileCmd(),
		a.cameraCmd(),
		a.versionCmd(),
	)

	return rootCmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.out, version.Full())
		},
	}
}

// reportError prints camera failures with a troubleshooting hint and any
// other error as a single line.
func reportError(w io.Writer, err error) {
	var devErr *camera.DeviceError
	if errors.As(err, &devErr) {
		ui.NewPrinter(w).PrintResult(ui.NewFailureResult(
			camera.GetShortErrorMessage(err),
			err,
			camera.GetTroubleshootingHint(err),
		))
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
