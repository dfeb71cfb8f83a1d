package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidapov/povctl/internal/camera"
	"github.com/aidapov/povctl/internal/profile"
	"github.com/aidapov/povctl/internal/ui"
)

func (a *app) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Save and apply sets of image settings",
		Long: `Capture image settings into a YAML profile and apply it later, to the same
camera or another one.

Apply checks every value before sending, skips values that already match and
restores the previous values if the camera rejects a setting part way through.`,
	}
	cmd.AddCommand(a.profileSaveCmd(), a.profileApplyCmd(), a.profileCheckCmd())
	return cmd
}

func (a *app) profileSaveCmd() *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Write the camera's current image settings to a profile",
		Example: `  povctl profile save lobby-day.yaml -c lobby
  povctl profile save exposure.yaml -c lobby --params exposure-mode,shutter,gain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range names {
				if _, err := lookupParameter(name); err != nil {
					return err
				}
			}

			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			p, err := profile.Capture(cmd.Context(), c.session, names...)
			if err != nil {
				return err
			}
			if err := p.SaveFile(args[0]); err != nil {
				return err
			}

			ui.NewPrinter(a.out).PrintResult(ui.NewSuccessResult(
				fmt.Sprintf("Saved %d settings to %s", len(p.Settings), args[0]),
				ui.Param{Key: "Camera", Value: c.session.Host()},
			))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&names, "params", nil, "Only save these parameters (default all)")
	return cmd
}

func (a *app) profileCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a profile without contacting a camera",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profile.LoadFile(args[0])
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}

			printer := ui.NewPrinter(a.out)
			for _, s := range p.Settings {
				param, _ := camera.LookupParameter(s.Name)
				if warning := param.Warning(s.Value); warning != nil {
					fmt.Fprintln(a.errOut, warning)
				}
			}
			printer.PrintResult(ui.NewSuccessResult(
				fmt.Sprintf("%s is valid (%d settings)", args[0], len(p.Settings))))
			return nil
		},
	}
}

func (a *app) profileApplyCmd() *cobra.Command {
	var noRollback bool

	cmd := &cobra.Command{
		Use:   "apply <file>",
		Short: "Apply a profile to the camera",
		Example: `  povctl profile apply lobby-day.yaml -c lobby
  povctl profile apply night.yaml -c dock --no-rollback`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profile.LoadFile(args[0])
			if err != nil {
				return err
			}
			// fail before logging in
			if err := p.Validate(); err != nil {
				return err
			}

			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			for _, s := range p.Settings {
				param, _ := camera.LookupParameter(s.Name)
				if warning := param.Warning(s.Value); warning != nil {
					fmt.Fprintln(a.errOut, warning)
				}
			}

			result := profile.Apply(cmd.Context(), c.session, p, profile.ApplyOptions{NoRollback: noRollback})

			if a.jsonOutput() {
				if err := a.writeJSON(applyView(result)); err != nil {
					return err
				}
				return result.Err
			}

			printer := ui.NewPrinter(a.out)
			if result.Success() {
				printer.PrintResult(ui.NewSuccessResult(
					fmt.Sprintf("Applied %s", args[0]),
					ui.Param{Key: "Changed", Value: fmt.Sprint(len(result.Applied))},
					ui.Param{Key: "Unchanged", Value: fmt.Sprint(len(result.Unchanged))},
				))
				return nil
			}

			if result.RollbackAttempted {
				r := ui.NewWarningResult(fmt.Sprintf("Applying %s failed", args[0]),
					ui.Param{Key: "Error", Value: result.Err.Error()})
				if result.RollbackSucceeded {
					r.AddDetail("Rollback", "previous values restored")
				} else {
					r.AddDetail("Rollback", result.RollbackErr.Error())
				}
				printer.PrintResult(r)
			}
			return result.Err
		},
	}

	cmd.Flags().BoolVar(&noRollback, "no-rollback", false, "Send every setting and keep earlier ones if a later one fails")
	return cmd
}

type applyResultView struct {
	Applied           []profile.Setting `json:"applied"`
	Unchanged         []profile.Setting `json:"unchanged"`
	Failed            *profile.Setting  `json:"failed,omitempty"`
	Error             string            `json:"error,omitempty"`
	RollbackAttempted bool              `json:"rollback_attempted"`
	RollbackSucceeded bool              `json:"rollback_succeeded"`
	RollbackError     string            `json:"rollback_error,omitempty"`
}

func applyView(r *profile.Result) applyResultView {
	v := applyResultView{
		Applied:           r.Applied,
		Unchanged:         r.Unchanged,
		Failed:            r.Failed,
		RollbackAttempted: r.RollbackAttempted,
		RollbackSucceeded: r.RollbackSucceeded,
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	if r.RollbackErr != nil {
		v.RollbackError = r.RollbackErr.Error()
	}
	return v
}
