package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidapov/povctl/internal/config"
	"github.com/aidapov/povctl/internal/ui"
)

func (a *app) cameraCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "camera",
		Short: "Manage saved cameras",
		Long: `Save cameras by name so that --camera accepts the name instead of a host.

Only the host, username, nickname and default stream are stored. Passwords
are never saved.`,
	}
	cmd.AddCommand(a.cameraAddCmd(), a.cameraListCmd(), a.cameraRemoveCmd())
	return cmd
}

func (a *app) cameraAddCmd() *cobra.Command {
	var (
		nickname string
		username string
		stream   string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <host>",
		Short: "Save a camera under a name",
		Example: `  povctl camera add lobby 192.168.1.20
  povctl camera add dock 10.0.0.5:8080 --user viewer --stream sub --nickname "Loading dock"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := config.Load()
			if err != nil {
				return err
			}

			name, host := args[0], args[1]
			replaced := reg.GetCamera(name) != nil

			err = reg.AddCamera(name, &config.Camera{
				Host:          host,
				Username:      username,
				Nickname:      nickname,
				DefaultStream: stream,
			})
			if err != nil {
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}

			title := fmt.Sprintf("Saved camera %s", name)
			if replaced {
				title = fmt.Sprintf("Updated camera %s", name)
			}
			ui.NewPrinter(a.out).PrintResult(ui.NewSuccessResult(title,
				ui.Param{Key: "Host", Value: host}))
			return nil
		},
	}

	cmd.Flags().StringVar(&nickname, "nickname", "", "Display name")
	cmd.Flags().StringVar(&username, "user", "", "Login username for this camera")
	cmd.Flags().StringVar(&stream, "stream", "", "Default stream for 'povctl stream' (main or sub)")

	return cmd
}

func (a *app) cameraListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved cameras",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := config.Load()
			if err != nil {
				return err
			}

			if a.jsonOutput() {
				return a.writeJSON(reg.Cameras)
			}

			names := reg.Names()
			if len(names) == 0 {
				fmt.Fprintln(a.out, "No saved cameras. Add one with 'povctl camera add <name> <host>'.")
				return nil
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				cam := reg.GetCamera(name)
				username := cam.Username
				if username == "" {
					username = reg.DefaultUsername()
				}
				stream := cam.DefaultStream
				if stream == "" {
					stream = "main"
				}
				lastSeen := "never"
				if !cam.LastSeen.IsZero() {
					lastSeen = cam.LastSeen.Local().Format(time.DateTime)
				}
				rows = append(rows, []string{name, cam.Host, username, orDash(cam.Nickname), stream, lastSeen})
			}
			ui.NewPrinter(a.out).PrintTable(
				[]string{"NAME", "HOST", "USER", "NICKNAME", "STREAM", "LAST SEEN"}, rows)
			return nil
		},
	}
}

func (a *app) cameraRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Forget a saved camera",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := config.Load()
			if err != nil {
				return err
			}
			if !reg.RemoveCamera(args[0]) {
				return fmt.Errorf("no saved camera named %q", args[0])
			}
			if err := reg.Save(); err != nil {
				return err
			}
			ui.NewPrinter(a.out).PrintResult(ui.NewSuccessResult(
				fmt.Sprintf("Removed camera %s", args[0])))
			return nil
		},
	}
}
