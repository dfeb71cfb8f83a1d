package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidapov/povctl/internal/camera"
	"github.com/aidapov/povctl/internal/params"
	"github.com/aidapov/povctl/internal/ui"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show camera system information",
		Long: `Log in and print the firmware versions, device name and serial number
reported by the camera.`,
		Example: `  # Query a camera by host
  povctl info --camera 192.168.1.20 --password secret

  # Query a saved camera and print JSON
  povctl info -c lobby -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			info, err := c.session.GetInfo(cmd.Context())
			if err != nil {
				return err
			}
			if info == nil {
				return errors.New("camera returned no system information")
			}

			if a.jsonOutput() {
				return a.writeJSON(info)
			}

			p := ui.NewPrinter(a.out)
			if p.Plain {
				// headers are dropped when piped
				p.Println(info.Summary())
			}
			p.PrintHeader(ui.NewHeader("Camera Information", "povctl info",
				ui.Param{Key: "Camera", Value: c.session.Host()},
				ui.Param{Key: "Device", Value: info.Summary()}))
			p.PrintBlock(info.FormatDetailed())
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show all image settings",
		Long: `Read the whole image subsystem in one request and print exposure, color,
picture and noise reduction settings.`,
		Example: `  povctl show -c lobby
  povctl show -c lobby -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			settings, err := c.session.GetImageSettings(cmd.Context())
			if err != nil {
				return err
			}
			if settings == nil {
				return errors.New("camera returned no image settings")
			}

			if a.jsonOutput() {
				return a.writeJSON(settings)
			}

			p := ui.NewPrinter(a.out)
			p.PrintHeader(ui.NewHeader("Image Settings", "povctl show",
				ui.Param{Key: "Camera", Value: c.session.Host()}))
			p.PrintBlock(settings.FormatDetailed())
			return nil
		},
	}
}

func lookupParameter(name string) (camera.Parameter, error) {
	p, ok := camera.LookupParameter(name)
	if !ok {
		return camera.Parameter{}, fmt.Errorf("unknown parameter %q (run 'povctl params' for the list)", name)
	}
	return p, nil
}

func completeParameterNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return camera.ParameterNames(), cobra.ShellCompDirectiveNoFileComp
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <parameter>",
		Short: "Read one image parameter",
		Long: `Read a single image parameter by name and print its value.

Run 'povctl params' to list parameter names.`,
		Example: `  povctl get shutter -c lobby
  povctl get color-temperature -c 192.168.1.20 --password secret`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeParameterNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			param, err := lookupParameter(args[0])
			if err != nil {
				return err
			}

			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			value, ok, err := param.Get(cmd.Context(), c.session)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("camera did not report a recognised %s value", param.Name)
			}

			if a.jsonOutput() {
				return a.writeJSON(map[string]string{
					"parameter": param.Name,
					"value":     value,
				})
			}
			fmt.Fprintln(a.out, value)
			return nil
		},
	}
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <parameter> <value>",
		Short: "Change one image parameter",
		Long: `Write a single image parameter and verify the camera echoed it back.

Values outside a documented advisory range are sent anyway with a warning.
Color temperature is the exception: values outside 1800-10000 are rejected
before anything is sent.

Run 'povctl params' to list parameter names and accepted values.`,
		Example: `  # Manual exposure at 1/250s
  povctl set exposure-mode manual -c lobby
  povctl set shutter 1/250 -c lobby

  # Wide dynamic range
  povctl set wdr 4 -c lobby
  povctl set mirror on -c lobby`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeParameterNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			param, err := lookupParameter(args[0])
			if err != nil {
				return err
			}
			value := args[1]
			if err := param.Check(value); err != nil {
				return err
			}

			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			if warning := param.Warning(value); warning != nil {
				fmt.Fprintln(a.errOut, warning)
			}

			applied, err := param.Set(cmd.Context(), c.session, value)
			if err != nil {
				return err
			}
			if !applied {
				return fmt.Errorf("camera did not confirm %s = %s", param.Name, value)
			}

			if a.jsonOutput() {
				return a.writeJSON(map[string]any{
					"parameter": param.Name,
					"value":     value,
					"applied":   true,
				})
			}
			ui.NewPrinter(a.out).PrintResult(ui.NewSuccessResult(
				fmt.Sprintf("%s set to %s", param.Name, value),
				ui.Param{Key: "Camera", Value: c.session.Host()},
			))
			return nil
		},
	}
}

type parameterView struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Values      []string `json:"values,omitempty"`
	Min         *int     `json:"min,omitempty"`
	Max         *int     `json:"max,omitempty"`
	Enforced    bool     `json:"enforced,omitempty"`
	Description string   `json:"description"`
}

func describeValues(p camera.Parameter) string {
	if p.Range != nil {
		s := p.Range.String()
		if p.Range.Enforced {
			s += " (enforced)"
		}
		return s
	}
	return strings.Join(p.Values, " ")
}

func (a *app) paramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List parameters accepted by get and set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := camera.Parameters()

			if a.jsonOutput() {
				views := make([]parameterView, 0, len(all))
				for _, p := range all {
					v := parameterView{
						Name:        p.Name,
						Kind:        p.Kind.String(),
						Values:      p.Values,
						Description: p.Description,
					}
					if p.Range != nil {
						lo, hi := p.Range.Min, p.Range.Max
						v.Min, v.Max, v.Enforced = &lo, &hi, p.Range.Enforced
					}
					views = append(views, v)
				}
				return a.writeJSON(views)
			}

			rows := make([][]string, 0, len(all))
			for _, p := range all {
				rows = append(rows, []string{p.Name, p.Kind.String(), describeValues(p), p.Description})
			}
			ui.NewPrinter(a.out).PrintTable([]string{"NAME", "KIND", "VALUES", "DESCRIPTION"}, rows)
			return nil
		},
	}
}

func (a *app) streamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stream [main|sub]",
		Short: "Show playback URLs of an encoder stream",
		Long: `Print the RTSP, RTMP, HTTP-FLV and WebRTC URLs of the main or sub stream.

Without an argument the saved camera's default stream is used, then main.`,
		Example: `  povctl stream -c lobby
  povctl stream sub -c lobby -o json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(params.StreamMain), string(params.StreamSub)},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			stream := params.StreamMain
			if len(args) == 1 {
				stream = params.Stream(args[0])
			} else if cam := c.saved(); cam != nil && cam.DefaultStream != "" {
				stream = params.Stream(cam.DefaultStream)
			}

			urls, err := c.session.GetStreamURLs(cmd.Context(), stream)
			if err != nil {
				return err
			}
			if urls == nil {
				return fmt.Errorf("camera returned no %s stream", stream)
			}

			if a.jsonOutput() {
				return a.writeJSON(urls)
			}

			rows := [][]string{
				{"RTSP", orDash(urls.RTSP)},
				{"RTMP", orDash(urls.RTMP)},
				{"HTTP-FLV", orDash(urls.FLV)},
				{"WebRTC", orDash(urls.WebRTC)},
			}
			ui.NewPrinter(a.out).PrintTable([]string{"PROTOCOL", strings.ToUpper(string(urls.Stream)) + " STREAM URL"}, rows)
			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
