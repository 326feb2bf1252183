package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ordosx/percentage/pkg/config"
	"github.com/ordosx/percentage/pkg/icon"
	"github.com/ordosx/percentage/pkg/powerinfo"
	"github.com/ordosx/percentage/pkg/sampler"
)

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		GroupID: gBasic,
		Short:   "Show the current battery status",
		Long:    `Read every battery once and show what the tray icon would display.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			devices, err := sampler.SystemSource{}.Devices()
			if err != nil {
				return err
			}

			printStatus(cmd, devices)

			return nil
		},
	}
}

// printStatus shows every usable battery under its index in the system's
// battery list.
func printStatus(cmd *cobra.Command, devices []powerinfo.Device) {
	samples := sampler.Resolve(devices, config.DevicePolicyAll)
	if len(samples) == 0 {
		cmd.Println("No battery found.")
		return
	}

	for _, s := range samples {
		cmd.Println(bold("Battery %d:", s.Device))
		cmd.Printf("  Current charge: %s\n", bold("%d%%", s.Percentage))
		cmd.Printf("  State: %s\n", bold("%s", stateText(s.State)))
		cmd.Printf("  Tooltip: %s\n", s.Tooltip())
		cmd.Printf("  Icon text: %s\n", bold("%s", icon.FormatText(s.Percentage, s.Charging())))
		cmd.Println()
	}
}

func stateText(s powerinfo.ChargingState) string {
	switch s {
	case powerinfo.Charging:
		return color.GreenString("charging")
	case powerinfo.Discharging:
		return color.RedString("discharging")
	case powerinfo.Full:
		return "full"
	default:
		return color.YellowString("unknown")
	}
}

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
