package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ordosx/percentage/pkg/autostart"
)

func NewAutostartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "autostart",
		Short:   "Start percentage at login",
		GroupID: gInstallation,
		Long: `Start percentage at login.

On macOS this installs a LaunchAgent in ~/Library/LaunchAgents. On Linux this
installs a desktop entry in ~/.config/autostart.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "enable",
			Short: "Start percentage at login",
			RunE: func(_ *cobra.Command, _ []string) error {
				m, err := autostart.New()
				if err != nil {
					return err
				}
				if err := m.Enable(); err != nil {
					return fmt.Errorf("failed to enable autostart: %v", err)
				}
				logrus.Infof("successfully enabled autostart: %s", m.Path())
				return nil
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Do not start percentage at login",
			RunE: func(_ *cobra.Command, _ []string) error {
				m, err := autostart.New()
				if err != nil {
					return err
				}
				if err := m.Disable(); err != nil {
					return fmt.Errorf("failed to disable autostart: %v", err)
				}
				logrus.Infof("successfully disabled autostart")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show whether percentage starts at login",
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := autostart.New()
				if err != nil {
					return err
				}
				enabled, err := m.IsEnabled()
				if err != nil {
					return fmt.Errorf("failed to check autostart: %v", err)
				}
				cmd.Printf("Autostart: %s\n", bool2Text(enabled))
				cmd.Printf("  %s\n", m.Path())
				return nil
			},
		},
	)

	return cmd
}
