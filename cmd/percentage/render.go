package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ordosx/percentage/pkg/config"
	"github.com/ordosx/percentage/pkg/icon"
)

func NewRenderCommand() *cobra.Command {
	var (
		percentage int
		charging   bool
		output     string
		size       int
	)

	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render a single tray icon to a file",
		GroupID: gBasic,
		Long: `Render the tray icon for a battery reading and write it as an ICO file.

The icon size and font are taken from the config file unless --size is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.NewFile(configPath)
			if err != nil {
				return pkgerrors.Wrap(err, "failed to load config")
			}

			if !cmd.Flags().Changed("size") {
				size = conf.IconSize()
			}
			if size < icon.MinSize || size > icon.MaxSize {
				return fmt.Errorf("invalid size %d: must be between %d and %d", size, icon.MinSize, icon.MaxSize)
			}

			font, err := icon.LoadFont(conf.FontPath())
			if err != nil {
				return pkgerrors.Wrap(err, "failed to load font")
			}

			gen := icon.NewGenerator(font, size)
			text, layout, err := gen.Layout(percentage, charging)
			if err != nil {
				return err
			}

			b, err := gen.Icon(percentage, charging)
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, b, 0644); err != nil {
				return pkgerrors.Wrapf(err, "failed to write icon to %s", output)
			}
			logrus.Debugf("wrote %d bytes to %s", len(b), output)

			cmd.Printf("Text: %s\n", bold("%q", text))
			cmd.Printf("Size: %s\n", bold("%dx%d", size, size))
			cmd.Printf("Scale: %s\n", bold("%.2f", layout.Scale))
			cmd.Printf("Origin: %s\n", bold("(%d, %d)", layout.OriginX, layout.OriginY))
			cmd.Printf("Written to %s\n", color.GreenString(output))

			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&percentage, "percentage", "p", 0, "battery percentage (0-100)")
	flags.BoolVar(&charging, "charging", false, "render the icon for a charging battery")
	flags.StringVarP(&output, "output", "o", "percentage.ico", "output file")
	flags.IntVar(&size, "size", icon.DefaultSize, "icon side length in pixels")
	_ = cmd.MarkFlagRequired("percentage")

	return cmd
}
