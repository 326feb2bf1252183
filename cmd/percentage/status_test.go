package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/ordosx/percentage/pkg/powerinfo"
)

func TestPrintStatus(t *testing.T) {
	tests := []struct {
		name    string
		devices []powerinfo.Device
		want    []string
		notWant []string
	}{
		{
			name: "no battery",
			want: []string{"No battery found."},
		},
		{
			name: "labels follow the system index",
			devices: []powerinfo.Device{
				{Index: 1, Fraction: 0.42, State: powerinfo.Discharging},
				{Index: 3, Fraction: 0.99, State: powerinfo.Charging},
			},
			want: []string{
				"Battery 1:", "Discharging: 42%",
				"Battery 3:", "Charging: 99%", "^_^",
			},
			notWant: []string{"Battery 0:", "Battery 2:"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetOut(&out)

			printStatus(cmd, tt.devices)

			for _, s := range tt.want {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}
