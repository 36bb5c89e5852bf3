package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"garmindev/internal/devices"
	"garmindev/internal/logging"
)

func newDeviceCommand(ctx *commandContext) *cobra.Command {
	deviceCmd := &cobra.Command{
		Use:   "device",
		Short: "Device catalog and detection",
	}

	deviceCmd.AddCommand(newDeviceListCommand(ctx))
	deviceCmd.AddCommand(newDeviceWatchCommand(ctx))

	return deviceCmd
}

type deviceRecord struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Width       int    `json:"screen_width"`
	Height      int    `json:"screen_height"`
	Shape       string `json:"shape"`
}

func newDeviceListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "list",
		Short:       "List supported devices",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := devices.List()

			if jsonOutput {
				records := make([]deviceRecord, 0, len(list))
				for _, d := range list {
					records = append(records, deviceRecord{
						ID:          d.ID,
						DisplayName: d.DisplayName,
						Width:       d.ScreenWidth,
						Height:      d.ScreenHeight,
						Shape:       d.Shape,
					})
				}
				return writeJSON(cmd, records)
			}

			rows := make([][]string, 0, len(list))
			for _, d := range list {
				rows = append(rows, []string{
					d.ID,
					d.DisplayName,
					fmt.Sprintf("%dx%d", d.ScreenWidth, d.ScreenHeight),
					d.Shape,
				})
			}
			writeColumns(cmd.OutOrStdout(), []column{
				{header: "Device"},
				{header: "Name"},
				{header: "Screen", numeric: true},
				{header: "Shape"},
			}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the catalog as JSON")
	return cmd
}

func newDeviceWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch for Garmin devices attached over USB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			out := cmd.OutOrStdout()
			watcher := devices.NewWatcher(logger, func(evt devices.Event) {
				label := evt.Product
				if label == "" {
					label = evt.Node
				}
				fmt.Fprintf(out, "%s %s (%s)\n", evt.Action, label, evt.Node)
			})

			watchCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := watcher.Start(watchCtx); err != nil {
				return err
			}
			if !watcher.Running() {
				fmt.Fprintln(out, "Device watch unavailable (no netlink access)")
				return nil
			}
			defer watcher.Stop()

			fmt.Fprintln(out, "Watching for Garmin USB devices; press Ctrl-C to stop")
			<-watchCtx.Done()
			return nil
		},
	}
}
