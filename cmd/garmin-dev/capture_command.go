package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"garmindev/internal/capture"
	"garmindev/internal/config"
	"garmindev/internal/devices"
	"garmindev/internal/history"
	"garmindev/internal/logging"
)

type captureSummary struct {
	RunID    string `json:"run_id"`
	Device   string `json:"device"`
	Format   string `json:"format"`
	Output   string `json:"output"`
	Elements int    `json:"elements"`
	Texts    int    `json:"texts"`
	Circles  int    `json:"circles"`
	Rects    int    `json:"rects"`
}

func newCaptureCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var outputPath string
	var formatFlag string
	var deviceFlag string
	var jsonSummary bool

	cmd := &cobra.Command{
		Use:     "capture",
		Aliases: []string{"ui-capture"},
		Short:   "Reconstruct UI state from render debug logs",
		Long: `Parse render/layout/state trace lines from a debug log and write the
reconstructed UI state as an XML or JSON document.

Examples:
  garmin-dev capture --input debug.log --output ui-state.xml
  garmin-dev capture -i debug.log -f json -o ui-state.json
  simulator --debug | garmin-dev capture -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			log := logging.NewComponentLogger(logger, "capture")

			formatValue := formatFlag
			if strings.TrimSpace(formatValue) == "" {
				formatValue = cfg.Capture.OutputFormat
			}
			format, err := capture.ParseFormat(formatValue)
			if err != nil {
				return err
			}

			device := strings.TrimSpace(deviceFlag)
			if device == "" {
				device = cfg.Capture.DefaultDevice
			}
			if !devices.IsSupported(device) {
				log.Warn("device not in catalog; capture continues with the given model",
					logging.String(logging.FieldDevice, device),
				)
			}

			logText, err := readInput(cmd, inputPath)
			if err != nil {
				return err
			}

			result, err := capture.Run(logText, capture.Options{
				Device:  device,
				AppName: cfg.Capture.AppName,
				Format:  format,
			})
			if err != nil {
				return err
			}

			destination := strings.TrimSpace(outputPath)
			if destination == "" {
				destination = "ui-state." + string(format)
			}
			if destination == "-" {
				if _, err := cmd.OutOrStdout().Write(result.Output); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			} else {
				if err := os.WriteFile(destination, result.Output, 0o644); err != nil {
					return fmt.Errorf("write output %q: %w", destination, err)
				}
			}

			log.Info("ui state captured",
				logging.String(logging.FieldRunID, result.RunID),
				logging.String(logging.FieldDevice, device),
				logging.Int("elements", result.Counts.Total()),
			)

			recordCaptureHistory(cmd.Context(), cfg, log, result, destination)

			summary := captureSummary{
				RunID:    result.RunID,
				Device:   device,
				Format:   string(result.Format),
				Output:   destination,
				Elements: result.Counts.Total(),
				Texts:    result.Counts.Text,
				Circles:  result.Counts.Circle,
				Rects:    result.Counts.Rect,
			}
			if jsonSummary {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			if destination != "-" {
				fmt.Fprintf(out, "UI state saved to %s\n", destination)
			}
			fmt.Fprintf(out, "Captured %d UI elements (%d text, %d circle, %d rect)\n",
				summary.Elements, summary.Texts, summary.Circles, summary.Rects)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input log file (default: stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file, or - for stdout (default: ui-state.<format>)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: xml or json")
	cmd.Flags().StringVarP(&deviceFlag, "device", "d", "", "Target device model")
	cmd.Flags().BoolVar(&jsonSummary, "json", false, "Print the capture summary as JSON")

	return cmd
}

// recordCaptureHistory stores the run in the history database. History
// failures never fail the capture itself; the document is already
// written by the time this runs.
func recordCaptureHistory(ctx context.Context, cfg *config.Config, log *slog.Logger, result *capture.Result, destination string) {
	if !cfg.History.Enabled {
		return
	}

	store, err := history.Open(cfg)
	if err != nil {
		log.Warn("capture history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	outputPath := destination
	if outputPath == "-" {
		outputPath = ""
	}
	_, err = store.Record(ctx, history.Run{
		RunID:          result.RunID,
		DeviceModel:    result.Document.Metadata.DeviceModel,
		OutputFormat:   string(result.Format),
		OutputPath:     outputPath,
		TextElements:   result.Counts.Text,
		CircleElements: result.Counts.Circle,
		RectElements:   result.Counts.Rect,
		ScreenWidth:    result.Document.Metadata.ScreenWidth,
		ScreenHeight:   result.Document.Metadata.ScreenHeight,
	})
	if err != nil {
		log.Warn("record capture history", logging.Error(err))
		return
	}
	if _, err := store.Prune(ctx, cfg.History.RetentionDays); err != nil {
		log.Warn("prune capture history", logging.Error(err))
	}
}
