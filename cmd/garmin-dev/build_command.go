package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"garmindev/internal/devices"
	"garmindev/internal/logging"
	"garmindev/internal/sdk"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var deviceFlag string
	var outputPath string
	var junglePath string
	var optimize bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the Connect IQ app with monkeyc",
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
			log := logging.NewComponentLogger(logger, "build")

			found, err := sdk.Discover(cfg.SDK.Root)
			if err != nil {
				return fmt.Errorf("locate sdk: %w", err)
			}

			device := strings.TrimSpace(deviceFlag)
			if device == "" {
				device = cfg.Capture.DefaultDevice
			}
			if !devices.IsSupported(device) {
				log.Warn("device not in catalog; build continues with the given model",
					logging.String(logging.FieldDevice, device),
				)
			}

			output := strings.TrimSpace(outputPath)
			if output == "" {
				output = "app.prg"
			}

			argv := found.Command(sdk.BuildPlan{
				Device:   device,
				Output:   output,
				Jungle:   strings.TrimSpace(junglePath),
				Optimize: optimize,
			})

			log.Info("build planned",
				logging.String(logging.FieldDevice, device),
				logging.String("sdk_version", found.Version()),
				logging.String("output", output),
			)

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(argv, " "))
				return nil
			}

			run := exec.CommandContext(cmd.Context(), argv[0], argv[1:]...)
			run.Stdout = cmd.OutOrStdout()
			run.Stderr = cmd.ErrOrStderr()
			run.Stdin = os.Stdin
			if err := run.Run(); err != nil {
				return fmt.Errorf("monkeyc: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Built %s for %s\n", output, device)
			return nil
		},
	}

	cmd.Flags().StringVarP(&deviceFlag, "device", "d", "", "Target device model")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output executable (default: app.prg)")
	cmd.Flags().StringVarP(&junglePath, "jungle", "f", "", "Jungle build file")
	cmd.Flags().BoolVar(&optimize, "optimize", false, "Enable compiler optimization")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the compiler command without running it")

	return cmd
}
