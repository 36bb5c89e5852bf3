package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"garmindev/internal/logging"
	"garmindev/internal/sdk"
)

func newDeployCommand(ctx *commandContext) *cobra.Command {
	var deviceFlag string
	var simulator bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "deploy <executable>",
		Short: "Run the compiled app with monkeydo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			log := logging.NewComponentLogger(logger, "deploy")

			executable := args[0]
			if _, err := os.Stat(executable); err != nil {
				return fmt.Errorf("executable %q: %w", executable, err)
			}

			found, err := sdk.Discover(cfg.SDK.Root)
			if err != nil {
				return fmt.Errorf("locate sdk: %w", err)
			}

			device := strings.TrimSpace(deviceFlag)
			if device == "" {
				device = cfg.Capture.DefaultDevice
			}

			argv := found.DeployCommand(sdk.DeployPlan{
				Executable: executable,
				Device:     device,
				Simulator:  simulator,
			})

			log.Info("deploy planned",
				logging.String(logging.FieldDevice, device),
				logging.String("executable", executable),
				logging.Bool("simulator", simulator),
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
				return fmt.Errorf("monkeydo: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&deviceFlag, "device", "d", "", "Target device model")
	cmd.Flags().BoolVar(&simulator, "simulator", false, "Deploy to the running simulator")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the deploy command without running it")

	return cmd
}
