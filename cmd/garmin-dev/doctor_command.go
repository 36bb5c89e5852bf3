package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"garmindev/internal/preflight"
)

type doctorRecord struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the local development environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.CheckAll(cfg)

			failures := 0
			for _, result := range results {
				if !result.Passed {
					failures++
				}
			}

			if jsonOutput {
				records := make([]doctorRecord, 0, len(results))
				for _, result := range results {
					records = append(records, doctorRecord(result))
				}
				if err := writeJSON(cmd, records); err != nil {
					return err
				}
			} else {
				rows := make([][]string, 0, len(results))
				for _, result := range results {
					mark := "ok"
					if !result.Passed {
						mark = "FAIL"
					}
					rows = append(rows, []string{mark, result.Name, result.Detail})
				}
				writeColumns(cmd.OutOrStdout(), []column{
					{header: "Status"},
					{header: "Check"},
					{header: "Detail"},
				}, rows)
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d checks failed", failures, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print check results as JSON")
	return cmd
}
