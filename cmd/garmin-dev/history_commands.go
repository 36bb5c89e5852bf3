package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"garmindev/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Capture history",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

type historyRecord struct {
	ID        int64  `json:"id"`
	RunID     string `json:"run_id"`
	Device    string `json:"device"`
	Format    string `json:"format"`
	Output    string `json:"output,omitempty"`
	Elements  int    `json:"elements"`
	Screen    string `json:"screen"`
	CreatedAt string `json:"created_at"`
}

func toHistoryRecord(run history.Run) historyRecord {
	return historyRecord{
		ID:        run.ID,
		RunID:     run.RunID,
		Device:    run.DeviceModel,
		Format:    run.OutputFormat,
		Output:    run.OutputPath,
		Elements:  run.TotalElements(),
		Screen:    fmt.Sprintf("%dx%d", run.ScreenWidth, run.ScreenHeight),
		CreatedAt: run.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (c *commandContext) withHistory(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := history.Open(cfg)
	if err != nil {
		return fmt.Errorf("open capture history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent capture runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				runs, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}

				if jsonOutput {
					records := make([]historyRecord, 0, len(runs))
					for _, run := range runs {
						records = append(records, toHistoryRecord(run))
					}
					return writeJSON(cmd, records)
				}

				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No capture runs recorded")
					return nil
				}

				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rec := toHistoryRecord(run)
					rows = append(rows, []string{
						strconv.FormatInt(rec.ID, 10),
						rec.RunID,
						rec.Device,
						rec.Format,
						strconv.Itoa(rec.Elements),
						rec.Screen,
						rec.CreatedAt,
					})
				}
				writeColumns(out, []column{
					{header: "ID", numeric: true},
					{header: "Run"},
					{header: "Device"},
					{header: "Format"},
					{header: "Elements", numeric: true},
					{header: "Screen", numeric: true},
					{header: "Captured"},
				}, rows)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print runs as JSON")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one capture run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				run, err := store.GetByRunID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("no capture run with id %q", args[0])
				}
				return writeJSON(cmd, toHistoryRecord(*run))
			})
		},
	}
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded capture runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d capture runs\n", removed)
				return nil
			})
		},
	}
}
