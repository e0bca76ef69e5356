package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandeepkv93/vaultos/internal/model"
	"github.com/sandeepkv93/vaultos/internal/views"
	"github.com/spf13/cobra"
)

func newProgressCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Print checklist completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, closer, err := opts.openWorkspace(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closer.Close()
			fmt.Fprintln(cmd.OutOrStdout(), ws.Progress().Label())
			return nil
		},
	}
}

func newToggleCmd(opts *cliOptions) *cobra.Command {
	var done bool
	cmd := &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Flip a checklist item, or set it with --done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, closer, err := opts.openWorkspace(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closer.Close()

			id := args[0]
			var state model.AppState
			if cmd.Flags().Changed("done") {
				state, err = ws.SetTask(cmd.Context(), id, done)
			} else {
				state, err = ws.ToggleTask(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			status := "open"
			if state.Tasks[id] {
				status = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "task %s: %s | %s\n", id, status, ws.Progress().Label())
			return nil
		},
	}
	cmd.Flags().BoolVar(&done, "done", true, "set the item instead of flipping it")
	return cmd
}

func newLogsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Print the decision log and parking lot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, closer, err := opts.openWorkspace(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closer.Close()
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderLogsPanel(logsData(ws.Store.Snapshot())))
			return nil
		},
	}
}

func newExportCmd(opts *cliOptions) *cobra.Command {
	var htmlPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export both logs as an HTML report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if htmlPath == "" {
				return fmt.Errorf("export: --html is required")
			}
			ws, closer, err := opts.openWorkspace(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closer.Close()

			doc := views.RenderLogsHTML(logsData(ws.Store.Snapshot()))
			if htmlPath == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
				return err
			}
			if dir := filepath.Dir(htmlPath); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("export: %w", err)
				}
			}
			if err := os.WriteFile(htmlPath, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", htmlPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&htmlPath, "html", "", "output file, or - for stdout")
	return cmd
}

func logsData(state model.AppState) views.LogsPanelData {
	return views.LogsPanelData{
		DecisionLog: logItems(state.DecisionLog),
		ParkingLot:  logItems(state.ParkingLot),
	}
}

func logItems(entries []model.LogEntry) []views.LogItemData {
	out := make([]views.LogItemData, 0, len(entries))
	for _, e := range entries {
		out = append(out, views.LogItemData{Idea: e.Idea, Decision: e.Decision, Timestamp: e.Timestamp})
	}
	return out
}
