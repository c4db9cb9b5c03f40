package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"transcriptgrab/internal/deps"
)

func newDepsCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Default(cfg.Ytdlp.Binary))

			headers := []string{"Tool", "Command", "Available", "Detail"}
			rows := make([][]string, 0, len(statuses))
			missingRequired := false
			for _, status := range statuses {
				rows = append(rows, []string{status.Name, status.Command, yesNo(status.Available), status.Detail})
				if !status.Available && !status.Optional {
					missingRequired = true
				}
			}

			out := cmd.OutOrStdout()
			if isatty.IsTerminal(os.Stdout.Fd()) {
				fmt.Fprintln(out, renderTable(headers, rows))
			} else {
				for _, row := range rows {
					fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", row[0], row[1], row[2], row[3])
				}
			}

			if missingRequired {
				return fmt.Errorf("required dependencies missing")
			}
			return nil
		},
	}
}
