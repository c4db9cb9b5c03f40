package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"transcriptgrab/internal/fetch"
	"transcriptgrab/internal/language"
	"transcriptgrab/internal/logging"
	"transcriptgrab/internal/providers"
	"transcriptgrab/internal/tracks"
	"transcriptgrab/internal/videoid"
)

func newTracksCommand(cctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tracks <url-or-id>",
		Short: "List the caption tracks a video advertises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID, _, err := videoid.Canonical(args[0])
			if err != nil {
				return err
			}

			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			client := fetch.NewClient(fetch.Config{
				Timeout:   time.Duration(cfg.Retrieval.HTTPTimeout) * time.Second,
				UserAgent: cfg.Retrieval.UserAgent,
			})

			list, err := listTracks(cmd, cctx, client, videoID)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No caption tracks available")
				return nil
			}

			if asJSON {
				return writeJSON(cmd, trackRows(list))
			}
			printTracks(cmd, list)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the track list as JSON")
	return cmd
}

func listTracks(cmd *cobra.Command, cctx *commandContext, client *fetch.Client, videoID string) ([]tracks.Track, error) {
	cfg := cctx.configValue()
	logger := cctx.loggerValue()

	watch := providers.NewWatchPage(client, cfg.Retrieval.Attempts,
		logging.NewComponentLogger(logger, "watch-page"))
	list, err := watch.ListTracks(cmd.Context(), videoID)
	if err == nil && len(list) > 0 {
		return list, nil
	}
	if err != nil {
		logger.Debug("watch page track listing failed", logging.Error(err))
	}

	player := providers.NewPlayerAPI(client, cfg.Retrieval.Attempts,
		logging.NewComponentLogger(logger, "player-api"))
	return player.ListTracks(cmd.Context(), videoID)
}

type trackRow struct {
	Code      string `json:"code"`
	Language  string `json:"language"`
	Name      string `json:"name,omitempty"`
	Generated bool   `json:"generated"`
}

func trackRows(list []tracks.Track) []trackRow {
	rows := make([]trackRow, 0, len(list))
	for _, track := range list {
		rows = append(rows, trackRow{
			Code:      track.LanguageCode,
			Language:  language.DisplayName(track.LanguageCode),
			Name:      track.Name,
			Generated: track.IsGenerated(),
		})
	}
	return rows
}

func printTracks(cmd *cobra.Command, list []tracks.Track) {
	headers := []string{"Code", "Language", "Name", "Auto"}
	rows := make([][]string, 0, len(list))
	for _, row := range trackRows(list) {
		rows = append(rows, []string{row.Code, row.Language, row.Name, yesNo(row.Generated)})
	}

	out := cmd.OutOrStdout()
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(out, renderTable(headers, rows))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", row[0], row[1], row[2], row[3])
	}
}
