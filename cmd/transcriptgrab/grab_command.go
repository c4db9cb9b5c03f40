package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"transcriptgrab/internal/fetch"
	"transcriptgrab/internal/fileutil"
	"transcriptgrab/internal/language"
	"transcriptgrab/internal/logging"
	"transcriptgrab/internal/providers"
	"transcriptgrab/internal/retrieve"
	"transcriptgrab/internal/transcriptcache"
	"transcriptgrab/internal/videoid"
)

// errNoTranscript marks the clean "video has no captions" outcome so main
// can exit with a distinct status code.
var errNoTranscript = errors.New("no transcript available")

type grabOptions struct {
	lang    string
	format  string
	out     string
	noCache bool
}

func registerGrabFlags(cmd *cobra.Command, opts *grabOptions) {
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "Transcript language (code or name, e.g. en or spanish)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the transcript to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "Bypass the transcript cache for this run")
}

func newGrabCommand(cctx *commandContext) *cobra.Command {
	opts := &grabOptions{}
	cmd := &cobra.Command{
		Use:   "grab <url-or-id>",
		Short: "Fetch a transcript for a YouTube video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrab(cctx, cmd, opts, args[0])
		},
	}
	registerGrabFlags(cmd, opts)
	return cmd
}

type transcriptEnvelope struct {
	VideoID    string `json:"video_id"`
	Language   string `json:"language"`
	Source     string `json:"source"`
	Transcript string `json:"transcript"`
}

func runGrab(cctx *commandContext, cmd *cobra.Command, opts *grabOptions, input string) error {
	format := strings.ToLower(strings.TrimSpace(opts.format))
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported format %q (expected text or json)", opts.format)
	}

	videoID, _, err := videoid.Canonical(input)
	if err != nil {
		return err
	}

	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cctx.ensureLogger()
	if err != nil {
		return err
	}

	lang := cfg.Retrieval.Language
	if trimmed := strings.TrimSpace(opts.lang); trimmed != "" {
		code := language.ToCode(trimmed)
		if code == "" {
			return fmt.Errorf("unrecognized language %q", opts.lang)
		}
		lang = code
	}

	client := fetch.NewClient(fetch.Config{
		Timeout:   time.Duration(cfg.Retrieval.HTTPTimeout) * time.Second,
		UserAgent: cfg.Retrieval.UserAgent,
	})

	chain := []providers.Provider{
		providers.NewYtdlp(cfg.Ytdlp.Binary, cfg.Ytdlp.Timeout, cfg.Retrieval.Attempts,
			logging.NewComponentLogger(logger, "ytdlp")),
		providers.NewWatchPage(client, cfg.Retrieval.Attempts,
			logging.NewComponentLogger(logger, "watch-page")),
		providers.NewPlayerAPI(client, cfg.Retrieval.Attempts,
			logging.NewComponentLogger(logger, "player-api")),
		providers.NewLibrary(logging.NewComponentLogger(logger, "transcript-api")),
	}

	var runnerOpts []retrieve.Option
	if cfg.Cache.Enabled && !opts.noCache {
		store, err := transcriptcache.Open(cfg.Cache.Dir, cfg.Cache.TTLDays,
			logging.NewComponentLogger(logger, "cache"))
		if err != nil {
			logger.Warn("transcript cache unavailable", logging.Error(err))
		} else {
			defer store.Close()
			runnerOpts = append(runnerOpts, retrieve.WithCache(store))
		}
	}

	runner := retrieve.NewRunner(chain, logging.NewComponentLogger(logger, "retrieve"), runnerOpts...)
	outcome := runner.Run(cmd.Context(), videoID, lang)

	switch outcome.Kind {
	case retrieve.KindFound:
		return emitTranscript(cmd, opts.out, format, transcriptEnvelope{
			VideoID:    videoID,
			Language:   lang,
			Source:     outcome.Result.Source,
			Transcript: outcome.Result.Transcript,
		})
	case retrieve.KindNoTranscript:
		return fmt.Errorf("%w for %s (language %s)", errNoTranscript, videoID, lang)
	default:
		return fmt.Errorf("transcript retrieval failed: %s", strings.Join(outcome.Errors, "; "))
	}
}

func emitTranscript(cmd *cobra.Command, outPath, format string, envelope transcriptEnvelope) error {
	if outPath == "" {
		if format == "json" {
			return writeJSON(cmd, envelope)
		}
		fmt.Fprintln(cmd.OutOrStdout(), envelope.Transcript)
		return nil
	}

	data := []byte(envelope.Transcript + "\n")
	if format == "json" {
		encoded, err := marshalIndent(envelope)
		if err != nil {
			return err
		}
		data = encoded
	}
	if err := fileutil.WriteFileAtomic(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved transcript to %s\n", outPath)
	return nil
}
