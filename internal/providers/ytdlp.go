package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"transcriptgrab/internal/captions"
	"transcriptgrab/internal/fetch"
	"transcriptgrab/internal/logging"
	"transcriptgrab/internal/videoid"
)

const ytdlpName = "yt-dlp"

// Executor abstracts subprocess execution for testability. Run executes the
// binary with args inside dir and returns the combined output.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, dir string) (string, error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// YtdlpOption configures the yt-dlp strategy.
type YtdlpOption func(*Ytdlp)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) YtdlpOption {
	return func(y *Ytdlp) {
		if exec != nil {
			y.exec = exec
		}
	}
}

// Ytdlp shells out to the yt-dlp binary to download subtitle files into a
// temporary directory, then parses the best matching one.
type Ytdlp struct {
	binary   string
	timeout  time.Duration
	attempts int
	exec     Executor
	logger   *slog.Logger
}

// NewYtdlp constructs the yt-dlp subprocess strategy.
func NewYtdlp(binary string, timeoutSeconds, attempts int, logger *slog.Logger, opts ...YtdlpOption) *Ytdlp {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = ytdlpName
	}
	if attempts < 1 {
		attempts = defaultAttempts
	}
	y := &Ytdlp{
		binary:   binary,
		timeout:  time.Duration(timeoutSeconds) * time.Second,
		attempts: attempts,
		exec:     commandExecutor{},
		logger:   logging.NewComponentLogger(logger, ytdlpName),
	}
	for _, opt := range opts {
		opt(y)
	}
	return y
}

// Name identifies the strategy in source labels and error reports.
func (y *Ytdlp) Name() string { return ytdlpName }

// Fetch downloads subtitles for the video and parses the best ranked file.
func (y *Ytdlp) Fetch(ctx context.Context, videoID, lang string) (Result, error) {
	if _, err := exec.LookPath(y.binary); err != nil {
		return Result{}, Wrap(ErrPermanent, ytdlpName, "binary not found on PATH", err)
	}

	tmpDir, err := os.MkdirTemp("", "transcriptgrab-ytdlp-")
	if err != nil {
		return Result{}, Wrap(ErrPermanent, ytdlpName, "create temp dir", err)
	}
	defer os.RemoveAll(tmpDir)

	url := videoid.WatchURL(videoID)
	err = withRetry(ctx, y.logger, ytdlpName, y.attempts, func() error {
		return y.download(ctx, tmpDir, url, lang, false)
	})
	if err != nil {
		// Rate limiting sometimes clears when yt-dlp impersonates a
		// different player client; one alternate-profile attempt before
		// giving up.
		if fetch.IsTransient(err) {
			y.logger.Warn("retry budget exhausted, trying alternate client profile",
				logging.String("video_id", videoID))
			err = y.download(ctx, tmpDir, url, lang, true)
		}
		if err != nil {
			if fetch.IsTransient(err) {
				return Result{}, Wrap(ErrTransient, ytdlpName, "download subtitles", err)
			}
			return Result{}, Wrap(ErrPermanent, ytdlpName, "download subtitles", err)
		}
	}

	chosen, ok, err := pickSubtitleFile(tmpDir, lang)
	if err != nil {
		return Result{}, Wrap(ErrPermanent, ytdlpName, "scan temp dir", err)
	}
	if !ok {
		return Result{}, Wrap(ErrNoCaptions, ytdlpName, "no subtitle files written", nil)
	}

	payload, err := os.ReadFile(chosen)
	if err != nil {
		return Result{}, Wrap(ErrPermanent, ytdlpName, "read subtitle file", err)
	}
	transcript := captions.TranscriptText(captions.ParseVTT(string(payload)))
	if transcript == "" {
		return Result{}, Wrap(ErrNoCaptions, ytdlpName, "empty transcript", nil)
	}

	generated := strings.Contains(strings.ToLower(filepath.Base(chosen)), "auto")
	y.logger.Debug("transcript retrieved",
		logging.String("video_id", videoID),
		logging.String("subtitle_file", filepath.Base(chosen)),
		logging.Bool("auto_generated", generated))
	return Result{
		Transcript: transcript,
		Source:     sourceLabel(ytdlpName, generated),
	}, nil
}

// download runs one yt-dlp invocation. The configured timeout applies per
// invocation so a timed-out attempt leaves retries and the alternate-client
// fallback with a live deadline.
func (y *Ytdlp) download(ctx context.Context, dir, url, lang string, alternateClient bool) error {
	if y.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.timeout)
		defer cancel()
	}

	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", fmt.Sprintf("%s.*,%s", lang, lang),
		"--sub-format", "vtt",
		"-o", "%(id)s.%(ext)s",
	}
	if alternateClient {
		args = append(args, "--extractor-args", "youtube:player_client=android")
	}
	args = append(args, url)

	output, err := y.exec.Run(ctx, y.binary, args, dir)
	if err != nil {
		detail := strings.TrimSpace(output)
		if detail == "" {
			detail = err.Error()
		}
		if isRateLimited(detail) {
			return fmt.Errorf("%s: rate limited", ytdlpName)
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%s timed out: %w", ytdlpName, context.DeadlineExceeded)
		}
		return fmt.Errorf("%s failed: %s", ytdlpName, lastOutputLine(detail))
	}
	return nil
}

func isRateLimited(output string) bool {
	lower := strings.ToLower(output)
	for _, marker := range []string{"429", "too many requests", "rate-limit", "rate limit"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func lastOutputLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return output
}

// pickSubtitleFile ranks the downloaded .vtt files: explicit language match
// in the filename beats no match, manual subtitles beat auto-generated, then
// lexicographic for determinism.
func pickSubtitleFile(dir, lang string) (string, bool, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.vtt"))
	if err != nil {
		return "", false, err
	}
	if len(matches) == 0 {
		return "", false, nil
	}
	sort.Slice(matches, func(i, j int) bool {
		ri, rj := rankSubtitleFile(matches[i], lang), rankSubtitleFile(matches[j], lang)
		if ri != rj {
			return ri < rj
		}
		return matches[i] < matches[j]
	})
	return matches[0], true, nil
}

func rankSubtitleFile(path, lang string) int {
	name := strings.ToLower(filepath.Base(path))
	lower := strings.ToLower(lang)
	rank := 0
	if !strings.Contains(name, "."+lower) && !strings.Contains(name, "-"+lower) {
		rank += 2
	}
	if strings.Contains(name, "auto") {
		rank++
	}
	return rank
}
