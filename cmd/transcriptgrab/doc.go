// Command transcriptgrab fetches YouTube transcripts from the command line.
//
// The default command grabs a transcript for a video URL or ID, trying
// yt-dlp, watch-page scraping, the innertube player API, and the
// youtube-transcript-api client in order. Subcommands list caption tracks,
// manage the transcript cache, probe external tool availability, and handle
// configuration files.
package main
