package captions

// Segment is a single timed unit of caption text. Start and End are seconds
// from the beginning of the video. An empty Text marks a pause cue, which the
// merger treats as an explicit paragraph break.
type Segment struct {
	Start float64
	End   float64
	Text  string
}
