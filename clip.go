package docref

// Clip is the clipboard payload built from a DocInfo: a plain-text
// rendering and an HTML rendering written together so paste targets can
// pick whichever flavor they support.
type Clip struct {
	Text string
	HTML string
}

// ClipFormatter turns an extraction result into a clipboard payload.
type ClipFormatter interface {
	// Format builds the plain-text and HTML clip for the result. Plain
	// text is "[title](link)", or "<text> (<link>)" for chat messages;
	// HTML is an anchor tag, or the captured message markup plus a
	// "View in Slack" line for chat messages.
	Format(info *DocInfo) (*Clip, error)
}
