package docref

// DocInfo is the sole output of an extraction: a canonical link for the
// page or item plus a human-readable title. The link is not necessarily
// the page's own URL; rules may rewrite it, strip query parameters, or
// synthesize it.
type DocInfo struct {
	Link  string `json:"link"`
	Title string `json:"title"`

	// Message carries the rich chat-message payload. Only the Slack rule
	// populates it; every other rule leaves it nil. The five fields are
	// produced together or not at all.
	Message *Message `json:"message,omitempty"`
}

// Message holds the captured chat-message content and the metadata the
// clipboard formatter needs to build a rich link annotation.
type Message struct {
	HTML        string `json:"html"`
	Text        string `json:"text"`
	Sender      string `json:"sender"`
	DateString  string `json:"dateString"`
	ChannelName string `json:"channelName"`
}
