package notify

// Field is one title/value cell of an attachment. Short fields render side by side.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type Attachment struct {
	Fallback   string  `json:"fallback"`
	Pretext    string  `json:"pretext"`
	Title      string  `json:"title"`
	TitleLink  string  `json:"title_link,omitempty"`
	Color      string  `json:"color"`
	Fields     []Field `json:"fields"`
	Footer     string  `json:"footer"`
	FooterIcon string  `json:"footer_icon"`
	Timestamp  int64   `json:"ts"`
}

// Message is the outbound notification for one inbound event.
// IconEmoji overrides the sender's default icon when set.
type Message struct {
	IconEmoji   string
	Attachments []Attachment
}
