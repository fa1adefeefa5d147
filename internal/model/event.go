package model

// EventKind classifies an inbound platform event for dispatch.
type EventKind string

const (
	KindTextMessage  EventKind = "text_message"
	KindAudioMessage EventKind = "audio_message"
	KindFollow       EventKind = "follow"
	KindOther        EventKind = "other"
)

// WebhookPayload is the body of one webhook delivery: a batch of events.
type WebhookPayload struct {
	Events []Event `json:"events"`
}

// Event is a single platform event within a delivery.
type Event struct {
	Type       string        `json:"type"`
	ReplyToken string        `json:"replyToken,omitempty"`
	Source     EventSource   `json:"source"`
	Message    *EventMessage `json:"message,omitempty"`
}

// EventSource identifies the end user behind an event.
type EventSource struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

// EventMessage is the message body of a message event.
type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"` // text | audio | ...
	Text string `json:"text,omitempty"`
}

// Kind collapses the platform's two-level type fields into one
// dispatchable kind so the handler switch stays exhaustive.
func (e Event) Kind() EventKind {
	switch e.Type {
	case "message":
		if e.Message == nil {
			return KindOther
		}
		switch e.Message.Type {
		case "text":
			return KindTextMessage
		case "audio":
			return KindAudioMessage
		default:
			return KindOther
		}
	case "follow":
		return KindFollow
	default:
		return KindOther
	}
}
