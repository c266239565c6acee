package services

const (
	EventNewLog    = "NEW_LOG"
	EventDeleteLog = "DELETE_LOG"
)

// LogEvent is the JSON-serializable mutation announcement sent to connected
// clients. Data carries the full record for creations and {"id": ...} for
// deletions.
type LogEvent struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// LogPublisher fans a mutation event out to subscribed observers.
// Delivery is best-effort and must never block the caller.
type LogPublisher interface {
	Publish(event LogEvent)
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(LogEvent) {}
