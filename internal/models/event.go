package models

// Event types published when aggregates change.
const (
	EventBoardCreated   = "board.created"
	EventBoardUpdated   = "board.updated"
	EventBoardDeleted   = "board.deleted"
	EventMediaAdded     = "media.added"
	EventMediaReordered = "media.reordered"
	EventMediaDeleted   = "media.deleted"
	EventLinkCreated    = "link.created"
)

// Event describes a change to a board, media item or link.
type Event struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Timestamp int64  `json:"timestamp"` // Unix seconds when the change was committed
	Type      string `json:"type"`      // One of the Event* constants
	Subject   string `json:"subject"`   // Id or slug of the changed entity
	Payload   any    `json:"payload"`   // Entity state after the change, if any
}
