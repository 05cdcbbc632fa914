package service

// Broadcaster pushes server events to a user's open browser connections
// (interface here to avoid an import cycle with the ws package).
type Broadcaster interface {
	SendToUser(userID string, msgType string, payload interface{})
}
