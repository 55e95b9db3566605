package dto

// StreamRequest is the first websocket message on /ws/stream. The token
// travels in the payload because browsers cannot set headers on
// websocket upgrades.
type StreamRequest struct {
	Query string `json:"query" validate:"required,min=1"`
	Token string `json:"token" validate:"required"`
}

// RecommendationsMessage terminates a successful stream. The list may
// be empty but is never null.
type RecommendationsMessage struct {
	Recommendations []string `json:"recommendations"`
}

// ErrorMessage terminates a failed stream.
type ErrorMessage struct {
	Error string `json:"error"`
}
