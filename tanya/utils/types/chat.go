package types

// ChatPayload is the POST /api/chat request body.
type ChatPayload struct {
	Message string `json:"message"`
}

// ChatReply is the success body for a chat turn.
type ChatReply struct {
	Reply string `json:"reply"`
}

// APIError is the error body for every failed endpoint.
type APIError struct {
	Error string `json:"error"`
}
