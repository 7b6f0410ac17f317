// Package entity defines the response envelopes of the bookshop API.
package entity

// Msg is the uniform payload for status and error responses.
type Msg struct {
	Message string `json:"message"`
}

// LoginResult is returned on successful login, carrying the bearer token.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ReviewsResult is returned by review mutations with the book's current
// reviews map after the change.
type ReviewsResult struct {
	Message string            `json:"message"`
	Isbn    string            `json:"isbn"`
	Reviews map[string]string `json:"reviews"`
}
