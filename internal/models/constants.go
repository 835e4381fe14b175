// Package models contains data types and constants for the chat backend API.
package models

// EndpointChat is the path of the message exchange endpoint, relative to
// the configured server URL.
const EndpointChat = "/chat"

// DefaultServerURL is used when no server is configured.
const DefaultServerURL = "http://localhost:8080"

// FallbackReply is rendered as a bot message when an exchange fails.
// The wording is part of the UI contract and must stay stable.
const FallbackReply = "Sorry, I'm having trouble connecting to the server. Please try again later."

// DefaultHeaders returns the headers sent with every exchange request.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   "chatterm/0.1",
	}
}
