package models

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message represents a single chat message for display.
// Messages are immutable once appended to the conversation panel.
type Message struct {
	Content string
	Sender  Sender
}

// NewUserMessage creates a message sent by the user.
func NewUserMessage(content string) Message {
	return Message{Content: content, Sender: SenderUser}
}

// NewBotMessage creates a message received from the backend.
func NewBotMessage(content string) Message {
	return Message{Content: content, Sender: SenderBot}
}
