package api

// MockChatClient is a mock implementation of ChatClientInterface for testing
type MockChatClient struct {
	// Mock return values
	ReplyVal    string
	ReplyErr    error
	ServerVal   string
	IsClosedVal bool

	// Replies is consumed one entry per Exchange call when non-empty,
	// taking precedence over ReplyVal.
	Replies []string

	// Call counters/recorders
	ExchangeCalled int
	LastMessage    string
	Messages       []string
	CloseCalled    bool
}

// Ensure MockChatClient implements ChatClientInterface
var _ ChatClientInterface = (*MockChatClient)(nil)

func (m *MockChatClient) Exchange(message string) (string, error) {
	m.ExchangeCalled++
	m.LastMessage = message
	m.Messages = append(m.Messages, message)

	if m.ReplyErr != nil {
		return "", m.ReplyErr
	}
	if len(m.Replies) > 0 {
		reply := m.Replies[0]
		m.Replies = m.Replies[1:]
		return reply, nil
	}
	return m.ReplyVal, nil
}

func (m *MockChatClient) ServerURL() string {
	return m.ServerVal
}

func (m *MockChatClient) Close() {
	m.CloseCalled = true
}

func (m *MockChatClient) IsClosed() bool {
	return m.IsClosedVal
}
