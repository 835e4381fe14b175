package models

import "testing"

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("hello")

	if msg.Sender != SenderUser {
		t.Errorf("Sender = %s, want %s", msg.Sender, SenderUser)
	}
	if msg.Content != "hello" {
		t.Errorf("Content = %s, want hello", msg.Content)
	}
}

func TestNewBotMessage(t *testing.T) {
	msg := NewBotMessage("hi there")

	if msg.Sender != SenderBot {
		t.Errorf("Sender = %s, want %s", msg.Sender, SenderBot)
	}
	if msg.Content != "hi there" {
		t.Errorf("Content = %s, want hi there", msg.Content)
	}
}

func TestDefaultHeaders(t *testing.T) {
	headers := DefaultHeaders()

	if headers["Content-Type"] != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", headers["Content-Type"])
	}
	if headers["Accept"] != "application/json" {
		t.Errorf("Accept = %s, want application/json", headers["Accept"])
	}

	// Each call returns a fresh map so callers may mutate it
	headers["Content-Type"] = "text/plain"
	if DefaultHeaders()["Content-Type"] != "application/json" {
		t.Error("DefaultHeaders should not share state between calls")
	}
}
