package models

import "time"

// Sender tells who wrote a message.
type Sender string

const (
	SenderAuthor    Sender = "author"
	SenderRecipient Sender = "recipient"
)

// Message is one note in a share's append-only thread.
type Message struct {
	ID          string
	ShareID     string
	Sender      Sender
	SenderName  string
	SenderEmail string
	Body        string
	CreatedAt   time.Time
}
