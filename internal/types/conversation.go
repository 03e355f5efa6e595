package types

import "time"

type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is a message thread with one counterparty. Messages are ordered
// oldest-first; LastMessage mirrors the most recent message text for list views.
type Conversation struct {
	ID                string     `json:"id"`
	ParticipantID     string     `json:"participant_id"`
	ParticipantName   string     `json:"participant_name"`
	ParticipantAvatar string     `json:"participant_avatar,omitempty"`
	LastMessage       string     `json:"last_message"`
	UnreadCount       int        `json:"unread_count"`
	Messages          []*Message `json:"messages"`
}

func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	out := *c
	out.Messages = make([]*Message, len(c.Messages))
	for i, m := range c.Messages {
		mc := *m
		out.Messages[i] = &mc
	}
	return &out
}
