package schema

import (
	"encoding/json"
	"time"
)

type Email struct {
	To       string    `json:"to"`
	Subject  string    `json:"subject"`
	Body     string    `json:"body"`
	QueuedAt time.Time `json:"queuedAt"`
}

func (m *Email) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *Email) Unmarshal(data []byte) error {
	return json.Unmarshal(data, m)
}
