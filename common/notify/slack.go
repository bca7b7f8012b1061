package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wildcat/spartan/common/logger"
)

// Message is the Slack-compatible webhook payload.
type Message struct {
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment decorates an error notification.
type Attachment struct {
	Title  string  `json:"title"`
	Color  string  `json:"color"`
	Fields []Field `json:"fields,omitempty"`
}

// Field is a labeled value inside an attachment.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Notifier posts messages to a chat webhook. An empty URL makes every call
// a no-op, and post failures are logged but never returned: notification is
// strictly best-effort and must not influence pipeline control flow.
type Notifier struct {
	url  string
	http *http.Client
	log  *logger.Logger
}

// New creates a notifier for the given webhook URL.
func New(url string, log *logger.Logger) *Notifier {
	return &Notifier{
		url: url,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// Error posts an error notification with a red attachment.
func (n *Notifier) Error(ctx context.Context, title, msg string) {
	if n.url == "" {
		return
	}

	m := Message{
		Text: msg,
		Attachments: []Attachment{
			{
				Title: fmt.Sprintf("%s API Error", title),
				Color: "#f00",
			},
		},
	}

	n.post(ctx, m)
}

// Send posts a plain message fenced as a code block.
func (n *Notifier) Send(ctx context.Context, msg string) {
	if n.url == "" {
		return
	}

	n.post(ctx, Message{
		Text: fmt.Sprintf("```%s```", msg),
	})
}

func (n *Notifier) post(ctx context.Context, m Message) {
	payload, err := json.Marshal(m)
	if err != nil {
		n.log.Warn("notify encode failed", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		n.log.Warn("notify request build failed", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		n.log.Warn("notify post failed", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.log.Warn("notify post rejected", "status", resp.StatusCode)
	}
}
