// Package summary asks an OpenAI-compatible endpoint for a short prose
// description of the extracted polling trend. It is an optional stage:
// callers treat any failure here as a warning, never as a reason to
// discard the extraction outputs.
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pollwatch/pollscrape/internal/normalize"
)

// maxRows caps how many recent rows are included in the prompt.
const maxRows = 20

const systemPrompt = "You are a concise polling analyst. Describe the approval " +
	"trend in the table you are given in at most three sentences. Only cite " +
	"numbers that appear in the table."

// Summarizer produces the trend summary through a chat completion.
type Summarizer struct {
	Client *openai.Client
	Model  string
}

// Summarize renders the most recent rows as a compact table and requests a
// completion. The context bounds the call; there is no retry.
func (s *Summarizer) Summarize(ctx context.Context, rows []normalize.Row) (string, error) {
	if s.Client == nil || strings.TrimSpace(s.Model) == "" {
		return "", errors.New("summarizer not configured")
	}
	if len(rows) == 0 {
		return "", errors.New("no rows to summarize")
	}

	resp, err := s.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(rows)},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", errors.New("empty completion")
	}
	return out, nil
}

func buildUserMessage(rows []normalize.Row) string {
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	var b strings.Builder
	b.WriteString("Most recent polls, newest first:\n")
	b.WriteString(strings.Join(normalize.Header, " | "))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(strings.Join(r.Fields(), " | "))
		b.WriteString("\n")
	}
	return b.String()
}
