package app

import (
	"context"

	"deepsight/internal/client"
	"deepsight/internal/types"
)

// PaperAPI supplies the paper collection and its aggregate stats.
type PaperAPI interface {
	FetchPapers(ctx context.Context, query client.PaperQuery) ([]*types.Paper, error)
	GetConferenceStats(ctx context.Context) (*types.ConferenceStats, error)
}

// ChatAPI resolves one chat turn at a time. No streaming, no retry.
type ChatAPI interface {
	PostChatMessage(ctx context.Context, text string) (*types.ChatMessage, error)
}

// AudioAPI locates and probes the synthesized deep-dive stream.
type AudioAPI interface {
	AudioStreamURL(paperIDs []string) string
	FetchAudioHeader(ctx context.Context, streamURL string, n int) ([]byte, error)
}

// API is the backend surface the workspace needs. *client.Client satisfies
// it; tests substitute fakes per concern.
type API interface {
	PaperAPI
	ChatAPI
	AudioAPI
}
