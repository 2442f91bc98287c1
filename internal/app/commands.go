package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"deepsight/internal/audio"
	"deepsight/internal/client"
)

const tickInterval = 100 * time.Millisecond

func fetchPapersCmd(api PaperAPI, query client.PaperQuery) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		papers, err := api.FetchPapers(ctx, query)
		return papersMsg{papers: papers, err: err}
	}
}

func fetchConferenceStatsCmd(api PaperAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		stats, err := api.GetConferenceStats(ctx)
		return conferenceStatsMsg{stats: stats, err: err}
	}
}

// sendChatCmd gets a longer deadline than the fetch commands; the backend
// runs retrieval plus generation for each turn.
func sendChatCmd(api ChatAPI, seq int, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		resp, err := api.PostChatMessage(ctx, text)
		if err != nil {
			return chatResponseMsg{seq: seq, err: err}
		}
		return chatResponseMsg{seq: seq, response: resp.Response}
	}
}

func probeAudioCmd(api AudioAPI, streamURL string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		header, err := api.FetchAudioHeader(ctx, streamURL, audio.ProbeHeaderSize)
		if err != nil {
			return audioMetadataMsg{url: streamURL, err: err}
		}
		duration, err := audio.ProbeWAVDuration(header)
		return audioMetadataMsg{url: streamURL, duration: duration, err: err}
	}
}

func copyToClipboardCmd(text, success string) tea.Cmd {
	return func() tea.Msg {
		_, err := copyTextToClipboard(text)
		return clipboardResultMsg{success: success, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
