package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"deepsight/internal/client"
	"deepsight/internal/config"
	"deepsight/internal/logging"
	"deepsight/internal/types"
)

type fakeAPI struct {
	papers    []*types.Paper
	stats     *types.ConferenceStats
	reply     string
	chatErr   error
	header    []byte
	headerErr error
	chatSent  []string
}

func (f *fakeAPI) FetchPapers(ctx context.Context, query client.PaperQuery) ([]*types.Paper, error) {
	return f.papers, nil
}

func (f *fakeAPI) GetConferenceStats(ctx context.Context) (*types.ConferenceStats, error) {
	return f.stats, nil
}

func (f *fakeAPI) PostChatMessage(ctx context.Context, text string) (*types.ChatMessage, error) {
	f.chatSent = append(f.chatSent, text)
	if f.chatErr != nil {
		return nil, f.chatErr
	}
	return &types.ChatMessage{Message: text, Response: f.reply}, nil
}

func (f *fakeAPI) AudioStreamURL(paperIDs []string) string {
	return "http://test/frontend/audio/deepdive?papers=" + strings.Join(paperIDs, ",")
}

func (f *fakeAPI) FetchAudioHeader(ctx context.Context, streamURL string, n int) ([]byte, error) {
	if f.headerErr != nil {
		return nil, f.headerErr
	}
	return f.header, nil
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testPapers() []*types.Paper {
	return []*types.Paper{
		{ID: "p1", Title: "Attention Is All You Need", Conference: "NeurIPS", Year: 2017},
		{ID: "p2", Title: "Deep Residual Learning", Conference: "CVPR", Year: 2016},
		{ID: "p3", Title: "Language Models are Few-Shot Learners", Conference: "NeurIPS", Year: 2020},
	}
}

func newTestModel(api *fakeAPI) *Model {
	if api.papers == nil {
		api.papers = testPapers()
	}
	if api.reply == "" {
		api.reply = "the attention mechanism"
	}
	m := NewModel(api, config.DefaultCoreConfig(), logging.Nop())
	m.resize(100, 30)
	m.Update(papersMsg{papers: api.papers})
	return &m
}

func submitMessage(t *testing.T, m *Model, text string) tea.Cmd {
	t.Helper()
	m.Update(keyMsg("enter")) // focus chat
	m.chatInput.SetValue(text)
	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("submit produced no command")
	}
	m.Update(keyMsg("esc"))
	return cmd
}

func TestModelSubmitAppendsOptimistically(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	cmd := submitMessage(t, m, "what is novel here?")

	turns := m.chat.Turns()
	if len(turns) != 1 || turns[0].Status != TurnPending {
		t.Fatalf("no pending turn after submit: %+v", turns)
	}
	if m.chatInput.Value() != "" {
		t.Fatalf("input not cleared: %q", m.chatInput.Value())
	}

	m.Update(cmd())
	turns = m.chat.Turns()
	if turns[0].Status != TurnResolved || turns[0].Response != "the attention mechanism" {
		t.Fatalf("turn not resolved: %+v", turns[0])
	}
}

func TestModelChatFailureShowsFallbackInline(t *testing.T) {
	api := &fakeAPI{chatErr: errors.New("backend down")}
	m := newTestModel(api)
	cmd := submitMessage(t, m, "doomed")

	m.Update(cmd())
	turn := m.chat.Turns()[0]
	if turn.Status != TurnFailed {
		t.Fatalf("turn not failed: %+v", turn)
	}
	if turn.Response != "Sorry, there was an error processing your message." {
		t.Fatalf("unexpected fallback: %q", turn.Response)
	}
}

func TestModelSelectionChangeClearsChat(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	cmd := submitMessage(t, m, "first question")
	m.Update(cmd())

	m.Update(keyMsg("space")) // toggle cursor paper
	if !m.chat.Empty() {
		t.Fatalf("transcript survived selection change: %+v", m.chat.Turns())
	}
}

func TestModelStaleChatReplyDroppedAfterSelectionChange(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	cmd := submitMessage(t, m, "about the old selection")

	// Selection changes while the reply is in flight.
	m.Update(keyMsg("space"))
	m.Update(cmd())
	if !m.chat.Empty() {
		t.Fatalf("stale reply re-populated transcript: %+v", m.chat.Turns())
	}
}

func TestModelGenerateRequiresSelection(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	_, cmd := m.Update(keyMsg("g"))
	if cmd != nil || m.audioView != audioViewNone {
		t.Fatal("generate proceeded without a selection")
	}
	if !m.statusIsError {
		t.Fatalf("expected error status, got %q", m.status)
	}
}

func TestModelGenerateMountsPlayerOnce(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	m.Update(keyMsg("space"))
	_, cmd := m.Update(keyMsg("g"))
	if cmd == nil || m.audioView != audioViewPlayer || !m.player.HasMedia() {
		t.Fatal("generate did not mount the player")
	}
	url := m.streamURL

	// Pressing generate again keeps the existing stream.
	_, cmd = m.Update(keyMsg("g"))
	if cmd != nil || m.streamURL != url {
		t.Fatal("second generate replaced the stream")
	}
}

func TestModelAudioMetadataCorrectsDuration(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	m.Update(keyMsg("space"))
	m.Update(keyMsg("g"))

	m.Update(audioMetadataMsg{url: "http://elsewhere/stream", duration: 99})
	if m.player.Duration() == 99 {
		t.Fatal("metadata for another stream applied")
	}

	m.Update(audioMetadataMsg{url: m.streamURL, duration: 432})
	if m.player.Duration() != 432 {
		t.Fatalf("duration not corrected: %v", m.player.Duration())
	}
}

func TestModelTrackDragCommitsOnRelease(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	m.Update(keyMsg("space"))
	m.Update(keyMsg("g"))
	media := &fakeMedia{duration: 600}
	m.player.SetMedia(media)

	lay := m.resolveMouseLayout()
	if lay.trackY < 0 || lay.trackWidth <= 1 {
		t.Fatalf("player track not in layout: %+v", lay)
	}
	press := tea.MouseMsg{X: lay.trackX, Y: lay.trackY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m.Update(press)
	seeksAfterPress := len(media.seeks)

	mid := lay.trackX + (lay.trackWidth-1)/2
	m.Update(tea.MouseMsg{X: mid, Y: lay.trackY, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: mid + 1, Y: lay.trackY - 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if len(media.seeks) != seeksAfterPress {
		t.Fatalf("drag moves touched the media: %v", media.seeks)
	}
	if m.player.Current() == 0 {
		t.Fatal("display position did not follow the drag")
	}

	m.Update(tea.MouseMsg{X: mid + 1, Y: lay.trackY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if len(media.seeks) != seeksAfterPress+1 {
		t.Fatalf("release did not commit exactly once: %v", media.seeks)
	}
	if m.player.Dragging() {
		t.Fatal("drag still active after release")
	}
}

func TestModelSidebarClickTogglesSelection(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	lay := m.resolveMouseLayout()
	click := tea.MouseMsg{X: 2, Y: lay.listTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m.Update(click)
	if !m.selection.Contains("p1") {
		t.Fatalf("click did not select first paper: %v", m.selection.Selected())
	}
	m.Update(click)
	if m.selection.Contains("p1") {
		t.Fatal("second click did not deselect")
	}
}

func TestModelTabCollapsesSidebar(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	if m.listWidth() == 0 {
		t.Fatal("sidebar should start expanded")
	}
	m.Update(keyMsg("tab"))
	if m.listWidth() != 0 {
		t.Fatal("tab did not collapse sidebar")
	}
	m.Update(keyMsg("tab"))
	if m.listWidth() == 0 {
		t.Fatal("tab did not restore sidebar")
	}
}

func TestModelCustomizeToggle(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	m.Update(keyMsg("space"))
	m.Update(keyMsg("g"))

	m.Update(keyMsg("c"))
	if m.audioView != audioViewCustomize {
		t.Fatal("customize did not open")
	}
	m.Update(keyMsg("l"))
	m.Update(keyMsg("enter"))
	if m.audioView != audioViewPlayer || m.voiceIndex != 1 {
		t.Fatalf("customize apply broken: view=%d voice=%d", m.audioView, m.voiceIndex)
	}
}

func TestModelRemovePrunesCollectionAndSelection(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	m.Update(keyMsg("space")) // select p1 under cursor
	cmd := submitMessage(t, m, "about p1")
	m.Update(cmd())

	m.Update(keyMsg("X")) // remove all selected papers
	if m.selection.Count() != 0 {
		t.Fatalf("selection references removed papers: %v", m.selection.Selected())
	}
	for _, paper := range m.papers.Papers() {
		if paper.ID == "p1" {
			t.Fatal("removed paper still in collection")
		}
	}
	if len(m.papers.Papers()) != 2 {
		t.Fatalf("unexpected collection size: %d", len(m.papers.Papers()))
	}
	if !m.chat.Empty() {
		t.Fatal("transcript survived a selection-pruning removal")
	}
}

func TestModelSelectAllToggles(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	m.Update(keyMsg("a"))
	if m.selection.Count() != len(api.papers) {
		t.Fatalf("select all incomplete: %v", m.selection.Selected())
	}
	m.Update(keyMsg("a"))
	if m.selection.Count() != 0 {
		t.Fatalf("toggle all did not clear: %v", m.selection.Selected())
	}
}
