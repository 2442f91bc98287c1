package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"deepsight/internal/audio"
	"deepsight/internal/client"
	"deepsight/internal/config"
	"deepsight/internal/logging"
	"deepsight/internal/types"
)

const (
	minListWidth     = 24
	maxListWidth     = 40
	minViewportWidth = 20
	minContentHeight = 6

	defaultPaperPageSize = 200
)

type focusArea uint8

const (
	focusList focusArea = iota
	focusChat
)

type audioView uint8

const (
	audioViewNone audioView = iota
	audioViewPlayer
	audioViewCustomize
)

var customizeVoices = []string{"Narrator", "Conversational", "Technical"}

// Model is the deep-dive workspace coordinator. It owns the paper list, the
// selection set, the chat transcript, and the audio player, and keeps their
// cross-cutting rule: whenever the selection changes, the chat resets.
type Model struct {
	api    API
	cfg    config.CoreConfig
	logger logging.Logger

	width  int
	height int

	papers    *PaperList
	selection *SelectionController
	chat      *ChatController
	chatInput *ChatInput
	player    *PlayerController
	viewport  viewport.Model
	loader    spinner.Model

	focus            focusArea
	sidebarCollapsed bool
	audioView        audioView
	voiceIndex       int

	stats         *types.ConferenceStats
	loadingPapers bool
	status        string
	statusIsError bool
	selectionSeen int
	streamURL     string
}

func NewModel(api API, cfg config.CoreConfig, logger logging.Logger) Model {
	if logger == nil {
		logger = logging.Nop()
	}
	vp := viewport.New(minViewportWidth, minContentHeight-1)
	loader := spinner.New()
	loader.Spinner = spinner.Line
	m := Model{
		api:           api,
		cfg:           cfg,
		logger:        logger,
		papers:        NewPaperList(),
		selection:     NewSelectionController(),
		chat:          NewChatController(),
		chatInput:     NewChatInput(minViewportWidth),
		player:        NewPlayerController(),
		viewport:      vp,
		loader:        loader,
		loadingPapers: true,
	}
	m.refreshTranscript()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		fetchPapersCmd(m.api, client.PaperQuery{Limit: defaultPaperPageSize}),
		fetchConferenceStatsCmd(m.api),
		tickCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case papersMsg:
		m.handlePapers(msg)
		return m, nil
	case conferenceStatsMsg:
		if msg.err != nil {
			m.logger.Warn("conference stats unavailable", logging.F("error", msg.err))
			return m, nil
		}
		m.stats = msg.stats
		return m, nil
	case chatResponseMsg:
		m.handleChatResponse(msg)
		return m, nil
	case audioMetadataMsg:
		m.handleAudioMetadata(msg)
		return m, nil
	case clipboardResultMsg:
		if msg.err != nil {
			m.setStatusError("copy failed: " + msg.err.Error())
		} else {
			m.setStatusInfo(msg.success)
		}
		return m, nil
	case tickMsg:
		m.player.Tick()
		if m.loadingPapers {
			m.loader, _ = m.loader.Update(spinner.TickMsg{Time: time.Time(msg), ID: m.loader.ID()})
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.player.Close()
		return tea.Quit
	}
	if m.audioView == audioViewCustomize {
		return m.handleCustomizeKey(msg)
	}
	if m.focus == focusChat {
		return m.handleChatKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		m.player.Close()
		return tea.Quit
	case "j", "down":
		m.papers.MoveCursor(1)
	case "k", "up":
		m.papers.MoveCursor(-1)
	case " ", "space":
		if paper := m.papers.CursorPaper(); paper != nil {
			m.selection.Toggle(paper.ID)
			m.syncSelection()
		}
	case "a":
		m.selection.ToggleAll(m.papers.IDs())
		m.syncSelection()
	case "x":
		if paper := m.papers.CursorPaper(); paper != nil {
			m.removePapers([]string{paper.ID})
		}
	case "X":
		if ids := m.selection.Selected(); len(ids) > 0 {
			m.removePapers(ids)
		}
	case "enter", "i":
		m.focus = focusChat
		m.chatInput.Focus()
	case "tab":
		m.sidebarCollapsed = !m.sidebarCollapsed
		m.resize(m.width, m.height)
	case "g":
		return m.generateAudio()
	case "c":
		if m.audioView == audioViewPlayer {
			m.audioView = audioViewCustomize
		}
	case "p":
		m.player.TogglePlay()
	case "[":
		m.player.SeekBy(-10)
	case "]":
		m.player.SeekBy(10)
	case "y":
		if paper := m.papers.CursorPaper(); paper != nil {
			ref := fmt.Sprintf("%s (%s %d). %s", paper.Title, paper.Conference, paper.Year, strings.Join(paper.Authors, ", "))
			return copyToClipboardCmd(ref, "reference copied")
		}
	case "r":
		m.loadingPapers = true
		return fetchPapersCmd(m.api, client.PaperQuery{Limit: defaultPaperPageSize})
	}
	return nil
}

func (m *Model) handleChatKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.submitChat()
	case "esc":
		m.focus = focusList
		m.chatInput.Blur()
		return nil
	}
	return m.chatInput.Update(msg)
}

func (m *Model) handleCustomizeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h", "up", "k":
		if m.voiceIndex > 0 {
			m.voiceIndex--
		}
	case "right", "l", "down", "j":
		if m.voiceIndex < len(customizeVoices)-1 {
			m.voiceIndex++
		}
	case "enter":
		m.audioView = audioViewPlayer
		m.setStatusInfo("voice set to " + customizeVoices[m.voiceIndex])
	case "esc", "c", "q":
		m.audioView = audioViewPlayer
	}
	return nil
}

// removePapers drops papers from the working collection and the selection
// together, so the selection never references a paper that is gone.
func (m *Model) removePapers(ids []string) {
	m.papers.Remove(ids)
	m.selection.Remove(ids)
	m.syncSelection()
}

// syncSelection enforces the workspace rule that a selection change clears
// the conversation: the old transcript answered questions about a different
// paper set.
func (m *Model) syncSelection() {
	if m.selection.Version() == m.selectionSeen {
		return
	}
	m.selectionSeen = m.selection.Version()
	if !m.chat.Empty() {
		m.chat.Reset()
		m.refreshTranscript()
		m.setStatusInfo("selection changed — chat cleared")
	}
}

func (m *Model) submitChat() tea.Cmd {
	turn, ok := m.chat.Submit(m.chatInput.Value())
	if !ok {
		m.setStatusError("type a message first")
		return nil
	}
	m.chatInput.Clear()
	m.refreshTranscript()
	return sendChatCmd(m.api, turn.Seq, turn.Message)
}

func (m *Model) generateAudio() tea.Cmd {
	if m.audioView != audioViewNone {
		m.setStatusInfo("deep dive audio already generated")
		return nil
	}
	ids := m.selection.Selected()
	if len(ids) == 0 {
		m.setStatusError("select papers before generating audio")
		return nil
	}
	m.streamURL = m.api.AudioStreamURL(ids)
	media := audio.NewClockMedia(m.streamURL, m.cfg.AudioDurationEstimate(), m.cfg.AudioCommand())
	m.player.SetMedia(media)
	m.audioView = audioViewPlayer
	m.resize(m.width, m.height)
	m.setStatusInfo(fmt.Sprintf("deep dive audio ready for %d papers", len(ids)))
	return probeAudioCmd(m.api, m.streamURL)
}

func (m *Model) handlePapers(msg papersMsg) {
	m.loadingPapers = false
	if msg.err != nil {
		m.logger.Error("paper load failed", logging.F("error", msg.err))
		m.setStatusError("failed to load papers: " + msg.err.Error())
		return
	}
	m.papers.SetPapers(msg.papers)
	m.setStatusInfo(fmt.Sprintf("loaded %d papers", len(msg.papers)))
}

func (m *Model) handleChatResponse(msg chatResponseMsg) {
	if msg.err != nil {
		m.logger.Warn("chat turn failed", logging.F("seq", msg.seq), logging.F("error", msg.err))
		if !m.chat.Fail(msg.seq) {
			return
		}
	} else if !m.chat.Resolve(msg.seq, msg.response) {
		// Reply to a turn that no longer exists, e.g. after a selection
		// change reset the transcript. Dropped.
		return
	}
	m.refreshTranscript()
}

func (m *Model) handleAudioMetadata(msg audioMetadataMsg) {
	if msg.url != m.streamURL {
		return
	}
	if msg.err != nil {
		m.logger.Warn("audio duration probe failed", logging.F("error", msg.err))
		m.setStatusInfo("audio duration estimated")
		return
	}
	m.player.SetMetadataDuration(msg.duration)
}

func (m *Model) refreshTranscript() {
	blocks := turnsToBlocks(m.chat.Turns())
	if len(blocks) == 0 {
		m.viewport.SetContent(helpStyle.Render("Select papers on the left, then ask a question about them."))
		m.viewport.GotoTop()
		return
	}
	m.viewport.SetContent(renderChatBlocks(blocks, m.viewport.Width))
	m.viewport.GotoBottom()
}

func (m *Model) setStatusInfo(text string) {
	m.status = text
	m.statusIsError = false
}

func (m *Model) setStatusError(text string) {
	m.status = text
	m.statusIsError = true
}

func (m *Model) listWidth() int {
	if m.sidebarCollapsed {
		return 0
	}
	w := m.width / 3
	if w < minListWidth {
		w = minListWidth
	}
	if w > maxListWidth {
		w = maxListWidth
	}
	return w
}

func (m *Model) contentHeight() int {
	h := m.height - 2
	if h < minContentHeight {
		h = minContentHeight
	}
	return h
}

func (m *Model) playerLines() int {
	if m.audioView == audioViewNone {
		return 0
	}
	return playerViewLines
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width = width
	m.height = height

	listWidth := m.listWidth()
	viewportWidth := width - listWidth
	if listWidth > 0 {
		viewportWidth-- // divider column
	}
	if viewportWidth < minViewportWidth {
		viewportWidth = minViewportWidth
	}
	contentHeight := m.contentHeight()
	vpHeight := contentHeight - 2 - m.playerLines()
	if vpHeight < 3 {
		vpHeight = 3
	}

	m.viewport.Width = viewportWidth
	m.viewport.Height = vpHeight
	m.chatInput.Resize(viewportWidth)
	if listWidth > 0 {
		m.papers.SetSize(listWidth, contentHeight)
	}
	m.refreshTranscript()
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	header := m.renderHeader()
	body := m.renderBody()
	status := m.renderStatusLine()
	return header + "\n" + body + "\n" + status
}

func (m *Model) renderHeader() string {
	title := headerStyle.Render("DeepSight · deep dive workspace")
	if m.loadingPapers {
		return title + " " + m.loader.View()
	}
	if m.stats != nil {
		summary := statusStyle.Render(fmt.Sprintf("%d papers across %d conferences", m.stats.TotalPapers, m.stats.TotalConferences))
		return title + "  " + summary
	}
	return title
}

func (m *Model) renderBody() string {
	right := m.renderRightPane()
	listWidth := m.listWidth()
	if listWidth == 0 {
		return right
	}
	left := lipgloss.NewStyle().Width(listWidth).Height(m.contentHeight()).Render(m.papers.View(m.selection))
	divider := dividerStyle.Render(strings.TrimRight(strings.Repeat("│\n", m.contentHeight()), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, divider, right)
}

func (m *Model) renderRightPane() string {
	parts := []string{
		m.viewport.View(),
		dividerStyle.Render(strings.Repeat("─", m.viewport.Width)),
		m.chatInput.View(),
	}
	switch m.audioView {
	case audioViewPlayer:
		parts = append(parts, renderPlayerView(m.player, m.viewport.Width, m.selection.Count()))
	case audioViewCustomize:
		parts = append(parts, m.renderCustomizeView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderCustomizeView() string {
	options := make([]string, 0, len(customizeVoices))
	for i, voice := range customizeVoices {
		if i == m.voiceIndex {
			options = append(options, selectedStyle.Render("["+voice+"]"))
		} else {
			options = append(options, statusStyle.Render(" "+voice+" "))
		}
	}
	title := modalTitleStyle.Render("Customize audio voice")
	help := helpStyle.Render("←/→ choose · enter apply · esc back")
	return title + "\n" + strings.Join(options, " ") + "\n" + help
}

func (m *Model) renderStatusLine() string {
	help := "space select · a all · enter chat · g audio · tab sidebar · q quit"
	if m.focus == focusChat {
		help = "enter send · esc back"
	}
	left := helpStyle.Render(help)
	if m.status == "" {
		return left
	}
	style := statusStyle
	if m.statusIsError {
		style = statusErrorStyle
	}
	status := style.Render(m.status)
	padding := m.width - lipgloss.Width(left) - lipgloss.Width(status)
	if padding < 1 {
		return left + " " + status
	}
	return left + strings.Repeat(" ", padding) + status
}

// Run starts the workspace UI against the given backend.
func Run(api API, cfg config.CoreConfig, logger logging.Logger) error {
	model := NewModel(api, cfg, logger)
	program := tea.NewProgram(&model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
