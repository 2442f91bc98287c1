package app

import tea "github.com/charmbracelet/bubbletea"

// mouseLayout mirrors the geometry produced by resize and View so pointer
// coordinates can be mapped back onto widgets without re-rendering.
type mouseLayout struct {
	listWidth  int
	listTop    int
	rightStart int
	inputY     int
	trackY     int
	trackX     int
	trackWidth int
}

func (m *Model) resolveMouseLayout() mouseLayout {
	lay := mouseLayout{
		listWidth: m.listWidth(),
		listTop:   1,
		trackY:    -1,
	}
	if lay.listWidth > 0 {
		lay.rightStart = lay.listWidth + 1
	}
	lay.inputY = 2 + m.viewport.Height
	if m.audioView == audioViewPlayer {
		lay.trackY = 4 + m.viewport.Height
		lay.trackX = lay.rightStart + trackPrefixWidth
		lay.trackWidth = playerTrackWidth(m.viewport.Width)
	}
	return lay
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	lay := m.resolveMouseLayout()
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.reduceLeftPressMouse(msg, lay)
		case tea.MouseButtonWheelUp:
			m.reduceWheelMouse(msg, lay, -3)
		case tea.MouseButtonWheelDown:
			m.reduceWheelMouse(msg, lay, 3)
		}
	case tea.MouseActionMotion:
		m.reduceTrackDragMouse(msg, lay)
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			m.reduceTrackReleaseMouse()
		}
	}
	return nil
}

func (m *Model) reduceLeftPressMouse(msg tea.MouseMsg, lay mouseLayout) {
	if lay.trackY >= 0 && msg.Y == lay.trackY && msg.X >= lay.trackX && msg.X < lay.trackX+lay.trackWidth {
		// A press on the track seeks right away and arms a drag; motion
		// events then move only the displayed position until release.
		m.player.SeekAtPoint(msg.X, lay.trackX, lay.trackWidth)
		m.player.DragStart(msg.X, lay.trackX, lay.trackWidth)
		return
	}
	if lay.listWidth > 0 && msg.X < lay.listWidth && msg.Y >= lay.listTop && msg.Y < lay.listTop+m.contentHeight() {
		if paper := m.papers.PaperAtRow(msg.Y - lay.listTop); paper != nil {
			m.papers.SetCursorTo(paper.ID)
			m.selection.Toggle(paper.ID)
			m.syncSelection()
		}
		return
	}
	if msg.Y == lay.inputY && msg.X >= lay.rightStart {
		m.focus = focusChat
		m.chatInput.Focus()
		return
	}
	if m.focus == focusChat && msg.Y < lay.inputY {
		m.focus = focusList
		m.chatInput.Blur()
	}
}

func (m *Model) reduceWheelMouse(msg tea.MouseMsg, lay mouseLayout, delta int) {
	if lay.listWidth > 0 && msg.X < lay.listWidth {
		m.papers.Scroll(delta)
		return
	}
	if delta < 0 {
		m.viewport.LineUp(-delta)
	} else {
		m.viewport.LineDown(delta)
	}
}

func (m *Model) reduceTrackDragMouse(msg tea.MouseMsg, lay mouseLayout) {
	if !m.player.Dragging() {
		return
	}
	// The pointer may leave the track row mid-drag; only the column counts.
	m.player.DragMove(msg.X, lay.trackX, lay.trackWidth)
}

func (m *Model) reduceTrackReleaseMouse() {
	if m.player.Dragging() {
		m.player.DragEnd()
	}
}
