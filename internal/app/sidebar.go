package app

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"deepsight/internal/types"
)

// PaperList is the sidebar view over the loaded collection: a cursor, a
// scroll window, and a checkbox per paper reflecting selection membership.
type PaperList struct {
	papers []*types.Paper
	cursor int
	offset int
	width  int
	height int
}

func NewPaperList() *PaperList {
	return &PaperList{width: minListWidth, height: minContentHeight}
}

func (l *PaperList) SetPapers(papers []*types.Paper) {
	l.papers = papers
	if l.cursor >= len(papers) {
		l.cursor = len(papers) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.ensureVisible()
}

func (l *PaperList) Papers() []*types.Paper {
	return l.papers
}

// IDs returns every paper ID in display order, for select-all operations.
func (l *PaperList) IDs() []string {
	ids := make([]string, 0, len(l.papers))
	for _, paper := range l.papers {
		ids = append(ids, paper.ID)
	}
	return ids
}

// Remove drops the given papers from the collection. The caller prunes the
// selection in the same step so it never references a removed paper.
func (l *PaperList) Remove(ids []string) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := make([]*types.Paper, 0, len(l.papers))
	for _, paper := range l.papers {
		if !drop[paper.ID] {
			kept = append(kept, paper)
		}
	}
	l.SetPapers(kept)
}

func (l *PaperList) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	l.width = width
	l.height = height
	l.ensureVisible()
}

func (l *PaperList) MoveCursor(delta int) {
	if len(l.papers) == 0 {
		return
	}
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= len(l.papers) {
		l.cursor = len(l.papers) - 1
	}
	l.ensureVisible()
}

// CursorPaper returns the paper under the cursor, or nil for an empty list.
func (l *PaperList) CursorPaper() *types.Paper {
	if l.cursor < 0 || l.cursor >= len(l.papers) {
		return nil
	}
	return l.papers[l.cursor]
}

// PaperAtRow maps a row within the list viewport back to a paper. Row 0 is
// the first visible row, not the first paper.
func (l *PaperList) PaperAtRow(row int) *types.Paper {
	idx := l.offset + row
	if row < 0 || row >= l.height || idx < 0 || idx >= len(l.papers) {
		return nil
	}
	return l.papers[idx]
}

// SetCursorTo moves the cursor onto the given paper if it is in the list.
func (l *PaperList) SetCursorTo(id string) {
	for i, paper := range l.papers {
		if paper.ID == id {
			l.cursor = i
			l.ensureVisible()
			return
		}
	}
}

// Scroll shifts the window by delta rows. Returns false when already at the
// corresponding end.
func (l *PaperList) Scroll(delta int) bool {
	maxOffset := len(l.papers) - l.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	next := l.offset + delta
	if next < 0 {
		next = 0
	}
	if next > maxOffset {
		next = maxOffset
	}
	if next == l.offset {
		return false
	}
	l.offset = next
	return true
}

func (l *PaperList) ensureVisible() {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.height {
		l.offset = l.cursor - l.height + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

func (l *PaperList) View(selection *SelectionController) string {
	if len(l.papers) == 0 {
		return helpStyle.Render(runewidth.Truncate("no papers loaded", l.width, "…"))
	}
	rows := make([]string, 0, l.height)
	end := l.offset + l.height
	if end > len(l.papers) {
		end = len(l.papers)
	}
	for i := l.offset; i < end; i++ {
		rows = append(rows, l.renderRow(i, selection))
	}
	return strings.Join(rows, "\n")
}

func (l *PaperList) renderRow(i int, selection *SelectionController) string {
	paper := l.papers[i]
	checkbox := "[ ]"
	if selection.Contains(paper.ID) {
		checkbox = "[x]"
	}
	label := fmt.Sprintf("%s %s (%s %d)", checkbox, paper.Title, paper.Conference, paper.Year)
	label = runewidth.Truncate(label, l.width, "…")
	switch {
	case i == l.cursor:
		return selectedStyle.Render(runewidth.FillRight(label, l.width))
	case selection.Contains(paper.ID):
		return paperCheckedStyle.Render(label)
	default:
		return paperStyle.Render(label)
	}
}
