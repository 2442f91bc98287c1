package app

import "testing"

func newTestList(n int) *PaperList {
	l := NewPaperList()
	papers := testPapers()
	for len(papers) < n {
		papers = append(papers, papers[len(papers)%3])
	}
	l.SetPapers(papers[:n])
	return l
}

func TestPaperListCursorClamps(t *testing.T) {
	l := newTestList(3)
	l.MoveCursor(-5)
	if l.CursorPaper() != l.Papers()[0] {
		t.Fatal("cursor not clamped at top")
	}
	l.MoveCursor(99)
	if l.CursorPaper() != l.Papers()[2] {
		t.Fatal("cursor not clamped at bottom")
	}
}

func TestPaperListPaperAtRowUsesScrollOffset(t *testing.T) {
	l := newTestList(10)
	l.SetSize(30, 4)
	if !l.Scroll(3) {
		t.Fatal("scroll rejected")
	}
	if got := l.PaperAtRow(0); got != l.Papers()[3] {
		t.Fatalf("row 0 mapped to wrong paper: %+v", got)
	}
	if got := l.PaperAtRow(4); got != nil {
		t.Fatalf("row past window mapped to %+v", got)
	}
}

func TestPaperListScrollStopsAtEnds(t *testing.T) {
	l := newTestList(5)
	l.SetSize(30, 4)
	if l.Scroll(-1) {
		t.Fatal("scrolled above the top")
	}
	if !l.Scroll(10) {
		t.Fatal("scroll down rejected")
	}
	if l.Scroll(1) {
		t.Fatal("scrolled past the end")
	}
}

func TestPaperListCursorFollowsVisibility(t *testing.T) {
	l := newTestList(10)
	l.SetSize(30, 4)
	l.MoveCursor(7)
	if got := l.PaperAtRow(3); got != l.CursorPaper() {
		t.Fatal("cursor row not kept visible")
	}
}
