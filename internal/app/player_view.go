package app

import (
	"fmt"
	"strings"
)

// Track line geometry. The prefix is the play state glyph plus the elapsed
// time ("> 04:05 "), the suffix is the total time (" 10:00"); both are fixed
// width so pointer coordinates map onto the bar without measuring styles.
const (
	trackPrefixWidth = 8
	trackSuffixWidth = 6
	minTrackWidth    = 10
	playerViewLines  = 3
)

func playerTrackWidth(paneWidth int) int {
	w := paneWidth - trackPrefixWidth - trackSuffixWidth
	if w < minTrackWidth {
		w = minTrackWidth
	}
	return w
}

func renderPlayerView(p *PlayerController, paneWidth, paperCount int) string {
	title := playerTitleStyle.Render(fmt.Sprintf("Deep dive audio — %d papers", paperCount))
	track := renderTrackLine(p, playerTrackWidth(paneWidth))
	help := helpStyle.Render("p play/pause · [/] seek · drag the knob · c customize")
	return title + "\n" + track + "\n" + help
}

func renderTrackLine(p *PlayerController, trackWidth int) string {
	state := ">"
	if p.Playing() {
		state = "|"
	}
	knob := 0
	if p.Duration() > 0 {
		knob = int(p.Current()/p.Duration()*float64(trackWidth-1) + 0.5)
	}
	if knob > trackWidth-1 {
		knob = trackWidth - 1
	}
	var bar strings.Builder
	if knob > 0 {
		bar.WriteString(trackElapsedStyle.Render(strings.Repeat("━", knob)))
	}
	bar.WriteString(trackKnobStyle.Render("●"))
	if rest := trackWidth - knob - 1; rest > 0 {
		bar.WriteString(trackBarStyle.Render(strings.Repeat("─", rest)))
	}
	elapsed := playerTimeStyle.Render(formatPlayTime(p.Current()))
	total := playerTimeStyle.Render(formatPlayTime(p.Duration()))
	return fmt.Sprintf("%s %s %s %s", state, elapsed, bar.String(), total)
}

func formatPlayTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds + 0.5)
	if total >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
