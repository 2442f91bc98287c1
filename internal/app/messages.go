package app

import (
	"time"

	"deepsight/internal/types"
)

type papersMsg struct {
	papers []*types.Paper
	err    error
}

type conferenceStatsMsg struct {
	stats *types.ConferenceStats
	err   error
}

// chatResponseMsg carries the outcome of one chat turn. The seq ties the
// outcome back to the pending turn that produced it; a seq that no longer
// exists in the transcript is dropped.
type chatResponseMsg struct {
	seq      int
	response string
	err      error
}

type audioMetadataMsg struct {
	url      string
	duration float64
	err      error
}

type clipboardResultMsg struct {
	success string
	err     error
}

type tickMsg time.Time
