package app

import "deepsight/internal/audio"

// PlayerController mediates between the UI and the playback media. The
// displayed position is its own state: while the user drags the track knob
// it follows the pointer, and the media position is written exactly once
// when the drag ends.
type PlayerController struct {
	media    audio.Media
	duration float64
	current  float64
	playing  bool
	dragging bool
}

func NewPlayerController() *PlayerController {
	return &PlayerController{}
}

// SetMedia mounts the underlying media. Until a media is mounted every
// playback and seek operation is a no-op.
func (p *PlayerController) SetMedia(media audio.Media) {
	p.media = media
	p.current = 0
	p.playing = false
	p.dragging = false
	if media != nil {
		p.duration = media.Duration()
	} else {
		p.duration = 0
	}
}

func (p *PlayerController) HasMedia() bool {
	return p.media != nil
}

func (p *PlayerController) Duration() float64 {
	return p.duration
}

func (p *PlayerController) Current() float64 {
	return p.current
}

func (p *PlayerController) Playing() bool {
	return p.playing
}

func (p *PlayerController) Dragging() bool {
	return p.dragging
}

func (p *PlayerController) Play() {
	if p.media == nil {
		return
	}
	if err := p.media.Play(); err != nil {
		return
	}
	p.playing = true
}

func (p *PlayerController) Pause() {
	if p.media == nil {
		return
	}
	if err := p.media.Pause(); err != nil {
		return
	}
	p.playing = false
}

func (p *PlayerController) TogglePlay() {
	if p.playing {
		p.Pause()
	} else {
		p.Play()
	}
}

// Tick refreshes the displayed position from the media. While a drag is in
// progress the display belongs to the pointer and the media position is
// ignored.
func (p *PlayerController) Tick() {
	if p.media == nil || p.dragging {
		return
	}
	p.current = clampSeconds(p.media.Position(), p.duration)
	if p.playing && !p.media.Playing() {
		p.playing = false
	}
}

// SeekAtPoint maps a pointer position on the track to a media position and
// commits it immediately. Unusable mid-drag; the drag owns seeking then.
func (p *PlayerController) SeekAtPoint(x, trackX, trackWidth int) bool {
	if p.media == nil || p.dragging {
		return false
	}
	p.current = trackFraction(x, trackX, trackWidth) * p.duration
	_ = p.media.SeekTo(p.current)
	return true
}

// SeekBy nudges the position by delta seconds and commits it.
func (p *PlayerController) SeekBy(delta float64) {
	if p.media == nil || p.dragging {
		return
	}
	p.current = clampSeconds(p.current+delta, p.duration)
	_ = p.media.SeekTo(p.current)
}

// DragStart begins a scrub. The displayed position decouples from the media
// until DragEnd.
func (p *PlayerController) DragStart(x, trackX, trackWidth int) {
	if p.media == nil {
		return
	}
	p.dragging = true
	p.current = trackFraction(x, trackX, trackWidth) * p.duration
}

// DragMove follows the pointer. Only the displayed position changes.
func (p *PlayerController) DragMove(x, trackX, trackWidth int) {
	if !p.dragging {
		return
	}
	p.current = trackFraction(x, trackX, trackWidth) * p.duration
}

// DragEnd commits the dragged position to the media, once.
func (p *PlayerController) DragEnd() {
	if !p.dragging {
		return
	}
	p.dragging = false
	if p.media != nil {
		_ = p.media.SeekTo(p.current)
	}
}

// SetMetadataDuration corrects the duration once the stream's real metadata
// is known, replacing the configured estimate.
func (p *PlayerController) SetMetadataDuration(seconds float64) {
	if seconds <= 0 {
		return
	}
	p.duration = seconds
	p.current = clampSeconds(p.current, p.duration)
	if setter, ok := p.media.(interface{ SetDuration(float64) }); ok {
		setter.SetDuration(seconds)
	}
}

// Close releases the media, stopping any external player.
func (p *PlayerController) Close() {
	if p.media != nil {
		_ = p.media.Close()
	}
	p.SetMedia(nil)
}

func trackFraction(x, trackX, trackWidth int) float64 {
	if trackWidth <= 1 {
		return 0
	}
	frac := float64(x-trackX) / float64(trackWidth-1)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

func clampSeconds(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if max > 0 && v > max {
		return max
	}
	return v
}
