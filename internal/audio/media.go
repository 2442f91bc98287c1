package audio

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// Media is the underlying playback element for one audio stream. It is
// exclusively owned by the playback controller; nothing else reads or
// writes its position.
type Media interface {
	Duration() float64
	Position() float64
	Playing() bool
	Play() error
	Pause() error
	SeekTo(seconds float64) error
	Close() error
}

// ClockMedia tracks playback position against the wall clock and optionally
// drives an external player process. With no player command configured the
// position still advances, which keeps the workspace usable on hosts
// without an audio stack.
//
// The configured command is invoked as `<command> -ss <seconds> <url>`, so
// something like `ffplay -nodisp -autoexit -loglevel quiet` works directly.
type ClockMedia struct {
	mu       sync.Mutex
	url      string
	command  []string
	duration float64
	base     float64
	anchor   time.Time
	playing  bool
	cmd      *exec.Cmd
	now      func() time.Time
}

// NewClockMedia creates a media handle for the given stream URL. The
// duration starts as an estimate and is corrected via SetDuration once the
// stream's metadata has been probed.
func NewClockMedia(streamURL string, durationEstimate float64, playerCommand string) *ClockMedia {
	var command []string
	if trimmed := strings.TrimSpace(playerCommand); trimmed != "" {
		command = strings.Fields(trimmed)
	}
	return &ClockMedia{
		url:      streamURL,
		command:  command,
		duration: durationEstimate,
		now:      time.Now,
	}
}

func (m *ClockMedia) Duration() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

// SetDuration corrects the duration once real metadata is known. The
// current position is clamped against the new value.
func (m *ClockMedia) SetDuration(seconds float64) {
	if seconds <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = seconds
	if m.base > seconds {
		m.base = seconds
	}
}

func (m *ClockMedia) Position() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.positionLocked()
}

func (m *ClockMedia) positionLocked() float64 {
	pos := m.base
	if m.playing {
		pos += m.now().Sub(m.anchor).Seconds()
	}
	if pos < 0 {
		pos = 0
	}
	if pos > m.duration {
		pos = m.duration
	}
	return pos
}

// Playing reports false once the position reaches the end of the stream,
// even if Pause was never called.
func (m *ClockMedia) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.playing {
		return false
	}
	if m.positionLocked() >= m.duration {
		m.base = m.duration
		m.playing = false
		m.stopPlayerLocked()
		return false
	}
	return true
}

func (m *ClockMedia) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.playing {
		return nil
	}
	m.anchor = m.now()
	m.playing = true
	return m.startPlayerLocked(m.base)
}

func (m *ClockMedia) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.playing {
		return nil
	}
	m.base = m.positionLocked()
	m.playing = false
	m.stopPlayerLocked()
	return nil
}

func (m *ClockMedia) SeekTo(seconds float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	if seconds > m.duration {
		seconds = m.duration
	}
	m.base = seconds
	m.anchor = m.now()
	if m.playing {
		m.stopPlayerLocked()
		return m.startPlayerLocked(seconds)
	}
	return nil
}

func (m *ClockMedia) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = false
	m.stopPlayerLocked()
	return nil
}

func (m *ClockMedia) startPlayerLocked(offset float64) error {
	if len(m.command) == 0 {
		return nil
	}
	args := append(append([]string{}, m.command[1:]...), "-ss", fmt.Sprintf("%.3f", offset), m.url)
	cmd := exec.Command(m.command[0], args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	m.cmd = cmd
	go func() { _ = cmd.Wait() }()
	return nil
}

func (m *ClockMedia) stopPlayerLocked() {
	if m.cmd == nil || m.cmd.Process == nil {
		m.cmd = nil
		return
	}
	_ = m.cmd.Process.Kill()
	m.cmd = nil
}
