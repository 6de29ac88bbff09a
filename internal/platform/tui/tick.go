// Package tui provides the Bubble Tea frontend: it maps keys to held input
// signals, paces the simulation, and renders the game screen, the arena menu
// and the runs board, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDisplayRate caps how often the screen is redrawn. The simulation may run
// faster; the Pacer steps it several frames per redraw.
const maxDisplayRate = 60

// maxCatchUp bounds the frames simulated after a stall.
const maxCatchUp = 20

// TickMsg is sent to trigger a redraw and the simulation frames due since the last one.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the display rate.
func tickCmd(simRate int) tea.Cmd {
	return tea.Tick(displayInterval(simRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// displayInterval is the time between redraws for a simulation rate.
func displayInterval(simRate int) time.Duration {
	rate := min(max(simRate, 1), maxDisplayRate)
	return time.Second / time.Duration(rate)
}

// Pacer converts wall-clock time into a whole number of fixed-length
// simulation frames, carrying the remainder over to the next call.
type Pacer struct {
	frame time.Duration
	last  time.Time
	acc   time.Duration
}

// NewPacer creates a pacer for rate frames per second.
func NewPacer(rate int) Pacer {
	return Pacer{frame: time.Second / time.Duration(max(rate, 1))}
}

// Advance returns the number of frames due at now. The first call only
// starts the clock.
func (p *Pacer) Advance(now time.Time) int {
	if p.last.IsZero() {
		p.last = now
		return 0
	}
	if now.After(p.last) {
		p.acc += now.Sub(p.last)
	}
	p.last = now

	n := int(p.acc / p.frame)
	p.acc -= time.Duration(n) * p.frame
	if n > maxCatchUp {
		n = maxCatchUp
		p.acc = 0
	}
	return n
}

// Restart forgets the clock, e.g. after a pause in ticking.
func (p *Pacer) Restart() {
	p.last = time.Time{}
	p.acc = 0
}
