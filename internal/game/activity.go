package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 280
	logMaxEntries = 60
	logLineHeight = 14
)

// ActivityKind tags an activity entry for its colour dot.
type ActivityKind int

const (
	ActivityLoad ActivityKind = iota
	ActivityLayout
	ActivityDrag
	ActivityError
)

var activityColors = [...]color.RGBA{
	ActivityLoad:   {R: 90, G: 190, B: 110, A: 255},
	ActivityLayout: {R: 90, G: 150, B: 230, A: 255},
	ActivityDrag:   {R: 220, G: 220, B: 220, A: 255},
	ActivityError:  {R: 230, G: 80, B: 70, A: 255},
}

// ActivityEntry is a single line in the activity log.
type ActivityEntry struct {
	Tick    int
	Label   string // entity id, load id prefix, or "--"
	Kind    ActivityKind
	Message string
	Repeat  int // times the same line was added back to back, at least 1
}

// ring keeps the last len(buf) values pushed into it.
type ring[T any] struct {
	buf  []T
	next int
	full bool
}

func newRing[T any](capacity int) *ring[T] {
	return &ring[T]{buf: make([]T, capacity)}
}

func (r *ring[T]) push(v T) {
	r.buf[r.next] = v
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.full = true
	}
}

// last points at the newest value, or nil when empty.
func (r *ring[T]) last() *T {
	if !r.full && r.next == 0 {
		return nil
	}
	i := r.next - 1
	if i < 0 {
		i = len(r.buf) - 1
	}
	return &r.buf[i]
}

// items copies the values oldest first.
func (r *ring[T]) items() []T {
	if !r.full {
		return append([]T(nil), r.buf[:r.next]...)
	}
	return append(append([]T(nil), r.buf[r.next:]...), r.buf[:r.next]...)
}

// ActivityLog keeps recent loads, layout changes and drags. Identical
// consecutive lines collapse into one with a repeat count.
type ActivityLog struct {
	entries *ring[ActivityEntry]
}

// NewActivityLog creates a log holding the last logMaxEntries lines.
func NewActivityLog() *ActivityLog {
	return &ActivityLog{entries: newRing[ActivityEntry](logMaxEntries)}
}

// Add records a line. A repeat of the newest line bumps its count and tick.
func (al *ActivityLog) Add(tick int, label string, kind ActivityKind, msg string) {
	if prev := al.entries.last(); prev != nil &&
		prev.Label == label && prev.Kind == kind && prev.Message == msg {
		prev.Repeat++
		prev.Tick = tick
		return
	}
	al.entries.push(ActivityEntry{Tick: tick, Label: label, Kind: kind, Message: msg, Repeat: 1})
}

// Recent returns entries oldest first.
func (al *ActivityLog) Recent() []ActivityEntry {
	return al.entries.items()
}

// Draw renders the log panel with its left edge at panelX, below top.
func (al *ActivityLog) Draw(screen *ebiten.Image, panelX, top, panelH int) {
	px, py := float32(panelX), float32(top)
	vector.FillRect(screen, px, py, float32(logPanelWidth), float32(panelH), color.RGBA{R: 24, G: 24, B: 24, A: 255}, false)
	vector.StrokeLine(screen, px, py, px, py+float32(panelH), 1.0, color.RGBA{R: 17, G: 17, B: 17, A: 255}, false)

	vector.FillRect(screen, px, py, float32(logPanelWidth), 18, color.RGBA{R: 0, G: 0, B: 0, A: 50}, false)
	ebitenutil.DebugPrintAt(screen, "Activity", panelX+8, top+2)
	vector.StrokeLine(screen, px, py+18, px+float32(logPanelWidth), py+18, 1.0, color.RGBA{R: 34, G: 34, B: 34, A: 255}, false)

	entries := al.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 26) / logLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]

	y := top + 22
	for i, e := range visible {
		if i == len(visible)-1 {
			vector.FillRect(screen, px+2, float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 40, G: 40, B: 40, A: 200}, false)
		}
		vector.FillRect(screen, px+5, float32(y+4), 3, 6, activityColors[e.Kind], false)
		line := fmt.Sprintf("%5d %-8s %s", e.Tick, e.Label, e.Message)
		if e.Repeat > 1 {
			line += fmt.Sprintf(" x%d", e.Repeat)
		}
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += logLineHeight
	}
}
