package services

import (
	"math"
	"regexp"
	"strconv"
	"sync"

	"wgpt/internal/infrastructure/logging"
	"wgpt/internal/platform"
	"wgpt/internal/taskbar"
)

// unreadPattern matches the first parenthesised number in a page title, e.g. "(3) WhatsApp"
var unreadPattern = regexp.MustCompile(`\((\d+)\)`)

// CountFromTitle extracts the unread count a page advertises in its title.
// Titles without a parenthesised number yield 0. Numbers too large for int saturate.
func CountFromTitle(title string) int {
	m := unreadPattern.FindStringSubmatch(title)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Only a range error is possible for a digit string
		return math.MaxInt
	}
	return n
}

// BadgeStats summarises tracker activity
type BadgeStats struct {
	LastCount int
	Updates   int
	Skipped   int
	Pending   bool
}

// BadgeTracker forwards unread counts to the taskbar badge, dropping repeats.
// Calls are serialised so the shell only ever sees one update at a time.
type BadgeTracker struct {
	mutex   sync.Mutex
	badger  taskbar.Badger
	window  platform.Window
	last    int
	updates int
	skipped int
	pending bool
	logger  logging.Logger
}

// NewBadgeTracker creates a tracker with no window attached and no known count
func NewBadgeTracker(badger taskbar.Badger, logger logging.Logger) *BadgeTracker {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if badger == nil {
		badger = taskbar.NopBadger{}
	}
	return &BadgeTracker{
		badger: badger,
		last:   -1,
		logger: logger,
	}
}

// AttachWindow sets the window whose taskbar button carries the badge.
// A count reported before the window was known is applied now.
func (bt *BadgeTracker) AttachWindow(window platform.Window) {
	bt.mutex.Lock()
	defer bt.mutex.Unlock()

	bt.window = window
	if window != 0 && bt.pending {
		bt.pending = false
		bt.apply(bt.last)
	}
}

// Window returns the attached window, zero if none
func (bt *BadgeTracker) Window() platform.Window {
	bt.mutex.Lock()
	defer bt.mutex.Unlock()
	return bt.window
}

// ReportTitle derives the count from a page title and forwards it when it changed
func (bt *BadgeTracker) ReportTitle(title string) int {
	count := CountFromTitle(title)
	bt.SetCount(count)
	return count
}

// SetCount forwards count when it differs from the last one seen.
// It returns false when the count was a repeat.
func (bt *BadgeTracker) SetCount(count int) bool {
	if count < 0 {
		count = 0
	}

	bt.mutex.Lock()
	defer bt.mutex.Unlock()

	if count == bt.last {
		bt.skipped++
		return false
	}
	bt.last = count

	if bt.window == 0 {
		bt.pending = true
		bt.logger.Debug("Badge count held until the window is attached", "count", count)
		return true
	}

	bt.apply(count)
	return true
}

// Clear removes the badge and forgets the last count
func (bt *BadgeTracker) Clear() {
	bt.mutex.Lock()
	defer bt.mutex.Unlock()

	bt.pending = false
	if bt.window != 0 && bt.last > 0 {
		bt.apply(0)
	}
	bt.last = -1
}

// Stats returns a snapshot of tracker activity
func (bt *BadgeTracker) Stats() BadgeStats {
	bt.mutex.Lock()
	defer bt.mutex.Unlock()

	return BadgeStats{
		LastCount: bt.last,
		Updates:   bt.updates,
		Skipped:   bt.skipped,
		Pending:   bt.pending,
	}
}

// apply must be called with the mutex held
func (bt *BadgeTracker) apply(count int) {
	bt.updates++
	bt.badger.SetBadge(bt.window, count)
	bt.logger.Debug("Badge count forwarded", "count", count, "window", bt.window.String())
}
