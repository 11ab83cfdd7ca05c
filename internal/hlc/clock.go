// Package hlc implements the hybrid logical clock used to order writes
// across devices.
//
// A timestamp combines wall-clock milliseconds, a logical counter, and the
// device identifier into a fixed-width string whose lexicographic order
// agrees with causal order under bounded clock skew. Timestamps are compared
// as plain strings everywhere else in the application, including inside SQL.
package hlc

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	// counterMax bounds the logical counter. When it overflows within one
	// millisecond the physical component is advanced artificially.
	counterMax = 0xFFFFF

	millisDigits  = 13
	counterDigits = 5
)

// Clock issues monotonically increasing hybrid logical timestamps for one
// device. All methods are safe for concurrent use. Clock is pure in-memory
// state and never returns an error.
type Clock struct {
	mu       sync.Mutex
	deviceID string
	lastMs   int64
	counter  int64
	now      func() time.Time
}

// NewClock constructs a Clock for the given stable device identifier.
// The identifier is generated once per installation and persisted by the
// local store; the clock itself does not own it.
func NewClock(deviceID string) *Clock {
	return &Clock{deviceID: deviceID, now: time.Now}
}

// newClockAt is used by tests to supply a deterministic time source.
func newClockAt(deviceID string, now func() time.Time) *Clock {
	return &Clock{deviceID: deviceID, now: now}
}

// DeviceID returns the stable per-device identifier embedded in every
// timestamp issued by this clock.
func (c *Clock) DeviceID() string {
	return c.deviceID
}

// Next returns a new timestamp strictly greater than every timestamp
// previously issued by or received into this clock.
func (c *Clock) Next() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick()
	return format(c.lastMs, c.counter, c.deviceID)
}

// NextBatch returns n timestamps, each strictly greater than the last.
// It is used when stamping a multi-row local write in one transaction so
// that rows of the same batch never tie.
func (c *Clock) NextBatch(n int) []string {
	if n <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, n)
	for range n {
		c.tick()
		out = append(out, format(c.lastMs, c.counter, c.deviceID))
	}
	return out
}

// Receive advances the clock past a timestamp observed from another device
// so that subsequent Next calls still dominate it. It must be called
// whenever remote data is applied, not only on conflict. Malformed input is
// ignored: a non-HLC string cannot move the clock backwards, and the remote
// side is not a trusted source of clock state.
func (c *Clock) Receive(remote string) {
	ms, counter, ok := parse(remote)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case ms > c.lastMs:
		c.lastMs = ms
		c.counter = counter
	case ms == c.lastMs && counter > c.counter:
		c.counter = counter
	}
}

// tick advances the clock by one event. Caller must hold c.mu.
func (c *Clock) tick() {
	wall := c.now().UnixMilli()
	if wall > c.lastMs {
		c.lastMs = wall
		c.counter = 0
		return
	}

	c.counter++
	if c.counter > counterMax {
		c.lastMs++
		c.counter = 0
	}
}

// Compare is the total-order comparator over timestamps issued by any
// device. It returns a negative value when a < b, zero when a == b, and a
// positive value when a > b. Because timestamps are fixed-width, this is
// plain string comparison; passing a non-HLC string is a programmer error
// and yields an unspecified ordering rather than a runtime failure.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// Valid reports whether ts is a canonical hybrid logical timestamp. It is
// used to reject malformed timestamps at the API boundary before they enter
// string comparison: only the fixed-width form compares correctly, so a
// short or oddly padded timestamp would corrupt the merge order everywhere
// plain string comparison is used, including inside SQL.
func Valid(ts string) bool {
	_, _, ok := parse(ts)
	return ok
}

// format renders the three components into the canonical fixed-width form,
// e.g. "1756600000000-00004-3f2a...".
func format(ms, counter int64, deviceID string) string {
	return fmt.Sprintf("%0*d-%0*X-%s", millisDigits, ms, counterDigits, counter, deviceID)
}

// parse extracts the physical and logical components of a timestamp.
// Only the canonical widths are accepted: exactly 13 decimal digits of
// milliseconds, exactly 5 uppercase hex digits of counter, and a non-empty
// device suffix. The device suffix is not needed by the clock and is
// discarded.
func parse(ts string) (ms, counter int64, ok bool) {
	parts := strings.SplitN(ts, "-", 3)
	if len(parts) != 3 {
		return 0, 0, false
	}
	if len(parts[0]) != millisDigits || len(parts[1]) != counterDigits || parts[2] == "" {
		return 0, 0, false
	}
	if !isDecimal(parts[0]) || !isUpperHex(parts[1]) {
		return 0, 0, false
	}

	ms, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	counter, err = strconv.ParseInt(parts[1], 16, 64)
	if err != nil {
		return 0, 0, false
	}

	return ms, counter, true
}

func isDecimal(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isUpperHex accepts only the digits format emits: lowercase hex would sort
// after every uppercase letter and break the comparison contract.
func isUpperHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return false
		}
	}
	return true
}
