package life

import "lifeboard/internal/core"

const historyDepth = 5

// History remembers the hashes of recent generations to spot still lifes and
// short oscillators.
type History struct {
	hashes []string
}

// Record appends the hash of g, keeping only the most recent entries.
func (h *History) Record(g *core.Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > historyDepth {
		h.hashes = h.hashes[1:]
	}
}

// Clear forgets all recorded generations.
func (h *History) Clear() { h.hashes = h.hashes[:0] }

// Stagnant reports whether the latest generation repeats one of the three
// before it (period 1, 2 or 3).
func (h *History) Stagnant() bool {
	n := len(h.hashes)
	if n < 2 {
		return false
	}
	last := h.hashes[n-1]
	for back := 2; back <= 4 && back <= n; back++ {
		if h.hashes[n-back] == last {
			return true
		}
	}
	return false
}
