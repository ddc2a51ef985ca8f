package dial

// History is a circular buffer of accepted angles.
type History struct {
	buf   []int
	pos   int
	count int
}

// NewHistory creates a history holding up to capacity angles.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		buf: make([]int, capacity),
	}
}

// Push records an angle, overwriting the oldest when full.
func (h *History) Push(angle int) {
	h.buf[h.pos] = angle
	h.pos = (h.pos + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

// Values returns the stored angles oldest first.
func (h *History) Values() []int {
	if h.count == 0 {
		return nil
	}
	result := make([]int, h.count)
	if h.count < len(h.buf) {
		copy(result, h.buf[:h.count])
	} else {
		n := copy(result, h.buf[h.pos:])
		copy(result[n:], h.buf[:h.pos])
	}
	return result
}

// Last returns the most recent angle and whether there is one.
func (h *History) Last() (int, bool) {
	if h.count == 0 {
		return 0, false
	}
	idx := (h.pos - 1 + len(h.buf)) % len(h.buf)
	return h.buf[idx], true
}

// Len returns the number of stored angles.
func (h *History) Len() int {
	return h.count
}

// Reset empties the history.
func (h *History) Reset() {
	h.pos = 0
	h.count = 0
}
