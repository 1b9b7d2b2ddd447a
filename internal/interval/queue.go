package interval

// Queue is an explicit slot queue for the scheduler's placement passes:
// consume from the front, push a shrunk remainder back to the front. It
// replaces ad-hoc slice mutation so the same slot list is never aliased
// across passes.
type Queue struct {
	slots []Interval
}

// NewQueue builds a queue over a copy of the given slots.
func NewQueue(slots []Interval) *Queue {
	q := &Queue{slots: make([]Interval, len(slots))}
	copy(q.slots, slots)
	return q
}

// Len returns the number of queued slots.
func (q *Queue) Len() int {
	return len(q.slots)
}

// Peek returns the slot at position idx without consuming it.
func (q *Queue) Peek(idx int) (Interval, bool) {
	if idx < 0 || idx >= len(q.slots) {
		return Interval{}, false
	}
	return q.slots[idx], true
}

// Pop removes and returns the front slot.
func (q *Queue) Pop() (Interval, bool) {
	if len(q.slots) == 0 {
		return Interval{}, false
	}
	front := q.slots[0]
	q.slots = q.slots[1:]
	return front, true
}

// PushFront re-inserts a slot (typically the unconsumed remainder of a
// popped slot) at the front of the queue.
func (q *Queue) PushFront(iv Interval) {
	q.slots = append([]Interval{iv}, q.slots...)
}

// Replace swaps the slot at position idx for its remainder.
func (q *Queue) Replace(idx int, iv Interval) {
	if idx >= 0 && idx < len(q.slots) {
		q.slots[idx] = iv
	}
}

// Remove deletes the slot at position idx.
func (q *Queue) Remove(idx int) {
	if idx < 0 || idx >= len(q.slots) {
		return
	}
	q.slots = append(q.slots[:idx:idx], q.slots[idx+1:]...)
}

// Slots returns a copy of the remaining slots in order.
func (q *Queue) Slots() []Interval {
	out := make([]Interval, len(q.slots))
	copy(out, q.slots)
	return out
}
