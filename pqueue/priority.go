package pqueue

import "strconv"

// Priority is one of the three closed priority levels. Higher dequeues first.
type Priority int

const (
	Low    Priority = 1
	Medium Priority = 2
	High   Priority = 3
)

// levels is the number of priority levels.
const levels = int(High)

// Valid reports whether p is one of Low, Medium, High.
func (p Priority) Valid() bool { return p >= Low && p <= High }

// String returns a stable lowercase name, used as a metrics label.
func (p Priority) String() string {
	switch p {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "priority(" + strconv.Itoa(int(p)) + ")"
	}
}
