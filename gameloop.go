package gobble

import "time"

type GameLoop = func(ld LoopData)

// LoopData carries the frame clock. Time is the virtual time since the
// world started, the sum of every Delta so far.
type LoopData struct {
	Time  time.Duration
	Frame uint64
	Delta time.Duration
}
