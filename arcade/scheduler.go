package arcade

import (
	"sort"
	"time"
)

type TimerID uint64

type timer struct {
	id  TimerID
	due time.Duration
	fn  func()
}

// Scheduler runs callbacks against a virtual clock that only moves when
// Advance is called, so delays are measured in frame time.
type Scheduler struct {
	now    time.Duration
	nextID TimerID
	timers []timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Now() time.Duration {
	return s.now
}

func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// After schedules fn to run once the clock has advanced by delay.
func (s *Scheduler) After(delay time.Duration, fn func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, timer{id: s.nextID, due: s.now + delay, fn: fn})
	sort.SliceStable(s.timers, func(i, j int) bool {
		return s.timers[i].due < s.timers[j].due
	})
	return s.nextID
}

func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by dt and fires every timer that became
// due, earliest first. Timers scheduled by a firing callback wait for the
// next Advance.
func (s *Scheduler) Advance(dt time.Duration) int {
	s.now += dt
	var due []timer
	for len(s.timers) > 0 && s.timers[0].due <= s.now {
		due = append(due, s.timers[0])
		s.timers = s.timers[1:]
	}
	for _, t := range due {
		t.fn()
	}
	return len(due)
}
