// Package perf measures event throughput: how many things happened and how
// long they took.
//
//	timer := perf.Tick()
//	for _, f := range frames {
//		render(f)
//		timer.AddEvent()
//	}
//	info := timer.Tock()
//	fmt.Println(info.Format("frames")) // "120 frames in 2.0 seconds => 60.0 frames/sec"
package perf

import (
	"fmt"
	"time"
)

// Info is a count of events together with the time they took. Infos from
// separate measurement windows can be combined with Add and Sub, which is
// useful for long-running aggregate rates.
type Info struct {
	Events  int
	Elapsed time.Duration
}

// Seconds returns the elapsed time in seconds.
func (i Info) Seconds() float64 {
	return i.Elapsed.Seconds()
}

// Rate returns the throughput in events per second, or 0 when no time has
// elapsed.
func (i Info) Rate() float64 {
	s := i.Seconds()
	if s == 0 {
		return 0
	}
	return float64(i.Events) / s
}

// Add combines two measurement windows.
func (i Info) Add(other Info) Info {
	return Info{
		Events:  i.Events + other.Events,
		Elapsed: i.Elapsed + other.Elapsed,
	}
}

// Sub removes one measurement window from another.
func (i Info) Sub(other Info) Info {
	return Info{
		Events:  i.Events - other.Events,
		Elapsed: i.Elapsed - other.Elapsed,
	}
}

// Format renders the measurement with a caller-supplied plural event name,
// e.g. "2500 frobinations in 1.3 seconds => 2000.0 frobinations/sec".
func (i Info) Format(eventsName string) string {
	return fmt.Sprintf("%d %s in %.1f seconds => %.1f %s/sec",
		i.Events, eventsName, i.Seconds(), i.Rate(), eventsName)
}

func (i Info) String() string {
	return i.Format("events")
}

// Timer accumulates events against a start time. Obtain one with Tick.
type Timer struct {
	start  time.Time
	events int
}

// Tick starts a new timer.
func Tick() *Timer {
	return &Timer{start: time.Now()}
}

// AddEvents records n processed events. Returns the timer for chaining.
func (t *Timer) AddEvents(n int) *Timer {
	t.events += n
	return t
}

// AddEvent records a single processed event.
func (t *Timer) AddEvent() *Timer {
	return t.AddEvents(1)
}

// Elapsed returns the time since Tick.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Tock returns the measurement so far. The timer keeps running; calling
// Tock again extends the window.
func (t *Timer) Tock() Info {
	return Info{Events: t.events, Elapsed: t.Elapsed()}
}

// TockEvents records n final events and returns the measurement, for loops
// that count once at the end rather than per iteration.
func (t *Timer) TockEvents(n int) Info {
	return t.AddEvents(n).Tock()
}
