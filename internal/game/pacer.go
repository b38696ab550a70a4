package game

import "time"

// Pacer spaces controller ticks at a fixed rate without drifting.
type Pacer struct {
	period time.Duration
	next   time.Time
	now    func() time.Time
	sleep  func(time.Duration)
}

// NewPacer returns a pacer for the given rate. A non-positive rate makes Wait
// return immediately.
func NewPacer(hz int) *Pacer {
	p := &Pacer{now: time.Now, sleep: time.Sleep}
	if hz > 0 {
		p.period = time.Second / time.Duration(hz)
	}
	return p
}

// Wait blocks until the next tick is due and returns the time to tick with.
func (p *Pacer) Wait() time.Time {
	if p.period <= 0 {
		return p.now()
	}

	if p.next.IsZero() {
		p.next = p.now().Add(p.period)
	} else {
		p.next = p.next.Add(p.period)
	}

	if remaining := p.next.Sub(p.now()); remaining > 0 {
		p.sleep(remaining)
	}

	// After a hitch, resync instead of firing a burst of catch-up ticks.
	now := p.now()
	if late := now.Sub(p.next); late > p.period {
		p.next = now
	}
	return now
}
