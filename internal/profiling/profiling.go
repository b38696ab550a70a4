package profiling

import (
	"maps"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Stage timings for the current spawn pass, keyed by stage name.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track starts timing stage. Calling the returned func, typically deferred,
// charges the time since Track to that stage; repeated calls accumulate.
func Track(stage string) func() {
	start := time.Now()
	return func() { add(stage, time.Since(start)) }
}

func add(stage string, d time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	totals[stage] += d
}

// Reset clears all totals. The controller calls it at the start of a pass.
func Reset() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot copies the totals so callers can read them without the lock.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return maps.Clone(totals)
}

// TopN formats the n largest totals, e.g.
// "foliage.Spawn:4.2ms, spawndata.Load:1.3ms".
func TopN(n int) string {
	type entry struct {
		name string
		dur  time.Duration
	}
	snap := Snapshot()
	list := make([]entry, 0, len(snap))
	for k, v := range snap {
		list = append(list, entry{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}

	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		ms := float64(e.dur.Microseconds()) / 1000.0
		parts = append(parts, e.name+":"+strconv.FormatFloat(ms, 'f', 1, 64)+"ms")
	}
	return strings.Join(parts, ", ")
}
