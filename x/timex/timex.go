package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// Sleeper blocks for d. Drivers take one so tests can record settle delays
// instead of waiting them out.
type Sleeper func(d time.Duration)

// Recorder is a Sleeper that only logs the requested durations.
type Recorder struct {
	Slept []time.Duration
}

func (r *Recorder) Sleep(d time.Duration) { r.Slept = append(r.Slept, d) }

// Total is the sum of all recorded delays.
func (r *Recorder) Total() time.Duration {
	var t time.Duration
	for _, d := range r.Slept {
		t += d
	}
	return t
}
