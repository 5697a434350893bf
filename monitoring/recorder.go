package monitoring

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type Timing struct {
	Method   string        `json:"method"`
	Path     string        `json:"path"`
	Status   int           `json:"status"`
	Duration time.Duration `json:"duration_ns"`
	Time     time.Time     `json:"time"`
}

// Recorder is a fixed-capacity ring of request timings.
type Recorder struct {
	mu      sync.Mutex
	timings []Timing
	next    int
	size    int
}

func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = 512
	}
	return &Recorder{timings: make([]Timing, capacity)}
}

func (r *Recorder) Record(t Timing) {
	r.mu.Lock()
	r.timings[r.next] = t
	r.next = (r.next + 1) % len(r.timings)
	if r.size < len(r.timings) {
		r.size++
	}
	r.mu.Unlock()
}

// Timings returns the buffered timings, oldest first.
func (r *Recorder) Timings() []Timing {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Timing, 0, r.size)
	start := r.next - r.size
	if start < 0 {
		start += len(r.timings)
	}
	for i := 0; i < r.size; i++ {
		out = append(out, r.timings[(start+i)%len(r.timings)])
	}
	return out
}

type TimingSummary struct {
	Count       int           `json:"count"`
	AvgDuration time.Duration `json:"avg_duration_ns"`
	MaxDuration time.Duration `json:"max_duration_ns"`
	ByStatus    map[int]int   `json:"by_status"`
}

// Summary aggregates the buffered timings.
func (r *Recorder) Summary() TimingSummary {
	timings := r.Timings()
	s := TimingSummary{ByStatus: make(map[int]int)}
	var total time.Duration
	for _, t := range timings {
		s.Count++
		total += t.Duration
		if t.Duration > s.MaxDuration {
			s.MaxDuration = t.Duration
		}
		s.ByStatus[t.Status]++
	}
	if s.Count > 0 {
		s.AvgDuration = total / time.Duration(s.Count)
	}
	return s
}

// RequestTimer records every request's route, status and duration.
func RequestTimer(rec *Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		rec.Record(Timing{
			Method:   c.Request.Method,
			Path:     c.FullPath(),
			Status:   c.Writer.Status(),
			Duration: time.Since(started),
			Time:     started,
		})
	}
}
