package monitoring

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestLoggerRingOverflow(t *testing.T) {
	l := NewLogger(3, false)

	for i := 0; i < 5; i++ {
		l.Info(fmt.Sprintf("msg-%d", i), nil)
	}

	entries := l.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	// oldest two were overwritten; remainder comes back oldest first
	for i, want := range []string{"msg-2", "msg-3", "msg-4"} {
		if entries[i].Message != want {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Message, want)
		}
	}
}

func TestLoggerPartialFill(t *testing.T) {
	l := NewLogger(10, false)
	l.Warn("first", map[string]interface{}{"k": 1})
	l.Error("second", nil)

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].Message != "first" || entries[0].Level != LevelWarn {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Level != LevelError {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestRecorderRing(t *testing.T) {
	r := NewRecorder(2)

	for i := 0; i < 3; i++ {
		r.Record(Timing{Path: fmt.Sprintf("/p%d", i), Status: 200, Duration: time.Duration(i) * time.Millisecond})
	}

	timings := r.Timings()
	if len(timings) != 2 {
		t.Fatalf("got %d timings, want 2", len(timings))
	}
	if timings[0].Path != "/p1" || timings[1].Path != "/p2" {
		t.Errorf("got paths %q, %q", timings[0].Path, timings[1].Path)
	}
}

func TestRecorderSummary(t *testing.T) {
	r := NewRecorder(8)
	r.Record(Timing{Status: 200, Duration: 10 * time.Millisecond})
	r.Record(Timing{Status: 200, Duration: 30 * time.Millisecond})
	r.Record(Timing{Status: 404, Duration: 2 * time.Millisecond})

	s := r.Summary()
	if s.Count != 3 {
		t.Errorf("count = %d", s.Count)
	}
	if s.MaxDuration != 30*time.Millisecond {
		t.Errorf("max = %v", s.MaxDuration)
	}
	if s.AvgDuration != 14*time.Millisecond {
		t.Errorf("avg = %v", s.AvgDuration)
	}
	if s.ByStatus[200] != 2 || s.ByStatus[404] != 1 {
		t.Errorf("by status = %v", s.ByStatus)
	}
}

func TestRequestTimerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := NewRecorder(16)

	r := gin.New()
	r.Use(RequestTimer(rec))
	r.GET("/products/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/7", nil)
	r.ServeHTTP(w, req)

	timings := rec.Timings()
	if len(timings) != 1 {
		t.Fatalf("got %d timings", len(timings))
	}
	got := timings[0]
	if got.Method != http.MethodGet || got.Path != "/products/:id" || got.Status != http.StatusOK {
		t.Errorf("timing = %+v", got)
	}
	if got.Duration <= 0 {
		t.Error("duration not recorded")
	}
}
