package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("catalog:products:all", []int{1, 2, 3}, 0)
	got, ok := c.Get("catalog:products:all")
	if !ok {
		t.Fatal("expected hit")
	}
	if v := got.([]int); len(v) != 3 {
		t.Errorf("got %v", v)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestExpiry(t *testing.T) {
	c := New(time.Minute)

	c.Set("k", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected expired entry to miss")
	}
	// expired entries are removed on read
	if c.Len() != 0 {
		t.Errorf("len = %d after expired read", c.Len())
	}
}

func TestInvalidatePattern(t *testing.T) {
	c := New(time.Minute)
	c.Set("catalog:products:all", 1, 0)
	c.Set("catalog:categories:all", 2, 0)
	c.Set("session:abc", 3, 0)

	if err := c.InvalidatePattern("^catalog:"); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 {
		t.Errorf("len = %d, want 1", c.Len())
	}
	if _, ok := c.Get("session:abc"); !ok {
		t.Error("unrelated key was evicted")
	}

	if err := c.InvalidatePattern("("); err == nil {
		t.Error("expected error for bad pattern")
	}
}

func TestInvalidateSingleKey(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)

	c.Invalidate("a")
	if _, ok := c.Get("a"); ok {
		t.Error("key a should be gone")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("key b should survive")
	}
}
