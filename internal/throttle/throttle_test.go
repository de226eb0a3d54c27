package throttle

import (
	"testing"
	"time"
)

func TestAllowDropsInsideWindow(t *testing.T) {
	clock := time.Unix(100, 0)
	th := NewWithClock(100*time.Millisecond, func() time.Time { return clock })

	if !th.Allow() {
		t.Fatal("first call must be admitted")
	}
	clock = clock.Add(50 * time.Millisecond)
	if th.Allow() {
		t.Fatal("call inside the window must be dropped")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !th.Allow() {
		t.Fatal("call at the window boundary must be admitted")
	}
}

func TestDo(t *testing.T) {
	clock := time.Unix(0, 0)
	th := NewWithClock(DefaultWindow, func() time.Time { return clock })
	n := 0
	th.Do(func() { n++ })
	th.Do(func() { n++ })
	if n != 1 {
		t.Fatalf("n = %d", n)
	}
}
