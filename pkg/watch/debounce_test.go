package watch

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_LastCallbackWins(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var got atomic.Int32
	done := make(chan struct{}, 4)
	for i := int32(1); i <= 3; i++ {
		d.Trigger(func() {
			got.Store(i)
			done <- struct{}{}
		})
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback never ran")
	}
	if v := got.Load(); v != 3 {
		t.Errorf("callback value = %d, want 3", v)
	}

	select {
	case <-done:
		t.Error("callback ran more than once")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Stop()
	d.Trigger(func() { calls.Add(1) })

	time.Sleep(150 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Errorf("calls = %d, want 0 after Stop", n)
	}
}
