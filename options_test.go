package linkcache

import "testing"

func TestBroadcastTriState(t *testing.T) {
	unset := applyCallOptions(nil)
	if unset.broadcastOr(false) != false || unset.broadcastOr(true) != true {
		t.Fatalf("unset broadcast must take the per-operation default")
	}

	on := applyCallOptions([]CallOption{WithBroadcast(true)})
	if on.broadcastOr(false) != true {
		t.Fatalf("explicit true lost")
	}

	// explicitly false must beat a default of true (clear's case)
	off := applyCallOptions([]CallOption{WithBroadcast(false)})
	if off.broadcastOr(true) != false {
		t.Fatalf("explicit false must override the default")
	}
}

func TestCallOptionAccumulation(t *testing.T) {
	o := applyCallOptions([]CallOption{FromService(), WithWait(true)})
	if !o.fromService || !o.wait {
		t.Fatalf("options not applied: %+v", o)
	}
	if o.broadcast != nil {
		t.Fatalf("broadcast should stay unset")
	}
}
