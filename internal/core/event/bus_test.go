package event

import "testing"

func TestBusDeliversNextTick(t *testing.T) {
	b := NewBus()
	var hurts []int
	var killed int
	Subscribe(b, func(e PlayerHurt) { hurts = append(hurts, e.Health) })
	Subscribe(b, func(HostileKilled) { killed++ })

	Emit(b, PlayerHurt{Health: 90})
	Emit(b, HostileKilled{})
	Emit(b, PlayerHurt{Health: 80})

	b.DispatchAll()
	if len(hurts) != 0 {
		t.Fatal("events delivered before the swap")
	}
	if b.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", b.Pending())
	}

	b.SwapBuffers()
	b.DispatchAll()
	if len(hurts) != 2 || hurts[0] != 90 || hurts[1] != 80 {
		t.Errorf("hurts = %v, want [90 80]", hurts)
	}
	if killed != 1 {
		t.Errorf("killed = %d, want 1", killed)
	}

	// the next swap must not redeliver
	b.SwapBuffers()
	b.DispatchAll()
	if len(hurts) != 2 || killed != 1 {
		t.Errorf("events redelivered: hurts=%v killed=%d", hurts, killed)
	}
}

func TestBusDrop(t *testing.T) {
	b := NewBus()
	n := 0
	Subscribe(b, func(DryFire) { n++ })
	Emit(b, DryFire{})
	b.SwapBuffers()
	Emit(b, DryFire{})
	b.Drop()
	b.SwapBuffers()
	b.DispatchAll()
	if n != 0 {
		t.Errorf("dropped events delivered %d times", n)
	}
}
