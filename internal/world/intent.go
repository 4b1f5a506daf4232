package world

// Intent is the latched movement state the input collaborator exposes.
// The simulation reads a snapshot once per tick and never writes it.
type Intent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
}

// Direction returns the normalized movement direction in controller space:
// X is strafe (right positive), Z is forward.
func (in Intent) Direction() Vec3 {
	return Vec3{
		X: b2f(in.Right) - b2f(in.Left),
		Z: b2f(in.Forward) - b2f(in.Backward),
	}.Normalize()
}

// Moving reports whether any directional key is held.
func (in Intent) Moving() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
