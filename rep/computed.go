// This file contains the types describing computed / derived data, in the
// same spirit as the teacher's Computed: values downstream tooling wants
// that aren't themselves raw replay data.

package rep

import "time"

// Computed contains computed, derived data from other parts of the
// replay.
type Computed struct {
	// FrameCount is len(Replay.Frames).
	FrameCount int

	// Duration is the sum of every frame's Delta.
	Duration time.Duration

	// ActorCountByObjectName counts, across the whole replay, how many
	// actors were created for each object name (an actor ID reused after
	// deletion counts once per creation).
	ActorCountByObjectName map[string]int
}

// Compute derives r.Computed from r.Frames. It is
// idempotent and safe to call more than once.
func (r *Replay) Compute() {
	c := &Computed{ActorCountByObjectName: map[string]int{}}

	c.FrameCount = len(r.Frames)
	for _, f := range r.Frames {
		c.Duration += time.Duration(f.Delta * float32(time.Second))
		for _, na := range f.New {
			c.ActorCountByObjectName[na.ObjectName]++
		}
	}

	r.Computed = c
}
