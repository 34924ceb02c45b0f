// This file contains the Replay type and its top-level components, which
// together model a complete decoded Rocket League replay.

package rep

// Replay models a decoded Rocket League replay.
type Replay struct {
	// Header holds the replay's header properties, including the version
	// triple the network-stream decoder is gated by.
	Header *Header

	// Footer holds the object/name/class tables the network-stream
	// decoder resolves attribute dispatch against.
	Footer *Footer

	// Frames is the decoded frame sequence: one entry per network-stream
	// frame, in stream order.
	Frames []*Frame

	// Computed contains data that is computed / derived from the other
	// fields, populated by calling Compute.
	Computed *Computed
}
