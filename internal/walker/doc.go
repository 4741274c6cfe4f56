/*
Package walker implements the path walking state machine at the heart of asciiwalk.

A Walker owns one parsed map and the state of one walk over it: the current position,
the facing direction, the characters stepped on and the waypoint letters collected.
Each step tries to keep going straight, then turns in the order LEFT, UP, RIGHT, DOWN,
and never reverses. The walk ends when no candidate cell is on the path.

	w := walker.New(raw)
	if err := w.Run(ctx); err != nil {
		return err
	}
	letters, ok := w.Letters()

A Walker is not safe for concurrent use. Create one per map.
*/
package walker
