/*
Package asciiwalk follows the path drawn on an ASCII-art map and reports what it passes.

A map is plain text: the path starts at '@', runs along '-' and '|', turns at '+',
passes uppercase letters, and ends at 'x'. Walking it yields two strings: the distinct
letters in first-visit order, and every character stepped on, repeats included.

# Concept

The walk is a small deterministic state machine. At each cell the walker keeps its
heading if it can, otherwise it turns (LEFT, UP, RIGHT, DOWN, in that order), and it
never reverses. A letter on a crossing is collected once but its character is logged
on every visit. The walk ends when no neighbouring cell is on the path.

# Usage

The simplest entry point is Follow:

	letters, characters, ok := asciiwalk.Follow(raw)
	if !ok {
		log.Fatal("map has no start marker")
	}

For caching, hooks, logging and bounded walks, build an Engine:

	eng := asciiwalk.New(
		asciiwalk.WithStore(memory.NewStore()),
		asciiwalk.WithMaxSteps(10_000),
	)
	res, err := eng.Walk(ctx, raw)
*/
package asciiwalk
