/*
Package domain contains the core domain models for the asciiwalk path follower.

It defines the vocabulary shared by the walker and every adapter: the character grid,
positions and directions on it, the closed set of path indicators, and the result of a
walk. This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Grid: The parsed map, rows of runes that may be ragged.
  - Position / Direction: Coordinates on the grid and the four orthogonal headings.
  - Status: The walk lifecycle (uninitiated, walking, terminated).
  - Result: The letters and characters collected by a finished walk.
*/
package domain
