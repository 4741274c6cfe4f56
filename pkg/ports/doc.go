/*
Package ports defines the driven ports (interfaces) for the asciiwalk engine.

These interfaces decouple the engine facade from external implementations, allowing
walk results to be cached in memory, in Redis, or not at all.

# Key Interfaces

  - ResultStore: Persists walk results keyed by domain.MapKey.
  - Walker: The minimal engine surface consumed by transports (HTTP, MCP, CLI).
*/
package ports
