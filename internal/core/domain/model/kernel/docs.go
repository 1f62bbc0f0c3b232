// Package kernel provides shared value objects used across all domain aggregates.
//
// The package currently contains:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid
//
// Kernel types carry no business behavior of their own; they exist so that
// aggregates in different packages can share identity semantics without
// depending on each other.
package kernel
