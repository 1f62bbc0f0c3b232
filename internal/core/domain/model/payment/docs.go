// Package payment holds the immutable payment record written after a
// gateway charge succeeds. Records are append-only; refunds and disputes
// are handled outside this system.
package payment
