// Package rider provides the Rider aggregate root for onboarding, approval,
// and delivery exclusivity.
//
// Key business rules:
//   - Applications start pending and move to approved, rejected, or deactivate
//   - A rider carries at most one active delivery at a time; the
//     currentDelivery back-reference is set at assignment and cleared exactly
//     when the parcel is delivered
package rider
