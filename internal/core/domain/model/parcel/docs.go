// Package parcel provides the Parcel aggregate root and its delivery state
// machine.
//
// The package includes:
//   - Parcel: the aggregate root owning three independent status axes
//     (parcelStatus, paymentStatus, deliveryStatus), the assigned rider
//     snapshot, and an append-only transition history
//   - ParcelStatus, PaymentStatus, DeliveryStatus: status value objects;
//     DeliveryStatus enforces the fixed transition graph
//
// Key business rules:
//   - Delivery status follows Not Dispatched -> rider_assigned -> in_transit
//     -> delivered; nothing else
//   - The first edge is reserved for the rider-assignment operation, which
//     also denormalizes the rider snapshot and marks the parcel paid
//   - A parcel bound to one rider cannot be re-bound to a different rider
//   - Every successful transition appends exactly one history entry
//   - Delivery earnings are credited at most once per parcel
package parcel
