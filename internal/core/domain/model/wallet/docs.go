// Package wallet provides the Wallet aggregate root: a per-rider earnings
// ledger with an append-only transaction history and a cash-out queue.
//
// Key business rules:
//   - One wallet per rider, created lazily on first use
//   - Every transaction snapshots the balance after it was applied, so the
//     current balance is reconstructable by replaying the history from zero
//   - Cash-out requests are bounded to [500, 50000] units, cost a fixed fee
//     of 10 units deducted immediately, and earmark the requested principal
//     in the pending withdrawal queue until settlement
//   - totalWithdrawn reflects full requested amounts at request time; the
//     convention is documented on the Wallet type
package wallet
