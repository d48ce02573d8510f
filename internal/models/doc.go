// Package models defines the core domain models for ku2cash.
//
// # Collections
//
// The tracker keeps four persisted collections:
//   - Member: a participant in the savings circle
//   - Payment: one recorded contribution (append-only ledger)
//   - ScheduleEntry: one position in the payout rotation
//   - Settings: the three scalars that parameterize balances and dates
//
// # Design Principles
//
// 1. **Snapshot shape is the storage shape**: the JSON tags on these structs
// are exactly what gets written to the snapshot store, so the models double
// as the persistence format.
//
// 2. **Denormalized names**: Payment.MemberName and ScheduleEntry.Member are
// cached projections of the registry, not joins. A rename fans out to both;
// historical payments therefore show the member's latest name, not the name
// at payment time.
//
// 3. **Integer ids**: member ids are small monotonically increasing integers
// assigned at creation and never reused. Payment ids are time-derived.
package models
