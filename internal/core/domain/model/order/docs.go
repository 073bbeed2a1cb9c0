// Package order contains the root aggregate of the laundry fulfillment core.
//
// The Order aggregate owns the canonical status field and the legal
// transition table; the Station enum fixes the WASHING -> IRONING -> PACKING
// ordering through an exhaustive successor switch; Item lines form the
// manifest that station workers count against.
//
// All state-changing components (pickup/delivery assignment, the station
// pipeline, bypass resolution, the payment webhook, the unpaid sweep) mutate
// orders exclusively through the aggregate's methods, so an illegal
// transition can never be committed.
package order
