// Package episode models one packing run: a fixed catalog of shipments that a
// driver places, one action at a time, into a fresh container.
//
// An Episode is the aggregate root. It owns the container, remembers which
// catalog entries are still available and records every accepted placement so
// the whole run can be persisted and replayed.
//
// Lifecycle:
//
//	Running ──Step──> Running ──Step──> Terminated
//	   ^                                     │
//	   └──────────────── Reset ──────────────┘
//
// An episode terminates as soon as every shipment is packed or the container
// becomes invalid. Steps on a terminated episode are rejected until Reset.
package episode
