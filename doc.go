// Package stockfolio provides the types and functions to maintain a local
// list of stock purchase records. It is designed to be local-first: the user
// keeps full control over a small, human-readable file of purchase records.
//
// The core functionalities include:
//   - Record Validation: turning raw user input (ticker, purchase price,
//     date, amount) into a validated, immutable purchase record.
//   - Enrichment: attaching a live market quote and a derived gain
//     percentage to each record. A failed quote never prevents a record
//     from existing; it only degrades it.
//   - Portfolio Store: an ordered, index-addressed collection of enriched
//     records supporting append, delete-by-index and bulk load.
//   - Data Persistence: encoding and decoding the raw record fields to and
//     from a 4-field comma-separated flat file. Derived fields are never
//     persisted; they are recomputed on load.
//
// This package serves as the foundational logic for the `spc` command-line
// tool; the CLI is only a thin presentation adapter on top of it.
package stockfolio
