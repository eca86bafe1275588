// Package archive writes each snapshot's quick-status rows to Postgres.
//
// This is an optional side channel next to the JSON snapshot store: one
// row per product per fetch into bazaar_quick_status, append-only with
// ON CONFLICT DO NOTHING on (product_id, last_updated), so re-running
// against an unchanged feed is harmless. The run shape is one-shot, so
// the writer inserts synchronously instead of batching in the background.
package archive
