// Package model defines the typed representation of the Hypixel SkyBlock
// bazaar payload and its strict parser.
//
// Conventions:
//   - Field names and json tags mirror the feed's wire shape exactly
//     (mixed snake_case and camelCase, as upstream emits it)
//   - Order-book unit prices are fixed.Point; quick-status prices stay
//     native float64
//   - Every wire field is required: Parse fails with *SchemaError when one
//     is absent or mistyped, and performs no clamping or range validation
package model
