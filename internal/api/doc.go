// Package api provides the Hypixel REST client used to fetch the bazaar
// catalog.
//
// Endpoint: https://api.hypixel.net/v2/skyblock/bazaar (no auth required;
// an API key raises the rate limit and is sent via the API-Key header when
// configured).
//
// The fetch is one blocking GET per call. There is deliberately no retry
// or backoff layer; a failed fetch surfaces immediately and the run aborts.
// The request timeout lives here, at the collaborator boundary.
package api
