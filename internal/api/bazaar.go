package api

import (
	"context"
	"fmt"
	"time"

	"github.com/skydata/bazaar-data/internal/model"
)

// GetBazaar fetches the full bazaar product catalog and validates it
// against the catalog model. A payload that does not conform surfaces as
// the parser's *model.SchemaError.
func (c *Client) GetBazaar(ctx context.Context) (*model.Snapshot, error) {
	start := time.Now()

	body, err := c.doRequest(ctx, "/skyblock/bazaar")
	if err != nil {
		return nil, fmt.Errorf("get bazaar: %w", err)
	}

	snap, err := model.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("get bazaar: %w", err)
	}

	c.logger.Debug("fetched bazaar catalog",
		"success", snap.Success,
		"last_updated", snap.LastUpdated,
		"products", len(snap.Products),
		"bytes", len(body),
		"duration", time.Since(start),
	)

	return snap, nil
}
