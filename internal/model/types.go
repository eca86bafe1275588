package model

import "github.com/skydata/bazaar-data/internal/fixed"

// Snapshot is one complete capture of the bazaar feed's response. It is
// immutable after Parse: written once to the snapshot store and read back
// by the exporter, never mutated in memory.
type Snapshot struct {
	// Success reports whether the upstream feed considered the payload good.
	Success bool `json:"success"`

	// LastUpdated is the feed-reported timestamp (milliseconds since epoch).
	LastUpdated uint64 `json:"lastUpdated"`

	// Products maps product id to its catalog entry. Key order is irrelevant.
	Products map[string]Product `json:"products"`
}

// Product is one bazaar product: its order-book summaries plus the feed's
// aggregate quick status.
type Product struct {
	// ProductID normally equals the product's map key in Snapshot.Products.
	// A mismatch is tolerated but nothing here relies on the equality.
	ProductID   string       `json:"product_id"`
	SellSummary []OrderLevel `json:"sell_summary"`
	BuySummary  []OrderLevel `json:"buy_summary"`
	QuickStatus QuickStatus  `json:"quick_status"`
}

// OrderLevel is one price tier of a sell or buy order book.
type OrderLevel struct {
	Amount       uint64      `json:"amount"` // highest seen upstream: 1186070
	PricePerUnit fixed.Point `json:"pricePerUnit"`
	Orders       uint32      `json:"orders"`
}

// QuickStatus holds the feed's aggregate market stats for a product.
//
// SellPrice and BuyPrice stay native float64 while OrderLevel prices are
// fixed.Point. The asymmetry is the feed's wire contract and is preserved
// as-is; do not unify.
type QuickStatus struct {
	ProductID      string  `json:"productId"`
	SellPrice      float64 `json:"sellPrice"`
	SellVolume     uint64  `json:"sellVolume"`     // highest seen: 1292216
	SellMovingWeek uint64  `json:"sellMovingWeek"` // highest seen: 188604293
	SellOrders     uint32  `json:"sellOrders"`     // highest seen: 202
	BuyPrice       float64 `json:"buyPrice"`
	BuyVolume      uint64  `json:"buyVolume"`      // highest seen: 11766801
	BuyMovingWeek  uint64  `json:"buyMovingWeek"`  // highest seen: 9205352
	BuyOrders      uint32  `json:"buyOrders"`      // highest seen: 270
}
