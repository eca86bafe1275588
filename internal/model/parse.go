package model

import (
	"encoding/json"
	"fmt"

	"github.com/skydata/bazaar-data/internal/fixed"
)

// SchemaError reports a payload that does not conform to the bazaar wire
// shape: a required field is absent or of the wrong JSON type.
type SchemaError struct {
	Path  string // dotted path to the offending field, e.g. products["INK_SAC"].quick_status.sellPrice
	Cause error  // underlying decode error, nil for a plain missing field
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("schema: %s: missing required field", e.Path)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Wire mirrors with pointer fields so absence is distinguishable from the
// zero value. The feed has never been observed omitting any of these, so
// all are required.
type wireSnapshot struct {
	Success     *bool                  `json:"success"`
	LastUpdated *uint64                `json:"lastUpdated"`
	Products    map[string]wireProduct `json:"products"`
}

type wireProduct struct {
	ProductID   *string          `json:"product_id"`
	SellSummary *[]wireOrder     `json:"sell_summary"`
	BuySummary  *[]wireOrder     `json:"buy_summary"`
	QuickStatus *wireQuickStatus `json:"quick_status"`
}

type wireOrder struct {
	Amount       *uint64      `json:"amount"`
	PricePerUnit *fixed.Point `json:"pricePerUnit"`
	Orders       *uint32      `json:"orders"`
}

type wireQuickStatus struct {
	ProductID      *string  `json:"productId"`
	SellPrice      *float64 `json:"sellPrice"`
	SellVolume     *uint64  `json:"sellVolume"`
	SellMovingWeek *uint64  `json:"sellMovingWeek"`
	SellOrders     *uint32  `json:"sellOrders"`
	BuyPrice       *float64 `json:"buyPrice"`
	BuyVolume      *uint64  `json:"buyVolume"`
	BuyMovingWeek  *uint64  `json:"buyMovingWeek"`
	BuyOrders      *uint32  `json:"buyOrders"`
}

// Parse decodes and validates a raw bazaar payload. The fixed.Point
// conversion applies to the order-level pricePerUnit field and nowhere
// else. Values are trusted as-is, even when implausible; the only checks
// are shape checks.
func Parse(data []byte) (*Snapshot, error) {
	var w wireSnapshot
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &SchemaError{Path: "$", Cause: err}
	}

	if w.Success == nil {
		return nil, &SchemaError{Path: "success"}
	}
	if w.LastUpdated == nil {
		return nil, &SchemaError{Path: "lastUpdated"}
	}
	if w.Products == nil {
		return nil, &SchemaError{Path: "products"}
	}

	snap := &Snapshot{
		Success:     *w.Success,
		LastUpdated: *w.LastUpdated,
		Products:    make(map[string]Product, len(w.Products)),
	}

	for key, wp := range w.Products {
		p, err := wp.validate(fmt.Sprintf("products[%q]", key))
		if err != nil {
			return nil, err
		}
		snap.Products[key] = p
	}

	return snap, nil
}

func (wp wireProduct) validate(path string) (Product, error) {
	if wp.ProductID == nil {
		return Product{}, &SchemaError{Path: path + ".product_id"}
	}
	if wp.SellSummary == nil {
		return Product{}, &SchemaError{Path: path + ".sell_summary"}
	}
	if wp.BuySummary == nil {
		return Product{}, &SchemaError{Path: path + ".buy_summary"}
	}
	if wp.QuickStatus == nil {
		return Product{}, &SchemaError{Path: path + ".quick_status"}
	}

	sell, err := validateLevels(*wp.SellSummary, path+".sell_summary")
	if err != nil {
		return Product{}, err
	}
	buy, err := validateLevels(*wp.BuySummary, path+".buy_summary")
	if err != nil {
		return Product{}, err
	}
	qs, err := wp.QuickStatus.validate(path + ".quick_status")
	if err != nil {
		return Product{}, err
	}

	return Product{
		ProductID:   *wp.ProductID,
		SellSummary: sell,
		BuySummary:  buy,
		QuickStatus: qs,
	}, nil
}

func validateLevels(wire []wireOrder, path string) ([]OrderLevel, error) {
	levels := make([]OrderLevel, 0, len(wire))
	for i, wo := range wire {
		at := fmt.Sprintf("%s[%d]", path, i)
		if wo.Amount == nil {
			return nil, &SchemaError{Path: at + ".amount"}
		}
		if wo.PricePerUnit == nil {
			return nil, &SchemaError{Path: at + ".pricePerUnit"}
		}
		if wo.Orders == nil {
			return nil, &SchemaError{Path: at + ".orders"}
		}
		levels = append(levels, OrderLevel{
			Amount:       *wo.Amount,
			PricePerUnit: *wo.PricePerUnit,
			Orders:       *wo.Orders,
		})
	}
	return levels, nil
}

func (wq *wireQuickStatus) validate(path string) (QuickStatus, error) {
	switch {
	case wq.ProductID == nil:
		return QuickStatus{}, &SchemaError{Path: path + ".productId"}
	case wq.SellPrice == nil:
		return QuickStatus{}, &SchemaError{Path: path + ".sellPrice"}
	case wq.SellVolume == nil:
		return QuickStatus{}, &SchemaError{Path: path + ".sellVolume"}
	case wq.SellMovingWeek == nil:
		return QuickStatus{}, &SchemaError{Path: path + ".sellMovingWeek"}
	case wq.SellOrders == nil:
		return QuickStatus{}, &SchemaError{Path: path + ".sellOrders"}
	case wq.BuyPrice == nil:
		return QuickStatus{}, &SchemaError{Path: path + ".buyPrice"}
	case wq.BuyVolume == nil:
		return QuickStatus{}, &SchemaError{Path: path + ".buyVolume"}
	case wq.BuyMovingWeek == nil:
		return QuickStatus{}, &SchemaError{Path: path + ".buyMovingWeek"}
	case wq.BuyOrders == nil:
		return QuickStatus{}, &SchemaError{Path: path + ".buyOrders"}
	}

	return QuickStatus{
		ProductID:      *wq.ProductID,
		SellPrice:      *wq.SellPrice,
		SellVolume:     *wq.SellVolume,
		SellMovingWeek: *wq.SellMovingWeek,
		SellOrders:     *wq.SellOrders,
		BuyPrice:       *wq.BuyPrice,
		BuyVolume:      *wq.BuyVolume,
		BuyMovingWeek:  *wq.BuyMovingWeek,
		BuyOrders:      *wq.BuyOrders,
	}, nil
}
