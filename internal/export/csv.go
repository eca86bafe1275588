// Package export flattens a bazaar snapshot into the quick-status CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/skydata/bazaar-data/internal/model"
)

// header is the fixed column set: one data row per product, all values
// pulled from the product's quick status.
var header = []string{
	"product_id",
	"sell_price",
	"sell_volume",
	"buy_price",
	"buy_volume",
	"sell_orders",
	"buy_orders",
}

// Write overwrites path with the CSV derivation of snap.
//
// Row 1 is a metadata row, `last_updated,<millis>` padded to the full
// column count; row 2 is the header; then one row per product. Products
// come out in map iteration order, which Go randomizes per run — row
// order is explicitly not a stable property of the output.
func Write(path string, snap *model.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	w := csv.NewWriter(f)

	meta := make([]string, len(header))
	meta[0] = "last_updated"
	meta[1] = strconv.FormatUint(snap.LastUpdated, 10)
	if err := w.Write(meta); err != nil {
		f.Close()
		return fmt.Errorf("write metadata row: %w", err)
	}
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header row: %w", err)
	}

	for id, product := range snap.Products {
		if err := w.Write(productRow(id, product)); err != nil {
			f.Close()
			return fmt.Errorf("write row %s: %w", id, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}

	return nil
}

// productRow flattens one product's quick status. Prices are native
// floats on the wire, so they get plain decimal float formatting here,
// not fixed.Point rendering.
func productRow(id string, p model.Product) []string {
	qs := p.QuickStatus
	return []string{
		id,
		formatFloat(qs.SellPrice),
		strconv.FormatUint(qs.SellVolume, 10),
		formatFloat(qs.BuyPrice),
		strconv.FormatUint(qs.BuyVolume, 10),
		strconv.FormatUint(uint64(qs.SellOrders), 10),
		strconv.FormatUint(uint64(qs.BuyOrders), 10),
	}
}

// formatFloat renders the shortest decimal form without an exponent, so
// 4.2 stays "4.2" and large volumes stay plain digits.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
