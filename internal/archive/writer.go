package archive

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skydata/bazaar-data/internal/model"
)

// Writer inserts quick-status rows into the bazaar_quick_status table.
type Writer struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// Metrics holds the outcome of one archived snapshot.
type Metrics struct {
	Inserts   int64
	Conflicts int64
}

// quickStatusRow is one row of the bazaar_quick_status table. Unsigned
// wire counters land in Postgres bigint, hence the int64 narrowing.
type quickStatusRow struct {
	RunID          uuid.UUID
	LastUpdated    int64 // feed timestamp, milliseconds
	CapturedAt     int64 // gatherer receive time, microseconds
	ProductID      string
	SellPrice      float64
	SellVolume     int64
	SellMovingWeek int64
	SellOrders     int32
	BuyPrice       float64
	BuyVolume      int64
	BuyMovingWeek  int64
	BuyOrders      int32
}

// NewWriter creates a Writer on an established pool.
func NewWriter(db *pgxpool.Pool, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		db:     db,
		logger: logger,
	}
}

// WriteSnapshot inserts one row per product in snap, tagged with a fresh
// run id. Rows already present for the same (product_id, last_updated)
// count as conflicts, not errors.
func (w *Writer) WriteSnapshot(ctx context.Context, snap *model.Snapshot) (Metrics, error) {
	runID := uuid.New()
	rows := transform(runID, snap, time.Now().UnixMicro())
	if len(rows) == 0 {
		return Metrics{}, nil
	}

	start := time.Now()

	conflicts, err := w.batchInsert(ctx, rows)
	if err != nil {
		return Metrics{}, err
	}

	m := Metrics{
		Inserts:   int64(len(rows) - conflicts),
		Conflicts: int64(conflicts),
	}

	w.logger.Debug("archived quick status",
		"run_id", runID,
		"rows", len(rows),
		"conflicts", conflicts,
		"duration", time.Since(start),
	)

	return m, nil
}

// transform flattens a snapshot into archive rows.
func transform(runID uuid.UUID, snap *model.Snapshot, capturedAt int64) []quickStatusRow {
	rows := make([]quickStatusRow, 0, len(snap.Products))
	for id, product := range snap.Products {
		qs := product.QuickStatus
		rows = append(rows, quickStatusRow{
			RunID:          runID,
			LastUpdated:    int64(snap.LastUpdated),
			CapturedAt:     capturedAt,
			ProductID:      id,
			SellPrice:      qs.SellPrice,
			SellVolume:     int64(qs.SellVolume),
			SellMovingWeek: int64(qs.SellMovingWeek),
			SellOrders:     int32(qs.SellOrders),
			BuyPrice:       qs.BuyPrice,
			BuyVolume:      int64(qs.BuyVolume),
			BuyMovingWeek:  int64(qs.BuyMovingWeek),
			BuyOrders:      int32(qs.BuyOrders),
		})
	}
	return rows
}

// batchInsert inserts rows using pgx.Batch with ON CONFLICT DO NOTHING.
func (w *Writer) batchInsert(ctx context.Context, rows []quickStatusRow) (conflicts int, err error) {
	batch := &pgx.Batch{}
	for _, r := range rows {
		batch.Queue(`
			INSERT INTO bazaar_quick_status (
				run_id, last_updated, captured_at, product_id,
				sell_price, sell_volume, sell_moving_week, sell_orders,
				buy_price, buy_volume, buy_moving_week, buy_orders
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (product_id, last_updated) DO NOTHING
		`, r.RunID, r.LastUpdated, r.CapturedAt, r.ProductID,
			r.SellPrice, r.SellVolume, r.SellMovingWeek, r.SellOrders,
			r.BuyPrice, r.BuyVolume, r.BuyMovingWeek, r.BuyOrders)
	}

	results := w.db.SendBatch(ctx, batch)
	defer results.Close()

	for range rows {
		ct, err := results.Exec()
		if err != nil {
			return 0, err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	return conflicts, nil
}
