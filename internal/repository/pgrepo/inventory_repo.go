package pgrepo

import (
	"context"

	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

// InventoryRepository счетчики склада: остаток товара и число использований офферов.
type InventoryRepository struct {
	conn uow.DBTX
}

func NewInventoryRepository(conn uow.DBTX) *InventoryRepository {
	return &InventoryRepository{conn: conn}
}

// IncrementStock увеличивает остаток товара на 1. UPDATE сам берет блокировку строки, поэтому
// чтение-изменение-запись атомарно. Если товара нет, возвращает domain.ErrRecordNotFound.
func (i *InventoryRepository) IncrementStock(ctx context.Context, productID int64) error {
	tag, err := i.conn.Exec(ctx, "UPDATE products SET stock = stock + 1 WHERE id = $1", productID)
	if err != nil {
		return convertErr(err, "incrementing stock of product %d", productID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "incrementing stock of product %d", productID)
	}
	return nil
}

// BatchDecrementOfferUsage уменьшает usage_count на 1 для каждого элемента offerIDs отдельным запросом
// в одном batch. Один и тот же оффер, встреченный дважды, уменьшается дважды. Результат каждого
// запроса передается в fn.
func (i *InventoryRepository) BatchDecrementOfferUsage(
	ctx context.Context,
	offerIDs []int64,
	fn repoargs.OfferUsageBatchQueryRow,
) error {
	if len(offerIDs) == 0 {
		return nil
	}
	batch := new(pgx.Batch)
	for _, id := range offerIDs {
		batch.Queue("UPDATE offers SET usage_count = usage_count - 1 WHERE id = $1", id)
	}
	br := i.conn.SendBatch(ctx, batch)

	for idx, id := range offerIDs {
		tag, err := br.Exec()
		switch {
		case err != nil:
			fn(idx, convertErr(err, "decrementing usage of offer %d", id))
		case tag.RowsAffected() == 0:
			fn(idx, convertErr(pgx.ErrNoRows, "decrementing usage of offer %d", id))
		default:
			fn(idx, nil)
		}
	}
	if err := br.Close(); err != nil {
		return convertErr(err, "closing offer usage batch")
	}
	return nil
}
