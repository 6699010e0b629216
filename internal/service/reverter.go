package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

// Reverter возвращает зарезервированные при создании заказа остаток товара и использования офферов.
// Сам повторные вызовы не отсекает: вызывается только из перехода оплаты PENDING -> FAILED, который
// выполняется для заказа ровно один раз.
type Reverter struct {
	l *logrus.Entry
}

func NewReverter(l *logrus.Logger) *Reverter {
	return &Reverter{l: l.WithField("component", "reverter")}
}

// Revert выполняется внутри транзакции вызывающего кода: stock + 1 для товара из снимка заказа и
// usage_count - 1 для каждой строки offer_on_orders. Отсутствующий товар или оффер (удален из каталога)
// пропускается с предупреждением, остальные ошибки прерывают транзакцию.
func (r *Reverter) Revert(ctx context.Context, tx uow.TX, order *domain.Order) error {
	repo, repoErr := uow.GetAs[InventoryRepository](tx, uow.RepositoryName(repoargs.InventoryRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	log := r.l.WithField("order_id", order.OrderID)

	if order.ProductSnapshot.ProductID != 0 {
		if err := repo.IncrementStock(ctx, order.ProductSnapshot.ProductID); err != nil {
			if !errors.Is(err, domain.ErrRecordNotFound) {
				return fmt.Errorf("reverting stock of order `%s`: %w", order.OrderID, err)
			}
			log.WithField("product_id", order.ProductSnapshot.ProductID).
				Warn("product not found, stock is not reverted")
		}
	}

	if len(order.OfferOnOrders) == 0 {
		return nil
	}
	offerIDs := make([]int64, len(order.OfferOnOrders))
	for i, o := range order.OfferOnOrders {
		offerIDs[i] = o.OfferID
	}

	// offerErr хранит первую ошибку батча: после нее postgres отклоняет остальные запросы транзакции.
	var offerErr error
	batchErr := repo.BatchDecrementOfferUsage(ctx, offerIDs, func(i int, err error) {
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrRecordNotFound):
			log.WithField("offer_id", offerIDs[i]).Warn("offer not found, usage is not reverted")
		case offerErr == nil:
			offerErr = err
		}
	})
	if offerErr != nil {
		return fmt.Errorf("reverting offer usage of order `%s`: %w", order.OrderID, offerErr)
	}
	if batchErr != nil {
		return fmt.Errorf("reverting offer usage of order `%s`: %w", order.OrderID, batchErr)
	}
	return nil
}
