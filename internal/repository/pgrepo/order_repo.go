package pgrepo

import (
	"context"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, updated_at, order_id, user_id, payment_status, order_status,
	product_snapshot, payment_snapshot, fulfillment_enqueued_at`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// FindForUpdate ищет заказ по order_id в статусе оплаты paymentStatus, блокирует строку и подгружает
// offer_on_orders. Если заказ уже оплачен/отменен или не существует, возвращает domain.ErrRecordNotFound.
func (o *OrderRepository) FindForUpdate(
	ctx context.Context,
	orderID string,
	paymentStatus domain.PaymentStatusType,
) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE order_id = $1 AND payment_status = $2 FOR UPDATE",
		orderID, paymentStatus,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order `%s` with payment status %s", orderID, paymentStatus)
	}

	offers, offersErr := o.offersOnOrder(ctx, order.ID)
	if offersErr != nil {
		return nil, offersErr
	}
	order.OfferOnOrders = offers
	return order, nil
}

// UpdatePayment меняет статус оплаты заказа, только если текущий статус равен args.From. Если строка не
// обновилась, возвращает domain.ErrRecordNotFound.
func (o *OrderRepository) UpdatePayment(ctx context.Context, args repoargs.UpdateOrderPayment) (*domain.Order, error) {
	var orderStatus *string
	if args.OrderStatus != nil {
		s := string(*args.OrderStatus)
		orderStatus = &s
	}
	row := o.conn.QueryRow(ctx,
		`UPDATE orders
		SET payment_status = $3,
			order_status = CASE WHEN $4::text IS NULL THEN order_status ELSE $4::text END,
			updated_at = now()
		WHERE id = $1 AND payment_status = $2
		RETURNING `+orderColumns,
		args.ID, args.From, args.To, orderStatus,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating order %d payment %s -> %s", args.ID, args.From, args.To)
	}
	return order, nil
}

// GetPendingFulfillment возвращает оплаченные заказы, задача выдачи по которым так и не попала в очередь.
// Сортировка по времени оплаты по возрастанию.
func (o *OrderRepository) GetPendingFulfillment(
	ctx context.Context,
	query repoargs.PendingFulfillmentQuery,
) ([]domain.Order, error) {
	limit, limitErr := safeConvertUintToInt32(query.Limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "converting limit to int32")
	}
	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		WHERE payment_status = 'SUCCESS' AND order_status = 'PENDING' AND fulfillment_enqueued_at IS NULL
			AND updated_at < $1
		ORDER BY updated_at
		LIMIT $2`,
		query.PaidUntil, limit,
	)
	if err != nil {
		return nil, convertErr(err, "getting orders pending fulfillment")
	}
	orders, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		order, scanErr := scanOrder(row)
		if scanErr != nil {
			return domain.Order{}, scanErr
		}
		return *order, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning orders pending fulfillment")
	}
	return orders, nil
}

func (o *OrderRepository) MarkFulfillmentEnqueued(ctx context.Context, ids []int64) error {
	_, err := o.conn.Exec(ctx,
		"UPDATE orders SET fulfillment_enqueued_at = now() WHERE id = ANY($1) AND fulfillment_enqueued_at IS NULL",
		ids,
	)
	if err != nil {
		return convertErr(err, "marking fulfillment enqueued for orders `%v`", ids)
	}
	return nil
}

func (o *OrderRepository) offersOnOrder(ctx context.Context, orderID int64) ([]domain.OfferOnOrder, error) {
	rows, err := o.conn.Query(ctx,
		"SELECT id, offer_id FROM offer_on_orders WHERE order_id = $1 ORDER BY id",
		orderID,
	)
	if err != nil {
		return nil, convertErr(err, "getting offers on order %d", orderID)
	}
	offers, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OfferOnOrder, error) {
		var offer domain.OfferOnOrder
		scanErr := row.Scan(&offer.ID, &offer.OfferID)
		return offer, scanErr //nolint:wrapcheck
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning offers on order %d", orderID)
	}
	return offers, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order       domain.Order
		orderStatus *string
	)
	err := row.Scan(
		&order.ID, &order.CreatedAt, &order.UpdatedAt, &order.OrderID, &order.UserID, &order.PaymentStatus,
		&orderStatus, &order.ProductSnapshot, &order.PaymentSnapshot, &order.FulfillmentEnqueuedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if orderStatus != nil {
		order.OrderStatus = domain.OrderStatusType(*orderStatus)
	}
	return &order, nil
}
