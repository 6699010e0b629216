// Package queue ставит фоновые задачи в asynq.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	TypeOrderFulfill = "order:fulfill"

	fulfillMaxRetry = 3
)

type FulfillPayload struct {
	OrderID string `json:"orderId"`
}

// Enqueuer часть *asynq.Client, которая нужна для постановки задач.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Client struct {
	enq Enqueuer
}

func NewClient(enq Enqueuer) *Client {
	return &Client{enq: enq}
}

// NewFulfillTask задача выдачи заказа. TaskID детерминирован: повторная постановка того же заказа, пока
// задача хранится в asynq, отклоняется самим asynq.
func NewFulfillTask(orderID string) (*asynq.Task, error) {
	payload, err := json.Marshal(FulfillPayload{OrderID: orderID})
	if err != nil {
		return nil, fmt.Errorf("marshal fulfill payload: %w", err)
	}
	return asynq.NewTask(
		TypeOrderFulfill,
		payload,
		asynq.MaxRetry(fulfillMaxRetry),
		asynq.TaskID("fulfill:"+orderID),
	), nil
}

// EnqueueFulfillment ставит задачу выдачи заказа. Если задача с тем же id уже в очереди, это не ошибка.
func (c *Client) EnqueueFulfillment(ctx context.Context, orderID string) error {
	task, taskErr := NewFulfillTask(orderID)
	if taskErr != nil {
		return taskErr
	}
	if _, err := c.enq.EnqueueContext(ctx, task); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("enqueue fulfillment of order `%s`: %w", orderID, err)
	}
	return nil
}
