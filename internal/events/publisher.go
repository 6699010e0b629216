// Package events публикует события журнала баланса в redis pub/sub для внешних подписчиков
// (уведомления, кеш баланса витрины).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/redis/go-redis/v9"
)

const BalanceMutationsChannel = "balance_mutations"

// RedisPublisher часть redis.UniversalClient, используемая публикатором.
type RedisPublisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

type BalanceMutationEvent struct {
	MutationID    int64               `json:"mutationId"`
	UserID        int64               `json:"userId"`
	Amount        int64               `json:"amount"`
	Type          domain.MutationType `json:"type"`
	BalanceBefore int64               `json:"balanceBefore"`
	BalanceAfter  int64               `json:"balanceAfter"`
	RefID         string              `json:"refId"`
	RefType       domain.RefType      `json:"refType"`
	CreatedAt     time.Time           `json:"createdAt"`
}

type Publisher struct {
	rdb RedisPublisher
}

func NewPublisher(rdb RedisPublisher) *Publisher {
	return &Publisher{rdb: rdb}
}

func (p *Publisher) PublishBalanceMutation(ctx context.Context, m domain.BalanceMutation) error {
	payload, err := json.Marshal(BalanceMutationEvent{
		MutationID:    m.ID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Type:          m.Type,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		RefID:         m.RefID,
		RefType:       m.RefType,
		CreatedAt:     m.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal balance mutation event: %w", err)
	}
	if pubErr := p.rdb.Publish(ctx, BalanceMutationsChannel, payload).Err(); pubErr != nil {
		return fmt.Errorf("publish balance mutation %d: %w", m.ID, pubErr)
	}
	return nil
}
