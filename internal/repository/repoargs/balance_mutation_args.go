package repoargs

import "github.com/fsdevblog/ppob-ledger/internal/domain"

type BalanceMutationCreate struct {
	UserID        int64
	Amount        int64
	Type          domain.MutationType
	BalanceBefore int64
	BalanceAfter  int64
	RefID         string
	RefType       domain.RefType
	Name          string
	Notes         string
}

func NewBalanceMutationCreate(m *domain.BalanceMutation) BalanceMutationCreate {
	return BalanceMutationCreate{
		UserID:        m.UserID,
		Amount:        m.Amount,
		Type:          m.Type,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		RefID:         m.RefID,
		RefType:       m.RefType,
		Name:          m.Name,
		Notes:         m.Notes,
	}
}
