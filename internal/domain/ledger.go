package domain

import (
	"fmt"
	"math"
)

// MutationArgs данные новой записи журнала баланса.
type MutationArgs struct {
	UserID  int64
	Amount  int64 // знаковая сумма: > 0 для CREDIT, < 0 для DEBIT.
	Type    MutationType
	RefID   string
	RefType RefType
	Name    string
	Notes   string
}

// NewBalanceMutation строит запись журнала поверх текущего баланса balanceBefore.
// Гарантирует balance_after = balance_before + amount и соответствие знака суммы типу записи.
func NewBalanceMutation(balanceBefore int64, args MutationArgs) (*BalanceMutation, error) {
	if args.Amount == 0 {
		return nil, ErrZeroAmount
	}
	switch args.Type {
	case MutationCredit:
		if args.Amount < 0 {
			return nil, fmt.Errorf("%w: credit %d", ErrMutationSignMismatch, args.Amount)
		}
	case MutationDebit:
		if args.Amount > 0 {
			return nil, fmt.Errorf("%w: debit %d", ErrMutationSignMismatch, args.Amount)
		}
	default:
		return nil, fmt.Errorf("%w: unknown mutation type %q", ErrMutationSignMismatch, args.Type)
	}

	if (args.Amount > 0 && balanceBefore > math.MaxInt64-args.Amount) ||
		(args.Amount < 0 && balanceBefore < math.MinInt64-args.Amount) {
		return nil, ErrBalanceOverflow
	}

	return &BalanceMutation{
		UserID:        args.UserID,
		Amount:        args.Amount,
		Type:          args.Type,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceBefore + args.Amount,
		RefID:         args.RefID,
		RefType:       args.RefType,
		Name:          args.Name,
		Notes:         args.Notes,
	}, nil
}

// LedgerBreak запись журнала, не сходящаяся с накопленной суммой предыдущих записей.
type LedgerBreak struct {
	MutationID    int64
	ExpectedAfter int64
	BalanceBefore int64
	BalanceAfter  int64
}

type LedgerReplay struct {
	Balance int64
	Count   int
	Breaks  []LedgerBreak
}

// ReplayLedger проигрывает записи журнала в порядке создания и возвращает итоговый баланс вместе со списком
// записей, нарушающих цепочку (balance_before не равен сумме предыдущих, balance_after не равен
// balance_before + amount, или знак суммы не соответствует типу).
func ReplayLedger(mutations []BalanceMutation) LedgerReplay {
	var replay = LedgerReplay{Count: len(mutations)}
	for _, m := range mutations {
		expectedAfter := replay.Balance + m.Amount
		signOK := (m.Type == MutationCredit && m.Amount > 0) || (m.Type == MutationDebit && m.Amount < 0)
		if m.BalanceBefore != replay.Balance || m.BalanceAfter != expectedAfter || !signOK {
			replay.Breaks = append(replay.Breaks, LedgerBreak{
				MutationID:    m.ID,
				ExpectedAfter: expectedAfter,
				BalanceBefore: m.BalanceBefore,
				BalanceAfter:  m.BalanceAfter,
			})
		}
		replay.Balance = expectedAfter
	}
	return replay
}
