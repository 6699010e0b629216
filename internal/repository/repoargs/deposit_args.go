package repoargs

import "github.com/fsdevblog/ppob-ledger/internal/domain"

// UpdateDepositStatus переход статуса депозита, применяется только если текущий статус равен From.
type UpdateDepositStatus struct {
	ID   int64
	From domain.DepositStatusType
	To   domain.DepositStatusType
}
