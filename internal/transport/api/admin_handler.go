package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/service"
	"github.com/fsdevblog/ppob-ledger/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AdminHandler struct {
	depositService AdminDepositServicer
	ledgerService  LedgerServicer
}

func NewAdminHandler(depositService AdminDepositServicer, ledgerService LedgerServicer) *AdminHandler {
	return &AdminHandler{
		depositService: depositService,
		ledgerService:  ledgerService,
	}
}

type ChangeDepositStatusParams struct {
	Status        string `binding:"required,deposit_status" json:"status"`
	AdjustBalance bool   `json:"adjustBalance"`
}

// ChangeDepositStatus POST RouteGroup + AdminDepositStatusRoute. Ручная смена статуса депозита.
// Ответ содержит сообщение для оператора (флеш).
func (h *AdminHandler) ChangeDepositStatus(c *gin.Context) {
	depositID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var params ChangeDepositStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.depositService.ChangeStatus(ctx, service.ChangeDepositStatusArgs{
		DepositID:     depositID,
		Status:        domain.DepositStatusType(params.Status),
		AdjustBalance: params.AdjustBalance,
		AdminID:       c.GetInt64(middlewares.CurrentAdminIDKey),
		AdminUsername: c.GetString(middlewares.CurrentAdminUsernameKey),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStatusUnchanged):
			_ = c.AbortWithError(http.StatusConflict, errors.New("deposit already has this status")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			_ = c.AbortWithError(http.StatusNotFound, errors.New("deposit not found")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrInvalidStatus):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, domain.ErrInvalidStatus).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": res.Message()})
}

type LedgerBreakResponse struct {
	MutationID    int64 `json:"mutationId"`
	ExpectedAfter int64 `json:"expectedAfter"`
	BalanceBefore int64 `json:"balanceBefore"`
	BalanceAfter  int64 `json:"balanceAfter"`
}

type ReconcileResponse struct {
	UserID          int64                 `json:"userId"`
	StoredBalance   int64                 `json:"storedBalance"`
	ReplayedBalance int64                 `json:"replayedBalance"`
	Drift           int64                 `json:"drift"`
	MutationCount   int                   `json:"mutationCount"`
	Consistent      bool                  `json:"consistent"`
	Breaks          []LedgerBreakResponse `json:"breaks"`
}

// Reconcile GET RouteGroup + AdminReconcileRoute. Сверка баланса юзера с журналом.
func (h *AdminHandler) Reconcile(c *gin.Context) {
	userID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.ledgerService.Reconcile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, errors.New("user not found")).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	breaks := make([]LedgerBreakResponse, len(report.Breaks))
	for i, b := range report.Breaks {
		breaks[i] = LedgerBreakResponse{
			MutationID:    b.MutationID,
			ExpectedAfter: b.ExpectedAfter,
			BalanceBefore: b.BalanceBefore,
			BalanceAfter:  b.BalanceAfter,
		}
	}
	c.JSON(http.StatusOK, ReconcileResponse{
		UserID:          report.UserID,
		StoredBalance:   report.StoredBalance,
		ReplayedBalance: report.ReplayedBalance,
		Drift:           report.Drift,
		MutationCount:   report.MutationCount,
		Consistent:      report.Consistent(),
		Breaks:          breaks,
	})
}

type MutationResponse struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	Amount        int64     `json:"amount"`
	Type          string    `json:"type"`
	BalanceBefore int64     `json:"balanceBefore"`
	BalanceAfter  int64     `json:"balanceAfter"`
	RefID         string    `json:"refId"`
	RefType       string    `json:"refType"`
	Name          string    `json:"name"`
	Notes         string    `json:"notes,omitempty"`
}

// Mutations GET RouteGroup + AdminMutationsRoute. Журнал баланса юзера, от новых к старым.
// Параметр limit необязательный.
func (h *AdminHandler) Mutations(c *gin.Context) {
	userID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var limit uint64
	if raw := c.Query("limit"); raw != "" {
		var parseErr error
		if limit, parseErr = strconv.ParseUint(raw, 10, 32); parseErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid limit")).SetType(gin.ErrorTypePublic)
			return
		}
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	mutations, err := h.ledgerService.History(ctx, userID, uint(limit))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	resp := make([]MutationResponse, len(mutations))
	for i, m := range mutations {
		resp[i] = MutationResponse{
			ID:            m.ID,
			CreatedAt:     m.CreatedAt,
			Amount:        m.Amount,
			Type:          string(m.Type),
			BalanceBefore: m.BalanceBefore,
			BalanceAfter:  m.BalanceAfter,
			RefID:         m.RefID,
			RefType:       string(m.RefType),
			Name:          m.Name,
			Notes:         m.Notes,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// int64Param разбирает положительный id из пути. При ошибке прерывает запрос с 400.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid "+name)).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}
