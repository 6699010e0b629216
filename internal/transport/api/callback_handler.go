package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/gateway"
	"github.com/gin-gonic/gin"
)

// maxCallbackBodyBytes колбэки шлюзов укладываются в несколько килобайт.
const maxCallbackBodyBytes = 64 << 10

// CallbackHandler принимает колбэки шлюзов. refField - имя поля с идентификатором записи в ответе
// (depositId или orderId).
type CallbackHandler struct {
	service  CallbackServicer
	refField string
}

func NewCallbackHandler(service CallbackServicer, refField string) *CallbackHandler {
	return &CallbackHandler{
		service:  service,
		refField: refField,
	}
}

// Handle POST RouteGroup + DepositCallbackRoute | OrderCallbackRoute. Подпись считается по сырому телу,
// поэтому тело читается целиком, без биндинга.
func (h *CallbackHandler) Handle(c *gin.Context) {
	body, readErr := io.ReadAll(io.LimitReader(c.Request.Body, maxCallbackBodyBytes+1))
	if readErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, readErr).SetType(gin.ErrorTypePrivate)
		return
	}
	if len(body) > maxCallbackBodyBytes {
		_ = c.AbortWithError(http.StatusRequestEntityTooLarge, errors.New("callback payload too large")).
			SetType(gin.ErrorTypePublic)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.service.Handle(ctx, c.Param("provider"), gateway.Payload{
		Body:   body,
		Header: c.Request.Header,
	})
	if err != nil {
		status, public := callbackErrorStatus(err)
		if public != nil {
			_ = c.AbortWithError(status, public).SetType(gin.ErrorTypePublic)
			// полная ошибка для лога, клиенту уходит первая.
			_ = c.Error(err)
			return
		}
		_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePrivate)
		return
	}

	status := res.Status
	if status == "" {
		status = string(res.Disposition)
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			h.refField:    res.Reference,
			"status":      status,
			"disposition": res.Disposition,
		},
	})
}

// callbackErrorStatus http статус для ошибки обработки колбэка и текст, который можно показать шлюзу.
// nil вместо текста - ошибка внутренняя.
func callbackErrorStatus(err error) (int, error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSignature):
		return http.StatusUnauthorized, domain.ErrInvalidSignature
	case errors.Is(err, domain.ErrInvalidPayload):
		return http.StatusBadRequest, domain.ErrInvalidPayload
	case errors.Is(err, domain.ErrUnknownProvider):
		return http.StatusNotFound, domain.ErrUnknownProvider
	case errors.Is(err, domain.ErrProviderMismatch):
		return http.StatusConflict, domain.ErrProviderMismatch
	case errors.Is(err, domain.ErrAmountMismatch):
		return http.StatusConflict, domain.ErrAmountMismatch
	default:
		return http.StatusInternalServerError, nil
	}
}
