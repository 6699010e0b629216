package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/ppob-ledger/internal/service/tokens"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentAdminIDKey       = "currentAdminID"
	CurrentAdminUsernameKey = "currentAdminUsername"
)

// checkAuthorization извлекает токен из заголовка Authorization и проверяет его. Если токен не передан,
// вернется ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.AdminClaims, error) {
	tokenStr, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok || tokenStr == "" {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateAdminJWT(tokenStr, jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claims, nil
}

// AdminAuthRequired проверяет, что запрос сделан оператором. Записывает в контекст id (поле CurrentAdminIDKey)
// и юзернейм (поле CurrentAdminUsernameKey) оператора.
func AdminAuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			// причина отказа только в логе, клиент видит текст статуса.
			_ = c.AbortWithError(http.StatusUnauthorized, err).SetType(gin.ErrorTypePrivate)
			return
		}
		c.Set(CurrentAdminIDKey, claims.ID)
		c.Set(CurrentAdminUsernameKey, claims.Username)
		c.Next()
	}
}
