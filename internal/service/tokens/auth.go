package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired  = errors.New("token expired")
	ErrInvalidClaims = errors.New("invalid claims")
)

const adminIssuer = "ppob-ledger/admin"

// AdminClaims токен оператора. ID и Username попадают в примечания ручных корректировок баланса.
type AdminClaims struct {
	jwt.RegisteredClaims
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func GenerateAdminJWT(id int64, username string, expire time.Duration, key []byte) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    adminIssuer,
			Subject:   strconv.FormatInt(id, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
		ID:       id,
		Username: username,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating admin jwt token: %w", err)
	}
	return token, nil
}

// ValidateAdminJWT проверяет подпись, срок действия и издателя токена. Для просроченного токена
// возвращает ErrTokenExpired.
func ValidateAdminJWT(tokenString string, key []byte) (*AdminClaims, error) {
	token, err := validateJWT(tokenString, new(AdminClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating admin jwt token: %w", err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || claims.ID == 0 {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("signing jwt token: %w", err)
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer(adminIssuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
