// Package gateway разбирает и проверяет колбэки платежных шлюзов. У каждого шлюза своя структура
// payload, свой алгоритм подписи и свой словарь статусов, который явно приводится к domain.GatewayOutcome.
package gateway

import (
	"crypto/hmac"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Payload сырой колбэк: тело запроса без изменений (подпись считается по байтам) и заголовки.
type Payload struct {
	Body   []byte
	Header http.Header
}

type Gateway interface {
	Name() domain.ProviderName
	// Parse проверяет подпись и приводит колбэк к общему виду. Ошибки: domain.ErrInvalidPayload,
	// domain.ErrInvalidSignature.
	Parse(p Payload) (*domain.GatewayCallback, error)
}

type Config struct {
	TripayPrivateKey   string
	DuitkuMerchantCode string
	DuitkuAPIKey       string
	MidtransServerKey  string
}

type Registry struct {
	gateways map[domain.ProviderName]Gateway
}

func NewRegistry(gateways ...Gateway) *Registry {
	r := &Registry{gateways: make(map[domain.ProviderName]Gateway, len(gateways))}
	for _, g := range gateways {
		r.gateways[g.Name()] = g
	}
	return r
}

// NewRegistryFromConfig регистрирует только шлюзы с заданным секретом. Колбэк шлюза без секрета
// отклоняется как domain.ErrUnknownProvider: проверять подпись пустым ключом нельзя.
func NewRegistryFromConfig(conf Config) *Registry {
	var gateways []Gateway
	if conf.TripayPrivateKey != "" {
		gateways = append(gateways, NewTripay(conf.TripayPrivateKey))
	}
	if conf.DuitkuMerchantCode != "" && conf.DuitkuAPIKey != "" {
		gateways = append(gateways, NewDuitku(conf.DuitkuMerchantCode, conf.DuitkuAPIKey))
	}
	if conf.MidtransServerKey != "" {
		gateways = append(gateways, NewMidtrans(conf.MidtransServerKey))
	}
	return NewRegistry(gateways...)
}

// Lookup ищет шлюз по имени без учета регистра (в пути колбэка имя обычно в нижнем регистре).
func (r *Registry) Lookup(provider string) (Gateway, error) {
	g, ok := r.gateways[domain.ProviderName(strings.ToUpper(provider))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, provider)
	}
	return g, nil
}

func (r *Registry) Parse(provider string, p Payload) (*domain.GatewayCallback, error) {
	g, err := r.Lookup(provider)
	if err != nil {
		return nil, err
	}
	return g.Parse(p) //nolint:wrapcheck
}

// equalSignature сравнивает hex-подписи за время, не зависящее от позиции первого расхождения.
// Регистр hex не учитывается.
func equalSignature(provided, expected string) bool {
	return hmac.Equal([]byte(strings.ToLower(provided)), []byte(expected))
}

// parseWholeAmount разбирает денежную строку шлюза ("50000", "50000.00") в целое число минимальных единиц.
// Дробная часть допускается только нулевая.
func parseWholeAmount(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: amount `%s`: %s", domain.ErrInvalidPayload, raw, err.Error())
	}
	if !d.IsInteger() || d.IsNegative() || !d.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: amount `%s` is not a whole non-negative value", domain.ErrInvalidPayload, raw)
	}
	return d.IntPart(), nil
}
