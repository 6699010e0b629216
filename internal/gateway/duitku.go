package gateway

import (
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"fmt"
	"net/url"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
)

type Duitku struct {
	merchantCode string
	apiKey       string
}

func NewDuitku(merchantCode, apiKey string) *Duitku {
	return &Duitku{merchantCode: merchantCode, apiKey: apiKey}
}

func (d *Duitku) Name() domain.ProviderName {
	return domain.ProviderDuitku
}

// VerifyDuitku hex(MD5(merchantCode + amount + merchantOrderId + apiKey)). Поля берутся из формы
// колбэка, merchantCode сверяется с нашим: колбэк для чужого мерчанта не проходит.
func VerifyDuitku(form url.Values, signature, merchantCode, apiKey string) bool {
	if form.Get("merchantCode") != merchantCode {
		return false
	}
	sum := md5.Sum([]byte(merchantCode + form.Get("amount") + form.Get("merchantOrderId") + apiKey)) //nolint:gosec
	return equalSignature(signature, hex.EncodeToString(sum[:]))
}

func (d *Duitku) Parse(p Payload) (*domain.GatewayCallback, error) {
	form, err := url.ParseQuery(string(p.Body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPayload, err.Error())
	}
	if !VerifyDuitku(form, form.Get("signature"), d.merchantCode, d.apiKey) {
		return nil, domain.ErrInvalidSignature
	}

	orderID := form.Get("merchantOrderId")
	if orderID == "" {
		return nil, fmt.Errorf("%w: merchantOrderId is empty", domain.ErrInvalidPayload)
	}
	amount, amountErr := parseWholeAmount(form.Get("amount"))
	if amountErr != nil {
		return nil, amountErr
	}
	resultCode := form.Get("resultCode")

	return &domain.GatewayCallback{
		Provider:    domain.ProviderDuitku,
		Reference:   orderID,
		ProviderRef: form.Get("reference"),
		Amount:      amount,
		Outcome:     duitkuOutcome(resultCode),
		RawStatus:   resultCode,
	}, nil
}

func duitkuOutcome(resultCode string) domain.GatewayOutcome {
	switch resultCode {
	case "00":
		return domain.OutcomeSuccess
	case "01":
		return domain.OutcomeFailed
	case "02":
		return domain.OutcomeCanceled
	default:
		return domain.OutcomeUnknown
	}
}
