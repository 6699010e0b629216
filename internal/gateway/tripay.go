package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
)

const TripaySignatureHeader = "X-Callback-Signature"

type tripayCallback struct {
	Reference   string      `json:"reference"`
	MerchantRef string      `json:"merchant_ref"`
	TotalAmount json.Number `json:"total_amount"`
	Status      string      `json:"status"`
}

type Tripay struct {
	privateKey string
}

func NewTripay(privateKey string) *Tripay {
	return &Tripay{privateKey: privateKey}
}

func (t *Tripay) Name() domain.ProviderName {
	return domain.ProviderTripay
}

// VerifyTripay hex(HMAC-SHA256(privateKey, rawBody)).
func VerifyTripay(rawBody []byte, signature, privateKey string) bool {
	mac := hmac.New(sha256.New, []byte(privateKey))
	mac.Write(rawBody)
	return equalSignature(signature, hex.EncodeToString(mac.Sum(nil)))
}

func (t *Tripay) Parse(p Payload) (*domain.GatewayCallback, error) {
	if !VerifyTripay(p.Body, p.Header.Get(TripaySignatureHeader), t.privateKey) {
		return nil, domain.ErrInvalidSignature
	}

	var cb tripayCallback
	if err := json.Unmarshal(p.Body, &cb); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPayload, err.Error())
	}
	if cb.MerchantRef == "" {
		return nil, fmt.Errorf("%w: merchant_ref is empty", domain.ErrInvalidPayload)
	}
	amount, amountErr := parseWholeAmount(cb.TotalAmount.String())
	if amountErr != nil {
		return nil, amountErr
	}

	return &domain.GatewayCallback{
		Provider:    domain.ProviderTripay,
		Reference:   cb.MerchantRef,
		ProviderRef: cb.Reference,
		Amount:      amount,
		Outcome:     tripayOutcome(cb.Status),
		RawStatus:   cb.Status,
	}, nil
}

func tripayOutcome(status string) domain.GatewayOutcome {
	switch status {
	case "PAID":
		return domain.OutcomeSuccess
	case "FAILED":
		return domain.OutcomeFailed
	case "EXPIRED":
		return domain.OutcomeExpired
	case "REFUND":
		return domain.OutcomeCanceled
	case "UNPAID":
		return domain.OutcomePending
	default:
		return domain.OutcomeUnknown
	}
}
