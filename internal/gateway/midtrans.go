package gateway

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
)

type midtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	SignatureKey      string `json:"signature_key"`
}

type Midtrans struct {
	serverKey string
}

func NewMidtrans(serverKey string) *Midtrans {
	return &Midtrans{serverKey: serverKey}
}

func (m *Midtrans) Name() domain.ProviderName {
	return domain.ProviderMidtrans
}

// VerifyMidtrans hex(SHA512(order_id + status_code + gross_amount + serverKey)). gross_amount берется в
// том виде, в котором пришел ("50000.00").
func VerifyMidtrans(orderID, statusCode, grossAmount, signature, serverKey string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return equalSignature(signature, hex.EncodeToString(sum[:]))
}

func (m *Midtrans) Parse(p Payload) (*domain.GatewayCallback, error) {
	var n midtransNotification
	if err := json.Unmarshal(p.Body, &n); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPayload, err.Error())
	}
	if !VerifyMidtrans(n.OrderID, n.StatusCode, n.GrossAmount, n.SignatureKey, m.serverKey) {
		return nil, domain.ErrInvalidSignature
	}
	if n.OrderID == "" {
		return nil, fmt.Errorf("%w: order_id is empty", domain.ErrInvalidPayload)
	}
	amount, amountErr := parseWholeAmount(n.GrossAmount)
	if amountErr != nil {
		return nil, amountErr
	}

	return &domain.GatewayCallback{
		Provider:    domain.ProviderMidtrans,
		Reference:   n.OrderID,
		ProviderRef: n.TransactionID,
		Amount:      amount,
		Outcome:     midtransOutcome(n.TransactionStatus, n.FraudStatus),
		RawStatus:   n.TransactionStatus,
	}, nil
}

func midtransOutcome(status, fraud string) domain.GatewayOutcome {
	switch status {
	case "settlement":
		return domain.OutcomeSuccess
	case "capture":
		switch fraud {
		case "", "accept":
			return domain.OutcomeSuccess
		case "challenge":
			return domain.OutcomePending
		default:
			return domain.OutcomeFailed
		}
	case "pending", "authorize":
		return domain.OutcomePending
	case "deny", "failure":
		return domain.OutcomeFailed
	case "cancel", "refund", "partial_refund":
		return domain.OutcomeCanceled
	case "expire":
		return domain.OutcomeExpired
	default:
		return domain.OutcomeUnknown
	}
}
