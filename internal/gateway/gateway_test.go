package gateway

import (
	"crypto/hmac"
	"crypto/md5" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/stretchr/testify/suite"
)

const (
	testTripayKey     = "tripay-private-key"
	testDuitkuCode    = "D0001"
	testDuitkuAPIKey  = "duitku-api-key"
	testMidtransKey   = "SB-Mid-server-key"
	testDepositRef    = "DEP-20240101-0001"
	testMidtransGross = "50000.00"
)

type GatewayTestSuite struct {
	suite.Suite
	registry *Registry
}

func TestGatewaySuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func (s *GatewayTestSuite) SetupTest() {
	s.registry = NewRegistryFromConfig(Config{
		TripayPrivateKey:   testTripayKey,
		DuitkuMerchantCode: testDuitkuCode,
		DuitkuAPIKey:       testDuitkuAPIKey,
		MidtransServerKey:  testMidtransKey,
	})
}

func tripaySign(body string) string {
	mac := hmac.New(sha256.New, []byte(testTripayKey))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func tripayPayload(body, signature string) Payload {
	h := http.Header{}
	h.Set(TripaySignatureHeader, signature)
	return Payload{Body: []byte(body), Header: h}
}

func duitkuForm(amount, orderID, resultCode string) url.Values {
	sum := md5.Sum([]byte(testDuitkuCode + amount + orderID + testDuitkuAPIKey)) //nolint:gosec
	return url.Values{
		"merchantCode":    {testDuitkuCode},
		"amount":          {amount},
		"merchantOrderId": {orderID},
		"resultCode":      {resultCode},
		"reference":       {"DK-REF-1"},
		"signature":       {hex.EncodeToString(sum[:])},
	}
}

func midtransBody(orderID, statusCode, gross, status, signature string) string {
	if signature == "" {
		sum := sha512.Sum512([]byte(orderID + statusCode + gross + testMidtransKey))
		signature = hex.EncodeToString(sum[:])
	}
	return `{"order_id":"` + orderID + `","transaction_id":"mt-1","status_code":"` + statusCode +
		`","gross_amount":"` + gross + `","transaction_status":"` + status +
		`","fraud_status":"accept","signature_key":"` + signature + `"}`
}

func (s *GatewayTestSuite) TestTripay() {
	body := `{"reference":"T0001","merchant_ref":"` + testDepositRef + `","total_amount":50000,"status":"PAID"}`

	cb, err := s.registry.Parse("tripay", tripayPayload(body, tripaySign(body)))
	s.Require().NoError(err)
	s.Equal(domain.ProviderTripay, cb.Provider)
	s.Equal(testDepositRef, cb.Reference)
	s.Equal("T0001", cb.ProviderRef)
	s.Equal(int64(50000), cb.Amount)
	s.Equal(domain.OutcomeSuccess, cb.Outcome)

	// подпись в верхнем регистре тоже принимается.
	_, err = s.registry.Parse("TRIPAY", tripayPayload(body, strings.ToUpper(tripaySign(body))))
	s.Require().NoError(err)

	// подпись считается по сырым байтам: лишний пробел ее ломает.
	_, err = s.registry.Parse("tripay", tripayPayload(body+" ", tripaySign(body)))
	s.Require().ErrorIs(err, domain.ErrInvalidSignature)

	_, err = s.registry.Parse("tripay", tripayPayload(body, ""))
	s.Require().ErrorIs(err, domain.ErrInvalidSignature)

	malformed := `{"merchant_ref":`
	_, err = s.registry.Parse("tripay", tripayPayload(malformed, tripaySign(malformed)))
	s.Require().ErrorIs(err, domain.ErrInvalidPayload)

	fractional := `{"merchant_ref":"X","total_amount":100.5,"status":"PAID"}`
	_, err = s.registry.Parse("tripay", tripayPayload(fractional, tripaySign(fractional)))
	s.Require().ErrorIs(err, domain.ErrInvalidPayload)
}

func (s *GatewayTestSuite) TestTripayOutcomes() {
	cases := map[string]domain.GatewayOutcome{
		"PAID":     domain.OutcomeSuccess,
		"FAILED":   domain.OutcomeFailed,
		"EXPIRED":  domain.OutcomeExpired,
		"REFUND":   domain.OutcomeCanceled,
		"UNPAID":   domain.OutcomePending,
		"WHATEVER": domain.OutcomeUnknown,
	}
	for status, want := range cases {
		s.Equal(want, tripayOutcome(status), status)
	}
}

func (s *GatewayTestSuite) TestDuitku() {
	form := duitkuForm("50000", testDepositRef, "00")

	cb, err := s.registry.Parse("duitku", Payload{Body: []byte(form.Encode())})
	s.Require().NoError(err)
	s.Equal(domain.ProviderDuitku, cb.Provider)
	s.Equal(testDepositRef, cb.Reference)
	s.Equal(int64(50000), cb.Amount)
	s.Equal(domain.OutcomeSuccess, cb.Outcome)
	s.Equal("00", cb.RawStatus)

	failed := duitkuForm("50000", testDepositRef, "01")
	cb, err = s.registry.Parse("duitku", Payload{Body: []byte(failed.Encode())})
	s.Require().NoError(err)
	s.Equal(domain.OutcomeFailed, cb.Outcome)

	// сумма подменена после подписи.
	tampered := duitkuForm("50000", testDepositRef, "00")
	tampered.Set("amount", "500000")
	_, err = s.registry.Parse("duitku", Payload{Body: []byte(tampered.Encode())})
	s.Require().ErrorIs(err, domain.ErrInvalidSignature)

	foreign := duitkuForm("50000", testDepositRef, "00")
	foreign.Set("merchantCode", "D9999")
	_, err = s.registry.Parse("duitku", Payload{Body: []byte(foreign.Encode())})
	s.Require().ErrorIs(err, domain.ErrInvalidSignature)
}

func (s *GatewayTestSuite) TestMidtrans() {
	body := midtransBody(testDepositRef, "200", testMidtransGross, "settlement", "")

	cb, err := s.registry.Parse("midtrans", Payload{Body: []byte(body)})
	s.Require().NoError(err)
	s.Equal(domain.ProviderMidtrans, cb.Provider)
	s.Equal(testDepositRef, cb.Reference)
	s.Equal(int64(50000), cb.Amount)
	s.Equal(domain.OutcomeSuccess, cb.Outcome)

	bad := midtransBody(testDepositRef, "200", testMidtransGross, "settlement", strings.Repeat("0", 128))
	_, err = s.registry.Parse("midtrans", Payload{Body: []byte(bad)})
	s.Require().ErrorIs(err, domain.ErrInvalidSignature)

	_, err = s.registry.Parse("midtrans", Payload{Body: []byte("not json")})
	s.Require().ErrorIs(err, domain.ErrInvalidPayload)

	fractional := midtransBody(testDepositRef, "200", "50000.50", "settlement", "")
	_, err = s.registry.Parse("midtrans", Payload{Body: []byte(fractional)})
	s.Require().ErrorIs(err, domain.ErrInvalidPayload)
}

func (s *GatewayTestSuite) TestMidtransOutcomes() {
	cases := []struct {
		status string
		fraud  string
		want   domain.GatewayOutcome
	}{
		{status: "settlement", want: domain.OutcomeSuccess},
		{status: "capture", fraud: "accept", want: domain.OutcomeSuccess},
		{status: "capture", fraud: "challenge", want: domain.OutcomePending},
		{status: "capture", fraud: "deny", want: domain.OutcomeFailed},
		{status: "pending", want: domain.OutcomePending},
		{status: "deny", want: domain.OutcomeFailed},
		{status: "cancel", want: domain.OutcomeCanceled},
		{status: "expire", want: domain.OutcomeExpired},
		{status: "refund", want: domain.OutcomeCanceled},
		{status: "something_new", want: domain.OutcomeUnknown},
	}
	for _, t := range cases {
		s.Equal(t.want, midtransOutcome(t.status, t.fraud), t.status+"/"+t.fraud)
	}
}

func (s *GatewayTestSuite) TestUnknownProvider() {
	_, err := s.registry.Parse("paypal", Payload{Body: []byte("{}")})
	s.Require().ErrorIs(err, domain.ErrUnknownProvider)

	// шлюз без секрета не регистрируется.
	empty := NewRegistryFromConfig(Config{TripayPrivateKey: testTripayKey})
	_, err = empty.Lookup("midtrans")
	s.Require().ErrorIs(err, domain.ErrUnknownProvider)
	_, err = empty.Lookup("tripay")
	s.Require().NoError(err)
}

func (s *GatewayTestSuite) TestVerifyNeverPanics() {
	s.False(VerifyTripay(nil, "", ""))
	s.False(VerifyDuitku(nil, "", testDuitkuCode, testDuitkuAPIKey))
	s.False(VerifyMidtrans("", "", "", "zz", ""))
}
