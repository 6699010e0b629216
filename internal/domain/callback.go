package domain

// GatewayCallback проверенный (подпись сошлась) колбэк платежного шлюза, приведенный к общему виду.
type GatewayCallback struct {
	Provider ProviderName
	// Reference наш идентификатор: deposit_id или order_id.
	Reference string
	// ProviderRef идентификатор транзакции на стороне шлюза.
	ProviderRef string
	// Amount сумма из колбэка в минимальных единицах. 0 - шлюз сумму не прислал.
	Amount    int64
	Outcome   GatewayOutcome
	RawStatus string
}
