package bridge

import "github.com/shopspring/decimal"

// Pairs maps every deposit symbol to the list of symbols it can be swapped
// for.
type Pairs map[string][]string

// Rate is the exchange rate between a deposit and a receive symbol.
// MinerFee is set only if the fee is payed with SWFT token, otherwise
// DepositCoinFeeRate is.
type Rate struct {
	DepositMax         decimal.Decimal  `json:"depositMax"`
	DepositMin         decimal.Decimal  `json:"depositMin"`
	InstantRate        decimal.Decimal  `json:"instantRate"`
	ReceiveCoinFee     decimal.Decimal  `json:"receiveCoinFee"`
	MinerFee           *decimal.Decimal `json:"minerFee,omitempty"`
	DepositCoinFeeRate *decimal.Decimal `json:"depositCoinFeeRate,omitempty"`
}

// IsValidDepositAmount returns whether the amount is within the deposit
// limits of the rate.
func (r Rate) IsValidDepositAmount(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(r.DepositMin) &&
		amount.LessThanOrEqual(r.DepositMax)
}

// ReceiveAmount returns the amount received for the given deposit, net of
// fees.
func (r Rate) ReceiveAmount(depositAmount decimal.Decimal) decimal.Decimal {
	feeRate := decimal.Zero
	if r.DepositCoinFeeRate != nil {
		feeRate = *r.DepositCoinFeeRate
	}
	return depositAmount.
		Mul(r.InstantRate).
		Mul(decimal.NewFromInt(1).Sub(feeRate)).
		Sub(r.ReceiveCoinFee)
}

// CreateOrderParameters is the request body of an order creation.
type CreateOrderParameters struct {
	DepositSymbol  string          `json:"depositSymbol"`
	DepositAmount  decimal.Decimal `json:"depositAmount"`
	RefundAddress  string          `json:"refundAddress"`
	ReceiveSymbol  string          `json:"receiveSymbol"`
	ReceiveAmount  decimal.Decimal `json:"receiveAmount"`
	ReceiveAddress string          `json:"receiveAddress"`
}

func (p CreateOrderParameters) validate() error {
	if len(p.DepositSymbol) <= 0 || len(p.ReceiveSymbol) <= 0 {
		return ErrNullSymbol
	}
	if len(p.RefundAddress) <= 0 || len(p.ReceiveAddress) <= 0 {
		return ErrNullAddress
	}
	if !p.DepositAmount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// OrderDeposit ...
type OrderDeposit struct {
	Symbol  string          `json:"symbol"`
	Amount  decimal.Decimal `json:"amount"`
	Fee     decimal.Decimal `json:"fee"`
	FeeRate decimal.Decimal `json:"feeRate"`
	Status  string          `json:"status"`
}

// OrderReceive ...
type OrderReceive struct {
	Symbol  string          `json:"symbol"`
	Amount  decimal.Decimal `json:"amount"`
	Address string          `json:"address"`
	Txid    string          `json:"txid"`
}

// OrderRefund ...
type OrderRefund struct {
	Address string           `json:"address"`
	Amount  *decimal.Decimal `json:"amount,omitempty"`
	Fee     *decimal.Decimal `json:"fee,omitempty"`
	Txid    string           `json:"txid,omitempty"`
}

// OrderDetails is the state of an order.
type OrderDetails struct {
	ID      string       `json:"id"`
	Status  string       `json:"status"`
	Deposit OrderDeposit `json:"deposit"`
	Receive OrderReceive `json:"receive"`
	Refund  OrderRefund  `json:"refund"`
}
