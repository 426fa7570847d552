package models

import (
	"github.com/shopspring/decimal"
)

type PinVerifyRequest struct {
	Pin string `json:"pin"`
}

type PinVerifyResponse struct {
	Balance decimal.Decimal `json:"balance"`
}
