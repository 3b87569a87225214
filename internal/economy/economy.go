package economy

import (
	"time"
)

type Currency string

const (
	CurrencyGold  Currency = "gold"
	CurrencyGems  Currency = "gems"
	CurrencySouls Currency = "souls"
)

// Currencies lists all currency kinds in a stable order.
var Currencies = []Currency{CurrencyGold, CurrencyGems, CurrencySouls}

type Balance struct {
	Currency Currency `json:"currency"`
	Amount   int      `json:"amount"`
	Cap      int      `json:"cap"`
}

type TransactionKind string

const (
	KindEarn  TransactionKind = "earn"
	KindSpend TransactionKind = "spend"
	KindTrade TransactionKind = "trade"
)

// Transaction is an immutable ledger record. Amount carries the sign and is
// the delta actually applied, not the amount requested.
type Transaction struct {
	ID           string          `json:"id"`
	Kind         TransactionKind `json:"kind"`
	Currency     Currency        `json:"currency"`
	Amount       int             `json:"amount"`
	Description  string          `json:"description"`
	Timestamp    time.Time       `json:"timestamp"`
	BalanceAfter int             `json:"balance_after"`
}

type TradeStatus string

const (
	TradeOpen      TradeStatus = "open"
	TradeCompleted TradeStatus = "completed"
	TradeCancelled TradeStatus = "cancelled"
)

// TradeOffer exchanges one currency for another. The offered amount is
// escrowed from the creator the moment the offer is created.
type TradeOffer struct {
	ID             string      `json:"id"`
	SellerID       string      `json:"seller_id"`
	SellerName     string      `json:"seller_name"`
	OfferCurrency  Currency    `json:"offer_currency"`
	OfferAmount    int         `json:"offer_amount"`
	AskingCurrency Currency    `json:"asking_currency"`
	AskingAmount   int         `json:"asking_amount"`
	Status         TradeStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}
