package models

import (
	"time"

	"github.com/google/uuid"
)

type CoinTransactionType string

const (
	CoinTransactionReport         CoinTransactionType = "report"
	CoinTransactionVerifiedReport CoinTransactionType = "verified_report"
	CoinTransactionConversion     CoinTransactionType = "conversion"
)

// CoinTransaction - запись в журнале монет; у конвертации сумма отрицательная
type CoinTransaction struct {
	ID          int64               `json:"id"`
	UserID      uuid.UUID           `json:"user_id"`
	Amount      int                 `json:"amount"`
	Type        CoinTransactionType `json:"type"`
	IncidentID  *uuid.UUID          `json:"incident_id,omitempty"`
	Description string              `json:"description"`
	CreatedAt   time.Time           `json:"created_at"`
}

type CoinBalance struct {
	Coins          int     `json:"coins"`
	BirrEquivalent float64 `json:"birr_equivalent"`
}

type CoinConversion struct {
	ConvertedCoins int     `json:"converted_coins"`
	BirrAmount     float64 `json:"birr_amount"`
	NewBalance     int     `json:"new_balance"`
}
