// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatementLine is one ledger entry as it appears on a card statement,
// annotated with its installment label ("i/N" or "À vista").
type StatementLine struct {
	Entry *LedgerEntry
	Label string
}

// Statement is the derived view of a card's expenses for one reference
// month. It is never persisted; it is recomputed on demand from the ledger.
type Statement struct {
	CardID         uuid.UUID
	ReferenceMonth string
	Total          decimal.Decimal
	Count          int
	Lines          []StatementLine
}

// StatementSummary is one row of a card's statement history: the total
// billed against a reference month.
type StatementSummary struct {
	ReferenceMonth string
	Total          decimal.Decimal
	Count          int
}
