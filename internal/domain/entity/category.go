// Package entity defines the core business entities for the domain layer.
package entity

// Suggested category sets offered by the forms. Categories are free-form
// strings on ledger entries and bills; these lists are only suggestions.
var (
	// BillCategories are the suggested categories for fixed bills.
	BillCategories = []string{
		"Moradia",
		"Alimentação",
		"Transporte",
		"Saúde",
		"Educação",
		"Lazer",
		"Seguros",
		"Outros",
	}

	// EntryCategories are the suggested categories for ledger entries.
	EntryCategories = []string{
		"Compras",
		"Alimentação",
		"Transporte",
		"Saúde",
		"Lazer",
		"Educação",
		"Viagem",
		"Outros",
	}
)
