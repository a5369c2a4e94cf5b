package models

import "time"

// Canonical values for roster yes/no columns.
const (
	Yes = "Si"
	No  = "No"
)

// EntityRecord is one member entity as described by the roster feed.
// Flags hold Yes or No after normalization; values that could not be
// recognized are kept verbatim. Nil dates are unknown.
type EntityRecord struct {
	Name           string
	MemberSince    *time.Time
	DirectiveBoard string

	CUIT       string
	CUITStatus string

	Address  string
	City     string
	Province string

	President     string
	MandateExpiry *time.Time

	IGJ      string
	AFIP     string
	Estatuto string

	// Board roster ("comisión directiva") document.
	RosterExpiry *time.Time
	RosterStatus string
}

// RowDiagnostic explains why a roster row was skipped. Line is 1-based and
// counts the header.
type RowDiagnostic struct {
	Line   int
	Reason string
}
