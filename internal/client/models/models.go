// Package models holds the client-side view of portal data, decoded from
// the wire messages by the client package.
package models

import "time"

// Contact is the optional contact group of a member entity. A nil
// FoundingDate means the date is unknown.
type Contact struct {
	FoundingDate *time.Time
	Email        string
	Phone        string
	Facebook     string
	Twitter      string
	Instagram    string
	LinkedIn     string
}

type Profile struct {
	Username  string
	CreatedAt time.Time
	LastLogin *time.Time
	Contact   Contact
}

// Document describes a stored evidence file.
type Document struct {
	Entity     string
	Type       string
	FileName   string
	UploadedAt time.Time
	Size       int64
}

// Entity is one roster row.
type Entity struct {
	Name           string
	MemberSince    *time.Time
	DirectiveBoard string
	CUIT           string
	CUITStatus     string
	Address        string
	City           string
	Province       string
	President      string
	MandateExpiry  *time.Time
	IGJ            string
	AFIP           string
	Estatuto       string
	RosterExpiry   *time.Time
	RosterStatus   string
}

// DocumentRow is the compliance status of one document type.
type DocumentRow struct {
	Type   string
	Label  string
	Status string
	Expiry *time.Time
	Latest *Document
}

type ComplianceReport struct {
	Entity     Entity
	Registered bool
	LastLogin  *time.Time
	Contact    *Contact
	Documents  []DocumentRow
}

type UserSummary struct {
	Username  string
	CreatedAt time.Time
	LastLogin *time.Time
	Contact   Contact
}

// MonthCount is the number of registrations in a "YYYY-MM" month.
type MonthCount struct {
	Month string
	Count int
}

type UserStats struct {
	Total                 int
	NewLast30Days         int
	ActiveLast30Days      int
	RegistrationsPerMonth []MonthCount
}

// Table is a tabular export with a fixed header.
type Table struct {
	Header []string
	Rows   [][]string
}

// RowDiagnostic explains why a roster line was skipped.
type RowDiagnostic struct {
	Line   int
	Reason string
}

// EntityList is a roster search result. Warning is set when the roster
// could not be read.
type EntityList struct {
	Entities []Entity
	Skipped  []RowDiagnostic
	Warning  string
}
