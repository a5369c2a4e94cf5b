// Package models defines the server-side data models: credential rows
// persisted in the database, roster records read from the feed, stored
// evidence files and the values derived from them.
package models

import "time"

// User is one credential row. UserName is the entity name and the only
// lookup key. PasswordHash and Salt are hex strings.
type User struct {
	UserName     string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
	LastLogin    *time.Time
	Contact      ContactInfo
}

// ContactInfo groups the profile fields a member maintains. Updates always
// replace the whole group.
type ContactInfo struct {
	FoundingDate *time.Time
	Email        string
	Phone        string
	Facebook     string
	Twitter      string
	Instagram    string
	LinkedIn     string
}

// UserStats summarizes the credential store for staff.
type UserStats struct {
	Total                 int
	NewLast30Days         int
	ActiveLast30Days      int
	RegistrationsPerMonth []MonthCount
}

// MonthCount is the number of registrations in one calendar month (YYYY-MM).
type MonthCount struct {
	Month string
	Count int
}

// Table is an export-ready snapshot: a header row plus data rows, all
// already formatted as text.
type Table struct {
	Header []string
	Rows   [][]string
}
