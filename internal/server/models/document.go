package models

import "time"

// DocumentType identifies a tracked compliance document.
type DocumentType string

const (
	DocumentIGJ      DocumentType = "igj"
	DocumentAFIP     DocumentType = "afip"
	DocumentEstatuto DocumentType = "estatuto"
	// DocumentRoster is the board roster ("comisión directiva") with its own
	// expiry date and status.
	DocumentRoster DocumentType = "comision_directiva"
)

// DocumentTypes lists every tracked type in display order.
var DocumentTypes = []DocumentType{DocumentEstatuto, DocumentIGJ, DocumentAFIP, DocumentRoster}

// ParseDocumentType accepts a type name as used in storage and the API.
func ParseDocumentType(s string) (DocumentType, bool) {
	for _, t := range DocumentTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Label is the user-facing name of the document type.
func (t DocumentType) Label() string {
	switch t {
	case DocumentIGJ:
		return "IGJ"
	case DocumentAFIP:
		return "AFIP"
	case DocumentEstatuto:
		return "Estatuto"
	case DocumentRoster:
		return "Comisión Directiva"
	default:
		return string(t)
	}
}

// StoredDocument references one uploaded version of a document.
// OriginalFileName is only known to the Store call that created it.
type StoredDocument struct {
	Entity           string
	Type             DocumentType
	FileName         string
	OriginalFileName string
	UploadedAt       time.Time
	Size             int64
}

// Status is the derived compliance state of a document.
type Status string

const (
	StatusVigente   Status = "Vigente"
	StatusEnviado   Status = "Enviado"
	StatusPendiente Status = "Pendiente"
)

// DocumentStatus is computed on every read and never persisted.
type DocumentStatus struct {
	Type   DocumentType
	Status Status
	Expiry *time.Time
}

// DocumentView is a DocumentStatus plus the latest uploaded evidence, if any.
// The upload does not influence Status.
type DocumentView struct {
	DocumentStatus
	Latest *StoredDocument
}

// ComplianceReport is everything the portal shows about one entity.
type ComplianceReport struct {
	Entity     EntityRecord
	Registered bool
	LastLogin  *time.Time
	Contact    *ContactInfo
	Documents  []DocumentView
}
