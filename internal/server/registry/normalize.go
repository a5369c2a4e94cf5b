package registry

import (
	"strings"
	"unicode"

	"github.com/dmitrijs2005/cameportal/internal/server/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// field identifies an EntityRecord attribute a feed column can map to.
type field int

const (
	fieldName field = iota
	fieldMemberSince
	fieldDirectiveBoard
	fieldCUIT
	fieldCUITStatus
	fieldAddress
	fieldCity
	fieldProvince
	fieldPresident
	fieldMandateExpiry
	fieldIGJ
	fieldAFIP
	fieldEstatuto
	fieldRosterExpiry
	fieldRosterStatus
)

// aliases maps normalized header names to fields. Headers not listed here
// are dropped.
var aliases = map[string]field{
	"entidad":        fieldName,
	"nombre":         fieldName,
	"nombre_entidad": fieldName,
	"razon_social":   fieldName,
	"usuario":        fieldName,
	"username":       fieldName,
	"name":           fieldName,

	"fecha_alta":     fieldMemberSince,
	"fecha_de_alta":  fieldMemberSince,
	"fecha_ingreso":  fieldMemberSince,
	"socio_desde":    fieldMemberSince,
	"miembro_desde":  fieldMemberSince,
	"fecha_adhesion": fieldMemberSince,

	"consejo_directivo": fieldDirectiveBoard,
	"integra_consejo":   fieldDirectiveBoard,
	"consejo":           fieldDirectiveBoard,
	"miembro_directivo": fieldDirectiveBoard,
	"directiva":         fieldDirectiveBoard,

	"cuit":        fieldCUIT,
	"nro_cuit":    fieldCUIT,
	"estado_cuit": fieldCUITStatus,
	"cuit_estado": fieldCUITStatus,

	"direccion": fieldAddress,
	"domicilio": fieldAddress,
	"ciudad":    fieldCity,
	"localidad": fieldCity,
	"provincia": fieldProvince,

	"presidente":          fieldPresident,
	"vencimiento_mandato": fieldMandateExpiry,
	"mandato_vencimiento": fieldMandateExpiry,
	"fin_mandato":         fieldMandateExpiry,
	"vto_mandato":         fieldMandateExpiry,

	"igj":      fieldIGJ,
	"afip":     fieldAFIP,
	"estatuto": fieldEstatuto,

	"vencimiento_comision_directiva": fieldRosterExpiry,
	"comision_directiva_vencimiento": fieldRosterExpiry,
	"directiva_vencimiento":          fieldRosterExpiry,
	"vencimiento_cd":                 fieldRosterExpiry,
	"vto_comision_directiva":         fieldRosterExpiry,
	"estado_comision_directiva":      fieldRosterStatus,
	"comision_directiva_estado":      fieldRosterStatus,
	"comision_directiva":             fieldRosterStatus,
	"directiva_estado":               fieldRosterStatus,
	"estado_cd":                      fieldRosterStatus,
}

// fold lowercases s and strips diacritics.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// normalizeHeader reduces a column title to its alias-table key:
// case and accents folded, every run of non-alphanumerics collapsed to "_".
func normalizeHeader(h string) string {
	h = fold(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))

	var b strings.Builder
	pendingSep := false
	for _, r := range h {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// normalizeYesNo maps case and accent variants of "Si"/"No" to
// models.Yes/models.No. Anything else is returned trimmed but otherwise
// untouched.
func normalizeYesNo(v string) string {
	v = strings.TrimSpace(v)
	switch fold(v) {
	case "si":
		return models.Yes
	case "no":
		return models.No
	default:
		return v
	}
}

// normalizeRosterStatus canonicalizes the spelling of the current state.
func normalizeRosterStatus(v string) string {
	v = strings.TrimSpace(v)
	if fold(v) == "vigente" {
		return string(models.StatusVigente)
	}
	return v
}
