// Package messaging construye enlaces profundos de WhatsApp para compartir documentos con clientes.
package messaging

import (
	"errors"
	"net/url"
	"strings"
	"unicode"
)

const whatsappBaseURL = "https://wa.me/"

// ErrEmptyPhone se devuelve cuando el número no contiene ningún dígito.
var ErrEmptyPhone = errors.New("messaging: phone number has no digits")

// WhatsAppLinker genera URLs del tipo https://wa.me/<dígitos>?text=<mensaje>.
type WhatsAppLinker struct{}

// NewWhatsAppLinker construye el colaborador.
func NewWhatsAppLinker() *WhatsAppLinker { return &WhatsAppLinker{} }

// Link normaliza el teléfono a solo dígitos ("+255 712 345 678" → "255712345678")
// y codifica el mensaje para la query.
func (WhatsAppLinker) Link(phone, message string) (string, error) {
	digits := DigitsOnly(phone)
	if digits == "" {
		return "", ErrEmptyPhone
	}
	return whatsappBaseURL + digits + "?text=" + EncodeComponent(message), nil
}

// DigitsOnly descarta todo lo que no sea un dígito ASCII.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EncodeComponent codifica como un componente de URI: los espacios salen como %20 y no como "+".
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
