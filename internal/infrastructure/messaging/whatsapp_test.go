package messaging_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zakayo-api/internal/infrastructure/messaging"
)

func TestLink_NormalizaTelefono(t *testing.T) {
	link, err := messaging.NewWhatsAppLinker().Link("+255 712 345 678", "Hello")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/255712345678?text="), link)
}

func TestLink_CodificaMensaje(t *testing.T) {
	msg := "Hello Mwalimu,\n\nYour invoice INV-2024-001 for TSh 531,000 is ready.\nA&B = 100%"
	link, err := messaging.NewWhatsAppLinker().Link("(0712) 345-678", msg)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/0712345678", u.Path)
	assert.Equal(t, msg, u.Query().Get("text"))
	assert.NotContains(t, u.RawQuery, "+", "los espacios deben ir como %20")
	assert.Contains(t, u.RawQuery, "%20")
}

func TestLink_SinDigitos(t *testing.T) {
	_, err := messaging.NewWhatsAppLinker().Link("n/a", "hi")
	assert.ErrorIs(t, err, messaging.ErrEmptyPhone)
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "255712345678", messaging.DigitsOnly("+255-712.345 678"))
	assert.Equal(t, "", messaging.DigitsOnly(""))
	assert.Equal(t, "12", messaging.DigitsOnly("١1x2"), "solo dígitos ASCII")
}
