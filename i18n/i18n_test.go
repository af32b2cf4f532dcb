package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Buscar", T("pt", "search.button"))
	assert.Equal(t, "Search", T("en", "search.button"))
	assert.Equal(t, "Buscar", T("es", "search.button"))
}

func TestFallbackToDefaultLang(t *testing.T) {
	// Unknown language falls back to Portuguese
	assert.Equal(t, T(DefaultLang, "nav.home"), T("fr", "nav.home"))
}

func TestFallbackToKey(t *testing.T) {
	assert.Equal(t, "no.such.key", T("pt", "no.such.key"))
	assert.Equal(t, "no.such.key", T("fr", "no.such.key"))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("pt"))
	assert.True(t, Supported("en"))
	assert.True(t, Supported("es"))
	assert.False(t, Supported("fr"))
	assert.False(t, Supported(""))
}

func TestAllLangsCoverSameKeys(t *testing.T) {
	for key := range translations[DefaultLang] {
		for _, lang := range Langs {
			_, ok := translations[lang][key]
			assert.True(t, ok, "lang %s missing key %s", lang, key)
		}
	}
}
