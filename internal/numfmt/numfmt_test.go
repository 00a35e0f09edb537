package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatterEnglish(t *testing.T) {
	f := New(language.English)

	assert.Equal(t, "1,234,567", f.Integer(1234567))
	assert.Equal(t, "1,234,568", f.Integer(1234567.6))
	assert.Equal(t, "71.2", f.Decimal(71.2, 2))
	assert.Equal(t, "60", f.Decimal(60, 2))
	assert.Equal(t, "12,345.60", f.Fixed(12345.6, 2))
	assert.Equal(t, "$5,000", f.Dollars(5000))
	assert.Equal(t, "$1,234.5", f.Dollars(1234.5))
	assert.Equal(t, language.English, f.Language())
}

func TestFormatterGerman(t *testing.T) {
	f := New(language.German)

	assert.Equal(t, "1.234.567", f.Integer(1234567))
	assert.Equal(t, "71,2", f.Decimal(71.2, 2))
}
