package appearance

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	assert.True(t, Fixed(true)())
	assert.False(t, Fixed(false)())
}

func TestFromFyne(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	detect := FromFyne(a.Settings())
	assert.Equal(t, a.Settings().ThemeVariant() == theme.VariantDark, detect())
}

func TestSystemDoesNotPanic(t *testing.T) {
	// Result depends on the host; only the call path is checked
	_ = System()()
}
