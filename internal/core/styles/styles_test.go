package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_SortedAndKnown(t *testing.T) {
	names := ThemeNames()

	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, DefaultTheme)
}

func TestSetTheme_SwitchesPalette(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(p)

	assert.Equal(t, p.Error, ColorError)
	assert.Equal(t, p, CurrentPalette)
}

func TestGetPalette_Unknown(t *testing.T) {
	_, ok := GetPalette("does-not-exist")
	assert.False(t, ok)
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	cfg := GlamourStyle()

	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, colorHex(ColorForeground), *cfg.Document.Color)
}

func TestFormTheme_NotNil(t *testing.T) {
	assert.NotNil(t, FormTheme())
}
