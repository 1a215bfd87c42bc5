package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Welcome to our App", For(English).Welcome)
	require.Equal(t, "Cambiar idioma", For(Spanish).ChangeBtn)
	require.Equal(t, For(English), For("fr"))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	cases := map[string]Language{
		"":            English,
		"C":           English,
		"en":          English,
		"en_US.UTF-8": English,
		"es":          Spanish,
		"es-MX":       Spanish,
		"es_AR.UTF-8": Spanish,
		"ja-JP":       English,
		"!!":          English,
	}
	for in, want := range cases {
		require.Equal(t, want, Match(in), in)
	}
}
