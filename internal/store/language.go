package store

import "github.com/jask/statelab/internal/i18n"

// Language holds the UI language.
type Language struct {
	*Store[i18n.Language]
}

func NewLanguage(initial i18n.Language) *Language {
	if initial != i18n.Spanish {
		initial = i18n.English
	}
	return &Language{Store: New(initial, WithEqual(func(a, b i18n.Language) bool { return a == b }))}
}

// Toggle flips English and Spanish.
func (l *Language) Toggle() {
	l.Update(func(lang i18n.Language) i18n.Language {
		if lang == i18n.English {
			return i18n.Spanish
		}
		return i18n.English
	})
}
