// Package i18n is the two-language lookup table used by the language demo.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// Strings are the translated texts of the language header.
type Strings struct {
	Welcome   string
	ChangeBtn string
	Status    string
}

var translations = map[Language]Strings{
	English: {
		Welcome:   "Welcome to our App",
		ChangeBtn: "Change Language",
		Status:    "Current Language is English",
	},
	Spanish: {
		Welcome:   "Bienvenido a nuestra aplicación",
		ChangeBtn: "Cambiar idioma",
		Status:    "El idioma actual es español",
	},
}

// For returns the strings for lang, falling back to English.
func For(lang Language) Strings {
	if s, ok := translations[lang]; ok {
		return s
	}
	return translations[English]
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Spanish})

// Match maps a BCP-47 tag or a POSIX locale such as "es_MX.UTF-8" onto one
// of the supported languages. Anything unrecognised is English.
func Match(tag string) Language {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag == "" || strings.EqualFold(tag, "C") || strings.EqualFold(tag, "POSIX") {
		return English
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return English
	}
	if idx == 1 {
		return Spanish
	}
	return English
}
