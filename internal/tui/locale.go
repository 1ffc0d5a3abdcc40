package tui

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/leonelquinteros/gotext"
)

const textDomain = "default"

//go:embed locales
var builtinCatalogs embed.FS

// locale translates every player-facing string. Without a catalog it
// returns the English source text.
var locale = gotext.NewLocale("", "en_US")

// UseLocale switches the game text to lang. A catalog at
// dir/<lang>/LC_MESSAGES/default.po takes precedence over the built-in one.
// A language with no catalog keeps the English text.
func UseLocale(dir, lang string) error {
	data, err := findCatalog(dir, lang)
	if err != nil {
		return err
	}

	l := gotext.NewLocale(dir, lang)
	if data != nil {
		po := gotext.NewPo()
		po.Parse(data)
		l.AddTranslator(textDomain, po)
	}
	locale = l
	return nil
}

func findCatalog(dir, lang string) ([]byte, error) {
	for _, name := range localeNames(lang) {
		rel := path.Join(name, "LC_MESSAGES", textDomain+".po")
		if dir != "" {
			data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
			if err == nil {
				return data, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read catalog for %s: %w", lang, err)
			}
		}
		if data, err := builtinCatalogs.ReadFile(path.Join("locales", rel)); err == nil {
			return data, nil
		}
	}
	return nil, nil
}

// localeNames expands "es_ES.UTF-8" to es_ES.UTF-8, es_ES and es.
func localeNames(lang string) []string {
	if lang == "" {
		return nil
	}
	names := []string{lang}
	if base, _, ok := strings.Cut(lang, "."); ok {
		names = append(names, base)
		lang = base
	}
	if base, _, ok := strings.Cut(lang, "_"); ok {
		names = append(names, base)
	}
	return names
}
