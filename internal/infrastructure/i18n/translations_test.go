package i18n_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"tscat/internal/domain/entities"
	"tscat/internal/infrastructure/i18n"
	"tscat/internal/testsupp"
)

func frenchCatalog(t *testing.T, opts ...entities.CatalogOption) *entities.Catalog {
	t.Helper()
	c, err := entities.NewCatalog(entities.Meta{Version: "2.1", Language: "fr"}, []entities.Entry{
		{Context: "QFileDialog", Source: "Open", Translation: "Ouvrir"},
		{Context: "QFileDialog", Source: "&Rename", Translation: "&Renommer {{.Name}}"},
		{Context: "QPrintDialog", Source: "Left", Translation: "Gauche"},
		{Context: "QPrintDialog", Source: "Left", Disambiguator: "page margin", Translation: "Marge gauche", ExtraComment: "margin box"},
		{Context: "QApplication", Source: "Incompatible Qt Library Error", Status: entities.StatusUnfinished},
		{Context: "QColorDialog", Source: "&Red:", Translation: "&Rouge :", Status: entities.StatusUnfinished},
	}, opts...)
	require.NoError(t, err)
	return c
}

func germanCatalog(t *testing.T) *entities.Catalog {
	t.Helper()
	c, err := entities.NewCatalog(entities.Meta{Language: "de_DE"}, []entities.Entry{
		{Context: "QFileDialog", Source: "Open", Translation: "Öffnen"},
	})
	require.NoError(t, err)
	return c
}

func addCatalog(t *testing.T, tr *i18n.Translator, c *entities.Catalog) {
	t.Helper()
	_, err := tr.AddCatalog(c)
	require.NoError(t, err)
}

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	testsupp.InitLog(t)
	tr := i18n.NewTranslator("en")
	addCatalog(t, tr, frenchCatalog(t))
	addCatalog(t, tr, germanCatalog(t))
	return tr
}

func TestTranslator_T(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		name          string
		locale        string
		context       string
		source        string
		disambiguator string
		want          string
	}{
		{"french", "fr", "QFileDialog", "Open", "", "Ouvrir"},
		{"regional french", "fr-CA", "QFileDialog", "Open", "", "Ouvrir"},
		{"german underscore", "de_DE", "QFileDialog", "Open", "", "Öffnen"},
		{"disambiguated", "fr", "QPrintDialog", "Left", "page margin", "Marge gauche"},
		{"unknown disambiguator", "fr", "QPrintDialog", "Left", "alignment", "Gauche"},
		{"template text is literal", "fr", "QFileDialog", "&Rename", "", "&Renommer {{.Name}}"},
		{"unfinished empty", "fr", "QApplication", "Incompatible Qt Library Error", "", "Incompatible Qt Library Error"},
		{"unfinished text is not served", "fr", "QColorDialog", "&Red:", "", "&Red:"},
		{"missing in german", "de", "QPrintDialog", "Left", "", "Left"},
		{"unknown locale", "ja", "QFileDialog", "Open", "", "Open"},
		{"no locale", "", "QFileDialog", "Open", "", "Open"},
		{"unknown context", "fr", "QWizard", "Open", "", "Open"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tr.T(tt.locale, tt.context, tt.source, tt.disambiguator))
		})
	}
}

func TestTranslator_EmptySource(t *testing.T) {
	tr := newTranslator(t)
	require.Equal(t, "", tr.T("fr", "QFileDialog", "", ""))
}

func TestTranslator_DefaultLocaleFallback(t *testing.T) {
	testsupp.InitLog(t)
	tr := i18n.NewTranslator("fr")
	addCatalog(t, tr, frenchCatalog(t))
	require.Equal(t, language.French, tr.DefaultLanguage())
	// Unsupported locale falls back to the default catalog.
	require.Equal(t, "Ouvrir", tr.T("ja", "QFileDialog", "Open", ""))
}

func TestTranslator_UnfinishedAllowed(t *testing.T) {
	testsupp.InitLog(t)
	tr := i18n.NewTranslator("en")
	addCatalog(t, tr, frenchCatalog(t, entities.WithUnfinished(true)))
	require.Equal(t, "&Rouge :", tr.T("fr", "QColorDialog", "&Red:", ""))
}

func TestTranslator_InvalidLanguage(t *testing.T) {
	tr := i18n.NewTranslator("en")
	c, err := entities.NewCatalog(entities.Meta{}, nil)
	require.NoError(t, err)
	_, err = tr.AddCatalog(c)
	require.Error(t, err)
	require.Empty(t, tr.Languages())
}

func TestTranslator_Languages(t *testing.T) {
	tr := newTranslator(t)
	addCatalog(t, tr, frenchCatalog(t))
	require.Equal(t, []language.Tag{language.French, language.MustParse("de-DE")}, tr.Languages())
}

func TestParseLocale(t *testing.T) {
	tag, err := i18n.ParseLocale("pt_BR")
	require.NoError(t, err)
	require.Equal(t, "pt-BR", tag.String())

	_, err = i18n.ParseLocale("  ")
	require.Error(t, err)
}

func TestExportTOML_LoadMessageFile(t *testing.T) {
	testsupp.InitLog(t)
	dir := t.TempDir()

	path, n, err := i18n.ExportTOMLFile(dir, frenchCatalog(t))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "active.fr.toml"), path)
	require.Equal(t, 4, n)

	tr := i18n.NewTranslator("en")
	tag, err := tr.LoadMessageFile(path)
	require.NoError(t, err)
	require.Equal(t, language.French, tag)
	require.Equal(t, []language.Tag{language.French}, tr.Languages())

	require.Equal(t, "Ouvrir", tr.T("fr", "QFileDialog", "Open", ""))
	require.Equal(t, "Marge gauche", tr.T("fr", "QPrintDialog", "Left", "page margin"))
	require.Equal(t, "&Renommer {{.Name}}", tr.T("fr", "QFileDialog", "&Rename", ""))
	require.Equal(t, "&Red:", tr.T("fr", "QColorDialog", "&Red:", ""))
}

func TestExportTOML_Content(t *testing.T) {
	var buf bytes.Buffer
	n, err := i18n.ExportTOML(&buf, germanCatalog(t))
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.True(t, strings.Contains(buf.String(), "Öffnen"))
	require.True(t, strings.Contains(buf.String(), "other"))
}

func TestExportTOMLFile_NoLanguage(t *testing.T) {
	c, err := entities.NewCatalog(entities.Meta{}, nil)
	require.NoError(t, err)
	dir := t.TempDir()
	_, _, err = i18n.ExportTOMLFile(dir, c)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestExportFileName(t *testing.T) {
	require.Equal(t, "active.pt-BR.toml", i18n.ExportFileName("pt_BR"))
}
