package entities_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
)

func sampleEntries() []entities.Entry {
	return []entities.Entry{
		{Context: "QFileDialog", Source: "Open", Translation: "Ireki", Status: entities.StatusFinished},
		{Context: "QFileDialog", Source: "Save", Translation: "", Status: entities.StatusFinished},
		{Context: "QApplication", Source: "Incompatible Qt Library Error", Translation: "", Status: entities.StatusUnfinished},
		{Context: "QColorDialog", Source: "Hu&e:", Translation: "Ñ&abardura:", Status: entities.StatusUnfinished},
		{Context: "QPrintDialog", Source: "Left", Disambiguator: "page margin", Translation: "Ezkerra", Status: entities.StatusFinished},
		{Context: "QPrintDialog", Source: "Left", Translation: "Ezker", Status: entities.StatusFinished},
		{Context: "QFileDialog", Source: "Back", Translation: "Atzera", Status: entities.StatusObsolete},
	}
}

func newCatalog(t *testing.T, opts ...entities.CatalogOption) *entities.Catalog {
	t.Helper()
	c, err := entities.NewCatalog(entities.Meta{Version: "2.1", Language: "eu"}, sampleEntries(), opts...)
	require.NoError(t, err)
	return c
}

func TestCatalog_LookupFinished(t *testing.T) {
	c := newCatalog(t)
	require.Equal(t, "Ireki", c.Lookup("QFileDialog", "Open", ""))
}

func TestCatalog_LookupFallsBackToSource(t *testing.T) {
	c := newCatalog(t)

	tests := []struct {
		name    string
		context string
		source  string
	}{
		{"unfinished and empty", "QApplication", "Incompatible Qt Library Error"},
		{"finished but empty", "QFileDialog", "Save"},
		{"unfinished with text", "QColorDialog", "Hu&e:"},
		{"obsolete", "QFileDialog", "Back"},
		{"missing key", "QFileDialog", "Delete"},
		{"missing context", "QWizard", "Open"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.source, c.Lookup(tt.context, tt.source, ""))
		})
	}
}

func TestCatalog_WithUnfinished(t *testing.T) {
	c := newCatalog(t, entities.WithUnfinished(true))
	require.True(t, c.AllowsUnfinished())
	require.Equal(t, "Ñ&abardura:", c.Lookup("QColorDialog", "Hu&e:", ""))
	// Empty unfinished text still falls back.
	require.Equal(t, "Incompatible Qt Library Error", c.Lookup("QApplication", "Incompatible Qt Library Error", ""))
	// Obsolete entries are never served.
	require.Equal(t, "Back", c.Lookup("QFileDialog", "Back", ""))
}

func TestCatalog_Disambiguator(t *testing.T) {
	c := newCatalog(t)
	require.Equal(t, "Ezkerra", c.Lookup("QPrintDialog", "Left", "page margin"))
	require.Equal(t, "Ezker", c.Lookup("QPrintDialog", "Left", ""))
	// Unknown disambiguator retries the plain key.
	require.Equal(t, "Ezker", c.Lookup("QPrintDialog", "Left", "text alignment"))
	require.Equal(t, "Open", c.Lookup("QPrintDialog", "Open", "menu"))
}

func TestCatalog_DuplicateLastWins(t *testing.T) {
	entries := []entities.Entry{
		{Context: "QFileDialog", Source: "Open", Translation: "Zabaldu"},
		{Context: "QFileDialog", Source: "Cancel", Translation: "Utzi"},
		{Context: "QFileDialog", Source: "Open", Translation: "Ireki"},
	}
	c, err := entities.NewCatalog(entities.Meta{}, entries)
	require.NoError(t, err)

	require.Equal(t, 2, c.Len())
	require.Equal(t, "Ireki", c.Lookup("QFileDialog", "Open", ""))
	require.Equal(t, []entities.Key{{Context: "QFileDialog", Source: "Open"}}, c.Duplicates())

	got := c.Entries()
	require.Equal(t, "Open", got[0].Source)
	require.Equal(t, "Ireki", got[0].Translation)
	require.Equal(t, "Cancel", got[1].Source)
}

func TestCatalog_DuplicateReject(t *testing.T) {
	entries := []entities.Entry{
		{Context: "QFileDialog", Source: "Open", Translation: "Zabaldu"},
		{Context: "QFileDialog", Source: "Open", Translation: "Ireki"},
	}
	c, err := entities.NewCatalog(entities.Meta{}, entries, entities.WithDuplicatePolicy(entities.DuplicateReject))
	require.Nil(t, c)
	require.ErrorIs(t, err, domain.ErrDuplicateEntry)

	var dup *domain.DuplicateError
	require.True(t, errors.As(err, &dup))
	require.Equal(t, "Open", dup.Source)
	require.Equal(t, "duplicate_entry", domain.Code(err))
}

func TestCatalog_SameSourceDifferentDisambiguatorIsNotDuplicate(t *testing.T) {
	entries := []entities.Entry{
		{Context: "QPrintDialog", Source: "Left", Translation: "Ezker"},
		{Context: "QPrintDialog", Source: "Left", Disambiguator: "page margin", Translation: "Ezkerra"},
	}
	c, err := entities.NewCatalog(entities.Meta{}, entries, entities.WithDuplicatePolicy(entities.DuplicateReject))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
}

func TestCatalog_EntriesAreCopies(t *testing.T) {
	entries := []entities.Entry{{
		Context:     "QFileDialog",
		Source:      "Open",
		Translation: "Ireki",
		Locations:   []entities.Location{{File: "qfiledialog.cpp", Line: "+12"}},
	}}
	c, err := entities.NewCatalog(entities.Meta{}, entries)
	require.NoError(t, err)

	entries[0].Translation = "changed"
	got := c.Entries()
	got[0].Locations[0].File = "changed"

	e, ok := c.Find("QFileDialog", "Open", "")
	require.True(t, ok)
	require.Equal(t, "Ireki", e.Translation)
	require.Equal(t, "qfiledialog.cpp", e.Locations[0].File)
}

func TestCatalog_NumerusUsesFirstForm(t *testing.T) {
	entries := []entities.Entry{{
		Context:      "QFileDialog",
		Source:       "%n file(s)",
		NumerusForms: []string{"fitxategi %n", "%n fitxategi"},
	}}
	c, err := entities.NewCatalog(entities.Meta{}, entries)
	require.NoError(t, err)
	require.Equal(t, "fitxategi %n", c.Lookup("QFileDialog", "%n file(s)", ""))
}

func TestCatalog_LengthVariantsUseFirstVariant(t *testing.T) {
	entries := []entities.Entry{
		{Context: "QFileDialog", Source: "Open", LengthVariants: []string{"Fitxategia ireki", "Ireki"}},
		{Context: "QFileDialog", Source: "Save", Translation: "stray", LengthVariants: []string{}},
	}
	c, err := entities.NewCatalog(entities.Meta{}, entries)
	require.NoError(t, err)
	require.Equal(t, "Fitxategia ireki", c.Lookup("QFileDialog", "Open", ""))
	require.Equal(t, "Save", c.Lookup("QFileDialog", "Save", ""))
	require.Equal(t, 1, c.Stats().Untranslated)
}

func TestCatalog_MetadataIsCopied(t *testing.T) {
	meta := entities.Meta{Language: "eu", ContextComments: map[string]string{"QFileDialog": "file chooser"}}
	entries := []entities.Entry{{
		Context:        "QFileDialog",
		Source:         "Open",
		LengthVariants: []string{"Ireki"},
		Extras:         []entities.Element{{Name: "oldsource", Attrs: []entities.ElementAttr{{Name: "x", Value: "1"}}, Inner: "Open…"}},
	}}
	c, err := entities.NewCatalog(meta, entries)
	require.NoError(t, err)

	meta.ContextComments["QFileDialog"] = "changed"
	got := c.Meta()
	got.ContextComments["QFileDialog"] = "changed"
	e := c.Entries()[0]
	e.LengthVariants[0] = "changed"
	e.Extras[0].Attrs[0].Value = "changed"

	require.Equal(t, "file chooser", c.Meta().ContextComments["QFileDialog"])
	found, ok := c.Find("QFileDialog", "Open", "")
	require.True(t, ok)
	require.Equal(t, []string{"Ireki"}, found.LengthVariants)
	require.Equal(t, "1", found.Extras[0].Attrs[0].Value)
}

func TestCatalog_ContextsAndStats(t *testing.T) {
	c := newCatalog(t)
	require.Equal(t, []string{"QFileDialog", "QApplication", "QColorDialog", "QPrintDialog"}, c.Contexts())
	require.Equal(t, entities.Stats{Total: 7, Finished: 4, Unfinished: 2, Obsolete: 1, Untranslated: 2}, c.Stats())
	require.Equal(t, "eu", c.Meta().Language)
}

func TestCatalog_ConcurrentLookup(t *testing.T) {
	c := newCatalog(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := c.Lookup("QFileDialog", "Open", ""); got != "Ireki" {
					t.Errorf("unexpected translation %q", got)
				}
			}
		}()
	}
	wg.Wait()
}

func TestParseStatus(t *testing.T) {
	for _, s := range []entities.Status{entities.StatusFinished, entities.StatusUnfinished, entities.StatusObsolete, entities.StatusVanished} {
		got, err := entities.ParseStatus(s.Attr())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	_, err := entities.ParseStatus("approved")
	require.Error(t, err)
}
