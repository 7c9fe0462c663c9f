package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tscat/internal/domain/entities"
)

func TestEntryRow_RoundTrip(t *testing.T) {
	entries := []entities.Entry{
		{
			Context:     "QFileDialog",
			Source:      "Open",
			Translation: "Ireki",
			Status:      entities.StatusFinished,
			Locations: []entities.Location{
				{File: "../src/gui/dialogs/qfiledialog.cpp", Line: "+2154"},
				{File: "Folder", Line: "+1"},
			},
		},
		{
			Context:           "QPrintDialog",
			Source:            "Left",
			Disambiguator:     "page margin",
			Status:            entities.StatusUnfinished,
			ID:                "print.left",
			ExtraComment:      "margin box",
			TranslatorComment: "check",
		},
		{Context: "QFileDialog", Source: "%n file(s)", NumerusForms: []string{"fitxategi %n", "%n fitxategi"}, Status: entities.StatusObsolete},
		{Context: "QFileDialog", Source: "%n dir(s)", NumerusForms: []string{}, Status: entities.StatusVanished},
		{Context: "QFileDialog", Source: "Open", LengthVariants: []string{"Fitxategia ireki", "Ireki"}},
		{Context: "QFileDialog", Source: "Close", LengthVariants: []string{}, Status: entities.StatusUnfinished},
		{
			Context:     "QFileDialog",
			Source:      "Save",
			Translation: "Gorde",
			Extras: []entities.Element{
				{Name: "oldsource", Inner: "Save file"},
				{Name: "extra-po-flags", Attrs: []entities.ElementAttr{{Name: "kind", Value: "c-format"}}, Inner: "fuzzy"},
			},
		},
	}

	for _, e := range entries {
		got, err := entryToRow(e).toDomain()
		require.NoError(t, err)
		require.Equal(t, e, got)
	}
}

func TestEntryRow_Values(t *testing.T) {
	row := entryToRow(entities.Entry{Context: "QFileDialog", Source: "Open", Translation: "Ireki"})
	values := row.values(7, 3)
	require.Len(t, values, len(entryColumns))
	require.Equal(t, int64(7), values[0])
	require.Equal(t, int32(3), values[1])
	require.Equal(t, "finished", values[6])
	require.Equal(t, []string{}, values[8])
	require.Equal(t, false, values[12])
	require.Equal(t, false, values[14])
	require.Equal(t, []string{}, values[15])
	require.Nil(t, values[16])
}

func TestEntryRow_Invalid(t *testing.T) {
	_, err := entryRow{Status: "approved"}.toDomain()
	require.Error(t, err)

	_, err = entryRow{Status: "finished", LocationFiles: []string{"a"}}.toDomain()
	require.Error(t, err)
}
