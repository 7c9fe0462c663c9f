package database

import (
	"fmt"

	"tscat/internal/domain/entities"
)

var entryColumns = []string{
	"catalog_id", "position", "context", "source", "disambiguator", "translation", "status",
	"message_id", "location_files", "location_lines", "extra_comment", "translator_comment",
	"numerus", "numerus_forms", "variants", "length_variants", "extras",
}

// entryRow mirrors a catalog_entries row without its catalog_id and position.
type entryRow struct {
	Context           string
	Source            string
	Disambiguator     string
	Translation       string
	Status            string
	MessageID         string
	LocationFiles     []string
	LocationLines     []string
	ExtraComment      string
	TranslatorComment string
	Numerus           bool
	NumerusForms      []string
	Variants          bool
	LengthVariants    []string
	Extras            []entities.Element // jsonb, NULL when empty
}

func entryToRow(e entities.Entry) entryRow {
	r := entryRow{
		Context:           e.Context,
		Source:            e.Source,
		Disambiguator:     e.Disambiguator,
		Translation:       e.Translation,
		Status:            e.Status.String(),
		MessageID:         e.ID,
		LocationFiles:     make([]string, len(e.Locations)),
		LocationLines:     make([]string, len(e.Locations)),
		ExtraComment:      e.ExtraComment,
		TranslatorComment: e.TranslatorComment,
		Numerus:           e.IsNumerus(),
		NumerusForms:      []string{},
		Variants:          e.HasVariants(),
		LengthVariants:    []string{},
	}
	for i, l := range e.Locations {
		r.LocationFiles[i] = l.File
		r.LocationLines[i] = l.Line
	}
	if e.IsNumerus() {
		r.NumerusForms = append(r.NumerusForms, e.NumerusForms...)
	}
	if e.HasVariants() {
		r.LengthVariants = append(r.LengthVariants, e.LengthVariants...)
	}
	if len(e.Extras) > 0 {
		r.Extras = e.Extras
	}
	return r
}

func (r entryRow) values(catalogID int64, position int) []any {
	return []any{
		catalogID, int32(position), r.Context, r.Source, r.Disambiguator, r.Translation, r.Status,
		r.MessageID, r.LocationFiles, r.LocationLines, r.ExtraComment, r.TranslatorComment,
		r.Numerus, r.NumerusForms, r.Variants, r.LengthVariants, r.Extras,
	}
}

func (r entryRow) toDomain() (entities.Entry, error) {
	status, err := statusFromString(r.Status)
	if err != nil {
		return entities.Entry{}, err
	}
	if len(r.LocationFiles) != len(r.LocationLines) {
		return entities.Entry{}, fmt.Errorf("entry %q/%q: %d location files for %d lines",
			r.Context, r.Source, len(r.LocationFiles), len(r.LocationLines))
	}

	e := entities.Entry{
		Context:           r.Context,
		Source:            r.Source,
		Disambiguator:     r.Disambiguator,
		Translation:       r.Translation,
		Status:            status,
		ID:                r.MessageID,
		ExtraComment:      r.ExtraComment,
		TranslatorComment: r.TranslatorComment,
	}
	for i := range r.LocationFiles {
		e.Locations = append(e.Locations, entities.Location{File: r.LocationFiles[i], Line: r.LocationLines[i]})
	}
	if r.Numerus {
		e.NumerusForms = append([]string{}, r.NumerusForms...)
	}
	if r.Variants {
		e.LengthVariants = append([]string{}, r.LengthVariants...)
	}
	if len(r.Extras) > 0 {
		e.Extras = r.Extras
	}
	return e, nil
}

func statusFromString(s string) (entities.Status, error) {
	if s == entities.StatusFinished.String() {
		return entities.StatusFinished, nil
	}
	return entities.ParseStatus(s)
}
