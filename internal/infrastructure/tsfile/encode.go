package tsfile

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"tscat/internal/domain/entities"
)

// Encode writes entries as a .ts document. Messages are grouped by context in
// first-seen order; message order inside a context is preserved. Contexts that
// only carry a comment follow, sorted by name.
func Encode(w io.Writer, meta entities.Meta, entries []entities.Entry) error {
	contexts := orderedmap.New[string, *tsContext]()
	newContext := func(name string) *tsContext {
		c := &tsContext{Name: &name}
		if comment, ok := meta.ContextComments[name]; ok {
			c.Comment = &comment
		}
		contexts.Set(name, c)
		return c
	}
	for _, e := range entries {
		c, ok := contexts.Get(e.Context)
		if !ok {
			c = newContext(e.Context)
		}
		c.Messages = append(c.Messages, entryToMessage(e))
	}
	var empty []string
	for name := range meta.ContextComments {
		if _, ok := contexts.Get(name); !ok {
			empty = append(empty, name)
		}
	}
	sort.Strings(empty)
	for _, name := range empty {
		newContext(name)
	}

	doc := tsDocument{
		Version:        meta.Version,
		Language:       meta.Language,
		SourceLanguage: meta.SourceLanguage,
		Contexts:       make([]tsContext, 0, contexts.Len()),
	}
	for pair := contexts.Oldest(); pair != nil; pair = pair.Next() {
		doc.Contexts = append(doc.Contexts, *pair.Value)
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(xmlHeader + docType); err != nil {
		return err
	}
	enc := xml.NewEncoder(bw)
	enc.Indent("", indent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode TS document: %w", err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

func entryToMessage(e entities.Entry) tsMessage {
	source := e.Source
	m := tsMessage{
		ID:                e.ID,
		Source:            &source,
		ExtraComment:      e.ExtraComment,
		TranslatorComment: e.TranslatorComment,
		Translation:       &tsTranslation{Type: e.Status.Attr()},
	}
	if e.Disambiguator != "" {
		comment := e.Disambiguator
		m.Comment = &comment
	}
	for _, l := range e.Locations {
		m.Locations = append(m.Locations, tsLocation{Filename: l.File, Line: l.Line})
	}
	for _, x := range e.Extras {
		m.Extras = append(m.Extras, elementFromDomain(x))
	}
	switch {
	case e.IsNumerus():
		m.Numerus = numerusYes
		for _, f := range e.NumerusForms {
			m.Translation.NumerusForms = append(m.Translation.NumerusForms, tsNumerusForm{Text: f})
		}
	case e.HasVariants():
		m.Translation.Variants = variantsYes
		m.Translation.LengthVariants = e.LengthVariants
	default:
		m.Translation.Text = e.Translation
	}
	return m
}

func elementFromDomain(el entities.Element) tsElement {
	x := tsElement{XMLName: xml.Name{Local: el.Name}, Inner: el.Inner}
	for _, a := range el.Attrs {
		x.Attrs = append(x.Attrs, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	return x
}
