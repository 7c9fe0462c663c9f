package tsfile

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
)

// Decode parses a .ts document. Any structural problem aborts decoding with a
// *domain.ParseError; no partial result is returned.
func Decode(r io.Reader) (entities.Meta, []entities.Entry, error) {
	return decode(r, "")
}

func decode(r io.Reader, path string) (entities.Meta, []entities.Entry, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charsetReader

	var doc tsDocument
	if err := d.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return entities.Meta{}, nil, &domain.ParseError{Path: path, Msg: "empty document"}
		}
		return entities.Meta{}, nil, syntaxError(d, path, err)
	}
	if err := checkTrailing(d, path); err != nil {
		return entities.Meta{}, nil, err
	}

	meta := entities.Meta{
		Version:        doc.Version,
		Language:       doc.Language,
		SourceLanguage: doc.SourceLanguage,
	}

	var entries []entities.Entry
	for ci, c := range doc.Contexts {
		if c.Name == nil {
			return entities.Meta{}, nil, &domain.ParseError{Path: path, Msg: fmt.Sprintf("context #%d has no <name>", ci+1)}
		}
		if c.Comment != nil {
			if meta.ContextComments == nil {
				meta.ContextComments = make(map[string]string)
			}
			meta.ContextComments[*c.Name] = *c.Comment
		}
		for mi, m := range c.Messages {
			e, err := messageToEntry(*c.Name, m)
			if err != nil {
				return entities.Meta{}, nil, &domain.ParseError{
					Path: path,
					Msg:  fmt.Sprintf("context %q, message #%d", *c.Name, mi+1),
					Err:  err,
				}
			}
			entries = append(entries, e)
		}
	}
	return meta, entries, nil
}

func syntaxError(d *xml.Decoder, path string, err error) error {
	line, _ := d.InputPos()
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		line = syntaxErr.Line
	}
	return &domain.ParseError{Path: path, Line: line, Msg: "invalid TS document", Err: err}
}

// checkTrailing reads the rest of the input after </TS>. Only whitespace,
// comments and processing instructions may follow the root element.
func checkTrailing(d *xml.Decoder, path string) error {
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return syntaxError(d, path, err)
		}
		line, _ := d.InputPos()
		switch t := tok.(type) {
		case xml.StartElement:
			return &domain.ParseError{Path: path, Line: line, Msg: fmt.Sprintf("unexpected <%s> after </TS>", t.Name.Local)}
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return &domain.ParseError{Path: path, Line: line, Msg: "unexpected text after </TS>"}
			}
		}
	}
}

func messageToEntry(context string, m tsMessage) (entities.Entry, error) {
	if m.Source == nil {
		return entities.Entry{}, errors.New("missing <source>")
	}
	if m.Numerus != "" && m.Numerus != numerusYes {
		return entities.Entry{}, fmt.Errorf("invalid numerus attribute %q", m.Numerus)
	}

	e := entities.Entry{
		Context:           context,
		Source:            *m.Source,
		ID:                m.ID,
		ExtraComment:      m.ExtraComment,
		TranslatorComment: m.TranslatorComment,
		// A message without <translation> has never been touched by a translator.
		Status: entities.StatusUnfinished,
	}
	if m.Comment != nil {
		e.Disambiguator = *m.Comment
	}
	for _, l := range m.Locations {
		e.Locations = append(e.Locations, entities.Location{File: l.Filename, Line: l.Line})
	}
	for _, x := range m.Extras {
		e.Extras = append(e.Extras, elementToDomain(x))
	}

	if m.Numerus == numerusYes {
		e.NumerusForms = []string{}
	}
	if m.Translation == nil {
		return e, nil
	}

	status, err := entities.ParseStatus(m.Translation.Type)
	if err != nil {
		return entities.Entry{}, err
	}
	e.Status = status

	variants, err := hasVariants(m.Translation.Variants, len(m.Translation.LengthVariants))
	if err != nil {
		return entities.Entry{}, err
	}
	switch {
	case m.Numerus == numerusYes:
		if variants {
			return entities.Entry{}, errors.New("length variants on a numerus message are not supported")
		}
		for _, f := range m.Translation.NumerusForms {
			if fv, err := hasVariants(f.Variants, len(f.LengthVariants)); err != nil || fv {
				return entities.Entry{}, errors.New("length variants in <numerusform> are not supported")
			}
			e.NumerusForms = append(e.NumerusForms, f.Text)
		}
	case variants:
		e.LengthVariants = append([]string{}, m.Translation.LengthVariants...)
	default:
		if len(m.Translation.NumerusForms) > 0 {
			return entities.Entry{}, errors.New(`<numerusform> requires numerus="yes"`)
		}
		e.Translation = m.Translation.Text
	}
	return e, nil
}

func hasVariants(attr string, n int) (bool, error) {
	switch {
	case attr != "" && attr != variantsYes:
		return false, fmt.Errorf("invalid variants attribute %q", attr)
	case attr == "" && n > 0:
		return false, errors.New(`<lengthvariant> requires variants="yes"`)
	}
	return attr == variantsYes, nil
}

func elementToDomain(x tsElement) entities.Element {
	el := entities.Element{Name: x.XMLName.Local, Inner: x.Inner}
	for _, a := range x.Attrs {
		el.Attrs = append(el.Attrs, entities.ElementAttr{Name: a.Name.Local, Value: a.Value})
	}
	return el
}

// charsetReader decodes documents that declare a non UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
