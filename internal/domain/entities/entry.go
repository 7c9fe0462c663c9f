package entities

import "fmt"

// Status is the completion state of a translation.
type Status int

const (
	StatusFinished Status = iota
	StatusUnfinished
	// StatusObsolete and StatusVanished mark messages whose source text no
	// longer exists. They are kept on round trip but never served.
	StatusObsolete
	StatusVanished
)

func (s Status) String() string {
	switch s {
	case StatusFinished:
		return "finished"
	case StatusUnfinished:
		return "unfinished"
	case StatusObsolete:
		return "obsolete"
	case StatusVanished:
		return "vanished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseStatus maps the TS "type" attribute of <translation> to a Status.
// The empty string means finished.
func ParseStatus(typ string) (Status, error) {
	switch typ {
	case "":
		return StatusFinished, nil
	case "unfinished":
		return StatusUnfinished, nil
	case "obsolete":
		return StatusObsolete, nil
	case "vanished":
		return StatusVanished, nil
	default:
		return 0, fmt.Errorf("unknown translation type %q", typ)
	}
}

// Attr returns the TS "type" attribute value for s ("" for finished).
func (s Status) Attr() string {
	if s == StatusFinished {
		return ""
	}
	return s.String()
}

// Location is file/line provenance of a message. Values are kept verbatim
// (line numbers may be relative, e.g. "+12") and are display metadata only.
type Location struct {
	File string
	Line string
}

// Element is a child of a message that the catalog does not interpret, such
// as <oldsource> or <extra-po-flags>. Inner is the raw inner XML.
type Element struct {
	Name  string
	Attrs []ElementAttr
	Inner string
}

type ElementAttr struct {
	Name  string
	Value string
}

// Key identifies an entry inside a catalog.
type Key struct {
	Context       string
	Source        string
	Disambiguator string
}

// Entry is one translatable message.
type Entry struct {
	Context       string
	Source        string
	Disambiguator string // empty when the message has no <comment>
	Translation   string
	Status        Status

	// Round-trip metadata, ignored by lookup.
	ID                string
	Locations         []Location
	ExtraComment      string
	TranslatorComment string
	NumerusForms      []string // set only for numerus="yes" messages
	LengthVariants    []string // set only for variants="yes" translations, longest first
	Extras            []Element
}

func (e Entry) Key() Key {
	return Key{Context: e.Context, Source: e.Source, Disambiguator: e.Disambiguator}
}

// IsNumerus reports whether the message carries plural forms.
func (e Entry) IsNumerus() bool {
	return e.NumerusForms != nil
}

// HasVariants reports whether the translation is split into length variants.
func (e Entry) HasVariants() bool {
	return e.LengthVariants != nil
}

// Text is the translated text lookup would serve: the translation, the first
// numerus form for plural messages or the first length variant.
func (e Entry) Text() string {
	switch {
	case e.IsNumerus():
		return first(e.NumerusForms)
	case e.HasVariants():
		return first(e.LengthVariants)
	default:
		return e.Translation
	}
}

func first(forms []string) string {
	if len(forms) == 0 {
		return ""
	}
	return forms[0]
}

// Resolves reports whether lookup returns this entry's text instead of the
// source text. Unfinished translations count only when allowUnfinished is set.
func (e Entry) Resolves(allowUnfinished bool) bool {
	if e.Text() == "" {
		return false
	}
	switch e.Status {
	case StatusFinished:
		return true
	case StatusUnfinished:
		return allowUnfinished
	default:
		return false
	}
}

func (e Entry) clone() Entry {
	if e.Locations != nil {
		e.Locations = append([]Location(nil), e.Locations...)
	}
	if e.NumerusForms != nil {
		e.NumerusForms = append(make([]string, 0, len(e.NumerusForms)), e.NumerusForms...)
	}
	if e.LengthVariants != nil {
		e.LengthVariants = append(make([]string, 0, len(e.LengthVariants)), e.LengthVariants...)
	}
	if e.Extras != nil {
		extras := make([]Element, len(e.Extras))
		for i, x := range e.Extras {
			if x.Attrs != nil {
				x.Attrs = append([]ElementAttr(nil), x.Attrs...)
			}
			extras[i] = x
		}
		e.Extras = extras
	}
	return e
}
