// Package tsfile reads and writes Qt Linguist .ts translation catalogs.
package tsfile

import "encoding/xml"

// XML shape of a .ts file. Field order is the element order lupdate writes.
type tsDocument struct {
	XMLName        xml.Name    `xml:"TS"`
	Version        string      `xml:"version,attr,omitempty"`
	Language       string      `xml:"language,attr,omitempty"`
	SourceLanguage string      `xml:"sourcelanguage,attr,omitempty"`
	Contexts       []tsContext `xml:"context"`
}

type tsContext struct {
	Name     *string     `xml:"name"`
	Comment  *string     `xml:"comment"`
	Messages []tsMessage `xml:"message"`
}

type tsMessage struct {
	ID                string         `xml:"id,attr,omitempty"`
	Numerus           string         `xml:"numerus,attr,omitempty"`
	Locations         []tsLocation   `xml:"location"`
	Source            *string        `xml:"source"`
	Comment           *string        `xml:"comment"`
	ExtraComment      string         `xml:"extracomment,omitempty"`
	TranslatorComment string         `xml:"translatorcomment,omitempty"`
	Translation       *tsTranslation `xml:"translation"`
	// Children such as <oldsource> or <userdata>, written back untouched.
	Extras []tsElement `xml:",any"`
}

type tsElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   string     `xml:",innerxml"`
}

type tsLocation struct {
	Filename string `xml:"filename,attr,omitempty"`
	Line     string `xml:"line,attr,omitempty"`
}

type tsTranslation struct {
	Type           string          `xml:"type,attr,omitempty"`
	Variants       string          `xml:"variants,attr,omitempty"`
	Text           string          `xml:",chardata"`
	NumerusForms   []tsNumerusForm `xml:"numerusform"`
	LengthVariants []string        `xml:"lengthvariant"`
}

type tsNumerusForm struct {
	Variants       string   `xml:"variants,attr,omitempty"`
	Text           string   `xml:",chardata"`
	LengthVariants []string `xml:"lengthvariant"`
}

const (
	xmlHeader   = `<?xml version="1.0" encoding="utf-8"?>` + "\n"
	docType     = "<!DOCTYPE TS>\n"
	numerusYes  = "yes"
	variantsYes = "yes"
	indent      = "    "
)
