// Package checkstyle decodes Checkstyle XML reports.
package checkstyle

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ludo-technologies/csannotate/domain"
	"golang.org/x/text/encoding/ianaindex"
)

// RootElement is the expected document element of a report
const RootElement = "checkstyle"

type xmlReport struct {
	XMLName xml.Name
	Files   []xmlFile `xml:"file"`
}

type xmlFile struct {
	Name   string     `xml:"name,attr"`
	Errors []xmlError `xml:"error"`
}

type xmlError struct {
	Line     string `xml:"line,attr"`
	Column   string `xml:"column,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

// Parse decodes a report. A well-formed document whose root is not
// <checkstyle> yields an empty report rather than an error.
func Parse(data []byte) (*domain.ReportDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	return Decode(bytes.NewReader(data))
}

// Decode reads a report from r
func Decode(r io.Reader) (*domain.ReportDocument, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var raw xmlReport
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	// Trailing garbage after the root element is still malformed XML
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return nil, fmt.Errorf("unexpected text after root element")
			}
		case xml.StartElement:
			return nil, fmt.Errorf("unexpected element <%s> after root element", t.Name.Local)
		}
	}

	doc := &domain.ReportDocument{}
	if raw.XMLName.Local != RootElement {
		return doc, nil
	}

	doc.Files = make([]domain.ReportFile, 0, len(raw.Files))
	for _, f := range raw.Files {
		file := domain.ReportFile{
			Name:       f.Name,
			Violations: make([]domain.RawViolation, 0, len(f.Errors)),
		}
		for _, e := range f.Errors {
			file.Violations = append(file.Violations, domain.RawViolation{
				Line:     e.Line,
				Column:   e.Column,
				Severity: e.Severity,
				Message:  e.Message,
				Source:   e.Source,
			})
		}
		doc.Files = append(doc.Files, file)
	}
	return doc, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	if strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset: %s", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
