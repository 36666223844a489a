// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package xmlfile implements a row source that reads XML tracker exports.
// Every child element of the document root becomes one row and the child
// elements of that entry become its fields.
package xmlfile

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yamtrack-tools/yamport/internal/logger"
	"github.com/yamtrack-tools/yamport/internal/source"
)

const loggerName = "yamport:xmlfile"

// ErrParsing reports failures that occur while decoding the XML document.
var ErrParsing = errors.New("error parsing xml")

var _ source.RowSource = &Source{}

// Source streams the entries of an XML export file.
type Source struct {
	path string
}

// New returns a Source reading the XML file at path.
func New(path string) *Source {
	return &Source{path: path}
}

// StreamRows reads the XML file and sends one Row per root child element on results.
func (s *Source) StreamRows(ctx context.Context, results chan<- source.Row) error {
	log := logger.FromContext(ctx).WithName(loggerName)

	file, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := xml.NewDecoder(file)
	root, err := findRootElement(decoder)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrParsing, s.path, err)
	}

	log.Debug("reading xml input", "path", s.path, "root", root.Name.Local)

	number := 0
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrParsing, s.path, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		number++
		fields, err := decodeEntry(decoder, start)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrParsing, s.path, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- source.Row{Number: number, Fields: fields}:
		}
	}
}

// findRootElement advances the decoder to the document root element.
func findRootElement(decoder *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := decoder.Token()
		if err != nil {
			return xml.StartElement{}, err
		}

		if start, ok := token.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// decodeEntry consumes one entry element turning its attributes and child
// elements into a field map.
func decodeEntry(decoder *xml.Decoder, start xml.StartElement) (map[string]string, error) {
	fields := make(map[string]string)
	for _, attr := range start.Attr {
		fields[attr.Name.Local] = attr.Value
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch element := token.(type) {
		case xml.StartElement:
			var value string
			if err := decoder.DecodeElement(&value, &element); err != nil {
				return nil, err
			}
			fields[element.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			return fields, nil
		}
	}
}
