package ini

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/hydroini/pkg/schema"
)

// Result is the outcome of decoding one section.
type Result struct {
	Index   int
	Section *Section
	Record  *schema.Record
	Err     error
}

// SectionError locates a decode failure in the document.
type SectionError struct {
	Index  int
	Header string
	Err    error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %d [%s]: %v", e.Index+1, e.Header, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }

// DecodeSections validates every section of doc against reg. Sections are
// independent: a failing section does not stop the others.
func DecodeSections(reg *schema.Registry, doc *Document) []Result {
	results := make([]Result, 0, len(doc.Sections))
	for i, s := range doc.Sections {
		rec, err := reg.ValidateSection(s.Header, s.Raw())
		results = append(results, Result{Index: i, Section: s, Record: rec, Err: err})
	}
	return results
}

// Decode returns the records of every valid section. The error joins a
// *SectionError per failing section.
func Decode(reg *schema.Registry, doc *Document) ([]*schema.Record, error) {
	var (
		records []*schema.Record
		errs    []error
	)
	for _, res := range DecodeSections(reg, doc) {
		if res.Err != nil {
			errs = append(errs, &SectionError{Index: res.Index, Header: res.Section.Header, Err: res.Err})
			continue
		}
		records = append(records, res.Record)
	}
	return records, errors.Join(errs...)
}

// Encode validates every record again and renders them as sections, in order.
func Encode(reg *schema.Registry, records ...*schema.Record) (*Document, error) {
	doc := &Document{Sections: make([]*Section, 0, len(records))}
	for i, rec := range records {
		s, err := EncodeRecord(reg, rec)
		if err != nil {
			return nil, &SectionError{Index: i, Header: rec.Type().Header(), Err: err}
		}
		doc.Sections = append(doc.Sections, s)
	}
	return doc, nil
}

// EncodeRecord validates rec against its record type and renders it as a
// section. Known fields are written by their canonical spelling.
func EncodeRecord(reg *schema.Registry, rec *schema.Record) (*Section, error) {
	rt := rec.Type()
	if rt.Header() == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoHeader, rt.Name())
	}

	checked, err := reg.ValidateType(rt, rec.Raw())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	s := NewSection(rt.Header())
	for _, e := range checked.Entries() {
		switch {
		case e.Field == nil:
			s.Add(e.Key, formatValue(e.Value, schema.DefaultDelimiter))
		case e.Field.Repeated:
			s.Add(e.Key, formatItems(e.Value)...)
		default:
			s.Add(e.Key, formatValue(e.Value, rt.Delimiter(e.Field.Name)))
		}
	}
	return s, nil
}

func formatValue(v any, delim string) string {
	switch val := v.(type) {
	case []string, []int, []float64, []bool, []any:
		return strings.Join(formatItems(val), delim)
	default:
		return formatScalar(v)
	}
}

func formatItems(v any) []string {
	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...)
	case []int:
		return mapItems(val)
	case []float64:
		return mapItems(val)
	case []bool:
		return mapItems(val)
	case []any:
		return mapItems(val)
	default:
		return []string{formatScalar(v)}
	}
}

func mapItems[T any](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = formatScalar(item)
	}
	return out
}

// formatScalar writes booleans as 1 and 0. Floats use plain notation unless
// they are very large or very small.
func formatScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(val)
	case float64:
		if a := math.Abs(val); a == 0 || (a >= 1e-4 && a < 1e15) {
			return strconv.FormatFloat(val, 'f', -1, 64)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
