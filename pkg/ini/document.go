package ini

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// Key is one key of a section with every value it was given, in file order.
type Key struct {
	Name   string
	Values []string
}

// Value returns the last value of the key.
func (k Key) Value() string {
	if len(k.Values) == 0 {
		return ""
	}
	return k.Values[len(k.Values)-1]
}

// Section is one [Header] block.
type Section struct {
	Header string
	Keys   []Key
}

// NewSection creates an empty section.
func NewSection(header string) *Section {
	return &Section{Header: header}
}

// Add appends values to name, creating the key when needed.
func (s *Section) Add(name string, values ...string) {
	for i := range s.Keys {
		if strings.EqualFold(s.Keys[i].Name, name) {
			s.Keys[i].Values = append(s.Keys[i].Values, values...)
			return
		}
	}
	s.Keys = append(s.Keys, Key{Name: name, Values: values})
}

// Get returns the key matching name, ignoring case.
func (s *Section) Get(name string) (Key, bool) {
	for _, k := range s.Keys {
		if strings.EqualFold(k.Name, name) {
			return k, true
		}
	}
	return Key{}, false
}

// Raw returns the section as a mapping with lower-cased keys. A key given
// once maps to its string value, a repeated key to all of its values.
func (s *Section) Raw() map[string]any {
	raw := make(map[string]any, len(s.Keys))
	for _, k := range s.Keys {
		name := strings.ToLower(k.Name)
		switch len(k.Values) {
		case 0:
			raw[name] = ""
		case 1:
			raw[name] = k.Values[0]
		default:
			raw[name] = append([]string(nil), k.Values...)
		}
	}
	return raw
}

// Document is an ordered list of sections.
type Document struct {
	Sections []*Section
}

// Section returns the sections with the given header, ignoring case.
func (d *Document) Section(header string) []*Section {
	var found []*Section
	for _, s := range d.Sections {
		if strings.EqualFold(s.Header, header) {
			found = append(found, s)
		}
	}
	return found
}

func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		AllowNonUniqueSections: true,
		AllowShadows:           true,
		IgnoreInlineComment:    true,
		KeyValueDelimiters:     "=",
	}
}

// Parse reads an INI document.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return ParseBytes(data)
}

// ParseFile reads the INI document stored at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return ParseBytes(data)
}

// ParseBytes reads an INI document from data.
func ParseBytes(data []byte) (*Document, error) {
	f, err := ini.LoadSources(loadOptions(), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	doc := &Document{}
	for _, sec := range f.Sections() {
		keys := sec.Keys()
		if sec.Name() == ini.DefaultSection && len(keys) == 0 {
			continue
		}

		section := NewSection(sec.Name())
		if sec.Name() == ini.DefaultSection {
			section.Header = ""
		}
		for _, k := range keys {
			values := k.ValueWithShadows()
			for i, v := range values {
				values[i] = stripComment(v)
			}
			section.Add(k.Name(), values...)
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc, nil
}

// stripComment cuts an inline '#' comment off a value.
func stripComment(v string) string {
	if i := strings.IndexByte(v, '#'); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// Write renders doc in INI syntax.
func Write(w io.Writer, doc *Document) error {
	f := ini.Empty(loadOptions())
	for _, s := range doc.Sections {
		if s.Header == "" {
			continue
		}
		sec, err := f.NewSection(s.Header)
		if err != nil {
			return fmt.Errorf("%w: section [%s]: %w", ErrWrite, s.Header, err)
		}
		for _, k := range s.Keys {
			if err := writeKey(sec, k); err != nil {
				return fmt.Errorf("%w: [%s] %s: %w", ErrWrite, s.Header, k.Name, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func writeKey(sec *ini.Section, k Key) error {
	first := ""
	if len(k.Values) > 0 {
		first = k.Values[0]
	}
	key, err := sec.NewKey(k.Name, first)
	if err != nil {
		return err
	}
	for _, v := range k.Values[min(1, len(k.Values)):] {
		if err := key.AddShadow(v); err != nil {
			return err
		}
	}
	return nil
}

// Bytes renders doc and returns the result.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
