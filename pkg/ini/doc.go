// Package ini reads and writes the section based INI files of a hydraulic
// model and maps their sections onto validated records.
//
// Parse keeps the file structure: sections appear in file order, a header may
// repeat and a key may repeat within a section. Inline comments start with
// '#'. Keys are matched case-insensitively when a section is turned into a raw
// mapping.
//
//	doc, err := ini.Parse(f)
//	results := ini.DecodeSections(catalog.Default(), doc)
//	for _, res := range results {
//		if res.Err != nil {
//			// report res.Section.Header and res.Err
//		}
//	}
//
// Encode turns records back into a document. Every record is validated again
// before it is written, so mutations made through Record.Set cannot produce a
// file that would fail to load.
package ini
