// Package schema declares record types and validates raw INI sections against them.
//
// A record type is declared once, at startup, as a Definition: an ordered
// list of typed fields and an ordered list of structural rules from package
// validator. Registering the definition resolves its inheritance and yields an
// immutable RecordType. Parent fields come first; a redeclared field keeps its
// inherited name and type and replaces the default.
//
//	reg := schema.NewRegistry(schema.WithLogger(log))
//
//	reg.MustRegister(schema.Definition{
//		Name:       "ObservationPoint",
//		Header:     "ObservationPoint",
//		Identifier: "name",
//		Fields: []schema.Field{
//			schema.String("name").MarkRequired(),
//			schema.String("nodeId"),
//			schema.String("branchId"),
//			schema.Float("chainage"),
//		},
//		Rules: []validator.Rule{
//			validator.Location(validator.DefaultLocationConfig()),
//		},
//	})
//
//	rec, err := reg.Validate("ObservationPoint", map[string]any{"name": "obs1", "nodeid": "N1"})
//
// # Pipeline
//
// Validation works on a copy of the raw mapping. Every declared field that is
// present is normalized (delimiter split, promotion to a list, enum spelling,
// subtype default) and coerced to its type, in declaration order. Defaults
// are applied to absent fields and missing required fields are reported.
// Then all structural rules run, inherited rules first. A rule sees what
// earlier rules wrote.
//
// Every failure is collected into one *validator.Report. Keys the record type
// does not declare are preserved as extensions of the resulting Record.
//
// # Subtypes
//
// A record type may name a discriminator field. Resolve follows the raw value
// of that field to the registered subtype whose default matches it, so a
// [Structure] section with type = weir validates as a Weir.
//
// # Concurrency
//
// Registration must complete before validation starts. After that the
// registry is read-only and Validate may be called from many goroutines.
package schema
