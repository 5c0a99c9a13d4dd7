package catalog

import (
	"github.com/dmitrymomot/hydroini/pkg/schema"
	"github.com/dmitrymomot/hydroini/pkg/validator"
)

func crossSectionDefinitions() []schema.Definition {
	return []schema.Definition{
		{
			Name:          TypeCrossSectionDef,
			Header:        "Definition",
			Discriminator: "type",
			Identifier:    "id",
			Delimiter:     " ",
			Fields: []schema.Field{
				schema.String("id").MarkRequired(),
				schema.String("type").MarkRequired(),
				schema.Float("thalweg"),
			},
		},
		{
			Name:   TypeCircleCrossSection,
			Parent: TypeCrossSectionDef,
			Fields: []schema.Field{
				schema.String("type").WithDefault("circle"),
				schema.Float("diameter").MarkRequired(),
				schema.String("frictionId"),
				schema.EnumOf("frictionType", FrictionType),
				schema.Float("frictionValue"),
			},
		},
		{
			Name:   TypeYZCrossSection,
			Parent: TypeCrossSectionDef,
			Fields: []schema.Field{
				schema.String("type").WithDefault("yz"),
				schema.Bool("singleValuedZ").WithDefault(true),
				schema.Int("yzCount").MarkRequired(),
				schema.ListOf("yCoordinates", schema.ScalarFloat),
				schema.ListOf("zCoordinates", schema.ScalarFloat),
				schema.String("conveyance").WithDefault("segmented"),
				schema.Int("sectionCount").WithDefault(1),
				schema.ListOf("frictionPositions", schema.ScalarFloat),
				schema.ListOf("frictionIds", schema.ScalarString).WithDelimiter(";"),
				schema.EnumListOf("frictionTypes", FrictionType).WithDelimiter(";"),
				schema.ListOf("frictionValues", schema.ScalarFloat),
			},
			Rules: []validator.Rule{
				validator.LengthOf("yzCount", "yCoordinates", "zCoordinates").RequiredWithLength(),
				// n sections are bounded by n + 1 positions
				validator.LengthOf("sectionCount", "frictionPositions").Plus(1),
				validator.LengthOf("sectionCount", "frictionIds", "frictionTypes", "frictionValues"),
			},
		},
		{
			Name:   TypeZWCrossSection,
			Parent: TypeCrossSectionDef,
			Fields: []schema.Field{
				schema.String("type").WithDefault("zw"),
				schema.Int("numLevels").MarkRequired(),
				schema.ListOf("levels", schema.ScalarFloat),
				schema.ListOf("flowWidths", schema.ScalarFloat),
				schema.ListOf("totalWidths", schema.ScalarFloat),
				schema.String("frictionId"),
			},
			Rules: []validator.Rule{
				validator.LengthOf("numLevels", "levels", "flowWidths").RequiredWithLength(),
				validator.LengthOf("numLevels", "totalWidths"),
			},
		},
	}
}
