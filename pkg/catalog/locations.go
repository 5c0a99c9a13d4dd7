package catalog

import (
	"github.com/dmitrymomot/hydroini/pkg/schema"
	"github.com/dmitrymomot/hydroini/pkg/validator"
)

func locationDefinitions() []schema.Definition {
	// observation points sit on a branch or at a single x, y position
	obsLocation := validator.Location(validator.LocationConfig{
		Branch:                true,
		Coordinates:           true,
		MinimumNumCoordinates: 1,
	}).WithFields(validator.LocationFields{
		BranchID:     "branchId",
		Chainage:     "chainage",
		XCoordinates: "x",
		YCoordinates: "y",
		LocationType: "locationType",
	})

	lateralLocation := validator.Location(validator.LocationConfig{
		Node:                  true,
		Branch:                true,
		CoordinatesWithCount:  true,
		MinimumNumCoordinates: 1,
	})

	return []schema.Definition{
		{
			Name:       TypeObservationPoint,
			Header:     "ObservationPoint",
			Identifier: "name",
			Fields: []schema.Field{
				schema.String("name").MarkRequired(),
				schema.EnumOf("locationType", LocationType),
				schema.String("branchId"),
				schema.Float("chainage"),
				schema.Float("x"),
				schema.Float("y"),
			},
			Rules: []validator.Rule{obsLocation},
		},
		{
			Name:       TypeLateral,
			Header:     "Lateral",
			Identifier: "id",
			Fields: []schema.Field{
				schema.String("id").MarkRequired(),
				schema.String("name"),
				schema.String("type").WithDefault("discharge"),
				schema.EnumOf("locationType", LocationType),
				schema.String("nodeId"),
				schema.String("branchId"),
				schema.Float("chainage"),
				schema.Int("numCoordinates"),
				schema.ListOf("xCoordinates", schema.ScalarFloat).WithDelimiter(" "),
				schema.ListOf("yCoordinates", schema.ScalarFloat).WithDelimiter(" "),
				// a constant, a forcing file or "realtime"
				schema.String("discharge").MarkRequired(),
			},
			Rules: []validator.Rule{lateralLocation},
		},
		{
			Name:       TypeCrossSection,
			Header:     "CrossSection",
			Identifier: "id",
			Fields: []schema.Field{
				schema.String("id").MarkRequired(),
				schema.String("branchId"),
				schema.Float("chainage"),
				schema.Float("shift").WithDefault(0.0),
				schema.String("definitionId").MarkRequired(),
			},
			Rules: []validator.Rule{
				validator.Location(validator.LocationConfig{Branch: true}).
					WithFields(validator.LocationFields{BranchID: "branchId", Chainage: "chainage"}),
			},
		},
	}
}
