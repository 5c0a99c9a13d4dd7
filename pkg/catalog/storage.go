package catalog

import (
	"github.com/dmitrymomot/hydroini/pkg/schema"
	"github.com/dmitrymomot/hydroini/pkg/validator"
)

func storageDefinitions() []schema.Definition {
	return []schema.Definition{
		{
			Name:       TypeStorageNode,
			Header:     "StorageNode",
			Identifier: "id",
			Delimiter:  " ",
			Fields: []schema.Field{
				schema.String("id").MarkRequired(),
				schema.String("name"),
				schema.String("manholeId"),
				schema.String("nodeId").MarkRequired(),
				schema.Bool("useStreetStorage").WithDefault(true),
				schema.EnumOf("storageType", StorageType).WithDefault("reservoir"),
				schema.Bool("useTable").WithDefault(false),
				schema.Float("bedLevel"),
				schema.Float("area"),
				schema.Float("streetLevel"),
				schema.Float("streetStorageArea"),
				schema.Int("numLevels"),
				schema.ListOf("levels", schema.ScalarFloat),
				schema.ListOf("storageArea", schema.ScalarFloat),
				schema.EnumOf("interpolate", Interpolation).WithDefault("linear"),
			},
			Rules: []validator.Rule{
				validator.RequiredWhen(validator.Equals("useTable", false), "bedLevel", "area", "streetLevel"),
				validator.RequiredWhen(validator.Equals("useTable", true), "numLevels", "levels", "storageArea"),
				validator.LengthOf("numLevels", "levels", "storageArea"),
				validator.ForbiddenWhen(validator.Equals("storageType", "closed"), "streetStorageArea"),
			},
		},
	}
}
