package catalog

import "github.com/dmitrymomot/hydroini/pkg/schema"

func forcingDefinitions() []schema.Definition {
	offset := schema.Float("offset").WithDefault(0.0)
	factor := schema.Float("factor").WithDefault(1.0)

	return []schema.Definition{
		{
			Name:          TypeForcing,
			Header:        "Forcing",
			Discriminator: "function",
			Identifier:    "name",
			Fields: []schema.Field{
				schema.String("name").MarkRequired(),
				schema.String("function").MarkRequired().ResolveFromSubtypes(),
				schema.ListOf("quantity", schema.ScalarString).MarkRepeated().MarkRequired(),
				schema.ListOf("unit", schema.ScalarString).MarkRepeated().MarkRequired(),
			},
		},
		{
			Name:   TypeTimeSeries,
			Parent: TypeForcing,
			Fields: []schema.Field{
				schema.String("function").WithDefault("timeseries"),
				schema.EnumOf("timeInterpolation", TimeInterpolation).WithDefault("linear"),
				offset,
				factor,
			},
		},
		{
			Name:   TypeHarmonic,
			Parent: TypeForcing,
			Fields: []schema.Field{
				schema.String("function").WithDefault("harmonic"),
				factor,
			},
		},
		{
			Name:   TypeAstronomic,
			Parent: TypeForcing,
			Fields: []schema.Field{
				schema.String("function").WithDefault("astronomic"),
				factor,
			},
		},
		{
			Name:   TypeHarmonicCorrection,
			Parent: TypeForcing,
			Fields: []schema.Field{schema.String("function").WithDefault("harmoniccorrection")},
		},
		{
			Name:   TypeAstronomicCorrection,
			Parent: TypeForcing,
			Fields: []schema.Field{schema.String("function").WithDefault("astronomiccorrection")},
		},
		{
			Name:   TypeT3D,
			Parent: TypeForcing,
			Fields: []schema.Field{
				schema.String("function").WithDefault("t3d"),
				offset,
				factor,
				schema.ListOf("verticalPositions", schema.ScalarFloat).WithDelimiter(" ").MarkRequired(),
				schema.EnumOf("verticalInterpolation", VerticalInterpolation).WithDefault("linear"),
				schema.EnumOf("verticalPositionType", VerticalPositionType).WithDefault("percBed"),
			},
		},
		{
			Name:   TypeQHTable,
			Parent: TypeForcing,
			Fields: []schema.Field{schema.String("function").WithDefault("qhtable")},
		},
		{
			Name:   TypeConstant,
			Parent: TypeForcing,
			Fields: []schema.Field{
				schema.String("function").WithDefault("constant"),
				offset,
				factor,
			},
		},
	}
}
