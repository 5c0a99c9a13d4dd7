package catalog

import "github.com/dmitrymomot/hydroini/pkg/schema"

// modelDefinitions covers the most used sections of the model definition file.
func modelDefinitions() []schema.Definition {
	return []schema.Definition{
		{
			// shared by every file kind; fileType tells them apart
			Name:   TypeGeneral,
			Header: "General",
			Fields: []schema.Field{
				schema.String("program"),
				schema.String("version"),
				schema.String("fileVersion"),
				schema.String("fileType"),
				schema.Bool("autoStart"),
				schema.Bool("pathsRelativeToParent"),
			},
		},
		{
			Name:   TypeTime,
			Header: "Time",
			Fields: []schema.Field{
				schema.Int("refDate").WithDefault(20200101),
				schema.Float("tZone").WithDefault(0.0),
				schema.String("tUnit").WithDefault("S"),
				schema.Float("dtUser").WithDefault(300.0),
				schema.Float("dtNodal").WithDefault(21600.0),
				schema.Float("dtMax").WithDefault(30.0),
				schema.Float("dtInit").WithDefault(1.0),
				schema.Float("tStart").WithDefault(0.0),
				schema.Float("tStop").WithDefault(86400.0),
			},
		},
		{
			Name:      TypeWind,
			Header:    "Wind",
			Delimiter: " ",
			Fields: []schema.Field{
				schema.Int("icdTyp").WithDefault(2),
				schema.ListOf("cdBreakpoints", schema.ScalarFloat).WithDefault([]float64{0.00063, 0.00723}),
				schema.ListOf("windSpeedBreakpoints", schema.ScalarFloat).WithDefault([]float64{0, 100}),
				schema.Float("rhoAir").WithDefault(1.205),
				schema.Float("relativeWind").WithDefault(0.0),
				schema.Bool("windPartialDry").WithDefault(true),
				schema.Float("pavBnd").WithDefault(0.0),
				schema.Float("pavIni").WithDefault(0.0),
			},
		},
		{
			Name:   TypeGeometry,
			Header: "Geometry",
			Fields: []schema.Field{
				schema.Path("netFile"),
				schema.Path("bathymetryFile"),
				schema.ListOf("dryPointsFile", schema.ScalarPath),
				schema.ListOf("structureFile", schema.ScalarPath).WithDelimiter(";"),
				schema.Path("iniFieldFile"),
				schema.ListOf("landBoundaryFile", schema.ScalarPath),
				schema.ListOf("thinDamFile", schema.ScalarPath),
				schema.ListOf("fixedWeirFile", schema.ScalarPath),
				schema.ListOf("frictFile", schema.ScalarPath).WithDelimiter(";"),
				schema.Path("crossDefFile"),
				schema.Path("crossLocFile"),
				schema.Path("storageNodeFile"),
				schema.Bool("useCaching").WithDefault(false),
				schema.Float("uniformWidth1D").WithDefault(2.0),
				schema.Float("waterLevIni").WithDefault(0.0),
				schema.Float("bedLevUni").WithDefault(-5.0),
				schema.Int("bedLevType").WithDefault(3),
				schema.Int("conveyance2D").WithDefault(-1),
				schema.Int("kmx").WithDefault(0),
			},
		},
		{
			Name:   TypeOutput,
			Header: "Output",
			Fields: []schema.Field{
				schema.Path("outputDir"),
				schema.ListOf("obsFile", schema.ScalarPath),
				schema.ListOf("crsFile", schema.ScalarPath),
				schema.ListOf("hisInterval", schema.ScalarFloat).WithDelimiter(" ").WithDefault([]float64{300}),
				schema.ListOf("mapInterval", schema.ScalarFloat).WithDelimiter(" ").WithDefault([]float64{1200}),
				schema.ListOf("rstInterval", schema.ScalarFloat).WithDelimiter(" ").WithDefault([]float64{0}),
				schema.Int("mapFormat").WithDefault(4),
			},
		},
	}
}
