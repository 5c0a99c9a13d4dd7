package catalog

import (
	"github.com/dmitrymomot/hydroini/pkg/schema"
	"github.com/dmitrymomot/hydroini/pkg/validator"
)

func structureDefinitions() []schema.Definition {
	fields := validator.DefaultLocationFields()
	fields.NodeID = ""
	fields.LocationType = ""

	location := validator.Location(validator.LocationConfig{
		Branch:                true,
		CoordinatesWithCount:  true,
		MinimumNumCoordinates: 2,
	}).WithFields(fields)

	valveOpen := validator.Equals("valveOnOff", true)

	return []schema.Definition{
		{
			Name:          TypeStructure,
			Header:        "Structure",
			Discriminator: "type",
			Identifier:    "id",
			Delimiter:     " ",
			Fields: []schema.Field{
				schema.String("id").MarkRequired(),
				schema.String("name"),
				schema.String("type").MarkRequired(),
				schema.String("branchId"),
				schema.Float("chainage"),
				schema.Int("numCoordinates"),
				schema.ListOf("xCoordinates", schema.ScalarFloat),
				schema.ListOf("yCoordinates", schema.ScalarFloat),
			},
			Rules: []validator.Rule{location},
		},
		{
			Name:   TypeWeir,
			Parent: TypeStructure,
			Fields: []schema.Field{
				schema.String("type").WithDefault("weir"),
				schema.EnumOf("allowedFlowDir", FlowDirection).WithDefault("both"),
				schema.Float("crestLevel").MarkRequired(),
				schema.Float("crestWidth"),
				schema.Float("corrCoeff").WithDefault(1.0),
				schema.Bool("useVelocityHeight").WithDefault(true),
			},
		},
		{
			Name:   TypeCulvert,
			Parent: TypeStructure,
			Fields: []schema.Field{
				schema.String("type").WithDefault("culvert"),
				schema.EnumOf("allowedFlowDir", FlowDirection).WithDefault("both"),
				schema.Float("leftLevel").MarkRequired(),
				schema.Float("rightLevel").MarkRequired(),
				schema.String("csDefId").MarkRequired(),
				schema.Float("length").MarkRequired(),
				schema.Float("inletLossCoeff").MarkRequired(),
				schema.Float("outletLossCoeff").MarkRequired(),
				schema.Bool("valveOnOff").WithDefault(false),
				schema.Float("valveOpeningHeight"),
				schema.Int("numLossCoeff"),
				schema.ListOf("relOpening", schema.ScalarFloat),
				schema.ListOf("lossCoeff", schema.ScalarFloat),
				schema.EnumOf("bedFrictionType", FrictionType),
				schema.Float("bedFriction"),
				schema.EnumOf("subType", CulvertSubType).WithDefault("culvert"),
				schema.Float("bendLossCoeff"),
			},
			Rules: []validator.Rule{
				validator.RequiredWhen(valveOpen, "valveOpeningHeight", "numLossCoeff", "relOpening", "lossCoeff"),
				validator.Guard(valveOpen, validator.LengthOf("numLossCoeff", "relOpening", "lossCoeff")),
				validator.RequiredWhen(validator.Equals("subType", "invertedSiphon"), "bendLossCoeff"),
				validator.ForbiddenWhen(validator.Equals("subType", "culvert"), "bendLossCoeff"),
			},
		},
		{
			Name:   TypePump,
			Parent: TypeStructure,
			Fields: []schema.Field{
				schema.String("type").WithDefault("pump"),
				schema.EnumOf("orientation", Orientation).WithDefault("positive"),
				schema.EnumOf("controlSide", PumpControlSide).WithDefault("suctionSide"),
				schema.Int("numStages"),
				schema.String("capacity").MarkRequired(),
				schema.ListOf("startLevelSuctionSide", schema.ScalarFloat),
				schema.ListOf("stopLevelSuctionSide", schema.ScalarFloat),
				schema.ListOf("startLevelDeliverySide", schema.ScalarFloat),
				schema.ListOf("stopLevelDeliverySide", schema.ScalarFloat),
				schema.Int("numReductionLevels"),
				schema.ListOf("head", schema.ScalarFloat),
				schema.ListOf("reductionFactor", schema.ScalarFloat),
			},
			Rules: []validator.Rule{
				validator.Guard(
					validator.NotEquals("controlSide", "deliverySide"),
					validator.LengthOf("numStages", "startLevelSuctionSide", "stopLevelSuctionSide").RequiredWithLength(),
				),
				validator.Guard(
					validator.NotEquals("controlSide", "suctionSide"),
					validator.LengthOf("numStages", "startLevelDeliverySide", "stopLevelDeliverySide").RequiredWithLength(),
				),
				validator.LengthOf("numReductionLevels", "head", "reductionFactor").RequiredWithLength(),
			},
		},
	}
}
