package catalog

import "github.com/dmitrymomot/hydroini/pkg/schema"

var (
	LocationType = schema.NewEnum("LocationType", "1D", "2D", "all")

	FlowDirection = schema.NewEnum("FlowDirection", "both", "positive", "negative", "none")

	FrictionType = schema.NewEnum("FrictionType",
		"Chezy", "Manning", "wallLawNikuradse", "WhiteColebrook",
		"StricklerNikuradse", "Strickler", "deBosBijkerk")

	CulvertSubType = schema.NewEnum("CulvertSubType", "culvert", "invertedSiphon")

	PumpControlSide = schema.NewEnum("PumpControlSide", "suctionSide", "deliverySide", "both")

	Orientation = schema.NewEnum("Orientation", "positive", "negative")

	StorageType = schema.NewEnum("StorageType", "reservoir", "closed")

	Interpolation = schema.NewEnum("Interpolation", "linear", "block")

	TimeInterpolation = schema.NewEnum("TimeInterpolation", "linear", "blockFrom", "blockTo")

	VerticalInterpolation = schema.NewEnum("VerticalInterpolation", "linear", "log", "block")

	VerticalPositionType = schema.NewEnum("VerticalPositionType", "percBed", "ZBed")
)
