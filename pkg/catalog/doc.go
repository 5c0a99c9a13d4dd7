// Package catalog declares the hydrolib record types understood by hydroini.
//
// The catalog is data: each record type is a schema.Definition listing its
// fields, defaults and structural rules. Register adds every definition to a
// registry; Default returns a process-wide registry with the catalog loaded.
//
// Covered sections:
//
//	[ObservationPoint]  observation points (obs ini)
//	[Lateral]           lateral discharges (ext)
//	[Structure]         weirs, culverts and pumps, selected by type
//	[Definition]        circle, yz and zw cross-section definitions, selected by type
//	[CrossSection]      cross-section locations
//	[StorageNode]       storage nodes
//	[Forcing]           boundary condition forcings, selected by function
//	[General] [Time] [Wind] [Geometry] [Output]  model definition (mdu)
//
// Sections with another header are not part of the catalog.
package catalog
