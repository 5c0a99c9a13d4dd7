package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrymomot/hydroini/pkg/schema"
)

// Record type names.
const (
	TypeObservationPoint     = "ObservationPoint"
	TypeLateral              = "Lateral"
	TypeStructure            = "Structure"
	TypeWeir                 = "Weir"
	TypeCulvert              = "Culvert"
	TypePump                 = "Pump"
	TypeCrossSectionDef      = "CrossSectionDefinition"
	TypeCircleCrossSection   = "CircleCrossSection"
	TypeYZCrossSection       = "YZCrossSection"
	TypeZWCrossSection       = "ZWCrossSection"
	TypeCrossSection         = "CrossSection"
	TypeStorageNode          = "StorageNode"
	TypeForcing              = "Forcing"
	TypeTimeSeries           = "TimeSeries"
	TypeConstant             = "Constant"
	TypeHarmonic             = "Harmonic"
	TypeAstronomic           = "Astronomic"
	TypeHarmonicCorrection   = "HarmonicCorrection"
	TypeAstronomicCorrection = "AstronomicCorrection"
	TypeT3D                  = "T3D"
	TypeQHTable              = "QHTable"
	TypeGeneral              = "General"
	TypeTime                 = "Time"
	TypeWind                 = "Wind"
	TypeGeometry             = "Geometry"
	TypeOutput               = "Output"
)

// Definitions returns every record type of the catalog. Parents precede
// their subtypes.
func Definitions() []schema.Definition {
	var defs []schema.Definition
	defs = append(defs, locationDefinitions()...)
	defs = append(defs, structureDefinitions()...)
	defs = append(defs, crossSectionDefinitions()...)
	defs = append(defs, storageDefinitions()...)
	defs = append(defs, forcingDefinitions()...)
	defs = append(defs, modelDefinitions()...)
	return defs
}

// Register adds the catalog to reg.
func Register(reg *schema.Registry) error {
	var errs []error
	for _, def := range Definitions() {
		if _, err := reg.Register(def); err != nil {
			errs = append(errs, fmt.Errorf("catalog: %w", err))
		}
	}
	return errors.Join(errs...)
}

// NewRegistry creates a registry with the catalog registered.
func NewRegistry(opts ...schema.Option) (*schema.Registry, error) {
	reg := schema.NewRegistry(opts...)
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *schema.Registry
)

// Default returns a shared registry holding the catalog.
func Default() *schema.Registry {
	defaultOnce.Do(func() {
		reg, err := NewRegistry()
		if err != nil {
			panic(err)
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}
