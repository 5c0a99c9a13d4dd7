package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/hydroini/pkg/catalog"
	"github.com/dmitrymomot/hydroini/pkg/schema"
)

// exportedRecord is the export form of one section.
type exportedRecord struct {
	Section string         `json:"section" yaml:"section"`
	Type    string         `json:"type" yaml:"type"`
	Values  *schema.Record `json:"-" yaml:"values"`
	Map     map[string]any `json:"values" yaml:"-"`
}

func newExportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Dump validated records as YAML or JSON",
		Long: `Validate a file and print its records with typed values, defaults
included. YAML keeps the field order of each record type.

Examples:
  hydroini export crsdef.ini
  hydroini export --format json boundaryconditions.bc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.export(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml, json")
	return cmd
}

func (a *app) export(cmd *cobra.Command, path, format string) error {
	format = strings.ToLower(format)
	if format != "yaml" && format != "json" {
		return fmt.Errorf("unsupported format %q", format)
	}

	reg, err := catalog.NewRegistry(schema.WithLogger(a.log))
	if err != nil {
		return err
	}
	records, err := decodeFile(reg, a.newPrinter(cmd.ErrOrStderr()), path)
	if err != nil {
		return err
	}

	out := make([]exportedRecord, len(records))
	for i, rec := range records {
		out[i] = exportedRecord{
			Section: rec.Type().Header(),
			Type:    rec.Type().Name(),
			Values:  rec,
			Map:     rec.Map(),
		}
	}

	w := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
