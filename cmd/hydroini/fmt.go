package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/hydroini/pkg/catalog"
	"github.com/dmitrymomot/hydroini/pkg/ini"
	"github.com/dmitrymomot/hydroini/pkg/logger"
	"github.com/dmitrymomot/hydroini/pkg/schema"
)

func newFmtCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite a model file in canonical form",
		Long: `Validate a file and write it back with canonical key spelling, normalized
values and defaults filled in. Sections are kept in file order. Nothing is
written when any section is invalid.

Examples:
  # Print the formatted file
  hydroini fmt structures.ini

  # Format in place
  hydroini fmt -w structures.ini`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.format(cmd, args[0], write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	return cmd
}

func (a *app) format(cmd *cobra.Command, path string, write bool) error {
	reg, err := catalog.NewRegistry(schema.WithLogger(a.log))
	if err != nil {
		return err
	}

	records, err := decodeFile(reg, a.newPrinter(cmd.ErrOrStderr()), path)
	if err != nil {
		return err
	}

	doc, err := ini.Encode(reg, records...)
	if err != nil {
		return err
	}
	data, err := doc.Bytes()
	if err != nil {
		return err
	}

	if !write {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.log.InfoContext(logger.ContextWithFile(cmd.Context(), path), "file formatted", logger.Component("fmt"))
	return nil
}

// decodeFile parses and validates path. Violations are printed with p and
// reported as errInvalid.
func decodeFile(reg *schema.Registry, p *printer, path string) ([]*schema.Record, error) {
	doc, err := ini.ParseFile(path)
	if err != nil {
		return nil, err
	}

	results := ini.DecodeSections(reg, doc)
	if p.failures(path, results) > 0 {
		return nil, errInvalid
	}

	records := make([]*schema.Record, len(results))
	for i, res := range results {
		records[i] = res.Record
	}
	return records, nil
}
