package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/hydroini/pkg/catalog"
	"github.com/dmitrymomot/hydroini/pkg/schema"
)

func newTypesCmd(a *app) *cobra.Command {
	var fields bool

	cmd := &cobra.Command{
		Use:   "types [NAME...]",
		Short: "List the known record types",
		Long: `List the record types sections are validated against, with their INI
header and parent type. Naming types, or passing --fields, also lists the
fields of each type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := catalog.NewRegistry(schema.WithLogger(a.log))
			if err != nil {
				return err
			}

			types := reg.Types()
			if len(args) > 0 {
				types = nil
				for _, name := range args {
					rt, ok := reg.Lookup(name)
					if !ok {
						return fmt.Errorf("%w: %s", schema.ErrUnknownType, name)
					}
					types = append(types, rt)
				}
				fields = true
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tHEADER\tPARENT")
			for _, rt := range types {
				parent := "-"
				if rt.Parent() != nil {
					parent = rt.Parent().Name()
				}
				fmt.Fprintf(tw, "%s\t[%s]\t%s\n", rt.Name(), rt.Header(), parent)
				if fields {
					writeFields(tw, rt)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&fields, "fields", false, "list the fields of every type")
	return cmd
}

func writeFields(tw *tabwriter.Writer, rt *schema.RecordType) {
	for _, f := range rt.Fields() {
		var notes []string
		if f.Required {
			notes = append(notes, "required")
		}
		if f.Default != nil {
			notes = append(notes, fmt.Sprintf("default %v", f.Default))
		}
		if f.Repeated {
			notes = append(notes, "repeated")
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Alias, f.Type, strings.Join(notes, ", "))
	}
}
