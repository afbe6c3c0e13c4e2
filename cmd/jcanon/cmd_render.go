package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jcanon/format"
)

func newRenderCmd() *cobra.Command {
	var inner bool
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "render <tree.yaml>",
		Short: "Render a declaration tree to its canonical text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decl, err := loadTree(args[0])
			if err != nil {
				return err
			}

			var enc format.Encoder
			switch outputFormat {
			case "java":
				ce := format.NewCanonicalEncoder(os.Stdout)
				ce.RenderInner(inner)
				enc = ce
			case "json":
				enc = format.NewJSONEncoder(os.Stdout)
			default:
				return fmt.Errorf("unsupported output format: %s (expected java or json)", outputFormat)
			}
			if err := enc.Encode(decl); err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&inner, "inner", true, "expand inner classes recursively")
	cmd.Flags().StringVar(&outputFormat, "format", "java", "output format: java or json")
	return cmd
}
