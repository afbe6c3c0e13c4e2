package main

import (
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/dhamidi/jcanon/format"
)

func newVerifyCmd() *cobra.Command {
	var update bool

	cmd := &cobra.Command{
		Use:   "verify <tree.yaml> <golden>",
		Short: "Compare a tree's canonical rendering against a stored golden file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			decl, err := loadTree(args[0])
			if err != nil {
				return err
			}
			text, err := format.RenderCanonical(decl)
			if err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}

			if update {
				if err := os.WriteFile(args[1], []byte(text), 0o644); err != nil {
					return fmt.Errorf("write golden file: %w", err)
				}
				log.Infof("wrote %s", args[1])
				return nil
			}

			want, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read golden file: %w", err)
			}
			if diff := cmp.Diff(string(want), text); diff != "" {
				fmt.Fprintf(os.Stderr, "(-golden +rendered):\n%s", diff)
				return fmt.Errorf("canonical text differs from %s", args[1])
			}
			log.Infof("%s matches %s", args[0], args[1])
			return nil
		},
	}

	cmd.Flags().BoolVar(&update, "update", false, "rewrite the golden file with the current rendering")
	return cmd
}
