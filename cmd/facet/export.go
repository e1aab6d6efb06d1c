package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facetlab/facet/pkg/export"
)

func exportCmd() *cobra.Command {
	var (
		output   string
		animTime float64
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the demo scene as a binary glTF (.glb) file",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := demoStore()
			if err := export.WriteGLB(output, st.Snapshot(), animTime); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "scene.glb", "output .glb path")
	cmd.Flags().Float64VarP(&animTime, "time", "t", 0, "animation time for time-varying solids")
	return cmd
}
