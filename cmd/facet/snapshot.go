package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facetlab/facet/pkg/render"
)

func snapshotCmd() *cobra.Command {
	var (
		output        string
		width, height int
		animTime      float64
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the demo scene offscreen and save it as a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := demoStore()
			fb := render.NewFramebuffer(width, height)
			fb.Clear(render.RGB(24, 26, 33))
			fb.Paint(render.Render(st.Snapshot(), st.Config(), width, height, animTime))
			if err := fb.SavePNG(output); err != nil {
				return fmt.Errorf("save png: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", output, width, height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "scene.png", "output .png path")
	cmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "image height in pixels")
	cmd.Flags().Float64VarP(&animTime, "time", "t", 0, "animation time for time-varying solids")
	return cmd
}
