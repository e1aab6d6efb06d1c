// facet - Terminal 3D Scene Editor
// Build and view scenes of procedural solids with full software 3D
// rendering, then take them elsewhere as glTF or PNG.
//
// Controls (facet view):
//
//	Mouse drag  - Orbit camera (yaw/pitch)
//	Mouse click - Select object under the cursor
//	Scroll      - Dolly in/out
//	Tab         - Cycle selection
//	N           - Add the next solid kind
//	X           - Delete selected object
//	Arrows      - Move selected object (X/Y)
//	< / >       - Move selected object along Z
//	R / F       - Rotate selected object about Y / X
//	+ / -       - Scale selected object up/down
//	G           - Toggle grid snapping
//	V           - Toggle visibility of selected object
//	K           - Toggle lock on selected object
//	L           - Toggle lighting rig
//	Space       - Pause/resume animation
//	?           - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "facet",
		Short: "Terminal 3D scene editor with a software render pipeline",
		Long: "facet builds scenes of procedural solids (boxes, spheres, tori, " +
			"metaballs and friends), renders them with a CPU-only painter's " +
			"pipeline, and shows them right in the terminal.",
		SilenceUsage: true,
	}
	root.AddCommand(viewCmd(), exportCmd(), snapshotCmd())

	if err := fang.Execute(context.Background(), root); err != nil {
		os.Exit(1)
	}
}
