package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/facetlab/facet/pkg/math3d"
	"github.com/facetlab/facet/pkg/scene"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Intensity accumulates the scalar light contribution on a camera-space
// face normal. Ambient lights add their intensity unconditionally.
// Directional lights are defined in world space; their direction is
// rotated by the negated camera Euler angles (same X-Y-Z composition)
// so lighting stays pinned to the world while the camera orbits. The
// total is clamped to [0, 1].
func Intensity(normal math3d.Vec3, lights []scene.Light, cameraRotation math3d.Vec3) float64 {
	total := 0.0
	for _, l := range lights {
		switch l.Kind {
		case scene.LightAmbient:
			total += l.Intensity
		case scene.LightDirectional:
			dir := l.Direction.RotateEuler(cameraRotation.Negate()).Normalize()
			total += math.Max(0, normal.Dot(dir)) * l.Intensity
		}
	}
	return math3d.Clamp(total, 0, 1)
}

// ApplyLighting tints a #rrggbb base color by the light intensity and
// re-encodes it as an rgb(r,g,b) string. The 0.2 floor keeps geometry
// visible even at zero light. Anything that is not exactly a 6-digit
// hex color passes through unchanged: unlightable colors are a
// deliberate fallback, not an error.
func ApplyLighting(color string, intensity float64) string {
	if len(color) != 7 || !strings.HasPrefix(color, "#") {
		return color
	}
	c, err := colorful.Hex(color)
	if err != nil {
		return color
	}

	factor := 0.2 + intensity*0.8
	return fmt.Sprintf("rgb(%d,%d,%d)",
		int(math.Round(c.R*255*factor)),
		int(math.Round(c.G*255*factor)),
		int(math.Round(c.B*255*factor)),
	)
}
