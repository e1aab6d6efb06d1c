package scene

import (
	"fmt"

	"github.com/facetlab/facet/pkg/math3d"
	"github.com/facetlab/facet/pkg/mesh"
)

// Store owns the mutable scene state between frames. The renderer only
// ever sees the snapshot; all mutation funnels through the Store from
// a single goroutine, matching the frame-loop model.
type Store struct {
	scene    Scene
	cfg      Config
	lit      bool
	nextID   int
	gridStep float64
}

// Default object colors, cycled as objects are added.
var palette = []string{
	"#e74c3c", "#3498db", "#2ecc71", "#f39c12",
	"#9b59b6", "#1abc9c", "#e67e22", "#95a5a6",
}

// NewStore creates a store with the default camera and light rig.
func NewStore(cfg Config) *Store {
	return &Store{
		scene: Scene{
			Camera: DefaultCamera(cfg),
			Lights: DefaultLights(cfg),
		},
		cfg: cfg,
		lit: true,
	}
}

// Snapshot returns the scene as read by the renderer. Slices are
// copied so a held snapshot survives later edits.
func (st *Store) Snapshot() Scene {
	s := st.scene
	s.Objects = append([]Object(nil), st.scene.Objects...)
	s.Lights = append([]Light(nil), st.scene.Lights...)
	return s
}

// Config returns the engine configuration the store was built with.
func (st *Store) Config() Config {
	return st.cfg
}

// SetGridStep sets the translation snap step. Zero disables snapping.
func (st *Store) SetGridStep(step float64) {
	st.gridStep = step
}

// AddObject places a new solid at the origin and selects it.
func (st *Store) AddObject(kind mesh.Kind, name string) string {
	st.nextID++
	id := fmt.Sprintf("obj-%d", st.nextID)
	if name == "" {
		name = fmt.Sprintf("%s %d", kind, st.nextID)
	}
	st.scene.Objects = append(st.scene.Objects, Object{
		ID:       id,
		Name:     name,
		Kind:     kind,
		Scale:    math3d.One3(),
		Material: Material{Color: palette[(st.nextID-1)%len(palette)], Ambient: 0.4, Diffuse: 0.8},
		Visible:  true,
	})
	st.scene.SelectedID = id
	return id
}

// RemoveObject deletes an object, clearing the selection if it pointed
// at it. Locked objects cannot be removed.
func (st *Store) RemoveObject(id string) bool {
	for i, obj := range st.scene.Objects {
		if obj.ID != id {
			continue
		}
		if obj.Locked {
			return false
		}
		st.scene.Objects = append(st.scene.Objects[:i], st.scene.Objects[i+1:]...)
		if st.scene.SelectedID == id {
			st.scene.SelectedID = ""
		}
		return true
	}
	return false
}

// Object looks up an object by id.
func (st *Store) Object(id string) (Object, bool) {
	for _, obj := range st.scene.Objects {
		if obj.ID == id {
			return obj, true
		}
	}
	return Object{}, false
}

// Objects returns the current object list in scene order.
func (st *Store) Objects() []Object {
	return append([]Object(nil), st.scene.Objects...)
}

// SelectObject sets the selection. An empty or unknown id clears it.
func (st *Store) SelectObject(id string) {
	if _, ok := st.Object(id); !ok {
		st.scene.SelectedID = ""
		return
	}
	st.scene.SelectedID = id
}

// Selected returns the currently selected object, if any.
func (st *Store) Selected() (Object, bool) {
	return st.Object(st.scene.SelectedID)
}

// SelectNext cycles the selection through the object list in scene
// order, wrapping at the end. With no current selection it picks the
// first object.
func (st *Store) SelectNext() {
	if len(st.scene.Objects) == 0 {
		st.scene.SelectedID = ""
		return
	}
	cur := -1
	for i, obj := range st.scene.Objects {
		if obj.ID == st.scene.SelectedID {
			cur = i
			break
		}
	}
	next := (cur + 1) % len(st.scene.Objects)
	st.scene.SelectedID = st.scene.Objects[next].ID
}

func (st *Store) selectedIndex() int {
	for i, obj := range st.scene.Objects {
		if obj.ID == st.scene.SelectedID && !obj.Locked {
			return i
		}
	}
	return -1
}

// TranslateSelected moves the selected object by delta, constrained to
// the named axis set and snapped to the grid when a step is set.
// Locked objects are left alone.
func (st *Store) TranslateSelected(delta math3d.Vec3, axis math3d.Axis) bool {
	i := st.selectedIndex()
	if i < 0 {
		return false
	}
	pos := st.scene.Objects[i].Position.Add(delta.ConstrainAxis(axis))
	if st.gridStep > 0 {
		pos = pos.Snap(st.gridStep)
	}
	st.scene.Objects[i].Position = pos
	return true
}

// RotateSelected adds Euler deltas (radians) to the selected object.
func (st *Store) RotateSelected(delta math3d.Vec3) bool {
	i := st.selectedIndex()
	if i < 0 {
		return false
	}
	st.scene.Objects[i].Rotation = st.scene.Objects[i].Rotation.Add(delta)
	return true
}

// ScaleSelected multiplies the selected object's scale componentwise,
// floored so an object can never collapse or invert.
func (st *Store) ScaleSelected(factor math3d.Vec3) bool {
	i := st.selectedIndex()
	if i < 0 {
		return false
	}
	s := st.scene.Objects[i].Scale.Mul(factor)
	st.scene.Objects[i].Scale = math3d.V3(
		math3d.Clamp(s.X, 0.05, 20),
		math3d.Clamp(s.Y, 0.05, 20),
		math3d.Clamp(s.Z, 0.05, 20),
	)
	return true
}

// SetVisible toggles an object's render visibility.
func (st *Store) SetVisible(id string, visible bool) {
	for i := range st.scene.Objects {
		if st.scene.Objects[i].ID == id {
			st.scene.Objects[i].Visible = visible
			return
		}
	}
}

// SetLocked toggles an object's editor lock.
func (st *Store) SetLocked(id string, locked bool) {
	for i := range st.scene.Objects {
		if st.scene.Objects[i].ID == id {
			st.scene.Objects[i].Locked = locked
			return
		}
	}
}

// OrbitCamera adds pitch and yaw to the camera rotation, with pitch
// clamped short of the poles.
func (st *Store) OrbitCamera(dPitch, dYaw float64) {
	r := st.scene.Camera.Rotation
	r.X = math3d.Clamp(r.X+dPitch, -1.55, 1.55)
	r.Y += dYaw
	st.scene.Camera.Rotation = r
}

// PanCamera shifts the camera pan offset in screen-aligned X/Y.
func (st *Store) PanCamera(dx, dy float64) {
	st.scene.Camera.Position.X += dx
	st.scene.Camera.Position.Y += dy
}

// Dolly moves the camera along its distance axis within sane bounds.
func (st *Store) Dolly(delta float64) {
	st.scene.Camera.Position.Z = math3d.Clamp(st.scene.Camera.Position.Z+delta, 50, 5000)
}

// ToggleLighting swaps between the shaded rig and the flat ambient
// rig, and reports whether shading is now on.
func (st *Store) ToggleLighting() bool {
	st.lit = !st.lit
	if st.lit {
		st.scene.Lights = DefaultLights(st.cfg)
	} else {
		st.scene.Lights = FlatLights()
	}
	return st.lit
}
