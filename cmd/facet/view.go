package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/facetlab/facet/pkg/math3d"
	"github.com/facetlab/facet/pkg/mesh"
	"github.com/facetlab/facet/pkg/render"
	"github.com/facetlab/facet/pkg/scene"
)

const (
	moveStep   = 10.0
	rotateStep = math.Pi / 12
	scaleStep  = 1.1
	gridStep   = 25.0
)

func viewCmd() *cobra.Command {
	var fps int
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive scene editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(fps)
		},
	}
	cmd.Flags().IntVar(&fps, "fps", 60, "target frames per second")
	return cmd
}

// inertiaAxis tracks velocity for one camera control with spring decay.
type inertiaAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

func newInertiaAxis(fps int) inertiaAxis {
	return inertiaAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update decays velocity toward 0 and returns the amount to apply this
// frame.
func (a *inertiaAxis) Update() float64 {
	v := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return v
}

// cameraInertia gives mouse orbits and wheel dollies a smooth tail-off.
type cameraInertia struct {
	Pitch, Yaw, Dolly inertiaAxis
}

func newCameraInertia(fps int) *cameraInertia {
	return &cameraInertia{
		Pitch: newInertiaAxis(fps),
		Yaw:   newInertiaAxis(fps),
		Dolly: newInertiaAxis(fps),
	}
}

func (c *cameraInertia) Apply(st *scene.Store) {
	dp := c.Pitch.Update()
	dy := c.Yaw.Update()
	dd := c.Dolly.Update()
	if dp != 0 || dy != 0 {
		st.OrbitCamera(dp, dy)
	}
	if dd != 0 {
		st.Dolly(dd)
	}
}

// hud draws the status overlay with raw ANSI, on top of the cell grid.
type hud struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	visible   bool
}

func newHUD() *hud {
	return &hud{fpsTime: time.Now(), visible: true}
}

func (h *hud) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func (h *hud) Render(width, height, faceCount int, st *scene.Store, snapping, paused bool) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		fgYellow  = "\x1b[93m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !h.visible {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	title := "facet"
	titleCol := max((width-len(title)-2)/2, 1)
	fmt.Printf("%s%s%s%s %s %s", moveTo(1, titleCol), bold, bgBlack, fgWhite, title, reset)

	faceStr := fmt.Sprintf(" %d faces ", faceCount)
	fmt.Printf("%s%s%s%s%s%s", moveTo(1, max(width-len(faceStr), 1)), bgBlack, fgCyan, bold, faceStr, reset)

	var status string
	if obj, ok := st.Selected(); ok {
		status = fmt.Sprintf(" %s (%s) pos %.0f,%.0f,%.0f ", obj.Name, obj.Kind,
			obj.Position.X, obj.Position.Y, obj.Position.Z)
		if obj.Locked {
			status += "locked "
		}
		if !obj.Visible {
			status += "hidden "
		}
	} else {
		status = " no selection (Tab or click to select) "
	}
	fmt.Printf("%s%s%s%s%s", moveTo(height, 1), bgBlack, fgWhite, status, reset)

	flags := ""
	if snapping {
		flags += "[grid] "
	}
	if paused {
		flags += "[paused] "
	}
	flags += "?: help off"
	fmt.Printf("%s%s%s%s%s%s", moveTo(height, max(width-len(flags)-1, 1)), bgBlack, dim, fgYellow, flags, reset)
}

func runViewer(fps int) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	// The scene store and the last rendered frame are shared between
	// the event goroutine and the draw loop.
	var mu sync.Mutex
	st := demoStore()
	var lastFaces []render.ProjectedFace

	fb := render.NewFramebuffer(width, height*2)

	inertia := newCameraInertia(fps)
	overlay := newHUD()

	kinds := mesh.Kinds()
	nextKind := 0
	snapping := false
	paused := false
	animTime := 0.0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var mouseDown, dragged bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range term.Events() {
			mu.Lock()
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fb = render.NewFramebuffer(width, height*2)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					mu.Unlock()
					cancel()
					return
				case ev.MatchString("tab"):
					st.SelectNext()
				case ev.MatchString("n"):
					st.AddObject(kinds[nextKind%len(kinds)], "")
					nextKind++
				case ev.MatchString("x", "delete"):
					if obj, ok := st.Selected(); ok {
						st.RemoveObject(obj.ID)
					}
				case ev.MatchString("left"):
					st.TranslateSelected(math3d.V3(-moveStep, 0, 0), math3d.AxisX)
				case ev.MatchString("right"):
					st.TranslateSelected(math3d.V3(moveStep, 0, 0), math3d.AxisX)
				case ev.MatchString("up"):
					st.TranslateSelected(math3d.V3(0, moveStep, 0), math3d.AxisY)
				case ev.MatchString("down"):
					st.TranslateSelected(math3d.V3(0, -moveStep, 0), math3d.AxisY)
				case ev.MatchString("<", ","):
					st.TranslateSelected(math3d.V3(0, 0, -moveStep), math3d.AxisZ)
				case ev.MatchString(">", "."):
					st.TranslateSelected(math3d.V3(0, 0, moveStep), math3d.AxisZ)
				case ev.MatchString("r"):
					st.RotateSelected(math3d.V3(0, rotateStep, 0))
				case ev.MatchString("f"):
					st.RotateSelected(math3d.V3(rotateStep, 0, 0))
				case ev.MatchString("+", "="):
					st.ScaleSelected(math3d.V3(scaleStep, scaleStep, scaleStep))
				case ev.MatchString("-", "_"):
					inv := 1 / scaleStep
					st.ScaleSelected(math3d.V3(inv, inv, inv))
				case ev.MatchString("g"):
					snapping = !snapping
					if snapping {
						st.SetGridStep(gridStep)
					} else {
						st.SetGridStep(0)
					}
				case ev.MatchString("v"):
					if obj, ok := st.Selected(); ok {
						st.SetVisible(obj.ID, !obj.Visible)
					}
				case ev.MatchString("k"):
					if obj, ok := st.Selected(); ok {
						st.SetLocked(obj.ID, !obj.Locked)
					}
				case ev.MatchString("l"):
					st.ToggleLighting()
				case ev.MatchString("space"):
					paused = !paused
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					overlay.visible = !overlay.visible
				}

			case uv.MouseClickEvent:
				mouseDown = true
				dragged = false
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				if mouseDown && !dragged {
					// A clean click selects whatever is under the
					// cursor. Cell rows are half the pixel rows.
					if id, ok := render.HitTest(lastFaces, float64(ev.X), float64(ev.Y*2)); ok {
						st.SelectObject(id)
					} else {
						st.SelectObject("")
					}
				}
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					if dx != 0 || dy != 0 {
						dragged = true
						inertia.Pitch.Velocity += float64(dy) * 0.015
						inertia.Yaw.Velocity += float64(dx) * 0.015
					}
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					inertia.Dolly.Velocity -= 12
				case uv.MouseWheelDown:
					inertia.Dolly.Velocity += 12
				}
			}
			mu.Unlock()
		}
	}()

	targetDuration := time.Second / time.Duration(fps)
	lastFrame := time.Now()
	bg := render.RGB(24, 26, 33)

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		mu.Lock()
		if !paused {
			animTime += dt
		}
		inertia.Apply(st)

		snap := st.Snapshot()
		cfg := st.Config()
		faces := render.Render(snap, cfg, fb.Width, fb.Height, animTime)
		lastFaces = faces

		fb.Clear(bg)
		fb.Paint(faces)
		fb.Draw(term, term.Bounds())
		w, h := width, height
		mu.Unlock()

		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		overlay.UpdateFPS()
		mu.Lock()
		overlay.Render(w, h, len(faces), st, snapping, paused)
		mu.Unlock()

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
