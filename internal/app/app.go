// Package app is the application shell: it owns the session lifecycle, wires
// the tracker, gesture coordinator, sequencer, quiz and audio together, and
// drives them in a fixed order every frame.
package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Mo-Salah9/webar-atom/internal/atom"
	"github.com/Mo-Salah9/webar-atom/internal/audio"
	"github.com/Mo-Salah9/webar-atom/internal/commands"
	"github.com/Mo-Salah9/webar-atom/internal/debug"
	"github.com/Mo-Salah9/webar-atom/internal/fonts"
	"github.com/Mo-Salah9/webar-atom/internal/graphics"
	"github.com/Mo-Salah9/webar-atom/internal/input"
	"github.com/Mo-Salah9/webar-atom/internal/lesson"
	"github.com/Mo-Salah9/webar-atom/internal/logger"
	"github.com/Mo-Salah9/webar-atom/internal/placement"
	"github.com/Mo-Salah9/webar-atom/internal/quiz"
	"github.com/Mo-Salah9/webar-atom/internal/render"
	"github.com/Mo-Salah9/webar-atom/internal/scene"
	"github.com/Mo-Salah9/webar-atom/internal/settings"
	"github.com/Mo-Salah9/webar-atom/internal/terminal"
	"github.com/Mo-Salah9/webar-atom/internal/ui"
)

// wheelZoomStep is the scale change per mouse wheel notch.
const wheelZoomStep = 0.08

// Placement guidance lines, keyed by tracker phase.
const (
	hintSearching  = "Move around to find a surface"
	hintTracking   = "Tap anywhere to place the atom"
	hintSourceFail = "Surface detection unavailable"
)

// toastNoTarget is the transient message shown when a tap lands on nothing.
const toastNoTarget = "No particle there"

// lightDir is the fixed direction to the light, roughly overhead.
var lightDir = [3]float32{0.4, 1.0, 0.3}

// sourceResult is the outcome of the asynchronous surface-probe request.
type sourceResult struct {
	src placement.HitSource
	err error
}

// Application assembles every subsystem and implements the gesture target
// and the sequencer's model interface on top of the live atom instance.
type Application struct {
	log   *logger.Logger
	cfg   *settings.Manager
	sound *audio.Manager

	scn     *scene.Scene
	rend    *render.Renderer
	eng     *ui.Engine
	overlay *ui.Overlay
	tracker *placement.Tracker
	coord   *input.Coordinator
	seq     *lesson.Sequencer
	game    *quiz.Game
	term    *terminal.Terminal
	reg     *commands.Registry
	dbg     *debug.Debug

	model *atom.Atom // nil until placed

	sourceCh    chan sourceResult
	sourceFail  bool
	controllers input.ControllerSource

	// Mouse routing state: true while the active press began on a UI button.
	uiCaptured bool

	// Font loading is deferred to the first frame so it runs after the GL
	// context exists.
	fontLoaded bool

	// fatalErr blocks the interactive state behind the error panel. Set when
	// startup work that needs the GL context fails.
	fatalErr bool
}

// New wires the whole application. The surface probe is requested
// asynchronously and attached to the tracker when it arrives.
func New(log *logger.Logger, cfg *settings.Manager, sound *audio.Manager) *Application {
	a := &Application{
		log:   log,
		cfg:   cfg,
		sound: sound,
	}
	a.scn = scene.New()
	a.scn.SetGridVisible(cfg.Settings().GridVisible)
	a.rend = render.New()
	a.eng = ui.New()
	a.eng.SetStylesheet(ui.DefaultStylesheet())
	a.overlay = ui.NewOverlay(a.eng, graphics.WindowWidth, graphics.WindowHeight)
	a.overlay.SetHint(hintSearching)

	a.tracker = placement.NewTracker(log)
	a.coord = input.NewCoordinator(a)
	a.game = quiz.New(sound)
	content, err := lesson.LoadContent("assets/lessons.yaml")
	if err != nil {
		log.Log("lesson content: " + err.Error())
		content = lesson.DefaultContent()
	}
	a.seq = lesson.NewSequencer(a, a.overlay, a.game, content)

	a.reg = commands.NewRegistry()
	a.registerCommands()
	a.term = terminal.New(log, a.reg)

	a.dbg = debug.New()
	a.dbg.SetShowFPS(cfg.Settings().ShowFPS)
	a.dbg.StatusProvider = a.statusLine

	a.sourceCh = make(chan sourceResult, 1)
	go func() {
		// The probe is the scene's view-center ray; it exists as soon as the
		// scene does. A real device platform would block here on service
		// startup and could deliver an error instead.
		a.sourceCh <- sourceResult{src: a.scn}
	}()
	return a
}

// SetControllerSource attaches an optional hardware controller feed. Nil (the
// default) leaves controller support dormant.
func (a *Application) SetControllerSource(src input.ControllerSource) {
	a.controllers = src
}

// Update advances one frame in fixed order: console, probe attach, camera,
// tracker, pointer routing, model animation, gestures, quiz timers, overlay.
func (a *Application) Update(dt float32) {
	if a.fatalErr {
		a.overlay.Update(dt)
		return
	}
	a.term.Update()

	select {
	case res := <-a.sourceCh:
		if res.err != nil {
			a.sourceFail = true
			a.tracker.SourceFailed(res.err)
			a.overlay.SetHint(hintSourceFail)
		} else {
			a.tracker.AttachSource(res.src)
		}
	default:
	}

	a.scn.Update(dt, !a.term.IsOpen())
	a.tracker.Update(dt)

	if !a.term.IsOpen() {
		a.routeMouse()
		a.routeWheel()
		a.routeControllers()
	}

	if a.model != nil {
		a.model.Advance(dt)
	}
	a.coord.Update(dt)
	a.game.Update(dt)
	if a.seq.Placed() && a.seq.Index() == lesson.SceneQuiz {
		a.overlay.SetQuiz(a.quizView())
	}
	a.overlay.Update(dt)
	a.updateHint()
}

// Draw renders the frame: 3D backdrop, cursor and model, then the 2D overlay,
// console, and debug counters.
func (a *Application) Draw() {
	if !a.fontLoaded {
		a.fontLoaded = true
		a.loadFont()
		a.overlay.Relayout(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
		if err := a.rend.Warmup(); err != nil {
			a.fail("render pipeline unavailable: " + err.Error())
		}
	}
	if a.fatalErr {
		a.eng.Draw()
		return
	}
	cam := a.scn.Camera
	rl.BeginMode3D(cam)
	a.scn.DrawBackdrop()
	a.rend.SetView([3]float32{cam.Position.X, cam.Position.Y, cam.Position.Z}, lightDir)
	if pos, ok := a.tracker.Cursor(); ok {
		a.rend.DrawCursor(pos, a.tracker.CursorScale())
	}
	if a.model != nil {
		a.rend.DrawAtom(a.model)
	}
	rl.EndMode3D()

	a.eng.Draw()
	a.term.Draw()
	a.dbg.Draw()
}

// fail puts the session into the blocking error state: the panel replaces
// every interactive overlay and Update stops driving the subsystems.
func (a *Application) fail(msg string) {
	a.fatalErr = true
	a.overlay.ShowError(msg)
	a.log.Log(msg)
}

// loadFont installs an optional on-disk font on every text surface.
func (a *Application) loadFont() {
	path, err := fonts.Default()
	if err != nil {
		return
	}
	if err := a.eng.LoadFont(path); err != nil {
		a.log.Log("load font " + path + ": " + err.Error())
		return
	}
	a.term.SetFont(a.eng.Font())
	a.dbg.SetFont(a.eng.Font())
}

// Shutdown releases GPU resources and persists settings.
func (a *Application) Shutdown() {
	a.rend.Unload()
	a.scn.Unload()
	if err := a.cfg.Save(); err != nil {
		a.log.Log("save settings: " + err.Error())
	}
}

// place creates the atom at the confirmed pose and moves the session into the
// lesson.
func (a *Application) place(pos [3]float32) {
	m := atom.New()
	m.SetPosition(pos[0], pos[1], pos[2])
	a.model = m
	a.scn.SetGridVisible(false)
	a.overlay.SetHint("")
	a.seq.NotifyPlaced()
	a.log.Log("atom placed")
}

// resetSession returns everything to the pre-placement state: the model is
// disposed, tracker and gestures cleared, the sequencer back on scene 0.
func (a *Application) resetSession() {
	if a.model != nil {
		a.model.Dispose()
		a.model = nil
	}
	a.tracker.Reset()
	a.coord.Reset()
	a.seq.Reset()
	a.scn.SetGridVisible(a.cfg.Settings().GridVisible)
	if a.sourceFail {
		a.overlay.SetHint(hintSourceFail)
	} else {
		a.overlay.SetHint(hintSearching)
		a.tracker.AttachSource(a.scn)
	}
	a.log.Log("session reset")
}

// updateHint keeps the guidance line in sync with the tracker phase.
func (a *Application) updateHint() {
	if a.sourceFail {
		return
	}
	switch a.tracker.Phase() {
	case placement.Searching:
		a.overlay.SetHint(hintSearching)
	case placement.Tracking:
		a.overlay.SetHint(hintTracking)
	case placement.Placed:
		a.overlay.SetHint("")
	}
}

// quizView snapshots the matching game for the overlay.
func (a *Application) quizView() ui.QuizView {
	tokens := a.game.Tokens()
	slots := a.game.Slots()
	view := ui.QuizView{Status: a.game.Status()}
	for i, t := range tokens {
		view.Tokens = append(view.Tokens, ui.QuizTokenView{
			Label:    t.Kind.String(),
			Placed:   t.Placed,
			Selected: i == a.game.Selected(),
		})
	}
	for _, s := range slots {
		view.Slots = append(view.Slots, ui.QuizSlotView{
			Prompt:   s.Prompt,
			Label:    s.Label,
			Correct:  s.State == quiz.SlotCorrect,
			Flashing: s.State == quiz.SlotFlashing,
		})
	}
	return view
}

// statusLine is the debug overlay's session summary.
func (a *Application) statusLine() string {
	return fmt.Sprintf("%s | scene %d/%d", a.tracker.Phase(), a.seq.Index()+1, lesson.SceneCount)
}
