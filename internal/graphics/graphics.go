package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Default windowed size. Fullscreen uses the primary monitor's resolution.
const (
	WindowWidth  = 1280
	WindowHeight = 720
	windowTitle  = "Atom Viewer"
)

// Run opens the window and drives the main loop. Each frame it calls update
// with the frame's delta time, then clears the screen and calls draw between
// BeginDrawing/EndDrawing. ESC is reserved for the console, so the window
// closes via its close button only.
func Run(fullscreen bool, update func(dt float32), draw func()) {
	if fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), windowTitle)
	} else {
		rl.InitWindow(WindowWidth, WindowHeight, windowTitle)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC toggles the console, not quit
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
