package main

import (
	"github.com/quasilyte/gdata/v2"

	"github.com/Mo-Salah9/webar-atom/internal/app"
	"github.com/Mo-Salah9/webar-atom/internal/audio"
	"github.com/Mo-Salah9/webar-atom/internal/graphics"
	"github.com/Mo-Salah9/webar-atom/internal/logger"
	"github.com/Mo-Salah9/webar-atom/internal/settings"
)

func main() {
	log := logger.New()

	store, err := gdata.Open(gdata.Config{AppName: "atomview"})
	if err != nil {
		log.Log("settings storage unavailable: " + err.Error())
		store = nil
	}
	cfg, err := settings.NewManager(store)
	if err != nil {
		log.Log("settings: " + err.Error())
	}

	sound := audio.New()
	sound.Init()
	sound.SetMuted(!cfg.Settings().SoundEnabled)
	if !sound.Enabled() {
		log.Log("audio device unavailable; running silent")
	}

	a := app.New(log, cfg, sound)
	defer a.Shutdown()

	graphics.Run(cfg.Settings().Fullscreen, a.Update, a.Draw)
}
