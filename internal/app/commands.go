package app

import (
	"flag"
	"fmt"
	"io"

	"github.com/Mo-Salah9/webar-atom/internal/lesson"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// registerCommands wires the console's "cmd ..." verbs to the session.
func (a *Application) registerCommands() {
	sceneFS := newFlagSet("scene")
	next := sceneFS.Bool("n", false, "next scene")
	prev := sceneFS.Bool("p", false, "previous scene")
	idx := sceneFS.Int("i", -1, "jump to scene index (0-based)")
	a.reg.Register("scene", sceneFS, func() error {
		switch {
		case *next:
			a.seq.Next()
		case *prev:
			a.seq.Prev()
		case *idx >= 0:
			a.seq.GoTo(*idx)
		default:
			return fmt.Errorf("scene %d/%d; use -n, -p or -i N", a.seq.Index()+1, lesson.SceneCount)
		}
		*next, *prev, *idx = false, false, -1
		if !a.seq.Placed() {
			return fmt.Errorf("place the atom first")
		}
		return nil
	})

	a.reg.Register("place", newFlagSet("place"), func() error {
		if a.model != nil {
			return fmt.Errorf("already placed")
		}
		pos, ok := a.tracker.Confirm()
		if !ok {
			return fmt.Errorf("no surface under the cursor yet")
		}
		a.place(pos)
		return nil
	})

	a.reg.Register("reset", newFlagSet("reset"), func() error {
		a.resetSession()
		return nil
	})

	a.reg.Register("grid", newFlagSet("grid"), func() error {
		s := a.cfg.Settings()
		s.GridVisible = !s.GridVisible
		if a.model == nil {
			a.scn.SetGridVisible(s.GridVisible)
		}
		return a.cfg.Save()
	})

	a.reg.Register("fps", newFlagSet("fps"), func() error {
		s := a.cfg.Settings()
		s.ShowFPS = !s.ShowFPS
		a.dbg.SetShowFPS(s.ShowFPS)
		return a.cfg.Save()
	})

	a.reg.Register("mem", newFlagSet("mem"), func() error {
		a.dbg.SetShowMemAlloc(!a.dbg.ShowMemAlloc)
		return nil
	})

	a.reg.Register("status", newFlagSet("status"), func() error {
		a.dbg.SetShowStatus(!a.dbg.ShowStatus)
		a.log.Log(a.statusLine())
		return nil
	})

	a.reg.Register("mute", newFlagSet("mute"), func() error {
		s := a.cfg.Settings()
		s.SoundEnabled = !s.SoundEnabled
		a.sound.SetMuted(!s.SoundEnabled)
		return a.cfg.Save()
	})
}
