package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"

	"scene-composer/internal/commands"
	"scene-composer/internal/config"
	"scene-composer/internal/console"
	"scene-composer/internal/debug"
	"scene-composer/internal/document"
	"scene-composer/internal/environment"
	"scene-composer/internal/graphics"
	"scene-composer/internal/logger"
	"scene-composer/internal/render"
	"scene-composer/internal/store"
	"scene-composer/internal/ui"
)

// environmentsDir holds optional extra environment YAML definitions.
const environmentsDir = "assets/environments"

func main() {
	log := logger.New()
	prefs := config.Load()

	st := store.New()
	docFS := workDirFS()

	envs := environment.NewTable()
	if err := envs.LoadDir(docFS, environmentsDir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Logf("environments: %v", err)
	}

	rend := render.New(st, log, envs)
	rend.GridVisible = prefs.GridVisible
	overlay := debug.New()
	overlay.ShowFPS = prefs.ShowFPS
	overlay.ShowMemAlloc = prefs.ShowMemAlloc

	reg := commands.NewRegistry()
	registerCommands(reg, &cmdDeps{
		store:   st,
		log:     log,
		fs:      docFS,
		envs:    envs,
		rend:    rend,
		overlay: overlay,
		prefs:   &prefs,
	})
	cons := console.New(log, reg)
	insp := ui.NewInspector(st)

	if prefs.LastDocument != "" {
		if doc, err := document.Load(docFS, prefs.LastDocument); err != nil {
			log.Logf("reopen %s: %v", prefs.LastDocument, err)
		} else {
			st.LoadDocument(doc)
			log.Logf("reopened %s", prefs.LastDocument)
		}
	}

	update := func() {
		cons.Update()
		if !cons.IsOpen() {
			rend.Update()
		}
	}
	draw := func() {
		rend.Draw()
		insp.Draw()
		cons.Draw()
		overlay.Draw()
	}
	graphics.Run("scene composer", update, draw)

	prefs.GridVisible = rend.GridVisible
	prefs.ShowFPS = overlay.ShowFPS
	prefs.ShowMemAlloc = overlay.ShowMemAlloc
	if err := config.Save(prefs); err != nil {
		log.Logf("save prefs: %v", err)
	}
}

// workDirFS returns a hackpadfs filesystem rooted at the process working
// directory, so document paths in commands are plain relative paths.
func workDirFS() hackpadfs.FS {
	fsys := osfs.NewFS()
	wd, err := os.Getwd()
	if err != nil {
		return fsys
	}
	fsPath, err := fsys.FromOSPath(wd)
	if err != nil {
		return fsys
	}
	sub, err := fsys.Sub(fsPath)
	if err != nil {
		return fsys
	}
	return sub
}
