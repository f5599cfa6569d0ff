package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hack-pad/hackpadfs"

	"scene-composer/internal/assets"
	"scene-composer/internal/commands"
	"scene-composer/internal/config"
	"scene-composer/internal/debug"
	"scene-composer/internal/document"
	"scene-composer/internal/environment"
	"scene-composer/internal/lighting"
	"scene-composer/internal/logger"
	"scene-composer/internal/render"
	"scene-composer/internal/store"
)

// fetchCacheDir is where external asset references are downloaded.
const fetchCacheDir = "cache/fetched"

type cmdDeps struct {
	store   *store.Store
	log     *logger.Logger
	fs      hackpadfs.FS
	envs    *environment.Table
	rend    *render.Renderer
	overlay *debug.Overlay
	prefs   *config.Prefs
}

// registerCommands wires every console verb to the store and its
// collaborators. Boundary checks (extensions, duplicate names) happen here;
// the store only sees valid operations.
func registerCommands(reg *commands.Registry, d *cmdDeps) {
	reg.Register("help", "list commands", flag.NewFlagSet("help", flag.ContinueOnError), func(args []string) error {
		for _, name := range reg.Names() {
			d.log.Logf("  %-18s %s", name, reg.Summary(name))
		}
		return nil
	})

	importFS := flag.NewFlagSet("import", flag.ContinueOnError)
	importFile := importFS.String("file", "", "local model file (.glb/.json), embedded into saves")
	importURL := importFS.String("url", "", "external model reference, kept as a link")
	importName := importFS.String("name", "", "library name (default: from file/url)")
	reg.Register("import", "add a model to the asset library", importFS, func(args []string) error {
		var name, url string
		switch {
		case *importFile != "":
			if !assets.IsSupported(*importFile) {
				return fmt.Errorf("unsupported file %q (want .glb or .json)", *importFile)
			}
			payload, err := assets.ImportFile(*importFile)
			if err != nil {
				return err
			}
			name, url = assets.NameFromPath(*importFile), payload
		case *importURL != "":
			// Fetch up front so a bad link is caught at import, not at load.
			if _, err := assets.Fetch(*importURL, fetchCacheDir); err != nil {
				return err
			}
			name, url = assets.NameFromPath(*importURL), *importURL
		default:
			return fmt.Errorf("need -file or -url")
		}
		if *importName != "" {
			name = *importName
		}
		if _, exists := d.store.Asset(name); exists {
			return fmt.Errorf("asset %q already in library (pick another -name)", name)
		}
		if err := d.store.AddAsset(store.LibraryAsset{Name: name, URL: url}); err != nil {
			return err
		}
		d.log.Logf("imported %s", name)
		return nil
	})

	removeFS := flag.NewFlagSet("remove", flag.ContinueOnError)
	removeName := removeFS.String("name", "", "library asset to remove (cascades to placed items)")
	reg.Register("remove", "remove a library asset and its placed items", removeFS, func(args []string) error {
		if *removeName == "" {
			return fmt.Errorf("need -name")
		}
		if !d.store.RemoveAsset(*removeName) {
			return fmt.Errorf("no asset %q", *removeName)
		}
		return nil
	})

	reg.Register("assets", "list the asset library", flag.NewFlagSet("assets", flag.ContinueOnError), func(args []string) error {
		list := d.store.Assets()
		if len(list) == 0 {
			d.log.Log("library is empty")
			return nil
		}
		for _, a := range list {
			kind := "link"
			if assets.IsEmbedded(a.URL) {
				kind = "embedded"
			}
			d.log.Logf("  %s (%s)", a.Name, kind)
		}
		return nil
	})

	addFS := flag.NewFlagSet("add", flag.ContinueOnError)
	addAsset := addFS.String("asset", "", "library asset to place")
	reg.Register("add", "place a library asset into the scene", addFS, func(args []string) error {
		if *addAsset == "" {
			return fmt.Errorf("need -asset")
		}
		it, err := d.store.AddItem(*addAsset)
		if err != nil {
			return err
		}
		d.store.Select(it.ID)
		d.log.Logf("placed %s as %s", it.Asset, it.ID)
		return nil
	})

	reg.Register("items", "list placed scene items", flag.NewFlagSet("items", flag.ContinueOnError), func(args []string) error {
		items := d.store.Items()
		if len(items) == 0 {
			d.log.Log("scene is empty")
			return nil
		}
		selected, _ := d.store.Selected()
		for _, it := range items {
			marker := " "
			if it.ID == selected {
				marker = "*"
			}
			id := it.ID
			if len(id) > 8 {
				id = id[:8]
			}
			d.log.Logf(" %s %s (%s) at %.1f,%.1f,%.1f", marker, it.Name, id, it.Position[0], it.Position[1], it.Position[2])
		}
		return nil
	})

	selectFS := flag.NewFlagSet("select", flag.ContinueOnError)
	selectID := selectFS.String("id", "", "item id (prefix accepted)")
	selectNone := selectFS.Bool("none", false, "clear selection")
	reg.Register("select", "select a placed item", selectFS, func(args []string) error {
		if *selectNone {
			d.store.ClearSelection()
			return nil
		}
		if *selectID == "" {
			return fmt.Errorf("need -id or -none")
		}
		for _, it := range d.store.Items() {
			if strings.HasPrefix(it.ID, *selectID) {
				d.store.Select(it.ID)
				return nil
			}
		}
		return fmt.Errorf("no item with id %q", *selectID)
	})

	deleteFS := flag.NewFlagSet("delete", flag.ContinueOnError)
	deleteID := deleteFS.String("id", "", "item id (default: selection)")
	reg.Register("delete", "delete a placed item", deleteFS, func(args []string) error {
		id := *deleteID
		if id == "" {
			sel, ok := d.store.Selected()
			if !ok {
				return fmt.Errorf("nothing selected")
			}
			id = sel
		}
		if !d.store.RemoveItem(id) {
			return fmt.Errorf("no item %q", id)
		}
		return nil
	})

	modeFS := flag.NewFlagSet("mode", flag.ContinueOnError)
	modeName := modeFS.String("name", "", "translate, rotate, or scale")
	reg.Register("mode", "set the transform mode", modeFS, func(args []string) error {
		m, ok := store.ParseTransformMode(*modeName)
		if !ok {
			return fmt.Errorf("unknown mode %q", *modeName)
		}
		d.store.SetMode(m)
		return nil
	})

	roomFS := flag.NewFlagSet("room", flag.ContinueOnError)
	roomAsset := roomFS.String("asset", "", "library asset whose geometry is the room")
	reg.Register("room", "designate the room asset", roomFS, func(args []string) error {
		if *roomAsset == "" {
			return fmt.Errorf("need -asset")
		}
		if _, ok := d.store.Asset(*roomAsset); !ok {
			return fmt.Errorf("no asset %q", *roomAsset)
		}
		d.store.SetRoomAsset(*roomAsset)
		return nil
	})

	roomPresetFS := flag.NewFlagSet("room-preset", flag.ContinueOnError)
	roomPresetName := roomPresetFS.String("name", "", "preset name, or off")
	reg.Register("room-preset", "set the room lighting preset", roomPresetFS, func(args []string) error {
		p := lighting.RoomPreset(*roomPresetName)
		if !p.Known() {
			d.log.Logf("unknown preset %q, room lighting will be off (known: %v)", *roomPresetName, lighting.RoomPresets())
		}
		d.store.SetRoomPreset(p)
		return nil
	})

	furnPresetFS := flag.NewFlagSet("furniture-preset", flag.ContinueOnError)
	furnPresetName := furnPresetFS.String("name", "", "preset name")
	reg.Register("furniture-preset", "set the furniture lighting preset", furnPresetFS, func(args []string) error {
		p := lighting.FurniturePreset(*furnPresetName)
		if !p.Known() {
			d.log.Logf("unknown preset %q, falling back to default (known: %v)", *furnPresetName, lighting.FurniturePresets())
		}
		d.store.SetFurniturePreset(p)
		return nil
	})

	intensityFS := flag.NewFlagSet("intensity", flag.ContinueOnError)
	intensityRoom := intensityFS.Float64("room", -1, "room light multiplier [0..3]")
	intensityFurn := intensityFS.Float64("furniture", -1, "furniture light multiplier [0..3]")
	reg.Register("intensity", "set lighting intensity multipliers", intensityFS, func(args []string) error {
		if *intensityRoom < 0 && *intensityFurn < 0 {
			return fmt.Errorf("need -room and/or -furniture")
		}
		if *intensityRoom >= 0 {
			d.store.SetRoomIntensity(float32(*intensityRoom))
		}
		if *intensityFurn >= 0 {
			d.store.SetFurnitureIntensity(float32(*intensityFurn))
		}
		return nil
	})

	brightnessFS := flag.NewFlagSet("brightness", flag.ContinueOnError)
	brightnessVal := brightnessFS.Float64("value", 1, "room material brightness [0.5..3]")
	reg.Register("brightness", "set room material brightness", brightnessFS, func(args []string) error {
		d.store.SetRoomBrightness(float32(*brightnessVal))
		return nil
	})

	envFS := flag.NewFlagSet("environment", flag.ContinueOnError)
	envName := envFS.String("name", "", "environment name")
	reg.Register("environment", "set the scene environment", envFS, func(args []string) error {
		if *envName == "" {
			d.log.Logf("environments: %s", strings.Join(d.envs.Names(), ", "))
			return nil
		}
		d.store.SetEnvironment(*envName)
		return nil
	})

	gridFS := flag.NewFlagSet("grid", flag.ContinueOnError)
	gridVisible := gridFS.Bool("visible", true, "show the editor grid")
	reg.Register("grid", "toggle the editor grid", gridFS, func(args []string) error {
		d.rend.GridVisible = *gridVisible
		return nil
	})

	fpsFS := flag.NewFlagSet("fps", flag.ContinueOnError)
	fpsShow := fpsFS.Bool("show", true, "show the FPS counter")
	reg.Register("fps", "toggle the FPS overlay", fpsFS, func(args []string) error {
		d.overlay.ShowFPS = *fpsShow
		return nil
	})

	memFS := flag.NewFlagSet("mem", flag.ContinueOnError)
	memShow := memFS.Bool("show", true, "show heap usage")
	reg.Register("mem", "toggle the memory overlay", memFS, func(args []string) error {
		d.overlay.ShowMemAlloc = *memShow
		return nil
	})

	saveFS := flag.NewFlagSet("save", flag.ContinueOnError)
	savePath := saveFS.String("path", "", "document path, e.g. scenes/loft.json")
	reg.Register("save", "save the full scene document", saveFS, func(args []string) error {
		if *savePath == "" {
			return fmt.Errorf("need -path")
		}
		if err := document.Save(d.fs, *savePath, d.store.Document()); err != nil {
			return err
		}
		d.prefs.LastDocument = *savePath
		d.log.Logf("saved %s", *savePath)
		return nil
	})

	loadFS := flag.NewFlagSet("load", flag.ContinueOnError)
	loadPath := loadFS.String("path", "", "document path")
	reg.Register("load", "load a scene document (replaces the scene)", loadFS, func(args []string) error {
		if *loadPath == "" {
			return fmt.Errorf("need -path")
		}
		doc, err := document.Load(d.fs, *loadPath)
		if err != nil {
			// Malformed or unreadable input: current state stays untouched.
			return err
		}
		d.store.LoadDocument(doc)
		d.prefs.LastDocument = *loadPath
		d.log.Logf("loaded %s", *loadPath)
		return nil
	})

	exportFS := flag.NewFlagSet("export", flag.ContinueOnError)
	exportPath := exportFS.String("path", "", "export path, e.g. scenes/loft-info.json")
	reg.Register("export", "export transforms only (no payloads)", exportFS, func(args []string) error {
		if *exportPath == "" {
			return fmt.Errorf("need -path")
		}
		if err := document.Save(d.fs, *exportPath, d.store.InfoDocument()); err != nil {
			return err
		}
		d.log.Logf("exported %s", *exportPath)
		return nil
	})
}
