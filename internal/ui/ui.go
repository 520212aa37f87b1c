// Package ui is the desktop front-end: a Fyne window listing the records of
// one file, with menus and dialogs to edit, save and export them.
package ui

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/interop"
	"github.com/tartampluch/go-people/internal/locale"
	"github.com/tartampluch/go-people/internal/store"
)

// PeopleApp holds the window, the working copy of the records and the file
// they came from.
type PeopleApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	Translator  *locale.Translator
	Store       *store.Store
	Ctx         context.Context

	Clock store.Clock // Injected clock for testability

	People   store.People
	Path     string // Empty until the list is saved or opened.
	Dirty    bool
	Selected int // Table row, -1 when nothing is selected.

	table      *widget.Table
	langSelect *widget.Select
}

// NewPeopleApp constructs the application and wires dependencies. The
// language saved in preferences wins over the translator's initial one.
func NewPeopleApp(a fyne.App, ctx context.Context, tr *locale.Translator, st *store.Store) *PeopleApp {
	a.SetIcon(theme.AccountIcon())

	app := &PeopleApp{
		App:         a,
		Preferences: a.Preferences(),
		Translator:  tr,
		Store:       st,
		Ctx:         ctx,
		Clock:       store.RealClock{},
		People:      store.People{},
		Selected:    -1,
	}

	if lang := app.Preferences.String(config.PrefLanguage); lang != "" {
		tr.SetLanguage(lang)
	}
	return app
}

// Run builds the main window, re-opens the last file and blocks in the UI loop.
func (app *PeopleApp) Run() {
	app.BuildMainWindow()
	app.RestoreLastFile()
	app.Window.ShowAndRun()
}

// RestoreLastFile opens the file remembered in preferences, if it still loads.
func (app *PeopleApp) RestoreLastFile() {
	last := app.Preferences.String(config.PrefLastFile)
	if last == "" {
		return
	}
	slog.Info(config.MsgPrefRestore,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyFile, last)

	if err := app.OpenFile(last); err != nil {
		slog.Warn(config.TitleOpenError,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyFile, last,
			config.LogKeyError, err)
	}
}

// OpenFile replaces the working copy with the records of path.
func (app *PeopleApp) OpenFile(path string) error {
	people, err := app.Store.Load(path)
	if err != nil {
		return err
	}

	app.People = people
	app.Path = path
	app.Dirty = false
	app.Selected = -1
	app.Preferences.SetString(config.PrefLastFile, path)

	slog.Info(config.MsgFileOpened,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyFile, path,
		config.LogKeyCount, len(people))
	app.refresh()
	return nil
}

// NewFile creates path with an empty header and opens it.
func (app *PeopleApp) NewFile(path string) error {
	if err := store.InitializeEmptyFile(path); err != nil {
		return err
	}
	return app.OpenFile(path)
}

// SaveFile writes the working copy to the current path.
func (app *PeopleApp) SaveFile() error {
	if app.Path == "" {
		return os.ErrNotExist
	}
	return app.SaveFileAs(app.Path)
}

// SaveFileAs writes the working copy to path, which becomes the current file.
// The unsaved flag is only cleared on success.
func (app *PeopleApp) SaveFileAs(path string) error {
	if err := app.Store.Save(path, app.People); err != nil {
		return err
	}

	app.Path = path
	app.Dirty = false
	app.Preferences.SetString(config.PrefLastFile, path)

	slog.Info(config.MsgFileSaved,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyFile, path)
	app.refresh()
	return nil
}

// ExportFile writes the working copy to path in the format of its extension.
func (app *PeopleApp) ExportFile(path string) error {
	format, ok := interop.FormatFromPath(path)
	if !ok {
		return interop.ErrUnsupportedFormat
	}
	return interop.ExportFile(path, format, app.People, interop.LocalizedOptions(app.Translator, app.Clock.Now()))
}

// ImportFile appends the people of a vCard file to the working copy.
func (app *PeopleApp) ImportFile(path string) (store.People, error) {
	imported, err := interop.ImportFile(path, app.Store)
	if err != nil {
		return nil, err
	}
	for _, p := range imported {
		app.People.Add(p)
	}
	if len(imported) > 0 {
		app.markDirty()
	}
	return imported, nil
}

// AddPerson appends a record built from the form fields in d. Names are kept
// as typed. A missing date or sport gets its default.
func (app *PeopleApp) AddPerson(d store.Draft) store.Person {
	p := app.Store.CreateTyped(d)
	app.People.Add(p)
	app.markDirty()
	return p
}

// ReplacePerson applies d over the record at index, keeping its identifier.
func (app *PeopleApp) ReplacePerson(index int, d store.Draft) error {
	if index < 0 || index >= len(app.People) {
		return app.People.Edit(index, store.Person{}) // Reports the bounds error.
	}
	updated, err := d.Apply(app.People[index])
	if err != nil {
		return err
	}
	if err := app.People.Edit(index, updated); err != nil {
		return err
	}
	app.markDirty()
	return nil
}

// RemovePerson deletes the record at index.
func (app *PeopleApp) RemovePerson(index int) error {
	if err := app.People.Delete(index); err != nil {
		return err
	}
	app.Selected = -1
	slog.Info(config.MsgPersonRemoved,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyIndex, index)
	app.markDirty()
	return nil
}

// SetLanguage switches the translator, remembers the choice and relabels
// the window.
func (app *PeopleApp) SetLanguage(lang string) {
	app.Translator.SetLanguage(lang)
	app.Preferences.SetString(config.PrefLanguage, lang)

	slog.Debug(config.MsgLocaleLoaded,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyLang, lang)

	if app.Window != nil {
		app.Window.SetMainMenu(app.buildMainMenu())
	}
	app.refresh()
}

// WindowTitle names the current file and flags unsaved changes.
func (app *PeopleApp) WindowTitle() string {
	tr := app.Translator
	if app.Path == "" && !app.Dirty {
		return tr.Msg(config.TKeyWinTitle)
	}

	name := tr.Msg(config.TKeyWinUntitled)
	if app.Path != "" {
		name = filepath.Base(app.Path)
	}
	if app.Dirty {
		return tr.MsgWith(config.TKeyWinTitleDirty, map[string]any{"File": name})
	}
	return tr.MsgWith(config.TKeyWinTitleFile, map[string]any{"File": name})
}

func (app *PeopleApp) markDirty() {
	app.Dirty = true
	app.refresh()
}

func (app *PeopleApp) refresh() {
	if app.Window != nil {
		app.Window.SetTitle(app.WindowTitle())
	}
	if app.table != nil {
		app.table.Refresh()
	}
}

// showError reports err in a dialog when the window exists, and always logs it.
func (app *PeopleApp) showError(title string, err error) {
	slog.Error(title,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyError, err)
	if app.Window != nil {
		showErrorDialog(err, app.Window)
	}
}
