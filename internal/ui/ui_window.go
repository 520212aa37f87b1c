package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-people/internal/config"
)

// showErrorDialog is swapped out by tests.
var showErrorDialog = dialog.ShowError

// BuildMainWindow creates the main window: the language select on top and
// the people table filling the rest.
func (app *PeopleApp) BuildMainWindow() fyne.Window {
	w := app.App.NewWindow(app.WindowTitle())
	app.Window = w
	w.Resize(fyne.NewSize(config.MainWinWidth, config.MainWinHeight))

	app.table = app.buildPeopleTable()

	app.langSelect = widget.NewSelect(app.Translator.Languages(), nil)
	app.langSelect.SetSelected(app.Translator.Language())
	app.langSelect.OnChanged = app.SetLanguage

	top := container.NewHBox(widget.NewLabel(app.Translator.Msg(config.TKeyMenuLanguage)), app.langSelect)
	w.SetContent(container.NewBorder(top, nil, nil, nil, app.table))
	w.SetMainMenu(app.buildMainMenu())
	w.SetCloseIntercept(func() {
		app.confirmDiscard(app.App.Quit)
	})

	app.refresh()
	return w
}

func (app *PeopleApp) buildMainMenu() *fyne.MainMenu {
	tr := app.Translator

	quit := fyne.NewMenuItem(tr.Msg(config.TKeyMenuQuit), func() {
		app.confirmDiscard(app.App.Quit)
	})
	quit.IsQuit = true

	file := fyne.NewMenu(tr.Msg(config.TKeyMenuFile),
		fyne.NewMenuItem(tr.Msg(config.TKeyMenuNew), app.showNewDialog),
		fyne.NewMenuItem(tr.Msg(config.TKeyMenuOpen), app.showOpenDialog),
		fyne.NewMenuItem(tr.Msg(config.TKeyMenuSave), app.saveOrAsk),
		fyne.NewMenuItem(tr.Msg(config.TKeyMenuSaveAs), app.showSaveAsDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(tr.Msg(config.TKeyMenuImport), app.showImportDialog),
		fyne.NewMenuItem(tr.Msg(config.TKeyMenuExport), app.showExportDialog),
		fyne.NewMenuItemSeparator(),
		quit,
	)

	people := fyne.NewMenu(tr.Msg(config.TKeyMenuPeople),
		fyne.NewMenuItem(tr.Msg(config.TKeyMenuAdd), app.ShowAddDialog),
		fyne.NewMenuItem(tr.Msg(config.TKeyMenuEdit), app.ShowEditDialog),
		fyne.NewMenuItem(tr.Msg(config.TKeyMenuDelete), app.ShowDeleteDialog),
	)

	return fyne.NewMainMenu(file, people)
}

// confirmDiscard runs next right away when nothing is unsaved, and after
// the user agrees to drop the changes otherwise.
func (app *PeopleApp) confirmDiscard(next func()) {
	if !app.Dirty || app.Window == nil {
		next()
		return
	}
	tr := app.Translator
	dialog.ShowConfirm(tr.Msg(config.TKeyDlgUnsaved), tr.Msg(config.TKeyDlgUnsavedMsg), func(ok bool) {
		if ok {
			next()
		}
	}, app.Window)
}

func (app *PeopleApp) showNewDialog() {
	app.confirmDiscard(func() {
		app.askSavePath(config.DefaultFileName, []string{config.ExtCSV}, func(path string) {
			if err := app.NewFile(path); err != nil {
				app.showError(config.TitleOpenError, err)
			}
		})
	})
}

func (app *PeopleApp) showOpenDialog() {
	app.confirmDiscard(func() {
		app.askOpenPath([]string{config.ExtCSV}, func(path string) {
			if err := app.OpenFile(path); err != nil {
				app.showError(config.TitleOpenError, err)
			}
		})
	})
}

// saveOrAsk saves in place, or asks for a path when the list has none yet.
func (app *PeopleApp) saveOrAsk() {
	if app.Path == "" {
		app.showSaveAsDialog()
		return
	}
	if err := app.SaveFile(); err != nil {
		app.showError(config.TitleSaveError, err)
	}
}

func (app *PeopleApp) showSaveAsDialog() {
	app.askSavePath(config.DefaultFileName, []string{config.ExtCSV}, func(path string) {
		if err := app.SaveFileAs(path); err != nil {
			app.showError(config.TitleSaveError, err)
		}
	})
}

func (app *PeopleApp) showImportDialog() {
	app.askOpenPath([]string{config.ExtVCF, config.ExtVCard}, func(path string) {
		if _, err := app.ImportFile(path); err != nil {
			app.showError(config.TitleImportError, err)
		}
	})
}

// showExportDialog picks the format from the extension typed by the user.
func (app *PeopleApp) showExportDialog() {
	exts := []string{config.ExtVCF, config.ExtICS, config.ExtXLSX}
	app.askSavePath(config.DefaultExportName, exts, func(path string) {
		if err := app.ExportFile(path); err != nil {
			app.showError(config.TitleExportError, err)
			return
		}
		slog.Info(config.MsgExported,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyFile, path)
	})
}

func (app *PeopleApp) askOpenPath(exts []string, onPath func(string)) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			app.showError(config.TitleOpenError, err)
			return
		}
		if r == nil {
			return
		}
		path := r.URI().Path()
		// Best effort close. Only the path is needed.
		_ = r.Close()
		onPath(path)
	}, app.Window)
	d.SetFilter(storage.NewExtensionFileFilter(exts))
	d.Show()
}

// askSavePath asks for a destination. The dialog creates the file; the
// callers replace it through their own writers.
func (app *PeopleApp) askSavePath(name string, exts []string, onPath func(string)) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			app.showError(config.TitleSaveError, err)
			return
		}
		if w == nil {
			return
		}
		path := w.URI().Path()
		_ = w.Close()
		onPath(path)
	}, app.Window)
	d.SetFilter(storage.NewExtensionFileFilter(exts))
	d.SetFileName(name)
	d.Show()
}
