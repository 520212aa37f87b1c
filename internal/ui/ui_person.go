package ui

import (
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/sport"
	"github.com/tartampluch/go-people/internal/store"
)

// personForm holds the widgets of the add and edit dialogs.
type personForm struct {
	first *widget.Entry
	last  *widget.Entry
	dob   *DateEntry
	sport *widget.SelectEntry

	// sports maps the translated catalog entries back to canonical labels.
	sports map[string]string
}

// newPersonForm builds an empty form. With current set, fields show the
// existing values as placeholders and blank means "keep".
func (app *PeopleApp) newPersonForm(current *store.Person) *personForm {
	tr := app.Translator
	known := sport.AllKnown()

	f := &personForm{
		first:  widget.NewEntry(),
		last:   widget.NewEntry(),
		dob:    NewDateEntry(tr.Msg(config.TKeyErrDateFormat)),
		sports: make(map[string]string, len(known)),
	}

	options := make([]string, 0, len(known))
	for _, s := range known {
		display := tr.SportWithGlyph(s)
		options = append(options, display)
		f.sports[display] = s.Label()
	}
	f.sport = widget.NewSelectEntry(options)

	if current != nil {
		f.first.PlaceHolder = current.FirstName
		f.last.PlaceHolder = current.LastName
		f.dob.PlaceHolder = current.DateOfBirth.Format(config.DateFormat)
		f.sport.PlaceHolder = tr.SportWithGlyph(current.FavoriteSport)
	}
	return f
}

func (f *personForm) items(app *PeopleApp) []*widget.FormItem {
	tr := app.Translator
	return []*widget.FormItem{
		widget.NewFormItem(tr.Msg(config.TKeyColFirstName), f.first),
		widget.NewFormItem(tr.Msg(config.TKeyColLastName), f.last),
		widget.NewFormItem(tr.Msg(config.TKeyColDOB), f.dob),
		widget.NewFormItem(tr.Msg(config.TKeyColSport), f.sport),
	}
}

// draft collects the typed values. A catalog entry picked from the list is
// turned back into its canonical label; typed text is kept as is.
func (f *personForm) draft() store.Draft {
	sportText := strings.TrimSpace(f.sport.Text)
	if label, ok := f.sports[sportText]; ok {
		sportText = label
	}
	return store.Draft{
		FirstName:     strings.TrimSpace(f.first.Text),
		LastName:      strings.TrimSpace(f.last.Text),
		DateOfBirth:   strings.TrimSpace(f.dob.Text),
		FavoriteSport: sportText,
	}
}

// ShowAddDialog asks for a new person and appends it.
func (app *PeopleApp) ShowAddDialog() {
	tr := app.Translator
	f := app.newPersonForm(nil)

	d := dialog.NewForm(tr.Msg(config.TKeyDlgAddTitle), tr.Msg(config.TKeyBtnSave), tr.Msg(config.TKeyBtnCancel),
		f.items(app), func(ok bool) {
			if !ok {
				return
			}
			p := app.AddPerson(f.draft())
			slog.Info(config.MsgPersonAdded,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyID, p.ID)
		}, app.Window)
	d.Resize(fyne.NewSize(config.DialogWidth, d.MinSize().Height))
	d.Show()
}

// ShowEditDialog edits the selected person.
func (app *PeopleApp) ShowEditDialog() {
	index, ok := app.selection()
	if !ok {
		return
	}
	tr := app.Translator
	current := app.People[index]
	f := app.newPersonForm(&current)

	d := dialog.NewForm(tr.Msg(config.TKeyDlgEditTitle), tr.Msg(config.TKeyBtnSave), tr.Msg(config.TKeyBtnCancel),
		f.items(app), func(ok bool) {
			if !ok {
				return
			}
			if err := app.ReplacePerson(index, f.draft()); err != nil {
				app.showError(config.TitleEditError, err)
			}
		}, app.Window)
	d.Resize(fyne.NewSize(config.DialogWidth, d.MinSize().Height))
	d.Show()
}

// ShowDeleteDialog removes the selected person after confirmation.
func (app *PeopleApp) ShowDeleteDialog() {
	index, ok := app.selection()
	if !ok {
		return
	}
	tr := app.Translator
	msg := tr.MsgWith(config.TKeyDlgDelMessage, map[string]any{"Name": app.People[index].FullName()})

	dialog.ShowConfirm(tr.Msg(config.TKeyDlgDelTitle), msg, func(ok bool) {
		if !ok {
			return
		}
		if err := app.RemovePerson(index); err != nil {
			app.showError(config.TitleEditError, err)
			return
		}
		if app.table != nil {
			app.table.UnselectAll()
		}
	}, app.Window)
}

// selection returns the selected row, telling the user when there is none.
func (app *PeopleApp) selection() (int, bool) {
	if app.Selected >= 0 && app.Selected < len(app.People) {
		return app.Selected, true
	}
	if app.Window != nil {
		dialog.ShowInformation(app.Translator.Msg(config.TKeyWinTitle),
			app.Translator.Msg(config.TKeyDlgNoSelection), app.Window)
	}
	return -1, false
}
