package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/interop"
	"github.com/tartampluch/go-people/internal/locale"
	"github.com/tartampluch/go-people/internal/sport"
	"github.com/tartampluch/go-people/internal/store"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// -----------------------------------------------------------------------------
// Test Setup Helper
// -----------------------------------------------------------------------------

const sampleCSV = "first_name,last_name,date_of_birth,favorite_sport\n" +
	"Ada,Lovelace,1815-12-10,Rowing\n" +
	"Alan,Turing,1912-06-23,Marathon running\n"

// setupTestApp initializes a headless Fyne app with an English translator.
func setupTestApp(t *testing.T) *PeopleApp {
	t.Helper()
	a := test.NewApp()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	app := NewPeopleApp(a, ctx, locale.New("en"), store.New(nil))
	app.Clock = MockClock{CurrentTime: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)}
	return app
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

// -----------------------------------------------------------------------------
// File Lifecycle Tests
// -----------------------------------------------------------------------------

func TestOpenFile(t *testing.T) {
	app := setupTestApp(t)
	path := writeSample(t)

	require.NoError(t, app.OpenFile(path))

	assert.Len(t, app.People, 2)
	assert.Equal(t, path, app.Path)
	assert.False(t, app.Dirty)
	assert.Equal(t, path, app.Preferences.String(config.PrefLastFile), "Opened file is remembered")
}

func TestOpenFile_Error(t *testing.T) {
	app := setupTestApp(t)
	path := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, os.WriteFile(path, []byte("first_name,last_name\nAda,Lovelace\n"), 0o644))

	err := app.OpenFile(path)
	assert.ErrorIs(t, err, store.ErrFormat)
	assert.Empty(t, app.Path, "A failed open keeps the previous state")
	assert.Empty(t, app.Preferences.String(config.PrefLastFile))
}

func TestEditAndSave(t *testing.T) {
	app := setupTestApp(t)
	path := writeSample(t)
	require.NoError(t, app.OpenFile(path))

	app.AddPerson(store.Draft{FirstName: "Grace", LastName: "Hopper", DateOfBirth: "1906-12-09"})
	assert.True(t, app.Dirty)

	require.NoError(t, app.SaveFile())
	assert.False(t, app.Dirty)

	people, err := store.New(nil).Load(path)
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, "Grace", people[2].FirstName)
	assert.Equal(t, store.DefaultSport(), people[2].FavoriteSport, "Missing fields get defaults")
}

func TestAddPerson_BlankNames(t *testing.T) {
	app := setupTestApp(t)
	p := app.AddPerson(store.Draft{FirstName: "Grace"})

	assert.Equal(t, "Grace", p.FirstName)
	assert.Empty(t, p.LastName)
	assert.Equal(t, store.DefaultDateOfBirth(), p.DateOfBirth)
}

func TestSaveFile_NoPath(t *testing.T) {
	app := setupTestApp(t)
	app.AddPerson(store.Draft{FirstName: "Grace"})

	assert.ErrorIs(t, app.SaveFile(), os.ErrNotExist)
	assert.True(t, app.Dirty)
}

func TestSaveFileAs_FailureKeepsDirty(t *testing.T) {
	app := setupTestApp(t)
	app.AddPerson(store.Draft{FirstName: "Grace"})

	err := app.SaveFileAs(filepath.Join(t.TempDir(), "missing", "people.csv"))
	assert.ErrorIs(t, err, store.ErrIO)
	assert.True(t, app.Dirty)
	assert.Empty(t, app.Path)
}

func TestNewFile(t *testing.T) {
	app := setupTestApp(t)
	path := filepath.Join(t.TempDir(), "new.csv")

	require.NoError(t, app.NewFile(path))
	assert.Empty(t, app.People)
	assert.Equal(t, path, app.Path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first_name,last_name,date_of_birth,favorite_sport\n", string(content))
}

func TestRestoreLastFile(t *testing.T) {
	t.Run("Existing", func(t *testing.T) {
		app := setupTestApp(t)
		path := writeSample(t)
		app.Preferences.SetString(config.PrefLastFile, path)

		app.RestoreLastFile()
		assert.Len(t, app.People, 2)
		assert.Equal(t, path, app.Path)
	})

	t.Run("Missing", func(t *testing.T) {
		app := setupTestApp(t)
		app.Preferences.SetString(config.PrefLastFile, filepath.Join(t.TempDir(), "gone.csv"))

		app.RestoreLastFile()
		assert.Empty(t, app.People)
		assert.Empty(t, app.Path)
	})
}

// -----------------------------------------------------------------------------
// Record Editing Tests
// -----------------------------------------------------------------------------

func TestReplacePerson(t *testing.T) {
	app := setupTestApp(t)
	require.NoError(t, app.OpenFile(writeSample(t)))
	id := app.People[1].ID

	require.NoError(t, app.ReplacePerson(1, store.Draft{LastName: "Hodges", FavoriteSport: "chess"}))

	edited := app.People[1]
	assert.Equal(t, id, edited.ID)
	assert.Equal(t, "Alan", edited.FirstName)
	assert.Equal(t, "Hodges", edited.LastName)
	assert.Equal(t, sport.Other("chess"), edited.FavoriteSport)
	assert.True(t, app.Dirty)
}

func TestReplacePerson_Errors(t *testing.T) {
	app := setupTestApp(t)
	require.NoError(t, app.OpenFile(writeSample(t)))

	assert.ErrorIs(t, app.ReplacePerson(5, store.Draft{FirstName: "X"}), store.ErrIndexOutOfBounds)
	assert.ErrorIs(t, app.ReplacePerson(-1, store.Draft{FirstName: "X"}), store.ErrIndexOutOfBounds)
	assert.Error(t, app.ReplacePerson(0, store.Draft{DateOfBirth: "10/12/1815"}))

	assert.Equal(t, "Ada", app.People[0].FirstName)
	assert.False(t, app.Dirty, "Failed edits change nothing")
}

func TestRemovePerson(t *testing.T) {
	app := setupTestApp(t)
	require.NoError(t, app.OpenFile(writeSample(t)))
	app.Selected = 0

	require.NoError(t, app.RemovePerson(0))
	require.Len(t, app.People, 1)
	assert.Equal(t, "Alan", app.People[0].FirstName)
	assert.Equal(t, -1, app.Selected)

	assert.ErrorIs(t, app.RemovePerson(3), store.ErrIndexOutOfBounds)
}

func TestImportExport(t *testing.T) {
	app := setupTestApp(t)
	require.NoError(t, app.OpenFile(writeSample(t)))
	dir := t.TempDir()

	vcf := filepath.Join(dir, "book.vcf")
	require.NoError(t, app.ExportFile(vcf))
	require.NoError(t, app.ExportFile(filepath.Join(dir, "feed.ics")))
	require.NoError(t, app.ExportFile(filepath.Join(dir, "sheet.xlsx")))
	assert.ErrorIs(t, app.ExportFile(filepath.Join(dir, "out.pdf")), interop.ErrUnsupportedFormat)
	assert.False(t, app.Dirty, "Exporting does not touch the working copy")

	imported, err := app.ImportFile(vcf)
	require.NoError(t, err)
	assert.Len(t, imported, 2)
	assert.Len(t, app.People, 4)
	assert.True(t, app.Dirty)
}

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestSetLanguage(t *testing.T) {
	app := setupTestApp(t)
	app.SetLanguage("fr")

	assert.Equal(t, "fr", app.Translator.Language())
	assert.Equal(t, "fr", app.Preferences.String(config.PrefLanguage))

	// A second start picks the saved language up.
	again := NewPeopleApp(app.App, context.Background(), locale.New("en"), store.New(nil))
	assert.Equal(t, "fr", again.Translator.Language())
}

func TestWindowTitle(t *testing.T) {
	app := setupTestApp(t)
	assert.Equal(t, "Go People", app.WindowTitle())

	app.AddPerson(store.Draft{})
	assert.Equal(t, "Go People - Untitled (unsaved)", app.WindowTitle())

	path := writeSample(t)
	require.NoError(t, app.OpenFile(path))
	assert.Equal(t, "Go People - people.csv", app.WindowTitle())

	require.NoError(t, app.RemovePerson(0))
	assert.Equal(t, "Go People - people.csv (unsaved)", app.WindowTitle())
}

// -----------------------------------------------------------------------------
// Window Tests
// -----------------------------------------------------------------------------

func TestBuildMainWindow(t *testing.T) {
	app := setupTestApp(t)
	require.NoError(t, app.OpenFile(writeSample(t)))

	w := app.BuildMainWindow()
	defer w.Close()

	assert.Equal(t, "Go People - people.csv", w.Title())

	menu := w.MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 2)
	assert.Equal(t, "File", menu.Items[0].Label)
	assert.Equal(t, "People", menu.Items[1].Label)

	app.SetLanguage("fr")
	assert.Equal(t, "Fichier", w.MainMenu().Items[0].Label, "Menus follow the language")
}

func TestCellText(t *testing.T) {
	app := setupTestApp(t)
	require.NoError(t, app.OpenFile(writeSample(t)))

	assert.Equal(t, "Lovelace", app.CellText(0, config.ColIDLastName))
	assert.Equal(t, "1815-12-10", app.CellText(0, config.ColIDDOB))
	assert.Equal(t, "208", app.CellText(0, config.ColIDAge))
	assert.Equal(t, "🚣 Rowing", app.CellText(0, config.ColIDSport))
	assert.Equal(t, "Marathon running", app.CellText(1, config.ColIDSport))
	assert.Empty(t, app.CellText(2, config.ColIDFirstName))
}

func TestShowError(t *testing.T) {
	var shown []error
	original := showErrorDialog
	showErrorDialog = func(err error, _ fyne.Window) { shown = append(shown, err) }
	t.Cleanup(func() { showErrorDialog = original })

	app := setupTestApp(t)
	boom := errors.New("boom")

	app.showError(config.TitleSaveError, boom)
	assert.Empty(t, shown, "No window, no dialog")

	w := app.BuildMainWindow()
	defer w.Close()
	app.showError(config.TitleSaveError, boom)
	assert.Equal(t, []error{boom}, shown)
}

func TestConfirmDiscard_Clean(t *testing.T) {
	app := setupTestApp(t)
	w := app.BuildMainWindow()
	defer w.Close()

	called := false
	app.confirmDiscard(func() { called = true })
	assert.True(t, called, "Nothing to lose, no question asked")
}

func TestSelection(t *testing.T) {
	app := setupTestApp(t)
	require.NoError(t, app.OpenFile(writeSample(t)))

	_, ok := app.selection()
	assert.False(t, ok)

	app.Selected = 1
	index, ok := app.selection()
	assert.True(t, ok)
	assert.Equal(t, 1, index)
}

// -----------------------------------------------------------------------------
// Person Form Tests
// -----------------------------------------------------------------------------

func TestPersonForm_Draft(t *testing.T) {
	tests := []struct {
		name      string
		lang      string
		sport     string
		wantSport string
	}{
		{"Catalog entry", "en", "🚣 Rowing", "Rowing"},
		{"Translated catalog entry", "fr", "🚣 Aviron", "Rowing"},
		{"Free text", "en", "  Ultimate Frisbee ", "Ultimate Frisbee"},
		{"Blank", "en", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(t)
			app.SetLanguage(tt.lang)

			f := app.newPersonForm(nil)
			f.first.SetText(" Grace ")
			f.dob.SetText("1906-12-09")
			f.sport.SetText(tt.sport)

			d := f.draft()
			assert.Equal(t, "Grace", d.FirstName)
			assert.Empty(t, d.LastName)
			assert.Equal(t, "1906-12-09", d.DateOfBirth)
			assert.Equal(t, tt.wantSport, d.FavoriteSport)
		})
	}
}

func TestPersonForm_EditPlaceholders(t *testing.T) {
	app := setupTestApp(t)
	require.NoError(t, app.OpenFile(writeSample(t)))

	current := app.People[0]
	f := app.newPersonForm(&current)

	assert.Equal(t, "Ada", f.first.PlaceHolder)
	assert.Equal(t, "1815-12-10", f.dob.PlaceHolder)
	assert.Len(t, f.items(app), 4)
	assert.Equal(t, store.Draft{}, f.draft(), "Untouched fields keep the record as is")
}
