package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-people/internal/config"
)

// columnKeys maps table columns to their header translation keys.
var columnKeys = [config.ColCount]string{
	config.ColIDID:        config.TKeyColID,
	config.ColIDFirstName: config.TKeyColFirstName,
	config.ColIDLastName:  config.TKeyColLastName,
	config.ColIDDOB:       config.TKeyColDOB,
	config.ColIDAge:       config.TKeyColAge,
	config.ColIDSport:     config.TKeyColSport,
}

// buildPeopleTable creates the table listing the working copy in file order.
// Selecting a row makes it the target of Edit and Delete.
func (app *PeopleApp) buildPeopleTable() *widget.Table {
	table := widget.NewTable(
		func() (int, int) {
			return len(app.People), config.ColCount
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			label.SetText(app.CellText(id.Row, id.Col))
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabel(config.TablePlaceholder)
	}
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		label := o.(*widget.Label)
		if id.Col >= 0 && id.Col < config.ColCount {
			label.SetText(app.Translator.Msg(columnKeys[id.Col]))
		}
		label.TextStyle = fyne.TextStyle{Bold: true}
	}

	table.SetColumnWidth(config.ColIDID, config.ColWidthID)
	table.SetColumnWidth(config.ColIDFirstName, config.ColWidthName)
	table.SetColumnWidth(config.ColIDLastName, config.ColWidthName)
	table.SetColumnWidth(config.ColIDDOB, config.ColWidthDate)
	table.SetColumnWidth(config.ColIDAge, config.ColWidthAge)
	table.SetColumnWidth(config.ColIDSport, config.ColWidthSport)

	table.OnSelected = func(id widget.TableCellID) {
		app.Selected = id.Row
	}
	table.OnUnselected = func(widget.TableCellID) {
		app.Selected = -1
	}
	return table
}

// CellText renders one cell of the people table.
func (app *PeopleApp) CellText(row, col int) string {
	if row < 0 || row >= len(app.People) {
		return ""
	}
	p := app.People[row]

	switch col {
	case config.ColIDID:
		return strconv.FormatUint(p.ID, 10)
	case config.ColIDFirstName:
		return p.FirstName
	case config.ColIDLastName:
		return p.LastName
	case config.ColIDDOB:
		format := app.Translator.Msg(config.TKeyFormatDate)
		if format == config.TKeyFormatDate {
			format = config.DateFormat
		}
		return p.DateOfBirth.Format(format)
	case config.ColIDAge:
		return strconv.Itoa(p.Age(app.Clock.Now()))
	case config.ColIDSport:
		return app.Translator.SportWithGlyph(p.FavoriteSport)
	default:
		return ""
	}
}
