package shell

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/locale"
	"github.com/tartampluch/go-people/internal/store"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RenderTable lays people out in a rounded table: index, names, age on
// today and the favorite sport with its glyph. The index is the one edit
// and delete expect.
func RenderTable(people store.People, today time.Time, tr *locale.Translator) string {
	if len(people) == 0 {
		return tr.Msg(config.TKeyNoPeople)
	}

	rows := make([][]string, 0, len(people))
	for i, p := range people {
		rows = append(rows, []string{
			strconv.Itoa(i),
			p.FirstName,
			p.LastName,
			strconv.Itoa(p.Age(today)),
			tr.SportWithGlyph(p.FavoriteSport),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(
			tr.Msg(config.TKeyColIndex),
			tr.Msg(config.TKeyColFirstName),
			tr.Msg(config.TKeyColLastName),
			tr.Msg(config.TKeyColAge),
			tr.Msg(config.TKeyColSport),
		).
		Rows(rows...)

	return t.String() + "\n" + tr.Plural(config.TKeyPeopleCount, len(people))
}
