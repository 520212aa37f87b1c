package interop

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/sport"
	"github.com/tartampluch/go-people/internal/store"
	"github.com/xuri/excelize/v2"
)

// SportLabelFunc renders a sport for display. A nil func uses the stored label.
type SportLabelFunc func(sport.Sport) string

// SheetHeader is the first row of an exported workbook.
var SheetHeader = []any{
	config.ColFirstName,
	config.ColLastName,
	config.ColDateOfBirth,
	config.ColAge,
	config.ColFavoriteSport,
}

// ExportSpreadsheet writes a single-sheet XLSX workbook with a bold header
// row and one row per person. Ages are computed against today.
func ExportSpreadsheet(w io.Writer, people store.People, today time.Time, label SportLabelFunc) (err error) {
	if label == nil {
		label = sport.Sport.Label
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w", config.ErrSheetWrite, cerr)
		}
	}()

	if err := f.SetSheetName(config.SheetDefault, config.SheetName); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSheetWrite, err)
	}
	if err := f.SetSheetRow(config.SheetName, config.SheetFirstCell, &SheetHeader); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSheetWrite, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSheetWrite, err)
	}
	if err := f.SetRowStyle(config.SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSheetWrite, err)
	}
	if err := f.SetColWidth(config.SheetName, "A", config.SheetLastCol, config.SheetColWidth); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSheetWrite, err)
	}

	for i, p := range people {
		row := []any{
			p.FirstName,
			p.LastName,
			p.DateOfBirth.Format(config.DateFormat),
			p.Age(today),
			label(p.FavoriteSport),
		}
		// Row 1 is the header.
		if err := f.SetSheetRow(config.SheetName, fmt.Sprintf(config.SheetCellFmt, i+2), &row); err != nil {
			return fmt.Errorf("%s: %w", config.ErrSheetWrite, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSheetWrite, err)
	}

	slog.Info(config.MsgSheetWritten,
		config.LogKeyComponent, config.CompInterop,
		config.LogKeyCount, len(people))
	return nil
}
