package interop

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/locale"
	"github.com/tartampluch/go-people/internal/store"
)

// ErrUnsupportedFormat is returned for an export format other than vcf, ics or xlsx.
var ErrUnsupportedFormat = errors.New(config.ErrExportFormat)

// Options carries the presentation hooks of an export.
type Options struct {
	Now        time.Time      // Reference date for ages and the calendar window.
	Summary    SummaryFunc    // Calendar event titles.
	SportLabel SportLabelFunc // Spreadsheet sport column.
}

// LocalizedOptions titles events and labels sports in the language of tr.
func LocalizedOptions(tr *locale.Translator, now time.Time) Options {
	return Options{
		Now: now,
		Summary: func(name string, age int) string {
			if age == 0 {
				return tr.MsgWith(config.TKeyEvtSummary, map[string]any{"Name": name})
			}
			return tr.MsgWith(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
		},
		SportLabel: tr.Sport,
	}
}

// Formats lists the accepted export format names.
func Formats() []string {
	return []string{config.FormatVCard, config.FormatCalendar, config.FormatSheet}
}

// FormatFromPath infers the export format from a file extension.
func FormatFromPath(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case config.ExtVCF, config.ExtVCard:
		return config.FormatVCard, true
	case config.ExtICS:
		return config.FormatCalendar, true
	case config.ExtXLSX:
		return config.FormatSheet, true
	default:
		return "", false
	}
}

// Export writes people to w in the given format.
func Export(w io.Writer, format string, people store.People, opts Options) error {
	switch strings.ToLower(format) {
	case config.FormatVCard:
		return ExportVCard(w, people)
	case config.FormatCalendar:
		return ExportCalendar(w, people, opts.Now, opts.Summary)
	case config.FormatSheet:
		return ExportSpreadsheet(w, people, opts.Now, opts.SportLabel)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ExportFile creates or truncates path and exports people into it.
func ExportFile(path, format string, people store.People, opts Options) (err error) {
	if !isFormat(format) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, config.FilePermData)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", store.ErrIO, cerr)
		}
	}()

	return Export(f, format, people, opts)
}

// ImportFile reads the vCard file at path. See ImportVCard.
func ImportFile(path string, s *store.Store) (store.People, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrIO, err)
	}
	// Best effort close. Errors in Close() for read-only files are rarely actionable here.
	defer func() { _ = f.Close() }()

	return ImportVCard(f, s)
}

func isFormat(format string) bool {
	for _, f := range Formats() {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}
