// Package store holds person records in memory and persists them as a
// delimited text file. Every save rewrites the whole file.
package store

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/sport"
)

// Store creates records and moves them between memory and disk.
// It keeps no session state besides its identifier source.
type Store struct {
	ids *IDGenerator
}

// New returns a Store drawing identifiers from ids. A nil ids gets a private generator.
func New(ids *IDGenerator) *Store {
	if ids == nil {
		ids = NewIDGenerator()
	}
	return &Store{ids: ids}
}

// Create builds a Person with the next identifier. It never fails.
func (s *Store) Create(firstName, lastName string, dateOfBirth time.Time, favorite sport.Sport) Person {
	return Person{
		ID:            s.ids.Next(),
		FirstName:     firstName,
		LastName:      lastName,
		DateOfBirth:   dateOfBirth,
		FavoriteSport: favorite,
	}
}

// CreateFromDraft builds a Person from optional text fields. Missing names
// become "Unknown", a missing or unparsable date becomes 1900-01-01 and a
// missing sport becomes Other("Unknown").
func (s *Store) CreateFromDraft(d Draft) Person {
	if d.FirstName == "" {
		d.FirstName = config.FallbackName
	}
	if d.LastName == "" {
		d.LastName = config.FallbackName
	}
	return s.CreateTyped(d)
}

// CreateTyped builds a Person from fields typed by a user. Names are kept as
// typed, blank included. Date and sport get the same defaults as CreateFromDraft.
func (s *Store) CreateTyped(d Draft) Person {
	dob := DefaultDateOfBirth()
	if d.DateOfBirth != "" {
		if parsed, err := ParseDate(d.DateOfBirth); err == nil {
			dob = parsed
		} else {
			slog.Warn(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompStore,
				config.LogKeyValue, d.DateOfBirth)
		}
	}

	favorite := DefaultSport()
	if d.FavoriteSport != "" {
		favorite = sport.Parse(d.FavoriteSport)
	}

	return s.Create(d.FirstName, d.LastName, dob, favorite)
}

// Load reads every record of the file at path. Identifiers found in the file,
// if any, are ignored: each record gets a fresh one. A single bad row fails
// the whole load.
func (s *Store) Load(path string) (People, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError(err)
	}
	// Best effort close. Errors in Close() for read-only files are rarely actionable here.
	defer func() { _ = f.Close() }()

	people, err := s.decode(path, f)
	if err != nil {
		return nil, err
	}

	slog.Info(config.MsgPeopleRead,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyCount, len(people),
		config.LogKeyFile, path)
	return people, nil
}

// decode parses the CSV stream. Columns are located by header name, so
// extra columns such as an id are tolerated.
func (s *Store) decode(path string, r io.Reader) (People, error) {
	reader := csv.NewReader(skipByteOrderMark(r))
	reader.FieldsPerRecord = -1 // Counted against the header below for a better error.

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return People{}, nil
	}
	if err != nil {
		return nil, csvError(path, err)
	}

	cols, err := columnIndexes(header)
	if err != nil {
		return nil, &FormatError{Path: path, Row: 1, Err: err}
	}

	people := People{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(path, err)
		}

		row, _ := reader.FieldPos(0)
		if len(record) != len(header) {
			return nil, &FormatError{
				Path: path,
				Row:  row,
				Err:  fmt.Errorf("%s: got %d, want %d", config.ErrColumnCount, len(record), len(header)),
			}
		}

		dob, err := ParseDate(record[cols.dob])
		if err != nil {
			return nil, &FormatError{Path: path, Row: row, Column: config.ColDateOfBirth, Err: err}
		}

		people.Add(s.Create(
			record[cols.first],
			record[cols.last],
			dob,
			sport.Parse(record[cols.sport]),
		))
	}
	return people, nil
}

// columns holds the position of each required field in a row.
type columns struct {
	first, last, dob, sport int
}

// skipByteOrderMark drops the UTF-8 mark spreadsheet tools put before the header.
func skipByteOrderMark(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	bom := []byte(config.ByteOrderMark)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		_, _ = br.Discard(len(bom))
	}
	return br
}

func columnIndexes(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}

	var c columns
	targets := []struct {
		name string
		dst  *int
	}{
		{config.ColFirstName, &c.first},
		{config.ColLastName, &c.last},
		{config.ColDateOfBirth, &c.dob},
		{config.ColFavoriteSport, &c.sport},
	}
	for _, t := range targets {
		i, ok := pos[t.name]
		if !ok {
			return c, fmt.Errorf("%s: %s", config.ErrMissingColumn, t.name)
		}
		*t.dst = i
	}
	return c, nil
}

// csvError maps a reader failure to a FormatError when it points at a line,
// and to an I/O error otherwise.
func csvError(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &FormatError{Path: path, Row: pe.StartLine, Err: fmt.Errorf("%s: %w", config.ErrCSVRead, pe.Err)}
	}
	return ioError(err)
}

// Save writes the header and every record of people to path, in order.
// Data goes to a temporary file in the same directory, which then replaces
// path. On failure the previous file content is left in place.
func (s *Store) Save(path string, people People) error {
	if err := writeAtomic(path, func(w io.Writer) error {
		return encode(w, people)
	}); err != nil {
		return err
	}

	slog.Info(config.MsgPeopleWritten,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyCount, len(people),
		config.LogKeyFile, path)
	return nil
}

// InitializeEmptyFile creates (or replaces) path with only the header row.
func InitializeEmptyFile(path string) error {
	if err := writeAtomic(path, func(w io.Writer) error {
		return encode(w, nil)
	}); err != nil {
		return err
	}

	slog.Info(config.MsgFileCreated,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyFile, path)
	return nil
}

func encode(w io.Writer, people People) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(config.CSVHeader); err != nil {
		return err
	}
	for _, p := range people {
		if err := writer.Write([]string{
			p.FirstName,
			p.LastName,
			p.DateOfBirth.Format(config.DateFormat),
			p.FavoriteSport.Label(),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeAtomic streams content into a temporary sibling of path and renames
// it over path once fully written and synced.
func writeAtomic(path string, content func(io.Writer) error) (err error) {
	target, perm := saveTarget(path)

	tmp, err := os.CreateTemp(filepath.Dir(target), config.TempFilePattern)
	if err != nil {
		return ioError(err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err == nil {
			return
		}
		_ = tmp.Close()
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			slog.Warn(config.MsgTempCleanup,
				config.LogKeyComponent, config.CompStore,
				config.LogKeyFile, tmpName,
				config.LogKeyError, rmErr)
		}
	}()

	if err = content(tmp); err != nil {
		return ioError(err)
	}
	if err = tmp.Sync(); err != nil {
		return ioError(err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return ioError(err)
	}
	if err = tmp.Close(); err != nil {
		return ioError(err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return ioError(err)
	}
	return nil
}

// saveTarget follows symlinks to the file actually replaced and returns the
// mode it must keep. New files get FilePermData.
func saveTarget(path string) (string, fs.FileMode) {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return path, info.Mode().Perm()
	}
	return path, config.FilePermData
}
