package store

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-people/internal/config"
)

var (
	// ErrIO reports a file that could not be opened, created, written or renamed.
	ErrIO = errors.New(config.ErrIO)

	// ErrFormat reports a row that could not be turned into a Person.
	ErrFormat = errors.New(config.ErrFormat)

	// ErrIndexOutOfBounds reports an edit or delete past the end of the list.
	ErrIndexOutOfBounds = errors.New(config.ErrIndexOutOfBounds)
)

// FormatError locates a parse failure in a record file.
// Row is the 1-based line of the offending record, the header being line 1.
type FormatError struct {
	Path   string
	Row    int
	Column string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: %s: row %d, column %s: %v", config.ErrFormat, e.Path, e.Row, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %s: row %d: %v", config.ErrFormat, e.Path, e.Row, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFormat) hold for every FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

func indexError(index, length int) error {
	return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfBounds, index, length)
}
