package ui

import (
	"errors"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/store"
)

// DateEntry is an Entry for YYYY-MM-DD dates. Only digits and dashes can be
// typed; pasted text is caught by the Validator.
type DateEntry struct {
	widget.Entry
}

// NewDateEntry creates a DateEntry whose validation error reads message.
// A blank field is valid: it means "default" when adding and "keep" when editing.
func NewDateEntry(message string) *DateEntry {
	entry := &DateEntry{}
	entry.ExtendBaseWidget(entry)
	entry.PlaceHolder = config.DateFormatEntry
	entry.Validator = func(s string) error {
		if s == "" {
			return nil
		}
		if _, err := store.ParseDate(s); err != nil {
			return errors.New(message)
		}
		return nil
	}
	return entry
}

// TypedRune drops everything but digits and '-'.
func (e *DateEntry) TypedRune(r rune) {
	if (r >= '0' && r <= '9') || r == '-' {
		e.Entry.TypedRune(r)
	}
}

// Keyboard requests the numeric keypad on mobile devices.
func (e *DateEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
