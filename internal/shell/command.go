package shell

import (
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/store"
)

// IsCommand reports whether name is a one-shot subcommand.
func IsCommand(name string) bool {
	switch name {
	case config.CmdPrint, config.CmdList, config.CmdNew, config.CmdEdit, config.CmdDelete:
		return true
	}
	return false
}

// RunCommand executes one subcommand against people and saves the file when
// the records changed. args starts with the subcommand name. Unlike the
// interactive loop, an invalid date or index is an error.
func RunCommand(cfg Config, people store.People, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: command", ErrMissingArgument)
	}
	sh := New(cfg, people)
	name, rest := args[0], args[1:]

	slog.Info(config.MsgOneShot,
		config.LogKeyComponent, config.CompShell,
		config.LogKeyCommand, name,
		config.LogKeyFile, cfg.Path)

	switch name {
	case config.CmdPrint, config.CmdList:
		sh.println(RenderTable(sh.people, sh.cfg.Clock.Now(), sh.cfg.Translator))
		return nil

	case config.CmdNew:
		fs, d := draftFlags(name, cfg)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if d.DateOfBirth != "" {
			if _, err := store.ParseDate(d.DateOfBirth); err != nil {
				return err
			}
		}
		sh.people.Add(sh.cfg.Store.CreateFromDraft(*d))

	case config.CmdEdit:
		fs, d := draftFlags(name, cfg)
		index, err := indexAndFlags(fs, rest)
		if err != nil {
			return err
		}
		if index >= len(sh.people) {
			// Edit reports the bounds.
			return sh.people.Edit(index, store.Person{})
		}
		updated, err := d.Apply(sh.people[index])
		if err != nil {
			return err
		}
		if err := sh.people.Edit(index, updated); err != nil {
			return err
		}

	case config.CmdDelete:
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		fs.SetOutput(cfg.Out)
		index, err := indexAndFlags(fs, rest)
		if err != nil {
			return err
		}
		if err := sh.people.Delete(index); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	return sh.cfg.Store.Save(cfg.Path, sh.people)
}

// draftFlags declares the record field flags shared by new and edit.
func draftFlags(name string, cfg Config) (*flag.FlagSet, *store.Draft) {
	d := &store.Draft{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cfg.Out)
	fs.StringVar(&d.FirstName, config.FlagFirstName, "", config.FlagDescFirstName)
	fs.StringVar(&d.LastName, config.FlagLastName, "", config.FlagDescLastName)
	fs.StringVar(&d.DateOfBirth, config.FlagDateOfBirth, "", config.FlagDescDOB)
	fs.StringVar(&d.FavoriteSport, config.FlagFavoriteSport, "", config.FlagDescSport)
	return fs, d
}

// indexAndFlags accepts the index before or after the flags.
func indexAndFlags(fs *flag.FlagSet, args []string) (int, error) {
	var positional string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		positional, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if positional == "" {
		positional = fs.Arg(0)
	}
	if positional == "" {
		return 0, fmt.Errorf("%w: index", ErrMissingArgument)
	}

	index, err := strconv.Atoi(positional)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, positional)
	}
	return index, nil
}
