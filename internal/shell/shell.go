// Package shell is the text front-end: an interactive command loop over a
// record file and the one-shot commands run straight from the command line.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/interop"
	"github.com/tartampluch/go-people/internal/locale"
	"github.com/tartampluch/go-people/internal/sport"
	"github.com/tartampluch/go-people/internal/store"
)

var (
	ErrUnknownCommand  = errors.New(config.ErrUnknownCommand)
	ErrMissingArgument = errors.New(config.ErrMissingArgument)
	ErrInvalidIndex    = errors.New(config.ErrInvalidIndex)
)

// Config wires a shell to its file, collaborators and streams.
type Config struct {
	Path       string // Record file, target of every save.
	Store      *store.Store
	Translator *locale.Translator
	Clock      store.Clock
	In         LineReader
	Out        io.Writer
}

// Shell holds the working copy of the records between saves.
type Shell struct {
	cfg    Config
	people store.People
	dirty  bool
}

// New returns a shell editing people, as loaded from cfg.Path.
func New(cfg Config, people store.People) *Shell {
	if cfg.Store == nil {
		cfg.Store = store.New(nil)
	}
	if cfg.Clock == nil {
		cfg.Clock = store.RealClock{}
	}
	if people == nil {
		people = store.People{}
	}
	return &Shell{cfg: cfg, people: people}
}

// People returns the working copy.
func (sh *Shell) People() store.People { return sh.people }

// Dirty reports changes made since the last successful save.
func (sh *Shell) Dirty() bool { return sh.dirty }

// Run reads and executes commands until exit is confirmed, the input ends
// or ctx is cancelled. Command failures are reported to the user and never
// end the loop. Unsaved changes are lost when the input ends.
func (sh *Shell) Run(ctx context.Context) error {
	slog.Info(config.MsgShellStart,
		config.LogKeyComponent, config.CompShell,
		config.LogKeyFile, sh.cfg.Path,
		config.LogKeyCount, len(sh.people))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		prompt := config.ShellPrompt
		if sh.dirty {
			prompt = config.ShellPromptDirty
		}

		line, err := sh.cfg.In.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			sh.println("")
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", config.ErrReadInput, err)
		}

		quit, err := sh.Execute(line)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line. It returns true when the user asked
// to leave. The error is only set when the input stream itself fails.
func (sh *Shell) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	slog.Debug(config.MsgShellCommand,
		config.LogKeyComponent, config.CompShell,
		config.LogKeyCommand, cmd)

	switch {
	case slices.Contains(config.ShellCmdExit, cmd):
		return sh.confirmExit()
	case slices.Contains(config.ShellCmdSave, cmd):
		sh.save()
	case slices.Contains(config.ShellCmdPrint, cmd):
		sh.println(RenderTable(sh.people, sh.cfg.Clock.Now(), sh.cfg.Translator))
	case slices.Contains(config.ShellCmdDelete, cmd):
		sh.delete(args)
	case slices.Contains(config.ShellCmdEdit, cmd):
		return false, sh.edit(args)
	case slices.Contains(config.ShellCmdNew, cmd):
		return false, sh.add()
	case slices.Contains(config.ShellCmdExport, cmd):
		sh.export(args)
	case slices.Contains(config.ShellCmdImport, cmd):
		sh.importCards(args)
	case slices.Contains(config.ShellCmdHelp, cmd):
		sh.help()
	default:
		sh.println(sh.msgWith(config.TKeyShUnknownCmd, "Command", fields[0]))
	}
	return false, nil
}

func (sh *Shell) confirmExit() (bool, error) {
	if !sh.dirty {
		return true, nil
	}
	answer, err := sh.cfg.In.ReadLine(sh.msg(config.TKeyShConfirmExit))
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == config.ShellAnswerYes || answer == config.ShellAnswerYesL, nil
}

func (sh *Shell) save() {
	if err := sh.cfg.Store.Save(sh.cfg.Path, sh.people); err != nil {
		sh.printError(err)
		return
	}
	sh.dirty = false
	sh.println(sh.msgWith(config.TKeyShSaved, "File", sh.cfg.Path))
}

func (sh *Shell) delete(args []string) {
	index, ok := parseIndex(args)
	if !ok {
		sh.println(sh.msg(config.TKeyShUsageDelete))
		return
	}
	if err := sh.people.Delete(index); err != nil {
		sh.println(sh.msg(config.TKeyShIndexOOB))
		return
	}
	sh.dirty = true
	sh.println(sh.msgWith(config.TKeyShDeleted, "Index", index))
}

func (sh *Shell) add() error {
	sh.println(sh.msg(config.TKeyShAdding))

	var d store.Draft
	var err error
	if d.FirstName, err = sh.ask(config.TKeyShPromptFirst, false); err != nil {
		return err
	}
	if d.LastName, err = sh.ask(config.TKeyShPromptLast, false); err != nil {
		return err
	}
	if d.DateOfBirth, err = sh.ask(config.TKeyShPromptDOB, false); err != nil {
		return err
	}
	if _, perr := store.ParseDate(d.DateOfBirth); perr != nil {
		sh.println(sh.msg(config.TKeyShBadDateDefault))
		d.DateOfBirth = ""
	}
	if d.FavoriteSport, err = sh.askSport(false); err != nil {
		return err
	}

	sh.people.Add(sh.cfg.Store.CreateTyped(d))
	sh.dirty = true
	sh.println(sh.msg(config.TKeyShAdded))
	return nil
}

func (sh *Shell) edit(args []string) error {
	index, ok := parseIndex(args)
	if !ok {
		sh.println(sh.msg(config.TKeyShUsageEdit))
		return nil
	}
	if index >= len(sh.people) {
		sh.println(sh.msg(config.TKeyShIndexOOB))
		return nil
	}

	current := sh.people[index]
	sh.println(sh.cfg.Translator.MsgWith(config.TKeyShEditing, map[string]any{
		"Index": index,
		"Name":  current.FullName(),
	}))

	var d store.Draft
	var err error
	if d.FirstName, err = sh.ask(config.TKeyShPromptFirst, true); err != nil {
		return err
	}
	if d.LastName, err = sh.ask(config.TKeyShPromptLast, true); err != nil {
		return err
	}
	if d.DateOfBirth, err = sh.ask(config.TKeyShPromptDOB, true); err != nil {
		return err
	}
	if d.DateOfBirth != "" {
		if _, perr := store.ParseDate(d.DateOfBirth); perr != nil {
			sh.println(sh.msg(config.TKeyShBadDateKeep))
			d.DateOfBirth = ""
		}
	}
	if d.FavoriteSport, err = sh.askSport(true); err != nil {
		return err
	}

	updated, err := d.Apply(current)
	if err != nil {
		sh.printError(err)
		return nil
	}
	if err := sh.people.Edit(index, updated); err != nil {
		sh.println(sh.msg(config.TKeyShIndexOOB))
		return nil
	}
	sh.dirty = true
	sh.println(sh.msg(config.TKeyShUpdated))
	return nil
}

// export accepts "export FORMAT PATH" or "export PATH" with a known extension.
func (sh *Shell) export(args []string) {
	var format, path string
	switch len(args) {
	case 1:
		path = args[0]
		if f, ok := interop.FormatFromPath(path); ok {
			format = f
		}
	case 2:
		format, path = args[0], args[1]
	}
	if format == "" || path == "" {
		sh.println(sh.msg(config.TKeyShUsageExport))
		return
	}

	opts := interop.LocalizedOptions(sh.cfg.Translator, sh.cfg.Clock.Now())
	if err := interop.ExportFile(path, format, sh.people, opts); err != nil {
		sh.printError(err)
		return
	}
	sh.println(sh.msgWith(config.TKeyShExported, "File", path))
}

func (sh *Shell) importCards(args []string) {
	if len(args) != 1 {
		sh.println(sh.msg(config.TKeyShUsageImport))
		return
	}

	imported, err := interop.ImportFile(args[0], sh.cfg.Store)
	if err != nil {
		sh.printError(err)
		return
	}
	for _, p := range imported {
		sh.people.Add(p)
	}
	if len(imported) > 0 {
		sh.dirty = true
	}
	sh.println(sh.cfg.Translator.Plural(config.TKeyShImported, len(imported)))
}

func (sh *Shell) help() {
	sh.println(sh.msg(config.TKeyShHelp))
	sh.println(sh.msg(config.TKeyShValidSports))
	sh.printCatalog()
	sh.println(sh.msg(config.TKeyShSportOtherHint))
}

// ask prompts for one field. keep appends the "leave blank" hint.
func (sh *Shell) ask(key string, keep bool) (string, error) {
	prompt := fmt.Sprintf(config.ShellFieldPrompt, sh.msg(key))
	if keep {
		prompt = fmt.Sprintf(config.ShellFieldPromptKeep, sh.msg(key), sh.msg(config.TKeyShKeepSuffix))
	}
	line, err := sh.cfg.In.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askSport shows the numbered catalog and returns the canonical label of the
// chosen sport, or the text typed. Blank means no choice.
func (sh *Shell) askSport(keep bool) (string, error) {
	sh.printCatalog()
	sh.println(sh.msg(config.TKeyShSportOtherHint))

	answer, err := sh.ask(config.TKeyShPromptSport, keep)
	if err != nil || answer == "" {
		return "", err
	}
	return resolveSport(answer), nil
}

func (sh *Shell) printCatalog() {
	for i, s := range sport.AllKnown() {
		_, _ = fmt.Fprintf(sh.cfg.Out, config.ShellCatalogLine, i+1, sh.cfg.Translator.SportWithGlyph(s))
	}
}

// resolveSport maps a catalog number to its label. Anything else is kept
// for sport.Parse.
func resolveSport(answer string) string {
	known := sport.AllKnown()
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(known) {
		return known[n-1].Label()
	}
	return answer
}

func parseIndex(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

func (sh *Shell) msg(key string) string { return sh.cfg.Translator.Msg(key) }

func (sh *Shell) msgWith(key, field string, value any) string {
	return sh.cfg.Translator.MsgWith(key, map[string]any{field: value})
}

func (sh *Shell) println(s string) {
	_, _ = fmt.Fprintln(sh.cfg.Out, s)
}

func (sh *Shell) printError(err error) {
	slog.Warn(config.MsgShellCommand,
		config.LogKeyComponent, config.CompShell,
		config.LogKeyError, err)
	sh.println(sh.msgWith(config.TKeyShError, "Error", err))
}
