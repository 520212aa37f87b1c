package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go People"
	AppID       = "com.github.tartampluch.go-people"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// FilePermData represents -rw-r--r--, the mode of newly created record files.
	FilePermData fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// TempFilePattern names the scratch file written next to the target during a save.
	TempFilePattern = ".go-people-*.tmp"
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLang         = "lang"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging (stderr in text modes)"
	FlagDescLang     = "Language used for labels (en, fr)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
	MsgErrorOutput   = "error: %v\n"
	MsgUsage         = "usage: go-people [-debug] [-lang xx] [FILE [print|list|new|edit|delete] [flags]]\n"

	// One-shot subcommands and their flags.
	CmdPrint  = "print"
	CmdList   = "list"
	CmdNew    = "new"
	CmdEdit   = "edit"
	CmdDelete = "delete"

	FlagFirstName     = "first-name"
	FlagLastName      = "last-name"
	FlagDateOfBirth   = "date-of-birth"
	FlagFavoriteSport = "favorite-sport"
	FlagDescFirstName = "First name"
	FlagDescLastName  = "Last name"
	FlagDescDOB       = "Date of birth (YYYY-MM-DD)"
	FlagDescSport     = "Favorite sport"
)

// -----------------------------------------------------------------------------
// Record Storage
// -----------------------------------------------------------------------------

const (
	ColFirstName     = "first_name"
	ColLastName      = "last_name"
	ColDateOfBirth   = "date_of_birth"
	ColFavoriteSport = "favorite_sport"
	ColAge           = "age" // Export only, never stored.

	// DateFormat is the only layout accepted in the date_of_birth column.
	DateFormat = "2006-01-02"

	// DaysPerYear is the fixed divisor of the age computation (no leap adjustment).
	DaysPerYear   = 365
	SecondsPerDay = 86400

	// ByteOrderMark may prefix the header of files saved by spreadsheet tools.
	ByteOrderMark = "\uFEFF"

	ExtCSV        = ".csv"
	NameSeparator = " "
)

// CSVHeader is the header row written at the top of every record file.
var CSVHeader = []string{ColFirstName, ColLastName, ColDateOfBirth, ColFavoriteSport}

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	FallbackName  = "Unknown"
	FallbackSport = "Unknown"

	DefaultBirthYear  = 1900
	DefaultBirthMonth = 1
	DefaultBirthDay   = 1

	DefaultLanguage   = "en"
	DefaultFileName   = "people.csv"
	DefaultExportName = "people.vcf"
	DefaultLeapYear   = 2000 // Leap year fallback for dates like --02-29
	UIDSalt           = "go-people-v1-"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Interchange: iCalendar, vCard & Spreadsheet
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go People//Interop//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gopeople"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	// vCard
	VCardVersion    = "4.0"
	VCardFieldSport = "X-FAVORITE-SPORT"
	VCardBDAYFormat = "20060102"

	// Spreadsheet
	SheetName      = "People"
	SheetDefault   = "Sheet1"
	SheetFirstCell = "A1"
	SheetCellFmt   = "A%d"

	// Date layouts accepted in vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// Export formats
	FormatVCard    = "vcf"
	FormatCalendar = "ics"
	FormatSheet    = "xlsx"
	ExtVCF         = ".vcf"
	ExtVCard       = ".vcard"
	ExtICS         = ".ics"
	ExtXLSX        = ".xlsx"

	// StubVCalendar is the minimal valid iCalendar object written when there is no event.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	// SheetColWidth is the width applied to every spreadsheet column.
	SheetColWidth = 20
	SheetLastCol  = "E"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrIO               = "i/o error"
	ErrFormat           = "format error"
	ErrIndexOutOfBounds = "index out of bounds"
	ErrMissingColumn    = "missing column"
	ErrColumnCount      = "wrong number of fields"
	ErrDateParse        = "unable to parse date"
	ErrCSVRead          = "unable to read CSV record"
	ErrVCardEncode      = "failed to encode vCard data"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrSheetWrite       = "failed to write spreadsheet"
	ErrExportFormat     = "unsupported export format"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrInvalidIndex     = "invalid index"
	ErrMissingArgument  = "missing argument"
	ErrUnknownCommand   = "unknown command"
	ErrReadInput        = "failed to read input"
	ErrMissingName      = "card has no name"
	ErrTerminal         = "failed to set up terminal"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary    = "Birthday: %s"
	FallbackSummaryAge = "Birthday: %s (%d)"

	TitleOpenError   = "Open Error"
	TitleSaveError   = "Save Error"
	TitleExportError = "Export Error"
	TitleEditError   = "Edit Error"
	TitleImportError = "Import Error"

	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down UI"
	MsgAppStarting     = "Starting application"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
	MsgPeopleRead      = "Read people from CSV file"
	MsgPeopleWritten   = "Wrote people to CSV file"
	MsgFileCreated     = "Created new CSV file"
	MsgTempCleanup     = "Failed to remove temporary file"
	MsgSkippedCard     = "Skipping malformed vCard"
	MsgSkippedDate     = "Invalid date, using default"
	MsgCardsImported   = "vCards imported"
	MsgCalendarWritten = "Calendar export successful"
	MsgSheetWritten    = "Spreadsheet export successful"
	MsgCardsWritten    = "vCard export successful"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgShellStart      = "Interactive shell started"
	MsgShellCommand    = "Shell command"
	MsgOneShot         = "Running one-shot command"
	MsgFileOpened      = "File opened"
	MsgFileSaved       = "File saved"
	MsgPrefRestore     = "Restoring last opened file"
	MsgPersonAdded     = "Person added"
	MsgPersonRemoved   = "Person removed"
	MsgExported        = "File exported"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCount     = "count"
	LogKeyIndex     = "index"
	LogKeyID        = "id"
	LogKeyValue     = "value"
	LogKeyCommand   = "command"
	LogKeySkipped   = "skipped"
	LogKeyEvents    = "events"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompStore   = "store"
	CompInterop = "interop"
	CompShell   = "shell"
	CompMain    = "main"
	CompI18n    = "i18n"
)

// -----------------------------------------------------------------------------
// Shell Commands
// -----------------------------------------------------------------------------

const (
	ShellPrompt      = "> "
	ShellPromptDirty = "> (unsaved) "
	ShellAnswerYes   = "y"
	ShellAnswerYesL  = "yes"

	ShellFieldPrompt     = "%s: "
	ShellFieldPromptKeep = "%s %s: "
	ShellCatalogLine     = "  %2d. %s\n"
)

// Shell command aliases, grouped by action.
var (
	ShellCmdExit   = []string{"exit", "quit", "q"}
	ShellCmdSave   = []string{"save", "write", "s", "w"}
	ShellCmdPrint  = []string{"print", "p", "list", "l"}
	ShellCmdDelete = []string{"delete", "d"}
	ShellCmdEdit   = []string{"edit", "e"}
	ShellCmdNew    = []string{"new", "n"}
	ShellCmdHelp   = []string{"help", "h"}
	ShellCmdExport = []string{"export", "x"}
	ShellCmdImport = []string{"import", "i"}
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// Shared labels
	TKeyColIndex      = "col_index"
	TKeyColID         = "col_id"
	TKeyColFirstName  = "col_first_name"
	TKeyColLastName   = "col_last_name"
	TKeyColDOB        = "col_date_of_birth"
	TKeyColAge        = "col_age"
	TKeyColSport      = "col_favorite_sport"
	TKeyNoPeople      = "no_people"
	TKeyPeopleCount   = "people_count" // Requires Count
	TKeySportPrefix   = "sport_"
	TKeyEvtSummary    = "event_summary"     // Requires Name
	TKeyEvtSummaryAge = "event_summary_age" // Requires Name, Age

	// Shell
	TKeyShPromptFirst    = "sh_prompt_first_name"
	TKeyShPromptLast     = "sh_prompt_last_name"
	TKeyShPromptDOB      = "sh_prompt_date_of_birth"
	TKeyShPromptSport    = "sh_prompt_sport"
	TKeyShKeepSuffix     = "sh_keep_suffix"
	TKeyShAdding         = "sh_adding"
	TKeyShEditing        = "sh_editing" // Requires Index, Name
	TKeyShAdded          = "sh_added"
	TKeyShUpdated        = "sh_updated"
	TKeyShDeleted        = "sh_deleted" // Requires Index
	TKeyShSaved          = "sh_saved"   // Requires File
	TKeyShExported       = "sh_exported"
	TKeyShImported       = "sh_imported" // Requires Count
	TKeyShBadDateDefault = "sh_bad_date_default"
	TKeyShBadDateKeep    = "sh_bad_date_keep"
	TKeyShIndexOOB       = "sh_index_out_of_bounds"
	TKeyShUsageDelete    = "sh_usage_delete"
	TKeyShUsageEdit      = "sh_usage_edit"
	TKeyShUsageExport    = "sh_usage_export"
	TKeyShUsageImport    = "sh_usage_import"
	TKeyShUnknownCmd     = "sh_unknown_command" // Requires Command
	TKeyShConfirmExit    = "sh_confirm_exit"
	TKeyShHelp           = "sh_help"
	TKeyShValidSports    = "sh_valid_sports"
	TKeyShError          = "sh_error" // Requires Error
	TKeyShSportOtherHint = "sh_sport_other_hint"

	// GUI
	TKeyWinTitle       = "win_title"
	TKeyWinTitleFile   = "win_title_file"  // Requires File
	TKeyWinTitleDirty  = "win_title_dirty" // Requires File
	TKeyWinUntitled    = "win_untitled"
	TKeyMenuFile       = "menu_file"
	TKeyMenuPeople     = "menu_people"
	TKeyMenuNew        = "menu_new"
	TKeyMenuOpen       = "menu_open"
	TKeyMenuSave       = "menu_save"
	TKeyMenuSaveAs     = "menu_save_as"
	TKeyMenuExport     = "menu_export"
	TKeyMenuImport     = "menu_import"
	TKeyMenuAdd        = "menu_add"
	TKeyMenuEdit       = "menu_edit"
	TKeyMenuDelete     = "menu_delete"
	TKeyMenuLanguage   = "menu_language"
	TKeyMenuQuit       = "menu_quit"
	TKeyDlgAddTitle    = "dlg_add_title"
	TKeyDlgEditTitle   = "dlg_edit_title"
	TKeyDlgDelTitle    = "dlg_delete_title"
	TKeyDlgDelMessage  = "dlg_delete_message" // Requires Name
	TKeyDlgUnsaved     = "dlg_unsaved_title"
	TKeyDlgUnsavedMsg  = "dlg_unsaved_message"
	TKeyDlgNoSelection = "dlg_no_selection"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyErrDateFormat  = "err_date_format"
	TKeyFormatDate     = "format_date_short"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	MainWinWidth  = 720
	MainWinHeight = 480
	DialogWidth   = 420

	// Table Column IDs
	ColIDID        = 0
	ColIDFirstName = 1
	ColIDLastName  = 2
	ColIDDOB       = 3
	ColIDAge       = 4
	ColIDSport     = 5
	ColCount       = 6

	// Table Layout
	ColWidthID    = 60
	ColWidthName  = 140
	ColWidthDate  = 110
	ColWidthAge   = 60
	ColWidthSport = 200

	TablePlaceholder = "Cell Content"
	DateFormatEntry  = "YYYY-MM-DD"

	// Preference Keys
	PrefLanguage = "language"
	PrefLastFile = "last_file"
	PrefLastRun  = "last_run_version"
)
