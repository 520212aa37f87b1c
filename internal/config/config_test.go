package config_test

import (
	"io/fs"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-people/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"VCardVersion", config.VCardVersion},
		{"FallbackName", config.FallbackName},
		{"FallbackSport", config.FallbackSport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 2000, config.DefaultLeapYear, "Default leap year must be 2000 for consistency")

	dob := time.Date(config.DefaultBirthYear, config.DefaultBirthMonth, config.DefaultBirthDay, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1900-01-01", dob.Format(config.DateFormat))

	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
	assert.True(t, strings.HasSuffix(config.DefaultFileName, config.ExtCSV))
	assert.True(t, strings.HasSuffix(config.DefaultExportName, config.ExtVCF))
}

// TestCSVHeader_Order guards the column order written to every file.
func TestCSVHeader_Order(t *testing.T) {
	assert.Equal(t, []string{"first_name", "last_name", "date_of_birth", "favorite_sport"}, config.CSVHeader)
	assert.NotContains(t, config.CSVHeader, config.ColAge, "Age is derived, never stored")
}

// TestShellCommands_NoClash ensures an alias never maps to two commands.
func TestShellCommands_NoClash(t *testing.T) {
	groups := [][]string{
		config.ShellCmdExit, config.ShellCmdSave, config.ShellCmdPrint, config.ShellCmdDelete,
		config.ShellCmdEdit, config.ShellCmdNew, config.ShellCmdHelp, config.ShellCmdExport,
		config.ShellCmdImport,
	}

	seen := map[string]bool{}
	for _, g := range groups {
		for _, alias := range g {
			assert.False(t, seen[alias], "Alias %q is used twice", alias)
			seen[alias] = true
		}
	}

	for _, cmd := range []string{config.CmdPrint, config.CmdList, config.CmdNew, config.CmdEdit, config.CmdDelete} {
		assert.True(t, seen[cmd], "One-shot command %q is also a shell command", cmd)
	}
}

// TestPermissions ensures record files stay world-readable and logs private.
func TestPermissions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-rw-r--r--", config.FilePermData.String())
	assert.Equal(t, "-rw-------", config.FilePermUserRW.String())
	assert.Equal(t, "drwx------", (config.DirPermUserRWX | fs.ModeDir).String())
}

// TestTableLayout keeps column ids dense and in range.
func TestTableLayout(t *testing.T) {
	ids := []int{config.ColIDID, config.ColIDFirstName, config.ColIDLastName, config.ColIDDOB, config.ColIDAge, config.ColIDSport}
	assert.Len(t, ids, config.ColCount)

	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	for i, id := range sorted {
		assert.Equal(t, i, id)
	}
}
