package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/sorteio/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args against an isolated home
// directory and returns what was written to stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sorteio version dev")
}

func TestDeriveCommand(t *testing.T) {
	out, err := executeCommand(t, "derive",
		"--group-size", "1000",
		"--limit", "600",
		"--quotas", "070,999",
		"--locale", "pt-BR",
		"48602", "25471", "09159", "32070", "71590")
	require.NoError(t, err)

	assert.Contains(t, out, "Valid tickets: 5")
	assert.Contains(t, out, "Centenas (3 per prize)")
	assert.Contains(t, out, "Closest (≤ 600)")
	assert.Contains(t, out, "1,491%")
	assert.Contains(t, out, "4) My quotas")
	assert.Contains(t, out, "Yes")
}

func TestDeriveCommand_InvalidGroupSize(t *testing.T) {
	_, err := executeCommand(t, "derive",
		"--group-size", "1",
		"--limit", "600",
		"--quotas", "",
		"48602")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group size must be between 2 and 10000")
}

func TestDeriveCommand_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	out, err := executeCommand(t, "derive",
		"--group-size", "5000",
		"--limit", "10000",
		"--quotas", "",
		"--export-dir", dir,
		"--export",
		"48602", "25471")
	require.NoError(t, err)

	assert.Contains(t, out, "Milhares (2 per prize)")
	assert.FileExists(t, filepath.Join(dir, "numeros_gerados.csv"))
	assert.FileExists(t, filepath.Join(dir, "numeros_filtrados.csv"))
}

func TestOddsCommand(t *testing.T) {
	out, err := executeCommand(t, "odds",
		"--group-size", "1000",
		"--locale", "en",
		"--tickets", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Centenas (3 per prize)")
	assert.Contains(t, out, "0.300%")
	assert.Contains(t, out, "1 in 333.33")
}

func TestGroupsAndQuotasCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "sorteio.db")

	out, err := executeCommand(t, "groups", "set", "auto", "1000", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Group auto saved")

	out, err = executeCommand(t, "quotas", "add", "auto", "070,471", "999", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "3 quota(s) added to auto")

	out, err = executeCommand(t, "quotas", "list", "auto", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "070, 471, 999")

	out, err = executeCommand(t, "quotas", "check", "auto",
		"--db", db,
		"--limit", "600",
		"--locale", "pt-BR",
		"48602", "25471", "09159", "32070", "71590")
	require.NoError(t, err)
	assert.Contains(t, out, "4) My quotas")
	assert.Contains(t, out, "Yes")

	out, err = executeCommand(t, "quotas", "remove", "auto", "999", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Quota 999 removed from auto")

	out, err = executeCommand(t, "groups", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "auto")
	assert.Contains(t, out, "centena")

	out, err = executeCommand(t, "groups", "delete", "auto", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Group auto deleted")

	_, err = executeCommand(t, "quotas", "list", "auto", "--db", db)
	require.Error(t, err)
	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, "Use 'sorteio groups set auto <size>' to create it.", userErr.Hint)
}

func TestGroupsSet_InvalidSize(t *testing.T) {
	db := filepath.Join(t.TempDir(), "sorteio.db")

	_, err := executeCommand(t, "groups", "set", "auto", "abc", "--db", db)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidArgument)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, `group size "abc" is not a number`, userErr.Message)
}

func TestMissingGroupAndQuotaErrors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "sorteio.db")

	_, err := executeCommand(t, "groups", "delete", "ghost", "--db", db)
	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, userErr.Hint, "sorteio groups list")

	_, err = executeCommand(t, "quotas", "add", "ghost", "070", "--db", db)
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, `group "ghost" not found`, userErr.Message)

	_, err = executeCommand(t, "groups", "set", "auto", "1000", "--db", db)
	require.NoError(t, err)
	_, err = executeCommand(t, "quotas", "remove", "auto", "070", "--db", db)
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, userErr.Hint, "sorteio quotas list auto")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, common.NewUserError(`group "ghost" not found`, common.ErrNotFound).WithHint("Use 'sorteio groups list' to see your groups."))
	assert.Contains(t, buf.String(), `group "ghost" not found: not found`)
	assert.Contains(t, buf.String(), "Use 'sorteio groups list' to see your groups.")

	buf.Reset()
	printError(&buf, errNoInputFiles)
	assert.Contains(t, buf.String(), "no files found to process")
}

func TestSplitQuotaArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "separate arguments",
			args:     []string{"070", "471"},
			expected: []string{"070", "471"},
		},
		{
			name:     "comma and semicolon lists",
			args:     []string{"070, 471;590", "12"},
			expected: []string{"070", "471", "590", "12"},
		},
		{
			name:     "empty pieces dropped",
			args:     []string{",, ;"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitQuotaArgs(tt.args))
		})
	}
}

func TestTicketText(t *testing.T) {
	raw, err := ticketText(context.Background(), []string{"48602", "25471"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "48602,25471", raw)

	raw, err = ticketText(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, raw)
}
