package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmcdole/kutubxona/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	readerEmail = "reader@example.com"
	adminEmail  = "admin@kutubxona.uz"
	password    = "secret1"
)

// testConfig writes a config with no latency, no spinner and no log file
func testConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`
data:
  path: %s
catalog:
  load_latency: 0s
auth:
  latency: 0s
ui:
  spinner: false
logging:
  file: ""
`, filepath.Join(dir, "kutubxona.db"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(append([]string{"--config", cfg}, args...), &out, &errOut)
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, testConfig(t), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestList_All(t *testing.T) {
	out, err := execute(t, testConfig(t), "list")
	require.NoError(t, err)

	for _, title := range []string{"O'tkan kunlar", "Sarob", "Fizika asoslari"} {
		assert.Contains(t, out, title)
	}
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)
}

func TestList_Category(t *testing.T) {
	out, err := execute(t, testConfig(t), "list", "--category", "Texnologiya")
	require.NoError(t, err)

	assert.Contains(t, out, "#4")
	assert.NotContains(t, out, "Sarob")
}

func TestList_CategoryIgnoresCase(t *testing.T) {
	out, err := execute(t, testConfig(t), "list", "-c", "tarix")
	require.NoError(t, err)
	assert.Contains(t, out, "O'zbekiston tarixi")
}

func TestList_UnknownCategorySuggests(t *testing.T) {
	out, err := execute(t, testConfig(t), "list", "--category", "texnol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
	assert.Contains(t, out, "Balki: Texnologiya?")
}

func TestList_Search(t *testing.T) {
	out, err := execute(t, testConfig(t), "list", "--search", "SAROB")
	require.NoError(t, err)
	assert.Contains(t, out, "Sarob")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1)
}

func TestList_NoMatch(t *testing.T) {
	out, err := execute(t, testConfig(t), "list", "--search", "zzzzzz")
	require.NoError(t, err)
	assert.Contains(t, out, "Hech qanday kitob topilmadi")
}

func TestCategories(t *testing.T) {
	out, err := execute(t, testConfig(t), "categories")
	require.NoError(t, err)
	assert.Equal(t, "Barchasi\nAdabiyot\nTexnologiya\nTarix\nFan\n", out)
}

func TestShow(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "show", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Algoritm va ma'lumotlar strukturasi")
	assert.Contains(t, out, "Texnologiya")

	_, err = execute(t, cfg, "show", "999")
	assert.ErrorIs(t, err, domain.ErrBookNotFound)

	_, err = execute(t, cfg, "show", "abc")
	assert.EqualError(t, err, `invalid book id "abc"`)
}

func TestSave_RequiresLogin(t *testing.T) {
	_, err := execute(t, testConfig(t), "save", "4")
	assert.ErrorIs(t, err, errLoginRequired)
}

func TestSave_InvalidCredentials(t *testing.T) {
	_, err := execute(t, testConfig(t), "save", "4", "--email", readerEmail, "--password", "123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSave_PersistsAcrossRuns(t *testing.T) {
	cfg := testConfig(t)
	login := []string{"--email", readerEmail, "--password", password}

	out, err := execute(t, cfg, append([]string{"save", "4"}, login...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Saqlandi:")

	out, err = execute(t, cfg, append([]string{"saved"}, login...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Algoritm va ma'lumotlar strukturasi")
	assert.Contains(t, out, "Kitoblar: 1")

	_, err = execute(t, cfg, append([]string{"unsave", "4"}, login...)...)
	require.NoError(t, err)

	out, err = execute(t, cfg, append([]string{"saved"}, login...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Saqlangan kitoblar yo'q")
}

func TestSave_UnknownBook(t *testing.T) {
	_, err := execute(t, testConfig(t), "save", "999", "--google")
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestLogin(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "login", "--google")
	require.NoError(t, err)
	assert.Contains(t, out, "Google User")
	assert.Contains(t, out, "user@gmail.com")

	out, err = execute(t, cfg, "login", "--email", adminEmail, "--password", password)
	require.NoError(t, err)
	assert.Contains(t, out, "admin")
}

func TestTheme(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: light")

	_, err = execute(t, cfg, "theme", "dark")
	require.NoError(t, err)

	out, err = execute(t, cfg, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: dark")

	out, err = execute(t, cfg, "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: light")

	_, err = execute(t, cfg, "theme", "purple")
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	cfg := testConfig(t)

	_, err := execute(t, cfg, "save", "1", "--google")
	require.NoError(t, err)
	_, err = execute(t, cfg, "theme", "dark")
	require.NoError(t, err)

	_, err = execute(t, cfg, "reset")
	require.NoError(t, err)

	out, err := execute(t, cfg, "saved", "--google")
	require.NoError(t, err)
	assert.Contains(t, out, "Saqlangan kitoblar yo'q")

	out, err = execute(t, cfg, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: light")
}

func TestAdmin_RequiresAdminRole(t *testing.T) {
	cfg := testConfig(t)

	_, err := execute(t, cfg, "admin", "stats")
	assert.ErrorIs(t, err, errLoginRequired)

	_, err = execute(t, cfg, "admin", "stats", "--email", readerEmail, "--password", password)
	assert.ErrorIs(t, err, errAdminRequired)
}

func TestAdmin_Stats(t *testing.T) {
	out, err := execute(t, testConfig(t), "admin", "stats", "--email", adminEmail, "--password", password)
	require.NoError(t, err)
	assert.Contains(t, out, "Jami kitoblar: 6")
	assert.Contains(t, out, "Toifalar: 4")
}

func TestAdmin_Add(t *testing.T) {
	out, err := execute(t, testConfig(t), "admin", "add",
		"--email", adminEmail, "--password", password,
		"--title", "Yangi kitob", "--author", "Muallif", "--category", "Fan",
		"--year", "2024", "--format", "PDF,EPUB")
	require.NoError(t, err)
	assert.Contains(t, out, "Kitob qo'shildi")
	assert.Contains(t, out, "Yangi kitob")
	assert.Contains(t, out, "0.0")
}

func TestAdmin_Update(t *testing.T) {
	cfg := testConfig(t)
	admin := []string{"--email", adminEmail, "--password", password}

	out, err := execute(t, cfg, append([]string{"admin", "update", "4", "--title", "Algoritmlar", "--rating", "4.2"}, admin...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Algoritmlar")
	assert.Contains(t, out, "4.2")

	_, err = execute(t, cfg, append([]string{"admin", "update", "999", "--title", "X"}, admin...)...)
	assert.ErrorIs(t, err, domain.ErrBookNotFound)

	_, err = execute(t, cfg, append([]string{"admin", "update", "4"}, admin...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
}

func TestAdmin_Delete(t *testing.T) {
	cfg := testConfig(t)
	admin := []string{"--email", adminEmail, "--password", password}

	out, err := execute(t, cfg, append([]string{"admin", "delete", "4"}, admin...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Kitob o'chirildi: 4")

	_, err = execute(t, cfg, append([]string{"admin", "delete", "999"}, admin...)...)
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestAdmin_StatsBreakdown(t *testing.T) {
	out, err := execute(t, testConfig(t), "admin", "stats", "--email", adminEmail, "--password", password)
	require.NoError(t, err)

	assert.Contains(t, out, "Adabiyot: 3")
	assert.Contains(t, out, "Texnologiya: 1")
	assert.Contains(t, out, "1. Algoritm va ma'lumotlar strukturasi")
	assert.Contains(t, out, "3. Sarob")
	assert.Contains(t, out, "5. O'tkan kunlar")
	assert.NotContains(t, out, "Mehrobdan chayon")
}

func TestAdmin_RejectsReservedCategory(t *testing.T) {
	cfg := testConfig(t)
	admin := []string{"--email", adminEmail, "--password", password}

	_, err := execute(t, cfg, append([]string{"admin", "add", "--title", "X", "--category", "Barchasi"}, admin...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")

	_, err = execute(t, cfg, append([]string{"admin", "update", "4", "--category", "barchasi"}, admin...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")
}

func TestDownload(t *testing.T) {
	cfg := testConfig(t)

	_, err := execute(t, cfg, "download", "1")
	assert.ErrorIs(t, err, errLoginRequired)

	out, err := execute(t, cfg, "download", "1", "--google", "--format", "epub")
	require.NoError(t, err)
	assert.Contains(t, out, "EPUB formatida yuklab olinmoqda...")

	out, err = execute(t, cfg, "download", "4", "--google")
	require.NoError(t, err)
	assert.Contains(t, out, "PDF formatida yuklab olinmoqda...")

	_, err = execute(t, cfg, "download", "4", "--google", "-f", "EPUB")
	assert.ErrorIs(t, err, domain.ErrFormatUnavailable)

	_, err = execute(t, cfg, "download", "999", "--google")
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestLogin_SignUp(t *testing.T) {
	out, err := execute(t, testConfig(t), "login", "--signup",
		"--name", "Ali Valiyev", "--email", "ali@example.com",
		"--password", password, "--confirm-password", password)
	require.NoError(t, err)
	assert.Contains(t, out, "Xush kelibsiz, Ali Valiyev")
	assert.Contains(t, out, "ali@example.com")
}

func TestLogin_SignUpMismatchedConfirmation(t *testing.T) {
	_, err := execute(t, testConfig(t), "login", "--signup",
		"--name", "Ali", "--email", "ali@example.com",
		"--password", password, "--confirm-password", "secret2")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "passwords do not match")
}

func TestLogin_SignUpRequiresName(t *testing.T) {
	_, err := execute(t, testConfig(t), "login", "--signup",
		"--email", "ali@example.com", "--password", password, "--confirm-password", password)
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLogin_SignUpWithoutTerminalNeedsConfirmation(t *testing.T) {
	_, err := execute(t, testConfig(t), "login", "--signup",
		"--name", "Ali", "--email", "ali@example.com", "--password", password)
	assert.ErrorIs(t, err, errLoginRequired)
}

func TestRun_DefaultConfigLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("KUTUBXONA_CATALOG_LOAD_LATENCY", "0s")

	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"theme", "dark"}, &out, &errOut))
	assert.FileExists(t, filepath.Join(home, ".local", "share", "kutubxona", "kutubxona.db"))
}
