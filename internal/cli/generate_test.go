package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/inktrace/inktrace/pkg/errors"
)

const testDrawing = `<svg xmlns="http://www.w3.org/2000/svg">
  <path d="M 0 0 L 10 0 L 10 10 L 0 10 Z"/>
</svg>
`

const (
	testPkgCategory = "ed2b6409-76fa-4e97-b0d8-0bb1f2cd0b54"
	testPkgUUID     = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
)

// TestMain disables user-level profile discovery so tests never pick up a
// developer's real profile.
func TestMain(m *testing.M) {
	userConfigDir = func() (string, error) { return "", os.ErrNotExist }
	os.Exit(m.Run())
}

// setUserConfigDir points profile discovery at a fresh directory and
// returns it.
func setUserConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	restore := userConfigDir
	userConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userConfigDir = restore })
	return dir
}

// writeDrawing writes an SVG drawing into a fresh temp dir and returns its path.
func writeDrawing(t *testing.T, svg string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drawing.svg")
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		t.Fatalf("write drawing: %v", err)
	}
	return path
}

// execGenerate runs the generate command with the given arguments.
func execGenerate(t *testing.T, out io.Writer, args ...string) error {
	t.Helper()
	if out == nil {
		out = io.Discard
	}
	c := New(io.Discard, log.FatalLevel)
	cmd := c.generateCommand()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestGenerateCommandWritesLibrary(t *testing.T) {
	drawing := writeDrawing(t, testDrawing)
	outdir := t.TempDir()

	err := execGenerate(t, nil,
		drawing,
		"--outpath", outdir,
		"--name", "Logo",
		"--author", "jane",
		"--uuid-pkgcat", testPkgCategory,
		"--uuid-pkg", testPkgUUID,
		"--echo-svg",
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outdir, "pkg", testPkgUUID, "package.lp"))
	if err != nil {
		t.Fatalf("read generated package: %v", err)
	}
	doc := string(data)
	if !strings.HasPrefix(doc, "(librepcb_package "+testPkgUUID) {
		t.Errorf("package document has wrong header:\n%s", doc)
	}
	if !strings.Contains(doc, `(author "jane")`) {
		t.Error("package document should contain the author")
	}

	marker, err := os.ReadFile(filepath.Join(outdir, "pkg", testPkgUUID, ".librepcb-pkg"))
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if string(marker) != "0.1" {
		t.Errorf("marker content = %q, want %q", string(marker), "0.1")
	}
}

func TestGenerateCommandAllElements(t *testing.T) {
	drawing := writeDrawing(t, testDrawing)
	outdir := t.TempDir()

	err := execGenerate(t, nil,
		drawing,
		"-o", outdir,
		"--name", "Logo",
		"--author", "jane",
		"--uuid-pkgcat", testPkgCategory,
		"--device",
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// --device implies component and symbol.
	for _, dir := range []string{"pkg", "sym", "cmp", "dev"} {
		entries, err := os.ReadDir(filepath.Join(outdir, dir))
		if err != nil {
			t.Fatalf("read %s: %v", dir, err)
		}
		if len(entries) != 1 {
			t.Errorf("%s element count = %d, want 1", dir, len(entries))
		}
	}
}

func TestGenerateCommandEchoSVG(t *testing.T) {
	drawing := writeDrawing(t, testDrawing)

	var out bytes.Buffer
	err := execGenerate(t, &out,
		drawing,
		"-o", t.TempDir(),
		"-n", "Logo",
		"--author", "jane",
		"--uuid-pkgcat", testPkgCategory,
		"--echo-svg",
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if out.String() != testDrawing {
		t.Errorf("echoed SVG = %q, want the unmodified input", out.String())
	}
}

func TestGenerateCommandProfilePrecedence(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "company.toml")
	profileTOML := `author = "profile-author"
version = "0.2"

[layers]
copper = false

[elements]
symbol = true
`
	if err := os.WriteFile(profilePath, []byte(profileTOML), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	drawing := writeDrawing(t, testDrawing)
	outdir := t.TempDir()

	err := execGenerate(t, nil,
		drawing,
		"-o", outdir,
		"--name", "Logo",
		"--author", "flag-author",
		"--uuid-pkgcat", testPkgCategory,
		"--uuid-pkg", testPkgUUID,
		"--profile", profilePath,
		"--echo-svg",
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outdir, "pkg", testPkgUUID, "package.lp"))
	if err != nil {
		t.Fatalf("read generated package: %v", err)
	}
	doc := string(data)

	if !strings.Contains(doc, `(author "flag-author")`) {
		t.Error("author flag should override the profile")
	}
	if !strings.Contains(doc, `(version "0.2")`) {
		t.Error("profile version should apply when no flag is given")
	}
	if strings.Contains(doc, "top_cu") {
		t.Error("profile should disable the copper layer")
	}

	entries, err := os.ReadDir(filepath.Join(outdir, "sym"))
	if err != nil {
		t.Fatalf("read sym: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("symbol element count = %d, profile should enable the symbol", len(entries))
	}
}

func TestGenerateCommandDefaultProfile(t *testing.T) {
	confDir := setUserConfigDir(t)
	if err := os.MkdirAll(filepath.Join(confDir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	profileTOML := "author = \"config-author\"\n"
	if err := os.WriteFile(filepath.Join(confDir, appName, "profile.toml"), []byte(profileTOML), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	drawing := writeDrawing(t, testDrawing)
	outdir := t.TempDir()

	err := execGenerate(t, nil,
		drawing,
		"-o", outdir,
		"--name", "Logo",
		"--uuid-pkgcat", testPkgCategory,
		"--uuid-pkg", testPkgUUID,
		"--echo-svg",
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outdir, "pkg", testPkgUUID, "package.lp"))
	if err != nil {
		t.Fatalf("read generated package: %v", err)
	}
	if !strings.Contains(string(data), `(author "config-author")`) {
		t.Error("author from the user profile should apply when --author is not given")
	}
}

func TestGenerateCommandExplicitProfileBeatsDefault(t *testing.T) {
	confDir := setUserConfigDir(t)
	if err := os.MkdirAll(filepath.Join(confDir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(confDir, appName, "profile.toml"), []byte("author = \"config-author\"\n"), 0o644); err != nil {
		t.Fatalf("write user profile: %v", err)
	}

	explicitPath := filepath.Join(t.TempDir(), "company.toml")
	if err := os.WriteFile(explicitPath, []byte("author = \"company-author\"\n"), 0o644); err != nil {
		t.Fatalf("write explicit profile: %v", err)
	}

	drawing := writeDrawing(t, testDrawing)
	outdir := t.TempDir()

	err := execGenerate(t, nil,
		drawing,
		"-o", outdir,
		"--name", "Logo",
		"--uuid-pkgcat", testPkgCategory,
		"--uuid-pkg", testPkgUUID,
		"--profile", explicitPath,
		"--echo-svg",
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outdir, "pkg", testPkgUUID, "package.lp"))
	if err != nil {
		t.Fatalf("read generated package: %v", err)
	}
	if !strings.Contains(string(data), `(author "company-author")`) {
		t.Error("an explicit --profile should replace the user profile entirely")
	}
}

func TestGenerateCommandFlagOverridesProfileToggle(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "company.toml")
	if err := os.WriteFile(profilePath, []byte("[elements]\nsymbol = true\n"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	drawing := writeDrawing(t, testDrawing)
	outdir := t.TempDir()

	err := execGenerate(t, nil,
		drawing,
		"-o", outdir,
		"--name", "Logo",
		"--author", "jane",
		"--uuid-pkgcat", testPkgCategory,
		"--profile", profilePath,
		"--symbol=false",
		"--echo-svg",
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outdir, "sym")); !os.IsNotExist(err) {
		t.Error("explicit --symbol=false should suppress the profile's symbol element")
	}
}

func TestGenerateCommandRequiredFlags(t *testing.T) {
	drawing := writeDrawing(t, testDrawing)

	err := execGenerate(t, nil, drawing, "--outpath", t.TempDir())
	if err == nil {
		t.Fatal("expected an error when --name is missing")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("error = %v, should mention the missing name flag", err)
	}
}

func TestGenerateCommandMissingDrawing(t *testing.T) {
	err := execGenerate(t, nil,
		filepath.Join(t.TempDir(), "missing.svg"),
		"-o", t.TempDir(),
		"--name", "Logo",
		"--author", "jane",
		"--uuid-pkgcat", testPkgCategory,
	)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeInvalidPath)
	}
}

func TestGenerateCommandInvalidSVG(t *testing.T) {
	drawing := writeDrawing(t, `<svg xmlns="http://www.w3.org/2000/svg"><path d="M 0 0 A 5 5 0 0 1 10 0"/></svg>`)

	err := execGenerate(t, nil,
		drawing,
		"-o", t.TempDir(),
		"--name", "Logo",
		"--author", "jane",
		"--uuid-pkgcat", testPkgCategory,
	)
	if !errors.Is(err, errors.ErrCodeInvalidSVG) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeInvalidSVG)
	}
}

func TestGenerateCommandIgnoresInkscapeIDs(t *testing.T) {
	drawing := writeDrawing(t, testDrawing)

	err := execGenerate(t, nil,
		drawing,
		"-o", t.TempDir(),
		"--name", "Logo",
		"--author", "jane",
		"--uuid-pkgcat", testPkgCategory,
		"--id", "path831",
		"--id", "path832",
		"--echo-svg",
	)
	if err != nil {
		t.Errorf("generate with --id flags should succeed, got %v", err)
	}
}

func TestResolveOptionsPrecedence(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "profile.toml")
	profileTOML := `author = "profile-author"
version = "0.3"
flattening_tolerance = 0.05
`
	if err := os.WriteFile(profilePath, []byte(profileTOML), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	o := generateOpts{
		name:        "Logo",
		author:      "flag-author",
		profilePath: profilePath,
	}
	opts, err := o.resolveOptions(&cobra.Command{})
	if err != nil {
		t.Fatalf("resolveOptions: %v", err)
	}

	if opts.Author != "flag-author" {
		t.Errorf("Author = %q, explicit flag should win", opts.Author)
	}
	if opts.Version != "0.3" {
		t.Errorf("Version = %q, profile should fill unset fields", opts.Version)
	}
	if opts.Tolerance != 0.05 {
		t.Errorf("Tolerance = %v, profile should fill unset fields", opts.Tolerance)
	}
	if opts.Name != "Logo" {
		t.Errorf("Name = %q, want %q", opts.Name, "Logo")
	}
}

func TestResolveOptionsMissingProfile(t *testing.T) {
	o := generateOpts{
		name:        "Logo",
		profilePath: filepath.Join(t.TempDir(), "missing.toml"),
	}
	_, err := o.resolveOptions(&cobra.Command{})
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeInvalidPath)
	}
}
