package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const day10Sample = `[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]
`

func testEnv() (*env, *bytes.Buffer) {
	var out bytes.Buffer
	e := &env{
		cfg:    config{workers: 2, format: "text"},
		stdin:  strings.NewReader(""),
		stdout: &out,
	}
	return e, &out
}

func TestNameLess(t *testing.T) {
	names := []string{"16b", "10b", "2a", "16a", "10a"}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	if got, want := strings.Join(names, " "), "2a 10a 10b 16a 16b"; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestSolutions(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input string
		want  string
	}{
		{"16a", "8A004A801A8002F478\n", "16"},
		{"16a", "A0016C880162017C3686B18A3D4780", "31"},
		{"16b", "C200B40A82", "3"},
		{"16b", "9C0141080250320F1802104A08\n", "1"},
		{"10a", day10Sample, "26397"},
		{"10b", day10Sample, "288957"},
	} {
		e, _ := testEnv()
		got, err := solutions[tt.name](e, []byte(tt.input))
		if err != nil {
			t.Errorf("%s(%q): %s", tt.name, tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s(%q): got %s; want %s", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestSolutionErrors(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input string
	}{
		{"16a", "D2FE"},
		{"16b", "XYZ"},
		{"10a", "(x)"},
		{"10b", "()"},
	} {
		e, _ := testEnv()
		if got, err := solutions[tt.name](e, []byte(tt.input)); err == nil {
			t.Errorf("%s(%q): got %s; want error", tt.name, tt.input, got)
		}
	}
}

func TestHuman(t *testing.T) {
	e, _ := testEnv()
	e.cfg.human = true
	got, err := day10a(e, []byte(day10Sample))
	if err != nil {
		t.Fatal(err)
	}
	if want := "26,397"; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestRun(t *testing.T) {
	e, out := testEnv()
	e.stdin = strings.NewReader("C200B40A82\n")
	if err := run(e, []string{"16b"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "3\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if err := run(e, []string{"99z"}); err == nil {
		t.Error("unknown solution: got nil error")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "advent.ini")
	const contents = `[default]
inputdir = /tmp/inputs
workers = 3
human = true
format = yaml
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := config{inputDir: "/tmp/inputs", workers: 3, human: true, format: "yaml"}
	if cfg != want {
		t.Errorf("got %+v; want %+v", cfg, want)
	}

	cfg, err = loadConfig(filepath.Join(dir, "missing.ini"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != (config{}) {
		t.Errorf("missing file: got %+v; want zero config", cfg)
	}

	if err := os.WriteFile(path, []byte("[default]\nworkers = many\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("bad workers: got nil error")
	}
}

func TestInputDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "download")
	if err := os.WriteFile(src, []byte("C200B40A82\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	e, out := testEnv()
	e.cfg.inputDir = filepath.Join(dir, "inputs")
	if err := run(e, []string{"import", "16", src}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "inputs", "16.txt")); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := run(e, []string{"16b"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "3\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}

	if err := run(e, []string{"import", "30", src}); err == nil {
		t.Error("import day 30: got nil error")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	notes := "# Notes\n\n" +
		"```16b want=3\nC200B40A82\n```\n\n" +
		"```10b want=288957\n" + day10Sample + "```\n"
	path := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(path, []byte(notes), 0o644); err != nil {
		t.Fatal(err)
	}
	e, out := testEnv()
	e.cfg.human = true
	if err := run(e, []string{"check", path}); err != nil {
		t.Fatalf("check failed: %s\n%s", err, out)
	}
	if !strings.Contains(out.String(), "2/2 samples passed") {
		t.Errorf("unexpected output:\n%s", out)
	}

	bad := "```16a want=17\n8A004A801A8002F478\n```\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := run(e, []string{"check", path}); err == nil {
		t.Errorf("check with a wrong answer: got nil error\n%s", out)
	}
	if !strings.Contains(out.String(), "got 16; want 17") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestDump(t *testing.T) {
	for _, tt := range []struct {
		format string
		day    string
		input  string
		want   []string
	}{
		{"text", "16", "38006F45291200", []string{"v1:lt[v6:lit(10) v2:lit(20)]"}},
		{"yaml", "16", "D2FE28", []string{"version: 6", "type: lit", `value: "2021"`}},
		{"pretty", "16", "D2FE28", []string{`Value:`, `"2021"`}},
		{"text", "10", "()\n(]\n[<\n", []string{"complete", "corrupted", "incomplete: needs >]"}},
		{"yaml", "10", "[<\n", []string{"line: 1", "brace:", "close: missing"}},
	} {
		e, out := testEnv()
		e.cfg.format = tt.format
		e.stdin = strings.NewReader(tt.input)
		if err := run(e, []string{"dump", tt.day}); err != nil {
			t.Errorf("dump %s (%s): %s", tt.day, tt.format, err)
			continue
		}
		for _, want := range tt.want {
			if !strings.Contains(out.String(), want) {
				t.Errorf("dump %s (%s): output does not contain %q:\n%s", tt.day, tt.format, want, out)
			}
		}
	}
}

func TestServe(t *testing.T) {
	e, _ := testEnv()
	ts := httptest.NewServer(newRouter(e))
	defer ts.Close()

	for _, tt := range []struct {
		path   string
		body   string
		status int
		want   string
	}{
		{"/solve/16b", "9C0141080250320F1802104A08", http.StatusOK, "1\n"},
		{"/solve/10a", day10Sample, http.StatusOK, "26397\n"},
		{"/solve/99a", "", http.StatusNotFound, ""},
		{"/solve/16a", "D2FE", http.StatusUnprocessableEntity, ""},
	} {
		resp, err := http.Post(ts.URL+tt.path, "text/plain", strings.NewReader(tt.body))
		if err != nil {
			t.Fatal(err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != tt.status {
			t.Errorf("POST %s: got status %d; want %d", tt.path, resp.StatusCode, tt.status)
			continue
		}
		if tt.want != "" && string(body) != tt.want {
			t.Errorf("POST %s: got %q; want %q", tt.path, body, tt.want)
		}
	}

	resp, err := http.Get(ts.URL + "/solutions")
	if err != nil {
		t.Fatal(err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(body), "10a\n10b\n16a\n16b\n"; got != want {
		t.Errorf("GET /solutions: got %q; want %q", got, want)
	}
}

func TestCheckNotes(t *testing.T) {
	e, out := testEnv()
	if err := runCheck(e, []string{filepath.Join("testdata", "notes.md")}); err != nil {
		t.Fatalf("%s\n%s", err, out)
	}
	if !strings.Contains(out.String(), "16/16 samples passed") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
