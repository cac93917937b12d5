package sample

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

const notes = "# Day 16\n" +
	"\n" +
	"Literal:\n" +
	"\n" +
	"```16a want=6\n" +
	"D2FE28\n" +
	"```\n" +
	"\n" +
	"```go\n" +
	"fmt.Println(\"not a sample\")\n" +
	"```\n" +
	"\n" +
	"```10a want=26397\n" +
	"[({(<(())[]>[[{[]{<()<>>\n" +
	"{([(<{}[<>[]}>{[]{[(<()>\n" +
	"```\n" +
	"\n" +
	"    indented code is ignored\n"

func TestExtract(t *testing.T) {
	got, err := Extract([]byte(notes))
	if err != nil {
		t.Fatal(err)
	}
	want := []Sample{
		{Solution: "16a", Want: "6", Input: "D2FE28\n", Line: 6},
		{
			Solution: "10a",
			Want:     "26397",
			Input:    "[({(<(())[]>[[{[]{<()<>>\n{([(<{}[<>[]}>{[]{[(<()>\n",
			Line:     14,
		},
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("got (-) / want (+):\n%s", strings.Join(diff, "\n"))
	}
}

func TestExtractErrors(t *testing.T) {
	for _, src := range []string{
		"```want=3\nC200B40A82\n```\n",
		"```16b want=3 want=4\nC200B40A82\n```\n",
	} {
		if _, err := Extract([]byte(src)); err == nil {
			t.Errorf("Extract(%q): got nil error", src)
		} else if !strings.HasPrefix(err.Error(), "line 1:") {
			t.Errorf("Extract(%q): got err %q; want line 1", src, err)
		}
	}
}

func TestParseInfo(t *testing.T) {
	for _, tt := range []struct {
		info string
		want Sample
		ok   bool
	}{
		{"16b want=3", Sample{Solution: "16b", Want: "3"}, true},
		{"  10b   want=288957  ", Sample{Solution: "10b", Want: "288957"}, true},
		{"go", Sample{Solution: "go"}, false},
		{"", Sample{}, false},
	} {
		got, ok, err := parseInfo(tt.info)
		if err != nil {
			t.Errorf("parseInfo(%q): %s", tt.info, err)
			continue
		}
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseInfo(%q): got %+v, %t; want %+v, %t", tt.info, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte(notes), 0o644); err != nil {
		t.Fatal(err)
	}
	samples, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(samples), 2; got != want {
		t.Errorf("got %d samples; want %d", got, want)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.md")); !os.IsNotExist(err) {
		t.Errorf("got err %v; want not-exist", err)
	}
}
