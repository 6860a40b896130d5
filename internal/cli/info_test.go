package cli

import (
	"strings"
	"testing"
)

func TestInfoPrintsContainerMetadata(t *testing.T) {
	header := `{"uid": 9000123, "title": "Grand Finals", "mapname": "scmp_009", "featured_mod": "faf", "teams": {"1": ["Brackman"], "2": ["Rhiza"]}}`
	replay := writeLegacyReplay(t, header, []byte("stream"))

	out, err := runCommand(t, "info", "-f", replay)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"Grand Finals", "scmp_009", "faf", "Brackman, Rhiza", "9000123"} {
		if !strings.Contains(out, want) {
			t.Fatalf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestInfoRawReplay(t *testing.T) {
	replay := writeRawReplay(t)

	out, err := runCommand(t, "info", "-f", replay)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if !strings.Contains(out, "raw Forged Alliance replay") {
		t.Fatalf("unexpected info output:\n%s", out)
	}
}

func TestInfoUnknownFormat(t *testing.T) {
	_, err := runCommand(t, "info", "-f", "notes.txt")
	if err == nil || !strings.Contains(err.Error(), "unknown replay format") {
		t.Fatalf("expected an unknown-format error, got %v", err)
	}
}

func TestFitLine(t *testing.T) {
	if got := fitLine("short", 80); got != "short" {
		t.Fatalf("fitLine should leave short values alone, got %q", got)
	}
	if got := fitLine("abcdefghij", 8); got != "abcde..." {
		t.Fatalf("fitLine = %q, want %q", got, "abcde...")
	}
	if got := fitLine("anything", 2); got != "anything" {
		t.Fatalf("fitLine should give up below the ellipsis width, got %q", got)
	}
}

func TestInfoRequiresLocalFile(t *testing.T) {
	_, err := runCommand(t, "info")
	if err == nil || !strings.Contains(err.Error(), "local-file") {
		t.Fatalf("expected a missing-flag error, got %v", err)
	}
}
