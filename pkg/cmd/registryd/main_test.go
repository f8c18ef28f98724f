package main

import (
	"strings"
	"testing"
)

func TestRunMissingScript(t *testing.T) {
	var out strings.Builder
	code := run([]string{}, strings.NewReader(""), &out)
	if code != 2 {
		t.Fatalf("code = %d, want 2", code)
	}
	if !strings.Contains(out.String(), "-script is required") {
		t.Fatalf("output = %q, want a -script is required message", out.String())
	}
}

func TestRunStraightCommitReveal(t *testing.T) {
	script := strings.Join([]string{
		"block 0",
		"commit alice gopher",
		"block 10",
		"reveal alice gopher",
		"",
	}, "\n")

	var out strings.Builder
	code := run([]string{"-script", "-", "-register-period", "95"}, strings.NewReader(script), &out)
	if code != 0 {
		t.Fatalf("code = %d, output = %q", code, out.String())
	}
	got := out.String()
	if !strings.Contains(got, "commit alice gopher: ok") {
		t.Fatalf("output missing commit ok line: %q", got)
	}
	if !strings.Contains(got, "reveal alice gopher: ok") {
		t.Fatalf("output missing reveal ok line: %q", got)
	}
}

func TestRunRevealWithoutCommitErrors(t *testing.T) {
	script := "reveal alice gopher\n"

	var out strings.Builder
	code := run([]string{"-script", "-"}, strings.NewReader(script), &out)
	if code != 0 {
		t.Fatalf("code = %d, want 0 (script errors are reported per-line, not fatal)", code)
	}
	if !strings.Contains(out.String(), "error:") {
		t.Fatalf("output = %q, want an error line", out.String())
	}
}

func TestRunExpirySweepFreesName(t *testing.T) {
	script := strings.Join([]string{
		"block 0",
		"commit alice gopher",
		"block 10",
		"reveal alice gopher",
		"block 200",
		"",
	}, "\n")

	var out strings.Builder
	code := run([]string{"-script", "-", "-register-period", "95"}, strings.NewReader(script), &out)
	if code != 0 {
		t.Fatalf("code = %d, output = %q", code, out.String())
	}
	if !strings.Contains(out.String(), "block 200 finalized") {
		t.Fatalf("output missing finalize line: %q", out.String())
	}
	if !strings.Contains(out.String(), "name freed") {
		t.Fatalf("output missing name freed event: %q", out.String())
	}
}

func TestRunJSONLogFormat(t *testing.T) {
	script := strings.Join([]string{
		"block 0",
		"commit alice gopher",
		"block 10",
		"reveal alice gopher",
		"",
	}, "\n")

	var out strings.Builder
	code := run([]string{"-script", "-", "-log-format", "json"}, strings.NewReader(script), &out)
	if code != 0 {
		t.Fatalf("code = %d, output = %q", code, out.String())
	}
	if !strings.Contains(out.String(), `"msg":"name owned"`) {
		t.Fatalf("output = %q, want a JSON name-owned event line", out.String())
	}
}

func TestRunUnknownLogFormat(t *testing.T) {
	var out strings.Builder
	code := run([]string{"-script", "-", "-log-format", "xml"}, strings.NewReader(""), &out)
	if code != 2 {
		t.Fatalf("code = %d, want 2", code)
	}
}

func TestRunBadBlockNumber(t *testing.T) {
	script := "block notanumber\n"

	var out strings.Builder
	code := run([]string{"-script", "-"}, strings.NewReader(script), &out)
	if code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
}
