package main

import (
	"bytes"
	"strings"
	"testing"
)

func execRoot(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestRunCommand(t *testing.T) {
	out := execRoot(t, "run", "--policy", "fifo", "--capacity", "2", "--log-level", "error",
		"put:A=1", "put:B=2", "put:C=3", "get:A", "get:C")

	for _, want := range []string{"DISCARD: A\n", "GET A = <nil>\n", "GET C = 3\n", "policycache_evictions_total"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDemoCommandQuiet(t *testing.T) {
	out := execRoot(t, "demo", "--policy", "lifo", "--quiet", "--log-level", "error")

	if strings.Count(out, "DISCARD:") != 3 {
		t.Fatalf("expected 3 evictions in the LIFO walkthrough:\n%s", out)
	}
	if strings.Contains(out, "METRICS") {
		t.Fatalf("--quiet must hide metrics:\n%s", out)
	}
	quiet = false
}

func TestRunRejectsUnknownPolicy(t *testing.T) {
	rootCmd.SetArgs([]string{"run", "--policy", "mru", "get:A"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
	policyName = "lru"
}
