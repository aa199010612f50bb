package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-namegen/pkg/catalog"
	"github.com/goliatone/go-namegen/pkg/renderers/tui"
	"github.com/goliatone/go-namegen/pkg/testsupport"
)

type scriptedDriver struct {
	inputs  []string
	selects []int
}

func (d *scriptedDriver) Input(context.Context, tui.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", tui.ErrAborted
	}
	value := d.inputs[0]
	d.inputs = d.inputs[1:]
	return value, nil
}

func (d *scriptedDriver) Confirm(context.Context, tui.ConfirmConfig) (bool, error) {
	return false, nil
}

func (d *scriptedDriver) Select(context.Context, tui.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return 0, tui.ErrAborted
	}
	value := d.selects[0]
	d.selects = d.selects[1:]
	return value, nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

type result struct {
	out    string
	errOut string
	err    error
}

func run(t *testing.T, a func(*app), args ...string) result {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	application := newApp(&out, &errOut)
	if a != nil {
		a(application)
	}
	cmd := newRootCmd(application)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func fixturePath(t *testing.T) string {
	t.Helper()
	return testsupport.WriteTempCatalog(t, "templates.yaml", testsupport.CatalogDocument())
}

func TestListAndSearch(t *testing.T) {
	path := fixturePath(t)

	res := run(t, nil, "list", "--catalog", path)
	if res.err != nil {
		t.Fatalf("list: %v", res.err)
	}
	if !strings.Contains(res.out, "server\tServer Hostname") || !strings.Contains(res.out, "bucket\tStorage Bucket") {
		t.Fatalf("unexpected list output:\n%s", res.out)
	}

	res = run(t, nil, "list", "bucket", "--catalog", path)
	if res.err != nil {
		t.Fatalf("list query: %v", res.err)
	}
	if strings.Contains(res.out, "server\t") || !strings.Contains(res.out, "bucket\t") {
		t.Fatalf("unexpected filtered output:\n%s", res.out)
	}
}

func TestListFallsBackWithWarning(t *testing.T) {
	res := run(t, nil, "list", "--catalog", t.TempDir()+"/missing.json")
	if res.err != nil {
		t.Fatalf("list: %v", res.err)
	}
	if !strings.Contains(res.errOut, catalog.FallbackWarning) {
		t.Fatalf("expected fallback warning on stderr, got %q", res.errOut)
	}
	if !strings.Contains(res.out, "fallback-example") {
		t.Fatalf("expected fallback entries, got:\n%s", res.out)
	}
}

func TestRenderText(t *testing.T) {
	res := run(t, nil, "render", "server", "--catalog", fixturePath(t),
		"--set", "ENV=prd", "--set", "ROLE=web", "--set", "ID=01", "--check", "PUBLIC")
	if res.err != nil {
		t.Fatalf("render: %v", res.err)
	}
	if res.out != "[PUBLIC] prd-web-01\n" {
		t.Fatalf("output = %q", res.out)
	}
}

func TestRenderJSON(t *testing.T) {
	res := run(t, nil, "render", "bucket", "--catalog", fixturePath(t), "--format", "json", "--set", "TEAM=ops")
	if res.err != nil {
		t.Fatalf("render: %v", res.err)
	}
	var doc struct {
		ID       string   `json:"id"`
		Output   string   `json:"output"`
		Examples []string `json:"examples"`
	}
	if err := json.Unmarshal([]byte(res.out), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, res.out)
	}
	if doc.ID != "bucket" || doc.Output != "ops" || len(doc.Examples) != 3 {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestRenderErrors(t *testing.T) {
	path := fixturePath(t)
	if res := run(t, nil, "render", "server", "--catalog", path, "--set", "ENV"); res.err == nil {
		t.Fatalf("expected malformed --set error")
	}
	if res := run(t, nil, "render", "nope", "--catalog", path); res.err == nil {
		t.Fatalf("expected unknown entry error")
	}
	if res := run(t, nil, "render", "bucket", "--catalog", path, "--copy", "--clipboard=false"); res.err == nil {
		t.Fatalf("expected clipboard disabled error")
	}
}

func TestShow(t *testing.T) {
	res := run(t, nil, "show", "server", "--catalog", fixturePath(t))
	if res.err != nil {
		t.Fatalf("show: %v", res.err)
	}
	for _, want := range []string{
		"Server Hostname (server)",
		"placeholders: PUBLIC, ENV, ROLE, ID",
		"ENV (dropdown) Environment * [prd=Production, stg=Staging, dev=Development]",
		"PUBLIC (checkbox) Public",
	} {
		if !strings.Contains(res.out, want) {
			t.Fatalf("expected %q in:\n%s", want, res.out)
		}
	}
}

func TestExamplesCount(t *testing.T) {
	res := run(t, nil, "examples", "bucket", "-n", "2", "--catalog", fixturePath(t))
	if res.err != nil {
		t.Fatalf("examples: %v", res.err)
	}
	lines := strings.Split(strings.TrimSpace(res.out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 examples, got %q", res.out)
	}
}

func TestFormInteractive(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"ops", "logs"}}
	res := run(t, func(a *app) { a.driver = driver }, "form", "bucket", "--catalog", fixturePath(t), "--clipboard=false")
	if res.err != nil {
		t.Fatalf("form: %v", res.err)
	}
	if !strings.Contains(res.out, "ops-logs") {
		t.Fatalf("expected final output, got:\n%s", res.out)
	}
}

func TestFormAbortIsNotAnError(t *testing.T) {
	res := run(t, func(a *app) { a.driver = &scriptedDriver{} }, "--catalog", fixturePath(t))
	if res.err != nil {
		t.Fatalf("expected abort to exit cleanly, got %v", res.err)
	}
}

func TestLint(t *testing.T) {
	res := run(t, nil, "lint", "--catalog", fixturePath(t), "--strict")
	if res.err != nil {
		t.Fatalf("lint clean catalog: %v", res.err)
	}
	if !strings.Contains(res.out, "no issues") {
		t.Fatalf("unexpected lint output %q", res.out)
	}

	bad := testsupport.WriteTempCatalog(t, "bad.json", []byte(`[
  {"id": "x", "name": "X", "template": "{{A}}-{{B}}", "fields": [{"key": "A", "label": "A", "type": "text"}]}
]`))
	res = run(t, nil, "lint", "--catalog", bad)
	if res.err != nil {
		t.Fatalf("non-strict lint should succeed: %v", res.err)
	}
	if !strings.Contains(res.out, "x:") {
		t.Fatalf("expected issue output, got %q", res.out)
	}
	res = run(t, nil, "lint", "--catalog", bad, "--strict")
	if res.err == nil {
		t.Fatalf("expected strict lint to fail")
	}

	res = run(t, nil, "lint", "--catalog", t.TempDir()+"/missing.json")
	if res.err == nil {
		t.Fatalf("expected lint to fail without fallback")
	}
}
