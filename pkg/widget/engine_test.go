package widget

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestEngine_RequiresTemplateSource(t *testing.T) {
	if _, err := NewEngine(); err == nil {
		t.Fatalf("expected error without template source")
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := NewEngine(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := engine.RenderString(`Hello {{ who }}!`, map[string]any{"who": "world"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "Hello world!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RenderTemplateAppendsExtension(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tpl": &fstest.MapFile{Data: []byte(`Hi {{ who }}`)},
	}
	engine, err := NewEngine(WithFS(files))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := engine.RenderTemplate("greeting", map[string]any{"who": "there"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "Hi there" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_GlobalDataMergedUnderCallData(t *testing.T) {
	engine, err := NewEngine(
		WithFS(fstest.MapFS{}),
		WithGlobalData(map[string]any{"who": "global", "app": "demo"}),
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := engine.RenderString(`{{ app }}:{{ who }}`, map[string]any{"who": "local"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "demo:local" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine, err := NewEngine(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := engine.RenderTemplate("ghost", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestEngine_AutoescapesVariables(t *testing.T) {
	engine, err := NewEngine(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := engine.RenderString(`{{ text }}`, map[string]any{"text": `<script>`})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected variable to be escaped, got %q", got)
	}
}
