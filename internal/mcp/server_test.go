package mcp

import (
	"strings"
	"testing"

	"github.com/docpeek/pdf-outline/internal/config"
	"github.com/docpeek/pdf-outline/internal/outline"
	"github.com/docpeek/pdf-outline/internal/pdf"
)

func TestNewServer(t *testing.T) {
	cfg := config.DefaultConfig()
	extractor := pdf.NewExtractor(cfg.MaxFileSize)
	engine := outline.NewEngine(extractor, outline.NewDetector())

	server, err := NewServer(cfg, engine, extractor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if server == nil {
		t.Fatal("expected server to be created")
	}
}

func TestNewServer_RequiresCollaborators(t *testing.T) {
	cfg := config.DefaultConfig()
	extractor := pdf.NewExtractor(cfg.MaxFileSize)
	engine := outline.NewEngine(extractor, outline.NewDetector())

	if _, err := NewServer(cfg, nil, extractor); err == nil {
		t.Error("expected error for nil engine")
	}
	if _, err := NewServer(cfg, engine, nil); err == nil {
		t.Error("expected error for nil extractor")
	}
}

func TestMarshalIndented(t *testing.T) {
	result := outline.Result{
		Title:   "A & B",
		Outline: []outline.Entry{},
	}

	text, err := marshalIndented(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(text, `"outline": []`) {
		t.Errorf("expected empty outline array, got %q", text)
	}
	if !strings.Contains(text, "A & B") {
		t.Errorf("ampersand should not be escaped, got %q", text)
	}
}
