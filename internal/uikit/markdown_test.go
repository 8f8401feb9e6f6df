package uikit

import (
	"strings"
	"testing"
)

func TestMarkdownRendersBasicFormatting(t *testing.T) {
	out := string(Markdown("**bold** and _italic_"))
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("expected bold, got %q", out)
	}
	if !strings.Contains(out, "<em>italic</em>") {
		t.Errorf("expected italic, got %q", out)
	}
}

func TestMarkdownStripsScriptTags(t *testing.T) {
	out := string(Markdown(`hello <script>alert("x")</script> world`))
	if strings.Contains(out, "<script>") {
		t.Errorf("expected script stripped, got %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("expected text preserved, got %q", out)
	}
}

func TestMarkdownLinkify(t *testing.T) {
	out := string(Markdown("see https://example.com for details"))
	if !strings.Contains(out, `<a href="https://example.com"`) {
		t.Errorf("expected autolink, got %q", out)
	}
}
