// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"bytes"
	"html/template"
	"io/fs"
	"strings"
	"testing"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/uikit"
	"github.com/olegiv/folio-go/web"
)

func sectionCardsTemplate(t *testing.T) *template.Template {
	t.Helper()

	sub, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("fs.Sub: %v", err)
	}
	tmpl, err := template.New("").Funcs(uikit.TemplateFuncs()).ParseFS(sub, "partials/section.html")
	if err != nil {
		t.Fatalf("parsing section partial: %v", err)
	}
	return tmpl
}

func TestSectionCardsEmptyStatePlaceholder(t *testing.T) {
	tmpl := sectionCardsTemplate(t)

	view := BuildSection(model.SectionProjects, testLayout(), model.DefaultCardStyle(), nil)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "section-cards", view); err != nil {
		t.Fatalf("executing template: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Nothing here yet") {
		t.Errorf("expected empty-state placeholder, got %q", out)
	}
	if strings.Contains(out, view.ContainerClass) {
		t.Errorf("expected no grid container for zero entities, got %q", out)
	}
}

func TestSectionCardsRendersGridWhenPopulated(t *testing.T) {
	tmpl := sectionCardsTemplate(t)

	cards := []Card{{Title: "OncoSense"}, {Title: "NeuroTrack"}}
	view := BuildSection(model.SectionProjects, testLayout(), model.DefaultCardStyle(), cards)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "section-cards", view); err != nil {
		t.Fatalf("executing template: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "Nothing here yet") {
		t.Errorf("unexpected empty-state placeholder: %q", out)
	}
	if !strings.Contains(out, view.ContainerClass) {
		t.Errorf("expected container class %q, got %q", view.ContainerClass, out)
	}
	if !strings.Contains(out, "OncoSense") || !strings.Contains(out, "NeuroTrack") {
		t.Errorf("expected both cards rendered, got %q", out)
	}
}
