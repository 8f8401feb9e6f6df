// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/olegiv/folio-go/internal/imaging"
	"github.com/olegiv/folio-go/internal/middleware"
	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/render"
	"github.com/olegiv/folio-go/internal/service"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/util"
)

// maxUploadSize limits upload request bodies to 20 MB.
const maxUploadSize = 20 << 20

// MediaHandler serves the admin media library: image uploads, listing
// and deletion. Uploads are re-encoded and resized into variants.
type MediaHandler struct {
	queries      *store.Queries
	renderer     *render.Renderer
	processor    *imaging.Processor
	eventService *service.EventService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(db *sql.DB, renderer *render.Renderer, uploadsDir string) *MediaHandler {
	return &MediaHandler{
		queries:      store.New(db),
		renderer:     renderer,
		processor:    imaging.NewProcessor(uploadsDir),
		eventService: service.NewEventService(db),
	}
}

// MediaData holds the media library page data.
type MediaData struct {
	Items []model.Media
}

// Index renders the media library.
func (h *MediaHandler) Index(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListMedia(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list media", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/media", render.TemplateData{
		Title: "Media",
		User:  userFromRequest(r),
		Data:  MediaData{Items: items},
	}); err != nil {
		logAndInternalError(w, "failed to render media page", "error", err)
	}
}

// Upload processes an image upload: re-encodes the original, generates
// resized variants, and records the file in the media table.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		flashError(w, r, h.renderer, redirectAdminMedia, "Upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminMedia, "No file provided")
		return
	}
	defer func() { _ = file.Close() }()

	id := uuid.New().String()
	filename := safeFilename(header.Filename)
	original, err := h.processor.Process(file, id, filename)
	if err != nil {
		slog.Warn("upload rejected", "error", err, "filename", header.Filename)
		flashError(w, r, h.renderer, redirectAdminMedia, "Unsupported or corrupt image")
		return
	}

	if _, err := h.processor.Variants(original.FilePath, id, filename); err != nil {
		// The original is saved; variants failing is not fatal.
		slog.Error("failed to generate image variants", "error", err, "uuid", id)
	}

	mediaID, err := h.queries.CreateMedia(r.Context(), store.CreateMediaParams{
		UUID:       id,
		Filename:   filename,
		MimeType:   original.MimeType,
		Size:       original.Size,
		Width:      int64(original.Width),
		Height:     int64(original.Height),
		Alt:        formValue(r, "alt"),
		UploadedBy: middleware.GetUserID(r),
	})
	if err != nil {
		logAndInternalError(w, "failed to record upload", "error", err, "uuid", id)
		return
	}

	_ = h.eventService.LogMediaEvent(r.Context(), model.EventLevelInfo,
		"Image uploaded", middleware.GetUserIDPtr(r),
		map[string]any{"media_id": mediaID, "filename": header.Filename})

	flashSuccess(w, r, h.renderer, redirectAdminMedia, "Image uploaded")
}

// safeFilename slugifies an uploaded filename's stem while keeping
// its extension, so stored paths never carry user-controlled bytes.
func safeFilename(name string) string {
	base := filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(base))
	stem := util.Slugify(strings.TrimSuffix(base, filepath.Ext(base)))
	if stem == "" {
		stem = "upload"
	}
	return stem + ext
}

// Delete removes a media record and its files on disk.
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	target, err := h.queries.GetMediaByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			flashError(w, r, h.renderer, redirectAdminMedia, "File not found")
			return
		}
		logAndInternalError(w, "failed to get media", "error", err, "media_id", id)
		return
	}

	if err := h.queries.DeleteMedia(r.Context(), id); err != nil {
		logAndInternalError(w, "failed to delete media", "error", err, "media_id", id)
		return
	}
	if err := h.processor.Remove(target.UUID); err != nil {
		slog.Error("failed to remove media files", "error", err, "uuid", target.UUID)
	}

	_ = h.eventService.LogMediaEvent(r.Context(), model.EventLevelInfo,
		"Image deleted", middleware.GetUserIDPtr(r),
		map[string]any{"media_id": id, "filename": target.Filename})

	flashSuccess(w, r, h.renderer, redirectAdminMedia, "Image deleted")
}
