// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging processes uploaded portfolio images: EXIF
// auto-rotation, metadata extraction, and resized variants for the
// public site.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/olegiv/folio-go/internal/model"
)

// Processor saves uploads and their variants under a base directory.
// Originals go to originals/<uuid>/, variants to <variant>/<uuid>/.
type Processor struct {
	uploadDir string
}

// NewProcessor creates a Processor rooted at uploadDir.
func NewProcessor(uploadDir string) *Processor {
	return &Processor{uploadDir: uploadDir}
}

// Original describes a processed upload.
type Original struct {
	Width    int
	Height   int
	MimeType string
	Size     int64
	FilePath string
}

// Variant describes one generated resize of an upload.
type Variant struct {
	Type     string
	Width    int
	Height   int
	Size     int64
	FilePath string
}

// Process decodes an upload, applies its EXIF orientation, re-encodes
// it, and saves the result as the original. Re-encoding strips EXIF,
// so photos never leak location data onto the public site.
func (p *Processor) Process(r io.Reader, uuid, filename string) (Original, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Original{}, fmt.Errorf("reading upload: %w", err)
	}

	format := sniffFormat(data)
	if format == "" {
		return Original{}, fmt.Errorf("unsupported image format")
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return Original{}, fmt.Errorf("decoding image: %w", err)
	}
	img = autoRotate(img, exifOrientation(bytes.NewReader(data)))

	encoded, err := encode(img, format, 95)
	if err != nil {
		return Original{}, fmt.Errorf("encoding image: %w", err)
	}

	path, err := p.save(filepath.Join("originals", uuid), filename, encoded)
	if err != nil {
		return Original{}, fmt.Errorf("saving original: %w", err)
	}

	bounds := img.Bounds()
	return Original{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		MimeType: mimeType(format),
		Size:     int64(len(encoded)),
		FilePath: path,
	}, nil
}

// Variants generates every configured resize of the saved original.
// A failed variant does not stop the others; an error is returned only
// when all of them fail.
func (p *Processor) Variants(sourcePath, uuid, filename string) ([]Variant, error) {
	var out []Variant
	var errs []string

	for name, cfg := range model.ImageVariants {
		v, err := p.variant(sourcePath, uuid, filename, name, cfg)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		if v != nil {
			out = append(out, *v)
		}
	}

	if len(errs) > 0 && len(out) == 0 {
		return nil, fmt.Errorf("all variants failed: %s", strings.Join(errs, "; "))
	}
	return out, nil
}

// variant resizes one configuration. It returns (nil, nil) when the
// source is already smaller than the target and no crop is requested.
func (p *Processor) variant(sourcePath, uuid, filename, name string, cfg model.ImageVariantConfig) (*Variant, error) {
	img, err := imaging.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= cfg.Width && bounds.Dy() <= cfg.Height && !cfg.Crop {
		return nil, nil
	}

	var resized image.Image
	if cfg.Crop {
		resized = imaging.Fill(img, cfg.Width, cfg.Height, imaging.Center, imaging.Lanczos)
	} else {
		resized = imaging.Fit(img, cfg.Width, cfg.Height, imaging.Lanczos)
	}

	format := formatFromFilename(filename)
	encoded, err := encode(resized, format, cfg.Quality)
	if err != nil {
		return nil, fmt.Errorf("encoding variant: %w", err)
	}

	path, err := p.save(filepath.Join(name, uuid), filename, encoded)
	if err != nil {
		return nil, fmt.Errorf("saving variant: %w", err)
	}

	rb := resized.Bounds()
	return &Variant{
		Type:     name,
		Width:    rb.Dx(),
		Height:   rb.Dy(),
		Size:     int64(len(encoded)),
		FilePath: path,
	}, nil
}

// Dimensions returns an image file's pixel size without decoding the
// full image.
func (p *Processor) Dimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening image: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("reading image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// DetectMimeType sniffs the MIME type of raw upload data.
func (p *Processor) DetectMimeType(data []byte) string {
	ct := http.DetectContentType(data)
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = ct[:idx]
	}
	return ct
}

// Remove deletes the original and every variant of an upload.
func (p *Processor) Remove(uuid string) error {
	dirs := []string{"originals"}
	for name := range model.ImageVariants {
		dirs = append(dirs, name)
	}
	for _, dir := range dirs {
		target := filepath.Join(p.uploadDir, dir, uuid)
		if err := os.RemoveAll(target); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("deleting %s: %w", target, err)
		}
	}
	return nil
}

// save writes data under uploadDir/subDir/filename. The filename and
// subdirectory are validated so a crafted name cannot escape the
// upload root.
func (p *Processor) save(subDir, filename string, data []byte) (string, error) {
	safe := filepath.Base(filename)
	if safe == "." || safe == ".." || safe == "" {
		return "", fmt.Errorf("invalid filename")
	}

	clean := filepath.Clean(subDir)
	if strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid subdirectory")
	}

	absBase, err := filepath.Abs(p.uploadDir)
	if err != nil {
		return "", fmt.Errorf("resolving upload dir: %w", err)
	}
	target := filepath.Join(absBase, clean)

	rel, err := filepath.Rel(absBase, target)
	if err != nil || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return "", fmt.Errorf("path escapes upload dir")
	}

	if err := os.MkdirAll(target, 0755); err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}

	path := filepath.Join(target, safe)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return path, nil
}

// exifOrientation returns the EXIF orientation tag, or 1 (normal) when
// it cannot be read.
func exifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	o, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return o
}

// autoRotate undoes the camera rotation recorded in the EXIF
// orientation tag (values 2-8; anything else is a no-op).
func autoRotate(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// encode serializes an image in the given format. WebP has no pure Go
// encoder, so WebP uploads come back out as JPEG.
func encode(img image.Image, format string, quality int) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sniffFormat identifies the image format from raw bytes. TIFF is
// rejected outright (CVE-2023-36308 in disintegration/imaging).
func sniffFormat(data []byte) string {
	ct := http.DetectContentType(data)
	if strings.Contains(ct, "tiff") {
		return ""
	}
	switch {
	case strings.Contains(ct, "jpeg"):
		return "jpeg"
	case strings.Contains(ct, "png"):
		return "png"
	case strings.Contains(ct, "gif"):
		return "gif"
	case strings.Contains(ct, "webp"):
		return "webp"
	default:
		return ""
	}
}

func formatFromFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "png"
	case ".gif":
		return "gif"
	case ".webp":
		return "webp"
	default:
		return "jpeg"
	}
}

func mimeType(format string) string {
	switch format {
	case "jpeg":
		return model.MimeTypeJPEG
	case "png":
		return model.MimeTypePNG
	case "gif":
		return model.MimeTypeGIF
	case "webp":
		return model.MimeTypeWebP
	default:
		return "application/octet-stream"
	}
}
