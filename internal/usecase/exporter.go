package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"resume-builder/internal/cache"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidContent marks a save rejected by schema validation.
var ErrInvalidContent = errors.New("invalid resume content")

// Renderer turns composed HTML into PDF bytes. The chromedp implementation
// lives in pkg/infrastructure; tests inject fakes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string, format domain.PageFormat) ([]byte, error)
}

type ResumesRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ResumeRecord, error)
	Save(ctx context.Context, rec *domain.ResumeRecord) error
	GetExportSettings(ctx context.Context, ownerID uuid.UUID) (*domain.ExportSettings, error)
	SaveExportSettings(ctx context.Context, ownerID uuid.UUID, s domain.ExportSettings) error
}

// Exporter owns the preview/export pipeline: load, normalize, compose,
// and for PDF output, rasterize. Rendering is request-scoped and stateless;
// the only shared state is the preview cache, which is safe because
// composition is deterministic.
type Exporter struct {
	renderer   Renderer
	repo       ResumesRepo
	cache      cache.PreviewCache
	log        logger.Logger
	baseOrigin string
}

func NewExporter(r Renderer, repo ResumesRepo, c cache.PreviewCache, log logger.Logger, baseOrigin string) *Exporter {
	return &Exporter{renderer: r, repo: repo, cache: c, log: log, baseOrigin: baseOrigin}
}

// Preview returns the composed HTML for a resume, serving from cache when
// the (resume, settings) pair was rendered before.
func (e *Exporter) Preview(ctx context.Context, resumeID uuid.UUID, settings domain.ExportSettings) (string, error) {
	key := cache.Key(resumeID, settings)
	if html, ok := e.cache.Get(ctx, key); ok {
		return html, nil
	}

	rec, err := e.repo.GetByID(ctx, resumeID)
	if err != nil {
		return "", err
	}

	doc := render.Normalize(rec, e.baseOrigin)
	html := render.Compose(&doc, settings)
	e.cache.Set(ctx, key, html)
	return html, nil
}

// RenderPDF rasterizes already-composed HTML. Failures come back as the
// renderer's typed error so the caller can pick its fallback; no retry
// happens here.
func (e *Exporter) RenderPDF(ctx context.Context, html string, format domain.PageFormat) ([]byte, error) {
	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html, format)
	if err != nil {
		e.log.Error("pdf rasterization failed", err)
		return nil, err
	}
	return pdf, nil
}

// SaveResume validates and persists content, then drops every cached
// preview of the resume.
func (e *Exporter) SaveResume(ctx context.Context, rec *domain.ResumeRecord) error {
	if err := model.ValidateContent(rec.Content); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	now := time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	if err := e.repo.Save(ctx, rec); err != nil {
		return err
	}
	if err := e.cache.Invalidate(ctx, rec.ID); err != nil {
		e.log.Warn("preview cache invalidation failed", zap.String("resume_id", rec.ID.String()), zap.Error(err))
	}
	return nil
}

// ResolveSettings picks the effective export settings: the caller's
// override when given, otherwise the owner's last-used settings, otherwise
// the modern template defaults.
func (e *Exporter) ResolveSettings(ctx context.Context, ownerID uuid.UUID, override *domain.ExportSettings) domain.ExportSettings {
	if override != nil {
		return *override
	}
	if saved, err := e.repo.GetExportSettings(ctx, ownerID); err == nil {
		return *saved
	}
	return domain.StandardSettings()
}

// RememberSettings stores the owner's last-used settings, best-effort.
func (e *Exporter) RememberSettings(ctx context.Context, ownerID uuid.UUID, s domain.ExportSettings) {
	if err := e.repo.SaveExportSettings(ctx, ownerID, s); err != nil {
		e.log.Warn("failed to save export settings", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// SafeFilename derives a download filename from a resume title: runs of
// path-unsafe characters collapse to underscores, and an empty result falls
// back to "resume".
func SafeFilename(title string) string {
	name := unsafeFilenameChars.ReplaceAllString(title, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "resume"
	}
	return name + ".pdf"
}
