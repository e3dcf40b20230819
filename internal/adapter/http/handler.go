package http

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResumesStore is the slice of the repository the handlers need beyond what
// the exporter already wraps.
type ResumesStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ResumeRecord, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ResumeRecord, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type Handler struct {
	exporter *usecase.Exporter
	store    ResumesStore
	log      logger.Logger
}

func NewHandler(e *usecase.Exporter, store ResumesStore, log logger.Logger) *Handler {
	return &Handler{exporter: e, store: store, log: log}
}

// Register mounts all routes on the app. Everything except the health check
// sits behind the auth middleware.
func (h *Handler) Register(app *fiber.App, authMw fiber.Handler) {
	app.Get("/health", h.Health)

	r := app.Group("/resumes", authMw)
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
	r.Get("/:id/preview", h.Preview)
	r.Get("/:id/export", h.Export)
	r.Post("/:id/export", h.Export)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// loadOwned parses the :id param, loads the resume and enforces ownership.
// A resume owned by someone else reads as not found.
func (h *Handler) loadOwned(c *fiber.Ctx) (*domain.ResumeRecord, error) {
	ownerID, ok := ownerIDFromCtx(c)
	if !ok {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume id"})
	}
	rec, err := h.store.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
		}
		h.log.Error("failed to load resume", err, zap.String("resume_id", id.String()))
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	if rec.OwnerID != ownerID {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	return rec, nil
}

func (h *Handler) List(c *fiber.Ctx) error {
	ownerID, ok := ownerIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	recs, err := h.store.ListByOwner(c.Context(), ownerID)
	if err != nil {
		h.log.Error("failed to list resumes", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	if recs == nil {
		recs = []domain.ResumeRecord{}
	}
	return c.JSON(fiber.Map{"resumes": recs})
}

type saveReq struct {
	Title   string                 `json:"title"`
	Content map[string]interface{} `json:"content"`
}

func (h *Handler) Create(c *fiber.Ctx) error {
	ownerID, ok := ownerIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	var req saveReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.Content == nil {
		req.Content = map[string]interface{}{}
	}

	rec := &domain.ResumeRecord{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := h.exporter.SaveResume(c.Context(), rec); err != nil {
		return h.saveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	rec, err := h.loadOwned(c)
	if rec == nil {
		return err
	}
	return c.JSON(rec)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	rec, err := h.loadOwned(c)
	if rec == nil {
		return err
	}
	var req saveReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.Title != "" {
		rec.Title = req.Title
	}
	if req.Content != nil {
		rec.Content = req.Content
	}
	if err := h.exporter.SaveResume(c.Context(), rec); err != nil {
		return h.saveError(c, err)
	}
	return c.JSON(rec)
}

func (h *Handler) saveError(c *fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrInvalidContent) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	h.log.Error("failed to save resume", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	ownerID, ok := ownerIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume id"})
	}
	if err := h.store.Delete(c.Context(), id, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
		}
		h.log.Error("failed to delete resume", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// requestSettings resolves export settings for the current request: a JSON
// body wins, then a ?template= query (that template's preset), then the
// owner's last-used settings, then the modern defaults.
func (h *Handler) requestSettings(c *fiber.Ctx, ownerID uuid.UUID) (domain.ExportSettings, error) {
	body := c.Body()
	if len(body) > 0 {
		s, err := parseSettings(body)
		if err != nil {
			return domain.ExportSettings{}, err
		}
		return *s, nil
	}
	if tpl := c.Query("template"); tpl != "" {
		return domain.DefaultSettings(domain.Template(tpl)), nil
	}
	return h.exporter.ResolveSettings(c.Context(), ownerID, nil), nil
}

// parseSettings decodes a partial settings body over the preset for the
// requested template, so callers only send the knobs they changed.
func parseSettings(body []byte) (*domain.ExportSettings, error) {
	var probe struct {
		Template domain.Template `json:"template"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, err
	}
	s := domain.DefaultSettings(probe.Template)
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	rec, err := h.loadOwned(c)
	if rec == nil {
		return err
	}
	settings, err := h.requestSettings(c, rec.OwnerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid export settings"})
	}
	html, err := h.exporter.Preview(c.Context(), rec.ID, settings)
	if err != nil {
		h.log.Error("preview failed", err, zap.String("resume_id", rec.ID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// Export composes and rasterizes the resume. When the headless browser
// cannot produce a PDF the handler falls back to the composed HTML with
// print instructions; the content type tells the two apart.
func (h *Handler) Export(c *fiber.Ctx) error {
	rec, err := h.loadOwned(c)
	if rec == nil {
		return err
	}
	settings, err := h.requestSettings(c, rec.OwnerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid export settings"})
	}

	html, err := h.exporter.Preview(c.Context(), rec.ID, settings)
	if err != nil {
		h.log.Error("compose failed", err, zap.String("resume_id", rec.ID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	h.exporter.RememberSettings(c.Context(), rec.OwnerID, settings)

	pdf, err := h.exporter.RenderPDF(c.Context(), html, settings.PageSize)
	if err != nil {
		var rerr *infra.RasterizationError
		if errors.As(err, &rerr) {
			c.Set("X-Pdf-Fallback", "print-dialog")
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.SendString(withPrintInstructions(html))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	filename := usecase.SafeFilename(rec.Title)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

const printBanner = `<div style="position:fixed;top:0;left:0;right:0;background:#fff3cd;color:#664d03;padding:8px 16px;font-family:sans-serif;font-size:14px;z-index:1000;" class="print-note">PDF generation is temporarily unavailable. Use your browser&#39;s print dialog (Ctrl/Cmd+P) and choose &quot;Save as PDF&quot;.</div><style>@media print{.print-note{display:none;}}</style>`

func withPrintInstructions(html string) string {
	const marker = "<body>"
	if i := strings.Index(html, marker); i >= 0 {
		return html[:i+len(marker)] + printBanner + html[i+len(marker):]
	}
	return printBanner + html
}
