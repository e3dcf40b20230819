package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-builder/internal/cache"
	"resume-builder/internal/domain"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	rec      *domain.ResumeRecord
	getCalls int
	saved    *domain.ResumeRecord
	settings *domain.ExportSettings
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ResumeRecord, error) {
	f.getCalls++
	if f.rec == nil || f.rec.ID != id {
		return nil, errors.New("resume not found")
	}
	return f.rec, nil
}

func (f *fakeRepo) Save(_ context.Context, rec *domain.ResumeRecord) error {
	f.saved = rec
	return nil
}

func (f *fakeRepo) GetExportSettings(_ context.Context, _ uuid.UUID) (*domain.ExportSettings, error) {
	if f.settings == nil {
		return nil, errors.New("no settings")
	}
	return f.settings, nil
}

func (f *fakeRepo) SaveExportSettings(_ context.Context, _ uuid.UUID, s domain.ExportSettings) error {
	f.settings = &s
	return nil
}

type fakeRenderer struct {
	pdf   []byte
	err   error
	calls int
}

func (f *fakeRenderer) RenderHTMLToPDF(_ context.Context, _ string, _ domain.PageFormat) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

func testExporter(repo *fakeRepo, renderer *fakeRenderer) *Exporter {
	return NewExporter(renderer, repo, cache.NewMemory(), logger.NewNop(), "https://resumes.example.com")
}

func testRecord() *domain.ResumeRecord {
	return &domain.ResumeRecord{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Title:   "Ada's Resume (v2)",
		Content: map[string]interface{}{
			"jobTitle": "Engineer",
			"personalInfo": map[string]interface{}{
				"name": "Ada",
			},
		},
	}
}

func TestPreviewServesFromCache(t *testing.T) {
	repo := &fakeRepo{rec: testRecord()}
	e := testExporter(repo, &fakeRenderer{})
	ctx := context.Background()
	settings := domain.StandardSettings()

	first, err := e.Preview(ctx, repo.rec.ID, settings)
	require.NoError(t, err)
	second, err := e.Preview(ctx, repo.rec.ID, settings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getCalls)

	// different settings miss the cache
	_, err = e.Preview(ctx, repo.rec.ID, domain.CompactSettings())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getCalls)
}

func TestPreviewUnknownResume(t *testing.T) {
	e := testExporter(&fakeRepo{}, &fakeRenderer{})
	_, err := e.Preview(context.Background(), uuid.New(), domain.StandardSettings())
	assert.Error(t, err)
}

func TestRenderPDFPropagatesTypedError(t *testing.T) {
	renderErr := &infra.RasterizationError{Stage: "render", Err: errors.New("chrome crashed")}
	e := testExporter(&fakeRepo{rec: testRecord()}, &fakeRenderer{err: renderErr})

	_, err := e.RenderPDF(context.Background(), "<html></html>", domain.PageLetter)
	require.Error(t, err)

	var rerr *infra.RasterizationError
	assert.True(t, errors.As(err, &rerr))
	assert.Equal(t, "render", rerr.Stage)
}

func TestSaveResumeInvalidContent(t *testing.T) {
	repo := &fakeRepo{}
	e := testExporter(repo, &fakeRenderer{})

	rec := testRecord()
	rec.Content["strengths"] = []interface{}{
		map[string]interface{}{"skillName": "Go", "rating": "eleven"},
	}

	err := e.SaveResume(context.Background(), rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidContent))
	assert.Nil(t, repo.saved)
}

func TestSaveResumeInvalidatesPreview(t *testing.T) {
	repo := &fakeRepo{rec: testRecord()}
	e := testExporter(repo, &fakeRenderer{})
	ctx := context.Background()
	settings := domain.StandardSettings()

	_, err := e.Preview(ctx, repo.rec.ID, settings)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)

	require.NoError(t, e.SaveResume(ctx, repo.rec))
	assert.NotNil(t, repo.saved)
	assert.False(t, repo.saved.UpdatedAt.IsZero())

	// cache was dropped, so preview hits the repo again
	_, err = e.Preview(ctx, repo.rec.ID, settings)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getCalls)
}

func TestResolveSettings(t *testing.T) {
	repo := &fakeRepo{}
	e := testExporter(repo, &fakeRenderer{})
	ctx := context.Background()
	owner := uuid.New()

	// no override, nothing saved: modern defaults
	got := e.ResolveSettings(ctx, owner, nil)
	assert.Equal(t, domain.StandardSettings(), got)

	// saved settings win over defaults
	saved := domain.CompactSettings()
	repo.settings = &saved
	got = e.ResolveSettings(ctx, owner, nil)
	assert.Equal(t, saved, got)

	// explicit override wins over everything
	override := domain.StandardSettings()
	override.NameSize = 40
	got = e.ResolveSettings(ctx, owner, &override)
	assert.Equal(t, float64(40), got.NameSize)
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{name: "plain", title: "My Resume", expected: "My_Resume.pdf"},
		{name: "path unsafe", title: "a/b\\c:d*e", expected: "a_b_c_d_e.pdf"},
		{name: "empty falls back", title: "", expected: "resume.pdf"},
		{name: "all symbols falls back", title: "///", expected: "resume.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeFilename(tt.title))
		})
	}
}
