package infrastructure

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"resume-builder/internal/domain"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempResumeDirs(t *testing.T) int {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "resume-*"))
	require.NoError(t, err)
	return len(matches)
}

func TestRenderFailureIsTypedAndCleansUp(t *testing.T) {
	before := tempResumeDirs(t)

	r := NewChromedpRenderer()
	r.run = func(ctx context.Context, actions ...chromedp.Action) error {
		return errors.New("page crashed")
	}

	_, err := r.RenderHTMLToPDF(context.Background(), "<html><body>x</body></html>", domain.PageLetter)
	require.Error(t, err)

	var rerr *RasterizationError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "render", rerr.Stage)
	assert.Contains(t, rerr.Error(), "page crashed")

	// the temp page dir is removed even on the failure path
	assert.Equal(t, before, tempResumeDirs(t))
}

func TestInvalidPDFOutputIsRejected(t *testing.T) {
	before := tempResumeDirs(t)

	r := NewChromedpRenderer()
	r.run = func(ctx context.Context, actions ...chromedp.Action) error {
		// browser "succeeded" but produced no bytes
		return nil
	}

	_, err := r.RenderHTMLToPDF(context.Background(), "<html></html>", domain.PageA4)
	require.Error(t, err)

	var rerr *RasterizationError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "validate", rerr.Stage)

	assert.Equal(t, before, tempResumeDirs(t))
}

func TestPaperSizes(t *testing.T) {
	w, h := domain.PageLetter.PaperSize()
	assert.Equal(t, 8.5, w)
	assert.Equal(t, 11.0, h)

	w, h = domain.PageA4.PaperSize()
	assert.Equal(t, 8.27, w)
	assert.Equal(t, 11.69, h)

	// unknown formats default to letter
	w, h = domain.PageFormat("tabloid").PaperSize()
	assert.Equal(t, 8.5, w)
	assert.Equal(t, 11.0, h)
}
