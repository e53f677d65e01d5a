// Package site turns a page shell and a content document into a deployable
// directory, and keeps the live inputs of folio serve current.
package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/walker"
)

// Paths written into the output directory.
const (
	IndexFile   = "index.html"
	ContentFile = content.DefaultSource
)

// alwaysExcluded are project files never copied into a build.
var alwaysExcluded = []string{".folio.yml", ".env"}

// BuildConfig describes a static build.
type BuildConfig struct {
	ShellPath string   // Page shell; empty for the built-in page.
	StaticDir string   // Directory copied next to the page; empty to skip.
	OutputDir string   // Destination directory.
	Exclude   []string // Glob patterns skipped while copying StaticDir.
}

// BuildResult summarizes a finished build.
type BuildResult struct {
	OutputDir       string
	ContentLoaded   bool
	Sections        []content.Section
	AssetsCopied    int
	AssetsUnchanged int
	Duration        time.Duration
}

// Builder renders the page once and writes it with its assets.
type Builder struct {
	cfg      BuildConfig
	loader   *content.Loader
	logger   *zap.Logger
	reporter progress.Reporter
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithBuildLogger sets the logger.
func WithBuildLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithReporter sets the progress reporter.
func WithReporter(r progress.Reporter) BuilderOption {
	return func(b *Builder) {
		if r != nil {
			b.reporter = r
		}
	}
}

// NewBuilder creates a Builder.
func NewBuilder(cfg BuildConfig, loader *content.Loader, opts ...BuilderOption) *Builder {
	b := &Builder{
		cfg:      cfg,
		loader:   loader,
		logger:   zap.NewNop(),
		reporter: progress.Nop{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build loads the content, renders the page, and writes the output
// directory. A content failure is logged and the unfilled shell is
// written, as a browser would show it.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()
	if b.cfg.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}

	shell, err := ReadShell(b.cfg.ShellPath)
	if err != nil {
		return nil, err
	}

	const steps = 5
	b.reporter.Start(steps)
	defer b.reporter.Finish()

	b.reporter.Update(1, "loading content")
	c := b.loader.LoadOrNil(ctx)

	b.reporter.Update(2, "rendering page")
	page, err := render.Render(shell, c, render.WithLogger(b.logger))
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	result := &BuildResult{
		OutputDir:     b.cfg.OutputDir,
		ContentLoaded: c != nil,
		Sections:      c.Sections(),
	}

	b.reporter.Update(3, "copying assets")
	if b.cfg.StaticDir != "" {
		copied, unchanged, err := b.copyStatic()
		if err != nil {
			return nil, err
		}
		result.AssetsCopied, result.AssetsUnchanged = copied, unchanged
	}

	// Generated files are written after the static copy so they win over a
	// shell or content file living inside the static directory.
	b.reporter.Update(4, "writing page")
	if err := writeFile(filepath.Join(b.cfg.OutputDir, IndexFile), []byte(page)); err != nil {
		return nil, err
	}
	if err := writeFile(filepath.Join(b.cfg.OutputDir, filepath.FromSlash(render.BehaviorScriptPath)), []byte(render.BehaviorScript)); err != nil {
		return nil, err
	}

	b.reporter.Update(5, "writing content document")
	if c != nil && !b.loader.IsRemote() {
		raw, err := c.Raw()
		if err != nil {
			return nil, fmt.Errorf("encoding content document: %w", err)
		}
		if err := writeFile(filepath.Join(b.cfg.OutputDir, filepath.FromSlash(ContentFile)), raw); err != nil {
			return nil, err
		}
	}

	result.Duration = time.Since(start)
	b.logger.Info("site built",
		zap.String("output", b.cfg.OutputDir),
		zap.Bool("content", result.ContentLoaded),
		zap.Int("assets_copied", result.AssetsCopied),
		zap.Int("assets_unchanged", result.AssetsUnchanged),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}

// copyStatic mirrors StaticDir into OutputDir, skipping files whose
// destination already has identical content.
func (b *Builder) copyStatic() (copied, unchanged int, err error) {
	exclude, err := b.staticExcludes()
	if err != nil {
		return 0, 0, err
	}

	files, err := walker.Walk(walker.Config{RootDir: b.cfg.StaticDir, Exclude: exclude})
	if err != nil {
		return 0, 0, fmt.Errorf("listing static assets: %w", err)
	}

	for _, f := range files {
		dest := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(f.RelPath))
		if hash, err := walker.HashFile(dest); err == nil && hash == f.ContentHash {
			unchanged++
			continue
		}
		if err := copyFile(f.Path, dest); err != nil {
			return copied, unchanged, err
		}
		copied++
	}
	return copied, unchanged, nil
}

// staticExcludes returns the configured patterns plus the output
// directory when it lies inside the static directory.
func (b *Builder) staticExcludes() ([]string, error) {
	exclude := append(append([]string(nil), b.cfg.Exclude...), alwaysExcluded...)
	if err := walker.ValidatePatterns(exclude); err != nil {
		return nil, err
	}

	staticAbs, err := filepath.Abs(b.cfg.StaticDir)
	if err != nil {
		return nil, fmt.Errorf("resolving static dir: %w", err)
	}
	outAbs, err := filepath.Abs(b.cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output dir: %w", err)
	}

	rel, err := filepath.Rel(staticAbs, outAbs)
	if err != nil {
		return exclude, nil
	}
	rel = filepath.ToSlash(rel)
	switch {
	case rel == ".":
		return nil, fmt.Errorf("output dir %s must differ from static dir %s", b.cfg.OutputDir, b.cfg.StaticDir)
	case rel == ".." || strings.HasPrefix(rel, "../"):
		return exclude, nil
	default:
		return append(exclude, rel, rel+"/**"), nil
	}
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	return writeFile(dest, data)
}
