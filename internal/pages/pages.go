// Package pages generates Hugo content stubs for the regions listed in
// the aggregate index, plus per-language duplicates for multilingual
// builds. It only reads the dataset; the index and region files are the
// contract boundary with the pipeline.
package pages

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/masajidusa/pipeline/internal/home"
	"github.com/masajidusa/pipeline/internal/store"
)

// Generator writes region content pages under {home}/content/states.
type Generator struct {
	dir       *home.Dir
	store     *store.Store
	logger    *slog.Logger
	languages []string
}

// Report summarizes a page generation run.
type Report struct {
	Pages        int `json:"pages" yaml:"pages"`
	Translations int `json:"translations" yaml:"translations"`
}

// New creates a Generator. languages are the translation copies written
// per page when translations are requested.
func New(dir *home.Dir, st *store.Store, languages []string, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{dir: dir, store: st, logger: logger, languages: languages}
}

// Generate writes the states listing page and one stub per indexed
// region. When withTranslations is set, every written page is also
// duplicated per configured language (content identical; UI strings are
// translated downstream via i18n).
func (g *Generator) Generate(withTranslations bool) (*Report, error) {
	idx, err := g.store.LoadIndex()
	if err != nil {
		return nil, err
	}

	contentDir := g.dir.ContentStatesDir()
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", contentDir, err)
	}

	report := &Report{}

	listing := "---\ntitle: \"Browse States\"\n---\n"
	if err := g.writePage(filepath.Join(contentDir, "_index.md"), listing, withTranslations, report); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(idx.RegionCounts))
	for name := range idx.RegionCounts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		urlSlug := strings.ReplaceAll(strings.ToLower(name), " ", "-")
		fileSlug := strings.ReplaceAll(strings.ToLower(name), " ", "_")

		pageDir := filepath.Join(contentDir, urlSlug)
		if err := os.MkdirAll(pageDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", pageDir, err)
		}

		content := fmt.Sprintf("---\ntitle: %q\nstate_name: %q\nstate_slug: %q\n---\n", name, name, fileSlug)
		if err := g.writePage(filepath.Join(pageDir, "index.md"), content, withTranslations, report); err != nil {
			return nil, err
		}
		g.logger.Info("generated page", "region", name, "slug", urlSlug)
	}

	return report, nil
}

// writePage writes one page and, when requested, its per-language
// copies (index.md → index.<lang>.md, _index.md → _index.<lang>.md).
func (g *Generator) writePage(path, content string, withTranslations bool, report *Report) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	report.Pages++

	if !withTranslations {
		return nil
	}
	base := strings.TrimSuffix(path, ".md")
	for _, lang := range g.languages {
		langPath := fmt.Sprintf("%s.%s.md", base, lang)
		if err := os.WriteFile(langPath, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", langPath, err)
		}
		report.Translations++
	}
	return nil
}
