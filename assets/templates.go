package assets

import (
	"fmt"
	"io/fs"
	"log"
	"math/rand"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/gridrunner/components"
	"github.com/automoto/gridrunner/config"
	"github.com/lafriks/go-tiled"
)

// BlockTemplate is one authored block layout: a kind grid copied into every
// block generated from it.
type BlockTemplate struct {
	Name string
	Grid components.PlacementGrid
}

// LoadTemplate parses a TMX file into a kind grid. Placements are authored as
// objects in a "placements" object group; the object's position picks the
// cell and lane, its name picks the kind. Unknown names are skipped with a
// log line, never a failure.
func LoadTemplate(fsys fs.FS, tmxPath string) (BlockTemplate, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return BlockTemplate{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	grid := components.NewPlacementGrid(m.Width, m.Height)
	for _, og := range m.ObjectGroups {
		if og.Name != "placements" {
			continue
		}
		for _, o := range og.Objects {
			kind, ok := components.KindByName[o.Name]
			if !ok {
				log.Printf("template %s: unknown placement %q, skipping", tmxPath, o.Name)
				continue
			}
			cell := int(o.X) / m.TileWidth
			lane := int(o.Y) / m.TileHeight
			if cell < 0 || cell >= m.Width || lane < 0 || lane >= m.Height {
				log.Printf("template %s: placement %q outside the grid, skipping", tmxPath, o.Name)
				continue
			}
			grid.Set(cell, lane, components.PlacementID(kind))
		}
	}

	stem := strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	return BlockTemplate{Name: stem, Grid: grid}, nil
}

// LoadTemplates discovers every .tmx file under dir in fsys, sorted by name
// for deterministic selection indices.
func LoadTemplates(fsys fs.FS, dir string) ([]BlockTemplate, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx templates found in %s", dir)
	}
	sort.Strings(matches)

	templates := make([]BlockTemplate, 0, len(matches))
	for _, path := range matches {
		tpl, err := LoadTemplate(fsys, path)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}

// DefaultTemplates loads the embedded block templates.
func DefaultTemplates() ([]BlockTemplate, error) {
	return LoadTemplates(blocksFS, "blocks")
}

// TemplateProvider selects an authored template per block, seeded so a given
// (seed, block id) pair always picks the same layout regardless of request
// order. Delivery is synchronous; the stage stream applies it from its
// mailbox either way.
type TemplateProvider struct {
	templates []BlockTemplate
	seed      int64
}

// NewTemplateProvider builds a provider over templates with the given seed.
func NewTemplateProvider(templates []BlockTemplate, seed int64) *TemplateProvider {
	return &TemplateProvider{templates: templates, seed: seed}
}

// NewDefaultProvider loads the embedded templates and seeds selection from
// the stage config.
func NewDefaultProvider() (*TemplateProvider, error) {
	templates, err := DefaultTemplates()
	if err != nil {
		return nil, err
	}
	return NewTemplateProvider(templates, config.Stage.TemplateSeed), nil
}

// RequestBlockTemplate implements components.TemplateProvider.
func (p *TemplateProvider) RequestBlockTemplate(block int, deliver func(components.TemplateResult)) {
	if len(p.templates) == 0 {
		deliver(components.TemplateResult{Block: block, Err: fmt.Errorf("no templates loaded")})
		return
	}

	// Block 0 is always a breather so a fresh run never spawns into a hazard.
	if block == 0 {
		deliver(components.TemplateResult{Block: block, Grid: components.NewPlacementGrid(0, 0)})
		return
	}

	idx := p.pick(block)
	deliver(components.TemplateResult{Block: block, Grid: p.templates[idx].Grid})
}

// TemplateName returns which template a block would receive, for logs and
// tests.
func (p *TemplateProvider) TemplateName(block int) string {
	if len(p.templates) == 0 || block == 0 {
		return ""
	}
	return p.templates[p.pick(block)].Name
}

func (p *TemplateProvider) pick(block int) int {
	rng := rand.New(rand.NewSource(p.seed ^ int64(uint64(block)*0x9E3779B97F4A7C15)))
	return rng.Intn(len(p.templates))
}
