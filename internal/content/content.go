package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"voidminer/internal/domain/resource"
	"voidminer/internal/domain/worldgen"
)

//go:embed default.yaml
var defaultPack []byte

var ErrInvalidContent = errors.New("invalid content pack")

// Pack is the static content the engine reads: resources, processes, target
// classes and zones. It is immutable once loaded.
type Pack struct {
	Resources []resource.Definition      `yaml:"resources"`
	Processes []resource.Process         `yaml:"processes"`
	Classes   []worldgen.ClassDefinition `yaml:"classes"`
	Zones     []worldgen.ZoneDefinition  `yaml:"zones"`
}

func Default() (Pack, error) {
	return Parse(defaultPack)
}

func MustDefault() Pack {
	p, err := Default()
	if err != nil {
		panic(err)
	}
	return p
}

// Load reads a pack from path. An empty path yields the built-in pack.
func Load(path string) (Pack, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("read content %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Pack{}, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if err := p.Validate(); err != nil {
		return Pack{}, err
	}
	return p, nil
}

func (p Pack) Catalog() resource.Catalog {
	return resource.NewCatalog(p.Resources, p.Processes)
}

func (p Pack) ClassCatalog() worldgen.ClassCatalog {
	return worldgen.NewClassCatalog(p.Classes)
}

// Validate checks referential integrity at load time so lookups during
// simulation cannot miss.
func (p Pack) Validate() error {
	if len(p.Resources) == 0 {
		return fmt.Errorf("%w: no resources", ErrInvalidContent)
	}
	cat := p.Catalog()
	if err := cat.Validate(); err != nil {
		return err
	}
	classes := p.ClassCatalog()
	for _, c := range p.Classes {
		if !c.MixedYield() {
			return fmt.Errorf("%w: class %s needs at least two yield resources", ErrInvalidContent, c.ID)
		}
		for id := range c.Yield {
			if _, err := cat.Resource(id); err != nil {
				return fmt.Errorf("class %s: %w", c.ID, err)
			}
		}
		if c.MinRadius <= 0 || c.MaxRadius < c.MinRadius {
			return fmt.Errorf("%w: class %s radius range", ErrInvalidContent, c.ID)
		}
	}
	seen := map[string]bool{}
	for _, z := range p.Zones {
		if seen[z.ID] {
			return fmt.Errorf("%w: duplicate zone %s", ErrInvalidContent, z.ID)
		}
		seen[z.ID] = true
		for _, w := range z.ClassWeights {
			if _, err := classes.Class(w.ClassID); err != nil {
				return fmt.Errorf("zone %s: %w", z.ID, err)
			}
		}
	}
	return nil
}
