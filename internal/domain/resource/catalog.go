package resource

import (
	"errors"
	"fmt"

	"voidminer/internal/domain/numeric"
)

var (
	ErrUnknownResource = errors.New("unknown resource")
	ErrUnknownProcess  = errors.New("unknown process")
)

type Element string

const (
	ElementH  Element = "H"
	ElementC  Element = "C"
	ElementO  Element = "O"
	ElementSi Element = "Si"
	ElementFe Element = "Fe"
)

var Elements = []Element{ElementH, ElementC, ElementO, ElementSi, ElementFe}

type Definition struct {
	ID        string              `yaml:"id" json:"id"`
	Label     string              `yaml:"label" json:"label"`
	Atoms     map[Element]float64 `yaml:"atoms" json:"atoms"`
	BaseValue float64             `yaml:"base_value" json:"base_value"`
}

type Process struct {
	ID      string             `yaml:"id" json:"id"`
	Label   string             `yaml:"label" json:"label"`
	Consume map[string]float64 `yaml:"consume" json:"consume"`
	Produce map[string]float64 `yaml:"produce" json:"produce"`
}

type Catalog struct {
	Resources map[string]Definition
	Processes map[string]Process
}

func NewCatalog(defs []Definition, processes []Process) Catalog {
	c := Catalog{
		Resources: make(map[string]Definition, len(defs)),
		Processes: make(map[string]Process, len(processes)),
	}
	for _, d := range defs {
		c.Resources[d.ID] = d
	}
	for _, p := range processes {
		c.Processes[p.ID] = p
	}
	return c
}

func (c Catalog) Resource(id string) (Definition, error) {
	d, ok := c.Resources[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownResource, id)
	}
	return d, nil
}

func (c Catalog) Process(id string) (Process, error) {
	p, ok := c.Processes[id]
	if !ok {
		return Process{}, fmt.Errorf("%w: %q", ErrUnknownProcess, id)
	}
	return p, nil
}

// AtomTotals sums per-unit atom vectors times quantity for every held resource.
func (c Catalog) AtomTotals(inv Inventory) (map[Element]float64, error) {
	out := make(map[Element]float64, len(Elements))
	for _, id := range inv.Keys() {
		qty := inv[id]
		if qty <= 0 {
			continue
		}
		def, err := c.Resource(id)
		if err != nil {
			return nil, err
		}
		for el, n := range def.Atoms {
			out[el] += n * qty
		}
	}
	for el, v := range out {
		out[el] = numeric.Round4(v)
	}
	return out, nil
}

// Validate checks that every resource referenced by a process exists.
func (c Catalog) Validate() error {
	for _, p := range c.Processes {
		for id := range p.Consume {
			if _, err := c.Resource(id); err != nil {
				return fmt.Errorf("process %s: %w", p.ID, err)
			}
		}
		for id := range p.Produce {
			if _, err := c.Resource(id); err != nil {
				return fmt.Errorf("process %s: %w", p.ID, err)
			}
		}
	}
	return nil
}
