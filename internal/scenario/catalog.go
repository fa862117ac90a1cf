package scenario

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed content/*.json
var contentFS embed.FS

// Catalog is the immutable set of loaded scenario definitions.
type Catalog struct {
	scenarios []Scenario
	byID      map[string]*Scenario
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// LoadCatalog parses, schema-validates, and structurally validates the
// embedded scenario content. Call once at startup; the result is shared
// read-only across sessions.
func LoadCatalog() (*Catalog, error) {
	return loadFrom(contentFS, "content")
}

func loadFrom(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario content: %w", err)
	}

	c := &Catalog{byID: make(map[string]*Scenario)}
	ids := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		raw, err := fs.ReadFile(fsys, dir+"/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}

		if err := validateAgainstSchema(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}

		var s Scenario
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		if err := validateStructure(&s); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		if ids[s.ID] {
			return nil, fmt.Errorf("%s: duplicate scenario id %q", e.Name(), s.ID)
		}
		ids[s.ID] = true
		c.scenarios = append(c.scenarios, s)
	}

	sort.Slice(c.scenarios, func(i, j int) bool { return c.scenarios[i].ID < c.scenarios[j].ID })
	for i := range c.scenarios {
		c.byID[c.scenarios[i].ID] = &c.scenarios[i]
	}
	return c, nil
}

// All returns every scenario in ID order.
func (c *Catalog) All() []Scenario {
	return c.scenarios
}

// ByID returns the scenario with the given ID.
func (c *Catalog) ByID(id string) (*Scenario, error) {
	s, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %q", id)
	}
	return s, nil
}

// validateAgainstSchema checks raw JSON against the catalog schema.
func validateAgainstSchema(raw []byte) error {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		comp := jsonschema.NewCompiler()
		if err := comp.AddResource("schema://scenario.json", defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = comp.Compile("schema://scenario.json")
	})
	if compileErr != nil {
		return compileErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

// validateStructure enforces the invariants the schema cannot express:
// orders unique and strictly increasing from 1, step IDs unique, and
// every expectedBefore/specificActions reference resolvable.
func validateStructure(s *Scenario) error {
	seen := make(map[string]bool, len(s.OptimalPath))
	for i := range s.OptimalPath {
		step := &s.OptimalPath[i]
		if step.Order != i+1 {
			return fmt.Errorf("step %q: order %d, want %d (orders must increase strictly from 1)", step.ID, step.Order, i+1)
		}
		if seen[step.ID] {
			return fmt.Errorf("duplicate step id %q", step.ID)
		}
		seen[step.ID] = true
	}
	for i := range s.OptimalPath {
		for _, pre := range s.OptimalPath[i].ExpectedBefore {
			if !seen[pre] {
				return fmt.Errorf("step %q: unknown prerequisite %q", s.OptimalPath[i].ID, pre)
			}
		}
	}
	for _, b := range s.Badges {
		for _, id := range b.Criteria.SpecificActions {
			if !seen[id] {
				return fmt.Errorf("badge %q: unknown step id %q in criteria", b.ID, id)
			}
		}
	}
	return nil
}
