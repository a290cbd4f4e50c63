package catalog

// Catalog is a read-only registry of task definitions. It is built once at
// startup and shared across requests.
type Catalog struct {
	defs   []TaskDefinition
	byKey  map[string]TaskDefinition
	events []SeasonalEvent
}

func New(defs []TaskDefinition, events []SeasonalEvent) *Catalog {
	byKey := make(map[string]TaskDefinition, len(defs))
	for _, d := range defs {
		byKey[d.Key] = d
	}
	return &Catalog{defs: defs, byKey: byKey, events: events}
}

// ListApplicable returns the active definitions whose sport/role membership
// includes the given pair. An empty result is not an error.
func (c *Catalog) ListApplicable(sport, role string) []TaskDefinition {
	var out []TaskDefinition
	for _, d := range c.defs {
		if d.appliesTo(sport, role) {
			out = append(out, d)
		}
	}
	return out
}

func (c *Catalog) Lookup(key string) (TaskDefinition, bool) {
	d, ok := c.byKey[key]
	return d, ok
}

func (c *Catalog) SeasonalEvents() []SeasonalEvent {
	return c.events
}
