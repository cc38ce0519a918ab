// Package catalog keeps the process-wide set of known majors and their
// affinity vectors.
package catalog

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/spigell/major-advisor/internal/logger"
	"github.com/spigell/major-advisor/internal/utils"
	"github.com/spigell/major-advisor/internal/vector"
)

// MajorProfile is one catalog entry.
type MajorProfile struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Affinity    vector.Vector `json:"affinity"`
	Streams     []string      `json:"streams,omitempty"`
	Skills      []string      `json:"skills,omitempty"`
	Prospects   string        `json:"prospects,omitempty"`
}

// Seed describes a major before its vector is computed.
type Seed struct {
	Name        string   `mapstructure:"name"`
	Streams     []string `mapstructure:"streams"`
	Description string   `mapstructure:"description"`
	URL         string   `mapstructure:"url"`
	Skills      []string `mapstructure:"skills"`
	Prospects   string   `mapstructure:"prospects"`
}

// FetchFunc supplies description text for a major. Errors are not fatal: the
// placeholder description is used instead.
type FetchFunc func(ctx context.Context) (string, error)

// Catalog memoizes MajorProfile entries by name. Entries are never
// invalidated; a refresh builds a new Catalog.
type Catalog struct {
	logger *zap.Logger

	mu     sync.RWMutex
	order  []string
	majors map[string]MajorProfile

	group singleflight.Group
}

// New returns an empty catalog.
func New(log *zap.Logger) *Catalog {
	return &Catalog{
		logger: logger.WithFields(log, zap.String("component", "catalog")),
		majors: make(map[string]MajorProfile),
	}
}

// FromSnapshot returns a catalog pre-populated with majors, in the given order.
// Later duplicates of a name are ignored.
func FromSnapshot(majors []MajorProfile, log *zap.Logger) *Catalog {
	c := New(log)
	for _, m := range majors {
		key := normalizeName(m.Name)
		if _, ok := c.majors[key]; ok || key == "" {
			continue
		}
		c.majors[key] = m
		c.order = append(c.order, key)
	}
	return c
}

// GetOrCompute returns the profile of majorName, computing and storing it on
// first use. fetch is only invoked on a cache miss.
func (c *Catalog) GetOrCompute(ctx context.Context, majorName string, fetch FetchFunc) MajorProfile {
	return c.Add(ctx, Seed{Name: majorName}, fetch)
}

// Add is GetOrCompute with the seed metadata attached to the new entry. A seed
// description takes precedence over fetch.
func (c *Catalog) Add(ctx context.Context, seed Seed, fetch FetchFunc) MajorProfile {
	key := normalizeName(seed.Name)

	if m, ok := c.Get(seed.Name); ok {
		return m
	}

	// Concurrent misses for the same major share one fetch.
	v, _, _ := c.group.Do(key, func() (any, error) {
		if m, ok := c.Get(seed.Name); ok {
			return m, nil
		}

		m := c.compute(ctx, seed, fetch)

		c.mu.Lock()
		defer c.mu.Unlock()
		if existing, ok := c.majors[key]; ok {
			return existing, nil
		}
		c.majors[key] = m
		c.order = append(c.order, key)
		return m, nil
	})

	return v.(MajorProfile)
}

func (c *Catalog) compute(ctx context.Context, seed Seed, fetch FetchFunc) MajorProfile {
	name := strings.TrimSpace(seed.Name)
	description := strings.TrimSpace(seed.Description)

	if description == "" && fetch != nil {
		text, err := fetch(ctx)
		if err != nil {
			c.logger.Debug("description fetch failed, using placeholder",
				zap.String("major", name),
				zap.Error(err),
			)
		}
		description = strings.TrimSpace(text)
	}

	if description == "" {
		description = Placeholder(name)
	}

	affinity := Vectorize(name, description)

	c.logger.Debug("major vector computed",
		zap.String("major", name),
		zap.Float64s("vector", affinity.Slice()),
		zap.String("description_preview", utils.TruncateForLog(description, 80)),
	)

	return MajorProfile{
		Name:        name,
		Description: description,
		Affinity:    affinity,
		Streams:     seed.Streams,
		Skills:      seed.Skills,
		Prospects:   seed.Prospects,
	}
}

// Get returns the memoized profile of majorName.
func (c *Catalog) Get(majorName string) (MajorProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.majors[normalizeName(majorName)]
	return m, ok
}

// Len returns the number of majors in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Snapshot returns a copy of every entry in insertion order.
func (c *Catalog) Snapshot() []MajorProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]MajorProfile, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.majors[key])
	}
	return out
}

// Names returns the major names in insertion order.
func (c *Catalog) Names() []string {
	snapshot := c.Snapshot()
	names := make([]string, 0, len(snapshot))
	for _, m := range snapshot {
		names = append(names, m.Name)
	}
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
