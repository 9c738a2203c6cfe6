package texcache

import (
	"occgrid/internal/grid"
	"occgrid/internal/logger"

	"github.com/sirupsen/logrus"
)

// Stats counts cache activity since construction.
type Stats struct {
	Entries     int
	Allocations int
	Uploads     int
	Hits        int
}

// Cache maps a grid message name to the texture built from its latest data.
// Entries are never evicted. A Cache is not safe for concurrent use; keep
// one per rendering context.
type Cache struct {
	dev   Device
	store map[string]*entry
	stats Stats
	log   *logrus.Entry
}

// New returns an empty cache that allocates textures on dev.
func New(dev Device) *Cache {
	return &Cache{
		dev:   dev,
		store: make(map[string]*entry),
		log:   logger.WithComponent("texcache"),
	}
}

// Get returns the texture for msg, uploading cell data only when msg is not
// the message the cached texture was built from. msg.Data must hold exactly
// Width*Height cells.
func (c *Cache) Get(msg *grid.Message) Texture {
	assertSize(msg)
	e, ok := c.store[msg.Name]
	if !ok {
		e = newEntry(c.dev, msg)
		c.store[msg.Name] = e
		c.stats.Allocations++
		c.log.WithFields(logrus.Fields{
			"name":   msg.Name,
			"width":  msg.Info.Width,
			"height": msg.Info.Height,
		}).Debug("allocated texture")
		return e.tex
	}
	tex, uploaded := e.texture(msg)
	if !uploaded {
		c.stats.Hits++
		return tex
	}
	c.stats.Uploads++
	c.log.WithFields(logrus.Fields{
		"name":       msg.Name,
		"width":      msg.Info.Width,
		"height":     msg.Info.Height,
		"generation": msg.Generation,
	}).Debug("uploaded texture")
	return tex
}

// Len returns the number of cached entries.
func (c *Cache) Len() int { return len(c.store) }

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	s := c.stats
	s.Entries = len(c.store)
	return s
}

// Dispose releases every cached texture and empties the cache.
func (c *Cache) Dispose() {
	for name, e := range c.store {
		e.tex.Dispose()
		delete(c.store, name)
	}
	c.log.Debug("disposed textures")
}
