package models

import "sort"

// BoundingBox is the rectangular extent of an area, used by the map
// plotter and for sanity-checking seed coordinates.
type BoundingBox struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LngMin float64 `json:"lng_min"`
	LngMax float64 `json:"lng_max"`
}

// Contains reports whether the point falls inside the box.
func (b BoundingBox) Contains(c Coordinates) bool {
	return c.Lat >= b.LatMin && c.Lat <= b.LatMax &&
		c.Lng >= b.LngMin && c.Lng <= b.LngMax
}

// Area is one named neighborhood of the metro the dataset covers.
type Area struct {
	Name        string      `json:"name"`
	Center      Coordinates `json:"center"`
	BoundingBox BoundingBox `json:"bounding_box"`
}

// AreaCatalog is the explicit lookup for area centers. It is built
// once from seed data and handed to whichever component needs it;
// there is no package-level catalog to reach for.
type AreaCatalog struct {
	areas map[string]Area
}

// NewAreaCatalog builds a catalog from the given areas. Later
// duplicates of a name win, matching seed-file override behavior.
func NewAreaCatalog(areas []Area) *AreaCatalog {
	m := make(map[string]Area, len(areas))
	for _, a := range areas {
		m[a.Name] = a
	}
	return &AreaCatalog{areas: m}
}

// Get returns the area by name.
func (c *AreaCatalog) Get(name string) (Area, bool) {
	a, ok := c.areas[name]
	return a, ok
}

// Center returns the map center for the named area.
func (c *AreaCatalog) Center(name string) (Coordinates, bool) {
	a, ok := c.areas[name]
	return a.Center, ok
}

// Names lists all area names in stable alphabetical order.
func (c *AreaCatalog) Names() []string {
	names := make([]string, 0, len(c.areas))
	for name := range c.areas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
