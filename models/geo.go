package models

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"

	"github.com/phylax/contracts/schema"
)

// PointType is the only GeoJSON geometry type the contracts carry.
const PointType = "Point"

// GeoPoint is a GeoJSON point used for geospatial queries.
// Coordinates are [longitude, latitude]; the order matters and ranges are not checked.
type GeoPoint struct {
	Type        string    `json:"type" contract:"type,default=Point" validate:"eq=Point"`
	Coordinates []float64 `json:"coordinates" contract:"coordinates,required" validate:"len=2"`
}

// GeoLocation has the same shape as GeoPoint and is used for mission and team locations.
type GeoLocation struct {
	Type        string    `json:"type" contract:"type,default=Point" validate:"eq=Point"`
	Coordinates []float64 `json:"coordinates" contract:"coordinates,required" validate:"len=2"`
}

func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: PointType, Coordinates: []float64{lng, lat}}
}

func NewGeoLocation(lng, lat float64) GeoLocation {
	return GeoLocation{Type: PointType, Coordinates: []float64{lng, lat}}
}

func (p GeoPoint) Longitude() float64 { return axis(p.Coordinates, 0) }
func (p GeoPoint) Latitude() float64  { return axis(p.Coordinates, 1) }

func (p GeoPoint) Point() orb.Point { return orb.Point{p.Longitude(), p.Latitude()} }

// DistanceTo returns the great-circle distance in meters.
func (p GeoPoint) DistanceTo(other GeoPoint) float64 {
	return geo.Distance(p.Point(), other.Point())
}

func (l GeoLocation) Longitude() float64 { return axis(l.Coordinates, 0) }
func (l GeoLocation) Latitude() float64  { return axis(l.Coordinates, 1) }

func (l GeoLocation) Point() orb.Point { return orb.Point{l.Longitude(), l.Latitude()} }

// DistanceTo returns the great-circle distance in meters.
func (l GeoLocation) DistanceTo(other GeoLocation) float64 {
	return geo.Distance(l.Point(), other.Point())
}

func axis(coords []float64, i int) float64 {
	if len(coords) <= i {
		return 0
	}
	return coords[i]
}

// Coordinate is a polygon vertex used by location boundaries.
type Coordinate struct {
	Latitude  float64 `json:"latitude" contract:"latitude,required"`
	Longitude float64 `json:"longitude" contract:"longitude,required"`
}

func (c Coordinate) Point() orb.Point { return orb.Point{c.Longitude, c.Latitude} }

// Validate checks that the coordinate lies on the globe.
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return schema.Invalid("Coordinate", "latitude", fmt.Sprintf("%g must be between -90 and 90", c.Latitude))
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return schema.Invalid("Coordinate", "longitude", fmt.Sprintf("%g must be between -180 and 180", c.Longitude))
	}
	return nil
}

// ValidateBoundary checks that boundary forms a polygon of valid coordinates.
func ValidateBoundary(boundary []Coordinate) error {
	if len(boundary) < 3 {
		return schema.Invalid("Area", "boundary", "polygon needs at least 3 points")
	}
	for i, c := range boundary {
		if err := c.Validate(); err != nil {
			cve, _ := schema.AsValidationError(err)
			return schema.Invalid("Area", fmt.Sprintf("boundary[%d].%s", i, cve.Field), cve.Reason)
		}
	}
	return nil
}

// PointInPolygon reports whether pt lies inside polygon. Polygons with fewer
// than three vertices contain nothing.
func PointInPolygon(pt Coordinate, polygon []Coordinate) bool {
	if len(polygon) < 3 {
		return false
	}
	ring := make(orb.Ring, 0, len(polygon)+1)
	for _, c := range polygon {
		ring = append(ring, c.Point())
	}
	if !ring[0].Equal(ring[len(ring)-1]) {
		ring = append(ring, ring[0])
	}
	return planar.RingContains(ring, pt.Point())
}

// GeoJSONPoint is the point shape used by asset event groups.
type GeoJSONPoint struct {
	Type        string    `json:"type" contract:"type,default=Point" validate:"eq=Point"`
	Coordinates []float64 `json:"coordinates" contract:"coordinates,required" validate:"len=2"`
}

// BoundingBox is a west/south/east/north rectangle in degrees.
type BoundingBox struct {
	West  float64 `json:"west" contract:"west,required"`
	South float64 `json:"south" contract:"south,required"`
	East  float64 `json:"east" contract:"east,required"`
	North float64 `json:"north" contract:"north,required"`
}

func (b BoundingBox) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b.West, b.South}, Max: orb.Point{b.East, b.North}}
}

// Contains reports whether p falls inside the box, edges included.
func (b BoundingBox) Contains(p GeoPoint) bool {
	return b.Bound().Contains(p.Point())
}

// TacticalGeoLocation is a named lat/lng used for command destinations and waypoints.
type TacticalGeoLocation struct {
	Lat         float64 `json:"lat" contract:"lat,required"`
	Lng         float64 `json:"lng" contract:"lng,required"`
	Name        *string `json:"name" contract:"name"`
	Description *string `json:"description" contract:"description"`
}

// Area of operation shapes. The field stays open so new shapes pass through.
const (
	AreaShapeCircle  = "circle"
	AreaShapePolygon = "polygon"
	AreaShapeRoute   = "route"
)

type TacticalGeoArea struct {
	Type        string                `json:"type" contract:"type,required"`
	Center      *TacticalGeoLocation  `json:"center" contract:"center"`
	Radius      *float64              `json:"radius" contract:"radius"`
	Coordinates []TacticalGeoLocation `json:"coordinates" contract:"coordinates"`
	Name        *string               `json:"name" contract:"name"`
}
