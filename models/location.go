package models

import (
	"fmt"
	"time"
)

// Owner: location-navigation-service.

// LocType names the area kinds in use. Area.Type stays an open string.
type LocType string

const (
	LocTypePerimeter  LocType = "perimeter"
	LocTypePatrolZone LocType = "patrol_zone"
	LocTypeCheckpoint LocType = "checkpoint"
)

func (LocType) Values() []string {
	return []string{string(LocTypePerimeter), string(LocTypePatrolZone), string(LocTypeCheckpoint)}
}

// Area is a named polygon within a Location. The boundary length is checked by
// ValidateBoundary on create and update requests, not on the stored record.
type Area struct {
	ID          string       `json:"id" contract:"id,required"`
	Name        string       `json:"name" contract:"name,required"`
	Description *string      `json:"description" contract:"description"`
	Boundary    []Coordinate `json:"boundary" contract:"boundary,required"`
	FillColor   *string      `json:"fillColor" contract:"fill_color"`
	BorderColor *string      `json:"borderColor" contract:"border_color"`
	Opacity     *float64     `json:"opacity" contract:"opacity"`
	Type        *string      `json:"type" contract:"type"`
	Priority    *string      `json:"priority" contract:"priority"`
	Active      bool         `json:"active" contract:"active,required"`
	CreatedAt   time.Time    `json:"createdAt" contract:"created_at,required"`
	UpdatedAt   time.Time    `json:"updatedAt" contract:"updated_at,required"`
}

// Contains reports whether c lies inside the area boundary.
func (a *Area) Contains(c Coordinate) bool { return PointInPolygon(c, a.Boundary) }

// AssetsInside returns the assets positioned inside the area. Assets still at
// 0,0 have no fix and are skipped.
func (a *Area) AssetsInside(assets []Asset) []Asset {
	var inside []Asset
	for _, asset := range assets {
		if !asset.HasPosition() {
			continue
		}
		if a.Contains(asset.Coordinate()) {
			inside = append(inside, asset)
		}
	}
	return inside
}

// Location is a site with a center point and its areas.
type Location struct {
	ID          string  `json:"id" contract:"id,required,bson=_id"`
	Name        string  `json:"name" contract:"name,required"`
	Description *string `json:"description" contract:"description"`

	Latitude  float64 `json:"latitude" contract:"latitude,required"`
	Longitude float64 `json:"longitude" contract:"longitude,required"`

	Areas []Area `json:"areas" contract:"areas,default=[]"`

	Color   *string  `json:"color" contract:"color"`
	Icon    *string  `json:"icon" contract:"icon"`
	UseCase *string  `json:"useCase" contract:"use_case"`
	Tags    []string `json:"tags" contract:"tags,default=[]"`
	Active  bool     `json:"active" contract:"active,required"`

	CreatedBy *string   `json:"createdBy" contract:"created_by"`
	CreatedAt time.Time `json:"createdAt" contract:"created_at,required"`
	UpdatedBy *string   `json:"updatedBy" contract:"updated_by"`
	UpdatedAt time.Time `json:"updatedAt" contract:"updated_at,required"`
}

func (l *Location) FindArea(areaID string) *Area {
	for i := range l.Areas {
		if l.Areas[i].ID == areaID {
			return &l.Areas[i]
		}
	}
	return nil
}

func (l *Location) AddArea(area Area, now time.Time) {
	l.Areas = append(l.Areas, area)
	l.UpdatedAt = now
}

// UpdateArea applies the non-nil fields of req to the area. A new boundary is
// validated before anything is changed.
func (l *Location) UpdateArea(areaID string, req UpdateAreaRequest, now time.Time) error {
	area := l.FindArea(areaID)
	if area == nil {
		return fmt.Errorf("area %s: %w", areaID, ErrAreaNotFound)
	}
	if req.Boundary != nil {
		if err := ValidateBoundary(req.Boundary); err != nil {
			return err
		}
		area.Boundary = append([]Coordinate(nil), req.Boundary...)
	}
	if req.Name != nil {
		area.Name = *req.Name
	}
	if req.Description != nil {
		area.Description = req.Description
	}
	if req.FillColor != nil {
		area.FillColor = req.FillColor
	}
	if req.BorderColor != nil {
		area.BorderColor = req.BorderColor
	}
	if req.Opacity != nil {
		area.Opacity = req.Opacity
	}
	if req.Type != nil {
		area.Type = req.Type
	}
	if req.Priority != nil {
		area.Priority = req.Priority
	}
	if req.Active != nil {
		area.Active = *req.Active
	}
	area.UpdatedAt = now
	l.UpdatedAt = now
	return nil
}

// RemoveArea drops the area. Assets assigned to it are the caller's to clean up.
func (l *Location) RemoveArea(areaID string, now time.Time) error {
	for i := range l.Areas {
		if l.Areas[i].ID == areaID {
			l.Areas = append(l.Areas[:i], l.Areas[i+1:]...)
			l.UpdatedAt = now
			return nil
		}
	}
	return fmt.Errorf("area %s: %w", areaID, ErrAreaNotFound)
}

// AreasContaining returns the areas whose boundary holds c.
func (l *Location) AreasContaining(c Coordinate) []*Area {
	var out []*Area
	for i := range l.Areas {
		if l.Areas[i].Contains(c) {
			out = append(out, &l.Areas[i])
		}
	}
	return out
}

func (l *Location) Center() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

type CreateLocationRequest struct {
	Name        string   `json:"name" contract:"name,required"`
	Description *string  `json:"description" contract:"description"`
	Latitude    float64  `json:"latitude" contract:"latitude,required"`
	Longitude   float64  `json:"longitude" contract:"longitude,required"`
	Color       *string  `json:"color" contract:"color"`
	Icon        *string  `json:"icon" contract:"icon"`
	UseCase     *string  `json:"useCase" contract:"use_case"`
	Tags        []string `json:"tags" contract:"tags"`
	Active      *bool    `json:"active" contract:"active"`
}

type UpdateLocationRequest struct {
	Name        *string  `json:"name" contract:"name"`
	Description *string  `json:"description" contract:"description"`
	Latitude    *float64 `json:"latitude" contract:"latitude"`
	Longitude   *float64 `json:"longitude" contract:"longitude"`
	Color       *string  `json:"color" contract:"color"`
	Icon        *string  `json:"icon" contract:"icon"`
	UseCase     *string  `json:"useCase" contract:"use_case"`
	Tags        []string `json:"tags" contract:"tags"`
	Active      *bool    `json:"active" contract:"active"`
}

type CreateAreaRequest struct {
	Name        string       `json:"name" contract:"name,required"`
	Description *string      `json:"description" contract:"description"`
	Boundary    []Coordinate `json:"boundary" contract:"boundary,required" validate:"min=3"`
	FillColor   *string      `json:"fillColor" contract:"fill_color"`
	BorderColor *string      `json:"borderColor" contract:"border_color"`
	Opacity     *float64     `json:"opacity" contract:"opacity"`
	Type        *string      `json:"type" contract:"type"`
	Priority    *string      `json:"priority" contract:"priority"`
	Active      *bool        `json:"active" contract:"active"`
}

type UpdateAreaRequest struct {
	Name        *string      `json:"name" contract:"name"`
	Description *string      `json:"description" contract:"description"`
	Boundary    []Coordinate `json:"boundary" contract:"boundary" validate:"omitempty,min=3"`
	FillColor   *string      `json:"fillColor" contract:"fill_color"`
	BorderColor *string      `json:"borderColor" contract:"border_color"`
	Opacity     *float64     `json:"opacity" contract:"opacity"`
	Type        *string      `json:"type" contract:"type"`
	Priority    *string      `json:"priority" contract:"priority"`
	Active      *bool        `json:"active" contract:"active"`
}

type GetLocationsRequest struct {
	UseCase *string `json:"useCase" contract:"use_case"`
	Active  *bool   `json:"active" contract:"active"`
}
