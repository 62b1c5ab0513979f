// Package model contains the planning domain records shared across layers.
// I keep it to data shapes plus the small key accessors the record stores need.
package model

import "github.com/google/uuid"

// GeoJSON is a GeoJSON geometry. Coordinates stay opaque because their nesting depends on Type.
type GeoJSON struct {
	Type        string `json:"type" validate:"required"`
	Coordinates any    `json:"coordinates"`
}

// SiteCoordinates is either a lat/lon point or a GeoJSON geometry.
type SiteCoordinates struct {
	Lat         *float64 `json:"lat,omitempty" validate:"required_without=Type"`
	Lon         *float64 `json:"lon,omitempty" validate:"required_with=Lat"`
	Type        string   `json:"type,omitempty" validate:"required_without=Lat"`
	Coordinates any      `json:"coordinates,omitempty"`
}

// LinkedEntity points from a document node to another record.
type LinkedEntity struct {
	Type string `json:"type" validate:"required"`
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// AIGuidance is one assistant suggestion attached to a policy.
type AIGuidance struct {
	Type    string `json:"type" validate:"required"`
	Message string `json:"message" validate:"required"`
	Source  string `json:"source,omitempty"`
}

// AssignIDs gives every element without a key a fresh one.
func AssignIDs[T interface {
	RecordID() uuid.UUID
	WithRecordID(uuid.UUID) T
}](items []T) []T {
	for i, it := range items {
		if it.RecordID() == uuid.Nil {
			items[i] = it.WithRecordID(uuid.New())
		}
	}
	return items
}
