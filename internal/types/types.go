// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"time"
)

type MapMarker struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Latitude    float64   `db:"latitude" json:"latitude"`
	Longitude   float64   `db:"longitude" json:"longitude"`
	MapID       string    `db:"map_id" json:"map_id"`
	IconType    string    `db:"icon_type" json:"icon_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Character struct {
	ID        string          `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Race      string          `db:"race" json:"race,omitempty"`
	Class     string          `db:"class" json:"class,omitempty"`
	Level     int             `db:"level" json:"level"`
	Stats     json.RawMessage `db:"stats" json:"stats,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

type HomebrewDocument struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type HomebrewDocumentSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
