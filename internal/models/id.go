package models

import "github.com/google/uuid"

// NewID returns a new opaque unique identifier for an entity.
func NewID() string {
	return uuid.NewString()
}

// ensureID assigns a generated identifier when none was supplied.
func ensureID(id string) string {
	if id == "" {
		return NewID()
	}
	return id
}
