/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/go-openapi/strfmt"
)

// RegistryEntry is the persisted shape of one address/id pair.
// Address and ID are stored in their canonical string forms: the
// 36-character address and the decimal id. Both are write-once; a
// persisted entry is never updated or deleted.
type RegistryEntry struct {
	Address   string           `json:"address" dynamodbav:"Address"`
	ID        string           `json:"id" dynamodbav:"ID"`
	CreatedAt *strfmt.DateTime `json:"createdAt,omitempty" dynamodbav:"CreatedAt,omitempty"`
}

// CounterRecord is the persisted shape of the registry counter.
// Value is the canonical decimal representation of the next
// unassigned id.
type CounterRecord struct {
	Value     string           `json:"value" dynamodbav:"Value"`
	UpdatedAt *strfmt.DateTime `json:"updatedAt,omitempty" dynamodbav:"UpdatedAt,omitempty"`
}
