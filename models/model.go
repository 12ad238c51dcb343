package models

import (
	"encoding/json"
	"time"
)

// Model is the synced entity: a reusable text model (prompt template)
// owned by the user or shared into their view by another owner.
//
// The sync engine only interprets ID, UpdatedAt, and the ownership
// fields. Fields is an opaque payload owned by the UI layer and is
// carried through pull/push without inspection.
type Model struct {
	// ID is the client-assigned unique identifier of the model.
	ID string `json:"id"`

	// Name is the display name of the model. Shown in UI lists;
	// opaque to the engine.
	Name string `json:"name,omitempty"`

	// Fields holds the model's content as raw JSON. The engine never
	// decodes it.
	Fields json.RawMessage `json:"fields,omitempty"`

	// UpdatedAt is the last-modified timestamp used for incremental
	// sync filtering and delete payload minimization.
	UpdatedAt time.Time `json:"updated_at"`

	// OwnerID identifies the account that owns the model.
	OwnerID string `json:"owner_id,omitempty"`

	// Shared is true when the model was shared into the user's view
	// by another owner. Shared models never count against the local
	// owned tally and are removed when their library is revoked.
	Shared bool `json:"shared,omitempty"`

	// LibraryID is the shared library the model arrived through.
	// Empty for models the user owns.
	LibraryID string `json:"library_id,omitempty"`
}

// TableName returns the name of the database table
// associated with the Model type.
func (m Model) TableName() string {
	return "models"
}

// SharedLibrary identifies a collection of models made visible to the
// user by another owner. The pull engine uses the active-library list
// to drop local shared models whose owner revoked sharing.
type SharedLibrary struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	OwnerEmail string `json:"owner_email,omitempty"`
}
