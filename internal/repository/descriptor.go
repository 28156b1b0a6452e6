package repository

// ForeignKey names a parent reference an entity stores. The referenced parent
// must exist and be active before any write that sets the field.
type ForeignKey struct {
	// Field is the document field holding the parent's 24-hex id.
	Field string
	// Collection holds the parent documents.
	Collection string
	// Message is the NotFound message when the parent is absent or inactive.
	Message string
}

// Expansion describes a read-only embed resolved from a stored id when a
// list/get asks for related records. A dangling or inactive reference is
// simply not embedded.
type Expansion struct {
	// Field is the document field holding the referenced id (or id list).
	Field string
	// Collection holds the referenced documents.
	Collection string
	// Key is the name the embedded document is attached under.
	Key string
	// Many marks Field as holding a list of ids.
	Many bool
	// Hidden fields are stripped from the embedded document.
	Hidden []string
	// Nested expansions applied to the embedded document.
	Nested []Expansion
}

// Descriptor is the per-entity table driving the generic repository and the
// generic CRUD handlers: one row here replaces a hand-written service class.
type Descriptor struct {
	// Collection name in the store.
	Collection string
	// Key and KeyPlural name the entity in response envelopes ("branch",
	// "branches").
	Key       string
	KeyPlural string
	// Name and NamePlural are the human-readable nouns used in messages
	// ("Branch found", "Branches found").
	Name       string
	NamePlural string

	ForeignKeys []ForeignKey
	Expansions  []Expansion
	// Hidden fields are stripped from every read (a user's password hash).
	Hidden []string
}
