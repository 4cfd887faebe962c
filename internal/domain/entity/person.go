// Package entity contains the core business objects of the project.
package entity

// Person is a stored person record. An ID of zero means the record has not been persisted.
type Person struct {
	ID        int64  `json:"id"`        // Storage-assigned identifier, immutable once persisted.
	FirstName string `json:"firstName"` // Given name.
	LastName  string `json:"lastName"`  // Family name.
}
