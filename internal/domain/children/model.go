package children

import "time"

// Child es el registro que un padre crea para uno de sus hijos.
type Child struct {
	ID string

	Name string
	DOB  time.Time // fecha civil

	ParentID   string
	ParentName string
	Contact    string

	CreatedAt time.Time
}
