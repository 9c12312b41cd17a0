package world

import "github.com/rotisserie/eris"

var (
	ErrEntityNotFound    = eris.New("entity does not exist")
	ErrEntityExists      = eris.New("entity already exists")
	ErrComponentNotFound = eris.New("component not on entity")
	ErrInvalidEntityID   = eris.New("entity id must not be empty")
)
