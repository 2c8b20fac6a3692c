package dashboard

import "errors"

var (
	// ErrNoTiles is returned for a dashboard without any [[tile]] entries.
	ErrNoTiles = errors.New("dashboard has no tiles")

	// ErrMissingID is returned for a tile without an id.
	ErrMissingID = errors.New("tile has no id")

	// ErrDuplicateID is returned when two tiles share an id.
	ErrDuplicateID = errors.New("duplicate tile id")
)
