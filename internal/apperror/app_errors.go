package apperror

import "errors"

var (
	ErrInvalidDimensions = errors.New("field dimensions must be positive")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrNoField           = errors.New("no field is attached")
	ErrStyleIncomplete   = errors.New("style is incomplete")
	ErrInvalidStroke     = errors.New("stroke width must be positive")
	ErrInvalidColor      = errors.New("invalid color")
	ErrInvalidFieldRange = errors.New("invalid field size range")
	ErrGUIUnavailable    = errors.New("gui support requires building with the 'ebiten' tag")
)
