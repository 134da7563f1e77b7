package vault

import (
	"errors"
)

var (
	ErrInvalidFlowLevel   = errors.New("invalid flow level")
	ErrInvalidSymptomType = errors.New("invalid symptom type")
)
