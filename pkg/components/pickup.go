package components

import "github.com/decker502/deepdive/pkg/types"

// PowerupComponent 漂浮道具
type PowerupComponent struct {
	Kind types.PowerupKind
}
