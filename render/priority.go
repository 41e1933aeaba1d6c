package render

// Priority determines layer order. Lower values render first
type Priority int

const (
	PriorityMap Priority = iota
	PriorityEnemies
	PriorityPlayer
	PriorityOverlay
	PriorityHUD
)
