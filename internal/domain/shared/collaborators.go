package shared

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mockshared -source=collaborators.go

// World answers topology questions about where the player stands
type World interface {
	IsOutdoorsAndDaytime() bool
}

// CommandQueue is the game's command layer: repeated commands and queued input
type CommandQueue interface {
	CancelRepeat()
	Flush()
}

// LightSource is the wielded light, if any
type LightSource interface {
	Fuel() int
	SetFuel(turns int)
	HasFlag(flag ObjectFlag) bool
}
