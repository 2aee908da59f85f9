package common

const (
	// BaseWidth and BaseHeight are the logical screen size. The whole screen
	// is the play container.
	BaseWidth  = 1920
	BaseHeight = 1080

	TPS = 60
)
