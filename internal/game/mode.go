package game

// Mode is one state of the game. Update and HandleClick return the mode that
// should be active afterwards, which is the receiver itself when nothing changes.
type Mode interface {
	Name() string
	Update(g *Game, in Input) Mode
	Draw(g *Game, s Surface)
	HandleClick(g *Game, x, y float64) Mode
}
