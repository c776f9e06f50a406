package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/iburimskiy/absorb/internal/config"
)

const eps = 1e-9

func testRules() Rules {
	return Rules{
		PlayerAbsorb:    0.1,
		ObstacleAbsorb:  0.1,
		PlayerPopSize:   75,
		ObstaclePopSize: config.PopSize,
		ThrustSpeed:     0.1,
	}
}

func newTestWorld() *World {
	return NewWorld(Bounds{W: 200, H: 200}, testRules(), rand.New(rand.NewSource(1)))
}

func TestAbsorbConservesRadius(t *testing.T) {
	w := newTestWorld()
	big := w.Add(Circle{X: 50, Y: 50, R: 20, Player: true})
	small := w.Add(Circle{X: 60, Y: 50, R: 10})

	before := big.R + small.R
	w.Absorb(big, small)

	if math.Abs(big.R+small.R-before) > eps {
		t.Fatalf("radius sum changed: before=%f after=%f", before, big.R+small.R)
	}
	if math.Abs(big.R-20.1) > eps || math.Abs(small.R-9.9) > eps {
		t.Fatalf("got big=%f small=%f, want 20.1 and 9.9", big.R, small.R)
	}
}

func TestAbsorbUsesObstacleRateForNonPlayer(t *testing.T) {
	w := newTestWorld()
	w.Rules.ObstacleAbsorb = 0.3
	big := w.Add(Circle{R: 20})
	small := w.Add(Circle{R: 10})

	w.Absorb(big, small)
	if math.Abs(big.R-20.3) > eps {
		t.Fatalf("big.R = %f, want 20.3", big.R)
	}
}

func TestAbsorbDustOverrideForNonPlayer(t *testing.T) {
	w := newTestWorld()
	big := w.Add(Circle{R: 20})
	small := w.Add(Circle{R: 0.1})

	w.Absorb(big, small)
	if math.Abs(big.R-20.2) > eps {
		t.Fatalf("big.R = %f, want 20.2", big.R)
	}
	if len(w.Circles) != 1 || w.Circles[0] != big {
		t.Fatalf("expected depleted circle to be removed, have %d circles", len(w.Circles))
	}
}

func TestAbsorbRemovesDepletedSmall(t *testing.T) {
	w := newTestWorld()
	big := w.Add(Circle{R: 20, Player: true})
	w.Add(Circle{R: 0.05})

	w.Absorb(big, w.Circles[1])
	if len(w.Circles) != 1 {
		t.Fatalf("expected 1 circle, got %d", len(w.Circles))
	}
	var vanished bool
	for _, ev := range w.Events() {
		if ev.Kind == EventVanish {
			vanished = true
		}
	}
	if !vanished {
		t.Fatalf("expected a vanish event")
	}
}

func TestAbsorbSplitsPastThreshold(t *testing.T) {
	w := newTestWorld()
	big := w.Add(Circle{X: 100, Y: 100, R: 74.95, Player: true})
	small := w.Add(Circle{X: 120, Y: 100, R: 10})

	w.Absorb(big, small)

	pre := 74.95 + 0.1
	if math.Abs(big.R-pre/config.SplitDivisor) > eps {
		t.Fatalf("parent R = %f, want %f", big.R, pre/config.SplitDivisor)
	}
	if len(w.Circles) != 6 {
		t.Fatalf("expected 2 + 4 circles, got %d", len(w.Circles))
	}
	children := w.Circles[2:]
	offsets := map[[2]float64]bool{}
	for _, c := range children {
		if c.R != big.R {
			t.Fatalf("child R = %f, want %f", c.R, big.R)
		}
		if !c.Player {
			t.Fatalf("child should inherit player ownership")
		}
		dx, dy := c.X-big.X, c.Y-big.Y
		offsets[[2]float64{dx, dy}] = true
		if c.VX*dx < 0 || c.VY*dy < 0 {
			t.Fatalf("child velocity (%f, %f) not divergent from offset (%f, %f)", c.VX, c.VY, dx, dy)
		}
	}
	if len(offsets) != 4 {
		t.Fatalf("expected four distinct diagonal offsets, got %v", offsets)
	}
}

func TestAbsorbNoSplitAtThreshold(t *testing.T) {
	w := newTestWorld()
	w.Rules.PlayerPopSize = 80
	w.Rules.PlayerAbsorb = 0.5
	big := w.Add(Circle{R: 79.5, Player: true})
	w.Add(Circle{R: 5})

	w.Absorb(big, w.Circles[1])
	if len(w.Circles) != 2 {
		t.Fatalf("expected no split at exactly the threshold, got %d circles", len(w.Circles))
	}
}

func TestObstacleSplitUsesFixedPopSize(t *testing.T) {
	w := newTestWorld()
	w.Rules.PlayerPopSize = 1000
	big := w.Add(Circle{R: config.PopSize})
	w.Add(Circle{R: 5})

	w.Absorb(big, w.Circles[1])
	if len(w.Circles) != 6 {
		t.Fatalf("expected obstacle to split at PopSize, got %d circles", len(w.Circles))
	}
	for _, c := range w.Circles[2:] {
		if c.Player {
			t.Fatalf("obstacle children must not be player-owned")
		}
	}
}

func TestStepTieFavoursLowerIndex(t *testing.T) {
	w := newTestWorld()
	a := w.Add(Circle{X: 50, Y: 50, R: 10})
	b := w.Add(Circle{X: 55, Y: 50, R: 10})

	w.Step()
	if math.Abs(a.R-10.1) > eps || math.Abs(b.R-9.9) > eps {
		t.Fatalf("got a=%f b=%f, want a=10.1 b=9.9", a.R, b.R)
	}
}

func TestStepLargerAbsorbsSmaller(t *testing.T) {
	w := newTestWorld()
	small := w.Add(Circle{X: 50, Y: 50, R: 5})
	big := w.Add(Circle{X: 55, Y: 50, R: 10, Player: true})

	w.Step()
	if math.Abs(big.R-10.1) > eps || math.Abs(small.R-4.9) > eps {
		t.Fatalf("got big=%f small=%f", big.R, small.R)
	}
}

func TestStepSkipsDecisionsOnDepletedCircles(t *testing.T) {
	w := newTestWorld()
	first := w.Add(Circle{X: 50, Y: 50, R: 10})
	second := w.Add(Circle{X: 70, Y: 50, R: 10})
	w.Add(Circle{X: 60, Y: 50, R: 0.1})

	w.Step()

	if len(w.Circles) != 2 {
		t.Fatalf("expected dust to be eaten, have %d circles", len(w.Circles))
	}
	if math.Abs(first.R-10.2) > eps {
		t.Fatalf("first.R = %f, want 10.2", first.R)
	}
	if second.R != 10 {
		t.Fatalf("second.R = %f, want untouched 10", second.R)
	}
}

func TestThrustPushesAwayFromPointer(t *testing.T) {
	w := newTestWorld()
	c := w.Add(Circle{X: 100, Y: 100, R: 10, Player: true})

	w.Thrust(90, 100)

	if math.Abs(c.VX-0.1) > eps || c.VY != 0 {
		t.Fatalf("velocity = (%f, %f), want (0.1, 0)", c.VX, c.VY)
	}
	if c.R != 9.5 {
		t.Fatalf("R = %f, want 9.5", c.R)
	}
	if len(w.Circles) != 2 {
		t.Fatalf("expected a trail circle, have %d", len(w.Circles))
	}
	trail := w.Circles[1]
	if trail.R != config.TrailRadius || !trail.Player {
		t.Fatalf("unexpected trail %+v", *trail)
	}
	if math.Abs(trail.X-90.5) > eps || trail.Y != 100 {
		t.Fatalf("trail at (%f, %f), want (90.5, 100)", trail.X, trail.Y)
	}
	if trail.VX != -c.VX || trail.VY != -c.VY {
		t.Fatalf("trail velocity should mirror parent")
	}
	ev := w.Events()
	if len(ev) != 1 || ev[0].Kind != EventThrust {
		t.Fatalf("expected one thrust event, got %v", ev)
	}
	if len(w.Events()) != 0 {
		t.Fatalf("Events should drain")
	}
}

func TestThrustSkipsIneligibleCircles(t *testing.T) {
	w := newTestWorld()
	onPointer := w.Add(Circle{X: 100, Y: 100, R: 10, Player: true})
	tiny := w.Add(Circle{X: 20, Y: 20, R: config.MinThrustRadius, Player: true})
	enemy := w.Add(Circle{X: 150, Y: 150, R: 10})

	w.Thrust(100, 100)

	if len(w.Circles) != 3 {
		t.Fatalf("expected no trail circles, have %d", len(w.Circles))
	}
	for _, c := range []*Circle{onPointer, tiny, enemy} {
		if c.VX != 0 || c.VY != 0 {
			t.Fatalf("circle %+v should not have been pushed", *c)
		}
		if math.IsNaN(c.VX) || math.IsNaN(c.VY) {
			t.Fatalf("NaN velocity")
		}
	}
}

func TestHasWon(t *testing.T) {
	w := newTestWorld()
	if w.HasWon() {
		t.Fatalf("empty world must not count as won")
	}
	w.Add(Circle{R: 5, Player: true})
	if !w.HasWon() {
		t.Fatalf("all-player world should be won")
	}
	w.Add(Circle{R: 5})
	if w.HasWon() {
		t.Fatalf("world with an obstacle is not won")
	}
	p, o := w.Counts()
	if p != 1 || o != 1 {
		t.Fatalf("Counts = %d, %d", p, o)
	}
}

func TestStepUntilWon(t *testing.T) {
	w := newTestWorld()
	w.Add(Circle{X: 100, Y: 100, R: 1})
	w.Add(Circle{X: 105, Y: 100, R: 20, Player: true})

	for i := 0; i < 20; i++ {
		w.Step()
		if w.HasWon() {
			return
		}
	}
	t.Fatalf("expected player to clear the obstacle, have %d circles", len(w.Circles))
}
