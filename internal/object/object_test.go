package object

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tomz197/skyfall/internal/loop/config"
	"pgregory.net/rapid"
)

// fixedRand returns the same values on every call.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(int) int     { return r.n }

func TestTimer_Advance(t *testing.T) {
	var tm Timer

	if tm.Advance(0.25, 0.5) {
		t.Fatal("fired before reaching interval")
	}
	if tm.Advance(0.25, 0.5) {
		t.Fatal("fired at exactly the interval, want strictly greater")
	}
	if !tm.Advance(0.125, 0.5) {
		t.Fatal("did not fire past the interval")
	}
	if got, want := tm.Elapsed, 0.125; got != want {
		t.Errorf("Elapsed = %v, want remainder %v", got, want)
	}
}

func TestTimer_AdvanceFiresOncePerCall(t *testing.T) {
	var tm Timer

	// A long frame covers three intervals but only one firing happens.
	if !tm.Advance(0.5, 0.15) {
		t.Fatal("expected firing")
	}
	if got, want := tm.Elapsed, 0.35; math.Abs(got-want) > 1e-9 {
		t.Errorf("Elapsed = %v, want %v", got, want)
	}
	// The carried remainder fires again on the next call even with no new time.
	if !tm.Advance(0, 0.15) {
		t.Error("carried remainder did not fire")
	}
}

func TestTimer_Cooldown(t *testing.T) {
	var tm Timer
	tm.Add(0.6)
	if tm.Ready(config.BulletInterval) {
		t.Fatal("ready too early")
	}
	tm.Add(0.6)
	if !tm.Ready(config.BulletInterval) {
		t.Fatal("not ready after interval")
	}
	tm.Reset()
	if tm.Elapsed != 0 {
		t.Errorf("Elapsed = %v after Reset, want 0", tm.Elapsed)
	}
}

func TestSpawner_Meteor(t *testing.T) {
	tests := []struct {
		name  string
		f     float64
		wantX float64
	}{
		{"left edge", 0, 0},
		{"rounds down", 0.05, 0},
		{"rounds up", 0.06, 1},
		{"middle", 0.5, 5},
		{"right edge", 0.999, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpawner(fixedRand{f: tt.f}, config.WorldWidth, config.WorldHeight)
			m := s.Meteor()
			if m.X != tt.wantX {
				t.Errorf("X = %v, want %v", m.X, tt.wantX)
			}
			if m.Y != config.WorldHeight {
				t.Errorf("Y = %v, want %v", m.Y, config.WorldHeight)
			}
			if m.W != 1 || m.H != 1 {
				t.Errorf("size = %vx%v, want 1x1", m.W, m.H)
			}
		})
	}
}

func TestSpawner_WaveSize(t *testing.T) {
	for n := 0; n < 6; n++ {
		s := NewSpawner(fixedRand{n: n}, config.WorldWidth, config.WorldHeight)
		if got, want := s.WaveSize(), n+1; got != want {
			t.Errorf("WaveSize() with IntN=%d = %d, want %d", n, got, want)
		}
	}
}

func TestSpawner_WaveBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		s := NewSpawner(rand.New(rand.NewPCG(seed, seed)), config.WorldWidth, config.WorldHeight)

		wave := s.Wave(nil)
		if len(wave) < config.MeteorMinWave || len(wave) > config.MeteorMaxWave {
			t.Fatalf("wave of %d meteors", len(wave))
		}
		for _, m := range wave {
			if m.X < 0 || m.X > config.WorldWidth-m.W || m.X != math.Trunc(m.X) {
				t.Fatalf("meteor x = %v outside whole columns of the world", m.X)
			}
		}
	})
}

func TestSpawner_Bullet(t *testing.T) {
	s := NewSpawner(fixedRand{}, config.WorldWidth, config.WorldHeight)
	p := NewPlayer(3, 0)

	b := s.Bullet(p)
	if b.X != 3.25 || b.Y != 0 {
		t.Errorf("bullet at (%v, %v), want (3.25, 0)", b.X, b.Y)
	}
	if b.W != 0.5 || b.H != 1 {
		t.Errorf("bullet size = %vx%v, want 0.5x1", b.W, b.H)
	}
}

func TestBullet_Update(t *testing.T) {
	b := NewBullet(0, 0)
	b.Update(0.5)
	if b.Y != 5 {
		t.Errorf("Y = %v, want 5", b.Y)
	}
	if b.Above(config.WorldHeight) {
		t.Error("bullet at 5 reported above the world")
	}
	b.Update(0.6)
	if !b.Above(config.WorldHeight) {
		t.Error("bullet at 11 not reported above the world")
	}
}

func TestMeteor_Fall(t *testing.T) {
	m := NewMeteor(2, config.WorldHeight)
	for i := 0; i < 20; i++ {
		m.Fall()
	}
	if m.Y != -10 {
		t.Fatalf("Y = %v, want -10", m.Y)
	}
	if m.Below(-config.WorldHeight) {
		t.Error("meteor exactly at the floor reported below it")
	}
	m.Fall()
	if !m.Below(-config.WorldHeight) {
		t.Error("meteor under the floor not reported below it")
	}
}

func TestPlayer_Move(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		dx    float64
		want  float64
	}{
		{"right", 4, 1, 5},
		{"left", 4, -1, 3},
		{"left wall", 0, -1, 0},
		{"right wall", 9, 1, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.start, 0)
			p.Move(tt.dx, config.WorldWidth)
			if p.X != tt.want {
				t.Errorf("X = %v, want %v", p.X, tt.want)
			}
		})
	}
}

func TestCompact(t *testing.T) {
	meteors := []*Meteor{NewMeteor(0, 0), NewMeteor(1, 0), NewMeteor(2, 0), NewMeteor(3, 0)}
	meteors[1].MarkDestroyed()
	meteors[3].MarkDestroyed()
	backing := meteors

	got := Compact(meteors)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].X != 0 || got[1].X != 2 {
		t.Errorf("kept x = %v, %v; want 0, 2", got[0].X, got[1].X)
	}
	if backing[2] != nil || backing[3] != nil {
		t.Error("stale references left in the backing array")
	}
}
