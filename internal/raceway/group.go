package raceway

import (
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

// group is the member list and shared ambient temperature of a container.
type group struct {
	mu         sync.RWMutex
	members    []Conduitable
	ambientF   int
	ambientC   int
	ambientSet bool
}

// join moves m into g. A container that already has members, or whose
// temperature was set explicitly, imposes its temperature on m; otherwise it
// adopts m's.
func (g *group) join(m Conduitable, home membership) {
	b := m.core()
	if b.home == home {
		return
	}
	leave(m)

	if len(g.members) > 0 || g.ambientSet {
		if b.ambientF != g.ambientF {
			log.Debug().
				Str("component", "raceway").
				Int("member_ambient_f", b.ambientF).
				Int("container_ambient_f", g.ambientF).
				Msg("joining member takes container ambient temperature")
		}
		m.applyAmbient(g.ambientF, g.ambientC)
	} else {
		g.ambientF, g.ambientC = b.ambientF, b.ambientC
	}

	g.members = append(g.members, m)
	b.home = home
}

// leave removes m from whichever container holds it.
func leave(m Conduitable) {
	b := m.core()
	switch {
	case b.home.conduit != nil:
		b.home.conduit.remove(m)
	case b.home.bundle != nil:
		b.home.bundle.remove(m)
	}
	b.home = membership{}
}

func (g *group) rlock() func() {
	membershipMu.RLock()
	g.mu.RLock()
	return func() {
		g.mu.RUnlock()
		membershipMu.RUnlock()
	}
}

func (g *group) lock() func() {
	membershipMu.RLock()
	g.mu.Lock()
	return func() {
		g.mu.Unlock()
		membershipMu.RUnlock()
	}
}

func (g *group) remove(m Conduitable) {
	if i := slices.Index(g.members, m); i >= 0 {
		g.members = slices.Delete(g.members, i, i+1)
	}
}

func (g *group) contains(m Conduitable) bool {
	return slices.Contains(g.members, m)
}

func (g *group) setAmbient(f, c int) {
	g.ambientF, g.ambientC, g.ambientSet = f, c, true
	for _, m := range g.members {
		m.applyAmbient(f, c)
	}
}

func (g *group) snapshot() []Conduitable {
	return slices.Clone(g.members)
}

func (g *group) currentCarrying() int {
	n := 0
	for _, m := range g.members {
		n += m.currentCarrying()
	}
	return n
}
