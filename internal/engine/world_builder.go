package engine

import (
	"fmt"

	"realm-server/internal/config"
	"realm-server/internal/domain"
	"realm-server/internal/systems"
)

// populateWorld заселяет каждую клетку MobsPerCell мобами случайных шаблонов.
// Номера в id ведутся отдельно для каждого шаблона.
func populateWorld(w *domain.GameWorld, cfg *config.Config, rng systems.Rand) {
	if len(cfg.MobTemplates) == 0 {
		return
	}

	counters := make([]int, len(cfg.MobTemplates))
	for y := 0; y < w.Size; y++ {
		for x := 0; x < w.Size; x++ {
			for i := 0; i < cfg.MobsPerCell; i++ {
				tmplID := rng.Intn(len(cfg.MobTemplates))
				counters[tmplID]++
				id := systems.MobID(cfg.MobTemplates[tmplID].Name, counters[tmplID])
				w.Registry.Insert(systems.NewMob(cfg, tmplID, id, domain.Position{X: x, Y: y}))
			}
		}
	}
	w.Reindex()
}

func playerID(n int) string {
	return fmt.Sprintf("player%d", n)
}
