package reef

import (
	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
)

// PlayerHitbox returns the player's box shrunk by the player inset.
// The diving box is used while the player is Falling.
func PlayerHitbox(p Player, cfg config.PlayerConfig) core.Box {
	return p.Box(cfg).Inset(cfg.Hitbox.X, cfg.Hitbox.Y)
}

// ObstacleHitbox returns the obstacle's box shrunk by its kind's inset.
func ObstacleHitbox(o Obstacle, kinds map[string]config.KindConfig) core.Box {
	in := kinds[o.Kind.String()].Hitbox
	return o.Box().Inset(in.X, in.Y)
}

// IsColliding reports strict overlap. Touching edges do not collide.
func IsColliding(a, b core.Box) bool {
	return a.Intersects(b)
}

// FirstCollision returns the index of the first obstacle, in spawn order,
// whose hitbox overlaps the player's. Scanning stops at the first hit.
func FirstCollision(p Player, obstacles []Obstacle, cfg config.ReefConfig) (int, bool) {
	pb := PlayerHitbox(p, cfg.Player)
	for i, o := range obstacles {
		if IsColliding(pb, ObstacleHitbox(o, cfg.Obstacles.Kinds)) {
			return i, true
		}
	}
	return -1, false
}
