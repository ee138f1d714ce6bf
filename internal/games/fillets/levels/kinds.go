package levels

import (
	"github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
	"github.com/vovakirdan/tui-fillets/internal/registry"
)

func init() {
	registry.Register(core.KindFish, "Fish", core.NewFishRules)
	registry.Register(core.KindItem, "Item", core.NewItemRules)
	registry.Register(core.KindWall, "Wall", core.NewWallRules)
}
