package catalog

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nmarchetti/shop-admin/internal/store"
)

// Repos bundles the persistence accessors of every catalog resource.
type Repos struct {
	Billboards BillboardRepo
	Categories CategoryRepo
	Colours    ColourRepo
	Sizes      SizeRepo
	Products   ProductRepo
	Orders     OrderRepo
}

func NewPGRepos(db *pgxpool.Pool) Repos {
	return Repos{
		Billboards: NewBillboardPG(db),
		Categories: NewCategoryPG(db),
		Colours:    NewColourPG(db),
		Sizes:      NewSizePG(db),
		Products:   NewProductPG(db),
		Orders:     NewOrderPG(db),
	}
}

// Routes mounts the five scoped resources plus the read-only orders list.
func Routes(rg *gin.RouterGroup, g *store.Guard, r Repos) {
	billboardResource(r.Billboards).mount(rg, g)
	categoryResource(r.Categories).mount(rg, g)
	colourResource(r.Colours).mount(rg, g)
	sizeResource(r.Sizes).mount(rg, g)
	productResource(r.Products).mount(rg, g)
	rg.GET("/:storeId/orders", listOrdersHandler(g, r.Orders))
}
