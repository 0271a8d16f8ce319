package handlers

import (
	"github.com/jmoiron/sqlx"

	"craftpress/internal/config"
	"craftpress/internal/preview"
	"craftpress/internal/repos"
	"craftpress/internal/services"
)

type Deps struct {
	ProductHandler *ProductHandler
	PreviewHandler *PreviewHandler
	DesignHandler  *DesignHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	tplRepo := repos.NewTemplateRepo(db)
	designRepo := repos.NewDesignRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo, tplRepo)
	designSvc := services.NewDesignService(designRepo, catalogSvc)
	renderer := preview.NewRenderer(preview.NewLoader(cfg.PublicOrigin))

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		PreviewHandler: &PreviewHandler{Catalog: catalogSvc, Renderer: renderer},
		DesignHandler:  &DesignHandler{Designs: designSvc},
	}
}
