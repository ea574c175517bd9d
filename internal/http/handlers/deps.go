package handlers

import (
	"github.com/devheloisa/Cadastro-Produtos/internal/services"
)

type Deps struct {
	PageHandler    *PageHandler
	ProductHandler *ProductHandler
	ReportHandler  *ReportHandler
}

func NewDeps(catalog *services.CatalogService) *Deps {
	return &Deps{
		PageHandler:    &PageHandler{Catalog: catalog},
		ProductHandler: &ProductHandler{Catalog: catalog},
		ReportHandler:  &ReportHandler{Catalog: catalog},
	}
}
