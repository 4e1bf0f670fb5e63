package handlers

import (
	"inventuagro/internal/domain/catalogs/material"
	"inventuagro/internal/infrastructure/http/v1/dto"
)

// MaterialHTTPHandler is a type alias to shorten signatures.
type MaterialHTTPHandler = CatalogHandler[
	*material.Material,
	dto.CreateMaterialRequest,
	dto.UpdateMaterialRequest,
]

// NewMaterialHandler wires the generic catalog handler for materials.
func NewMaterialHandler(
	base *BaseHandler,
	service *material.Service,
) *MaterialHTTPHandler {

	config := CatalogHandlerConfig[
		*material.Material,
		dto.CreateMaterialRequest,
		dto.UpdateMaterialRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "material",

		MapCreateDTO: func(req dto.CreateMaterialRequest) *material.Material {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateMaterialRequest, existing *material.Material) *material.Material {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *material.Material) any {
			return dto.FromMaterial(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
