package handlers

import (
	"inventuagro/internal/domain/catalogs/operation"
	"inventuagro/internal/infrastructure/http/v1/dto"
)

// OperationHTTPHandler is a type alias to shorten signatures.
type OperationHTTPHandler = CatalogHandler[
	*operation.Operation,
	dto.CreateOperationRequest,
	dto.UpdateOperationRequest,
]

// NewOperationHandler wires the generic catalog handler for operations.
func NewOperationHandler(
	base *BaseHandler,
	service *operation.Service,
) *OperationHTTPHandler {

	config := CatalogHandlerConfig[
		*operation.Operation,
		dto.CreateOperationRequest,
		dto.UpdateOperationRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "operation",

		MapCreateDTO: func(req dto.CreateOperationRequest) *operation.Operation {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateOperationRequest, existing *operation.Operation) *operation.Operation {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *operation.Operation) any {
			return dto.FromOperation(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
