package dto

import (
	"inventuagro/internal/core/entity"
	"inventuagro/internal/core/types"
	"inventuagro/internal/domain/catalogs/product"
	"inventuagro/internal/domain/costing"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code               string                      `json:"code"`
	Name               string                      `json:"name" binding:"required"`
	Brand              string                      `json:"brand"`
	MachineType        string                      `json:"machineType"`
	Reference          string                      `json:"reference"`
	LengthMM           float64                     `json:"lengthMm"`
	WidthMM            float64                     `json:"widthMm"`
	ThicknessMM        float64                     `json:"thicknessMm"`
	WeightKg           float64                     `json:"weightKg"`
	MaterialName       string                      `json:"materialName"`
	UnitCost           types.Money                 `json:"unitCost"`
	MinLotSize         int                         `json:"minLotSize"`
	ManualWeight       bool                        `json:"manualWeight"`
	ManualPrice        bool                        `json:"manualPrice"`
	SelectedOperations []costing.SelectedOperation `json:"selectedOperations"`
	Attributes         entity.Attributes           `json:"attributes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.NewProduct(r.Code, r.Name)
	p.Brand = r.Brand
	p.MachineType = r.MachineType
	p.Reference = r.Reference
	p.LengthMM = r.LengthMM
	p.WidthMM = r.WidthMM
	p.ThicknessMM = r.ThicknessMM
	p.WeightKg = r.WeightKg
	p.MaterialName = r.MaterialName
	p.UnitCost = r.UnitCost
	p.MinLotSize = r.MinLotSize
	p.ManualWeight = r.ManualWeight
	p.ManualPrice = r.ManualPrice
	p.SelectedOperations = r.SelectedOperations
	p.Attributes = r.Attributes
	return p
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code               string                      `json:"code"`
	Name               string                      `json:"name" binding:"required"`
	Brand              string                      `json:"brand"`
	MachineType        string                      `json:"machineType"`
	Reference          string                      `json:"reference"`
	LengthMM           float64                     `json:"lengthMm"`
	WidthMM            float64                     `json:"widthMm"`
	ThicknessMM        float64                     `json:"thicknessMm"`
	WeightKg           float64                     `json:"weightKg"`
	MaterialName       string                      `json:"materialName"`
	UnitCost           types.Money                 `json:"unitCost"`
	MinLotSize         int                         `json:"minLotSize"`
	ManualWeight       bool                        `json:"manualWeight"`
	ManualPrice        bool                        `json:"manualPrice"`
	SelectedOperations []costing.SelectedOperation `json:"selectedOperations"`
	Attributes         entity.Attributes           `json:"attributes"`
	Version            int                         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity. Stored operation values
// come through verbatim; defaults apply only to newly selected entries.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.Brand = r.Brand
	p.MachineType = r.MachineType
	p.Reference = r.Reference
	p.LengthMM = r.LengthMM
	p.WidthMM = r.WidthMM
	p.ThicknessMM = r.ThicknessMM
	p.WeightKg = r.WeightKg
	p.MaterialName = r.MaterialName
	p.UnitCost = r.UnitCost
	p.MinLotSize = r.MinLotSize
	p.ManualWeight = r.ManualWeight
	p.ManualPrice = r.ManualPrice
	p.SelectedOperations = r.SelectedOperations
	p.Attributes = r.Attributes
	p.Version = r.Version
}

// RecordSaleRequest is the request body for recording a product sale.
type RecordSaleRequest struct {
	Date      *string     `json:"date"`
	Client    string      `json:"client" binding:"required"`
	Quantity  int         `json:"quantity" binding:"required,min=1"`
	UnitPrice types.Money `json:"unitPrice"`
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	CatalogResponse
	Brand              string                      `json:"brand,omitempty"`
	MachineType        string                      `json:"machineType,omitempty"`
	Reference          string                      `json:"reference,omitempty"`
	LengthMM           float64                     `json:"lengthMm"`
	WidthMM            float64                     `json:"widthMm"`
	ThicknessMM        float64                     `json:"thicknessMm"`
	WeightKg           float64                     `json:"weightKg"`
	MaterialName       string                      `json:"materialName,omitempty"`
	UnitCost           types.Money                 `json:"unitCost"`
	MinLotSize         int                         `json:"minLotSize,omitempty"`
	ManualWeight       bool                        `json:"manualWeight"`
	ManualPrice        bool                        `json:"manualPrice"`
	SelectedOperations []costing.SelectedOperation `json:"selectedOperations"`
	SalesHistory       []product.SaleRecord        `json:"salesHistory,omitempty"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		CatalogResponse:    FromCatalog(p.Catalog),
		Brand:              p.Brand,
		MachineType:        p.MachineType,
		Reference:          p.Reference,
		LengthMM:           p.LengthMM,
		WidthMM:            p.WidthMM,
		ThicknessMM:        p.ThicknessMM,
		WeightKg:           p.WeightKg,
		MaterialName:       p.MaterialName,
		UnitCost:           p.UnitCost,
		MinLotSize:         p.MinLotSize,
		ManualWeight:       p.ManualWeight,
		ManualPrice:        p.ManualPrice,
		SelectedOperations: p.SelectedOperations,
		SalesHistory:       p.SalesHistory,
	}
}

// DeriveCostResponse is the cost breakdown returned by the preview endpoint.
type DeriveCostResponse struct {
	WeightKg        float64                 `json:"weightKg"`
	SurfaceAreaM2   float64                 `json:"surfaceAreaM2"`
	MaterialCost    types.Money             `json:"materialCost"`
	OperationsTotal types.Money             `json:"operationsTotal"`
	Lines           []costing.OperationLine `json:"lines"`
	UnitCost        types.Money             `json:"unitCost"`
}

// FromCostingResult creates response DTO from a derivation result.
func FromCostingResult(res costing.Result) DeriveCostResponse {
	return DeriveCostResponse{
		WeightKg:        res.WeightKg,
		SurfaceAreaM2:   res.SurfaceAreaM2,
		MaterialCost:    res.MaterialCost,
		OperationsTotal: res.OperationsTotal,
		Lines:           res.Lines,
		UnitCost:        res.UnitCost,
	}
}
