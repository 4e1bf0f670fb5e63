package product

import (
	"inventuagro/internal/core/id"
	"inventuagro/internal/domain/costing"
)

// Recalculate re-derives weight and unit cost from the product's current
// geometry, material and operation selections.
//
// Saved per-operation quantity values are preserved verbatim even when the
// geometry changed: only the weight and unit-cost fields recompute. The
// asymmetry protects quantities that were adjusted by hand for a specific
// sale. Manual-override flags suppress the corresponding derivation.
func Recalculate(p *Product, mat *costing.MaterialRef, ops map[id.ID]costing.OperationRef) costing.Result {
	in := costing.Input{
		Dimensions: p.Dimensions(),
		Material:   mat,
		Selected:   []costing.SelectedOperation(p.SelectedOperations),
		Operations: ops,
	}
	if p.ManualWeight {
		w := p.WeightKg
		in.ManualWeightKg = &w
	}

	res := costing.Compute(in)

	if !p.ManualWeight {
		p.WeightKg = res.WeightKg
	}
	if !p.ManualPrice {
		p.UnitCost = res.UnitCost
	}

	return res
}

// SelectOperation adds an operation to the product. The initial quantity
// value auto-populates from the current weight for kg operations and from
// the surface area for m2 operations; everything else starts at 1.
// Selecting an already-selected operation is a no-op: the saved value wins.
func SelectOperation(p *Product, ref costing.OperationRef) {
	for _, sel := range p.SelectedOperations {
		if sel.OperationID == ref.ID {
			return
		}
	}

	value := costing.DefaultValue(ref.Unit, p.WeightKg, costing.SurfaceAreaM2(p.Dimensions()))
	p.SelectedOperations = append(p.SelectedOperations, costing.SelectedOperation{
		OperationID: ref.ID,
		Value:       value,
	})
}

// DeselectOperation removes an operation selection by id.
func DeselectOperation(p *Product, opID id.ID) {
	kept := p.SelectedOperations[:0]
	for _, sel := range p.SelectedOperations {
		if sel.OperationID != opID {
			kept = append(kept, sel)
		}
	}
	p.SelectedOperations = kept
}
