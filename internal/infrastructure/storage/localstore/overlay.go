package localstore

import (
	"context"
	"strings"
	"time"

	"inventuagro/internal/core/apperror"
	"inventuagro/internal/core/entity"
	"inventuagro/internal/core/id"
	"inventuagro/internal/domain"
	"inventuagro/internal/domain/catalogs/client"
	"inventuagro/internal/domain/catalogs/material"
	"inventuagro/internal/domain/catalogs/operation"
	"inventuagro/internal/domain/catalogs/product"
	"inventuagro/internal/domain/config"
	"inventuagro/internal/domain/costing"
	"inventuagro/internal/domain/documents/quotation"
)

// catalogOverlay reconciles catalog reads with the local snapshot: remote
// rows first, local rows overwrite on id collision, rows unique to either
// side are kept. Writes pass through to the remote repository untouched.
// A missing snapshot file reads as empty, so an unused local store never
// changes what the remote returns.
type catalogOverlay[T entity.Validatable] struct {
	domain.CatalogRepository[T]

	local  func(context.Context) ([]T, error)
	merged func(context.Context, []T) ([]T, error)
	key    func(T) id.ID
	marked func(T) bool
}

func (o *catalogOverlay[T]) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[T], error) {
	res, err := o.CatalogRepository.List(ctx, f)
	if err != nil {
		return res, err
	}

	merged, err := o.merged(ctx, res.Items)
	if err != nil {
		return res, err
	}
	if !f.IncludeDeleted {
		live := make([]T, 0, len(merged))
		for _, item := range merged {
			if !o.marked(item) {
				live = append(live, item)
			}
		}
		merged = live
	}
	res.TotalCount += int64(len(merged) - len(res.Items))
	res.Items = merged
	return res, nil
}

func (o *catalogOverlay[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	if local, err := o.local(ctx); err == nil {
		for _, item := range local {
			if o.key(item) == entityID {
				return item, nil
			}
		}
	}
	return o.CatalogRepository.GetByID(ctx, entityID)
}

// MaterialOverlay implements material.Repository with local-wins reads.
type MaterialOverlay struct {
	catalogOverlay[*material.Material]
	remote material.Repository
	store  *Store
}

// OverlayMaterials wraps remote so material reads apply the merge policy.
func (s *Store) OverlayMaterials(remote material.Repository) *MaterialOverlay {
	return &MaterialOverlay{
		catalogOverlay: catalogOverlay[*material.Material]{
			CatalogRepository: remote,
			local:             s.Materials,
			merged:            s.MergedMaterials,
			key:               func(m *material.Material) id.ID { return m.ID },
			marked:            func(m *material.Material) bool { return m.DeletionMark },
		},
		remote: remote,
		store:  s,
	}
}

func (o *MaterialOverlay) FindByName(ctx context.Context, name string) (*material.Material, error) {
	if local, err := o.store.Materials(ctx); err == nil {
		for _, m := range local {
			if m.Name == name && !m.DeletionMark {
				return m, nil
			}
		}
	}
	return o.remote.FindByName(ctx, name)
}

// OperationOverlay implements operation.Repository with local-wins reads.
type OperationOverlay struct {
	catalogOverlay[*operation.Operation]
	remote operation.Repository
	store  *Store
}

// OverlayOperations wraps remote so operation reads apply the merge policy.
func (s *Store) OverlayOperations(remote operation.Repository) *OperationOverlay {
	return &OperationOverlay{
		catalogOverlay: catalogOverlay[*operation.Operation]{
			CatalogRepository: remote,
			local:             s.Operations,
			merged:            s.MergedOperations,
			key:               func(o *operation.Operation) id.ID { return o.ID },
			marked:            func(o *operation.Operation) bool { return o.DeletionMark },
		},
		remote: remote,
		store:  s,
	}
}

func (o *OperationOverlay) RefMap(ctx context.Context) (map[id.ID]costing.OperationRef, error) {
	refs, err := o.remote.RefMap(ctx)
	if err != nil {
		return nil, err
	}
	if local, lErr := o.store.Operations(ctx); lErr == nil {
		for _, op := range local {
			if !op.DeletionMark {
				refs[op.ID] = op.Ref()
			}
		}
	}
	return refs, nil
}

// ClientOverlay implements client.Repository with local-wins reads.
type ClientOverlay struct {
	catalogOverlay[*client.Client]
}

// OverlayClients wraps remote so client reads apply the merge policy.
func (s *Store) OverlayClients(remote client.Repository) *ClientOverlay {
	return &ClientOverlay{
		catalogOverlay: catalogOverlay[*client.Client]{
			CatalogRepository: remote,
			local:             s.Clients,
			merged:            s.MergedClients,
			key:               func(c *client.Client) id.ID { return c.ID },
			marked:            func(c *client.Client) bool { return c.DeletionMark },
		},
	}
}

// ProductOverlay implements product.Repository with local-wins reads.
type ProductOverlay struct {
	catalogOverlay[*product.Product]
	remote product.Repository
	store  *Store
}

// OverlayProducts wraps remote so product reads apply the merge policy.
func (s *Store) OverlayProducts(remote product.Repository) *ProductOverlay {
	return &ProductOverlay{
		catalogOverlay: catalogOverlay[*product.Product]{
			CatalogRepository: remote,
			local:             s.Products,
			merged:            s.MergedProducts,
			key:               func(p *product.Product) id.ID { return p.ID },
			marked:            func(p *product.Product) bool { return p.DeletionMark },
		},
		remote: remote,
		store:  s,
	}
}

func (o *ProductOverlay) FindByReference(ctx context.Context, reference string) (*product.Product, error) {
	if local, err := o.store.Products(ctx); err == nil {
		for _, p := range local {
			if p.Reference == reference && !p.DeletionMark {
				return p, nil
			}
		}
	}
	return o.remote.FindByReference(ctx, reference)
}

// QuotationRemote is the remote quotation store surface the overlay
// wraps: the repository contract plus the report window read.
type QuotationRemote interface {
	quotation.Repository
	Between(ctx context.Context, from, to time.Time) ([]*quotation.Quotation, error)
}

// QuotationOverlay implements quotation.Repository plus the report read
// path with local-wins reads.
type QuotationOverlay struct {
	QuotationRemote
	store *Store
}

// OverlayQuotations wraps remote so quotation reads apply the merge policy.
func (s *Store) OverlayQuotations(remote QuotationRemote) *QuotationOverlay {
	return &QuotationOverlay{QuotationRemote: remote, store: s}
}

func (o *QuotationOverlay) GetByID(ctx context.Context, docID id.ID) (*quotation.Quotation, error) {
	if local, err := o.store.Quotations(ctx); err == nil {
		for _, q := range local {
			if q.ID == docID {
				return q, nil
			}
		}
	}
	return o.QuotationRemote.GetByID(ctx, docID)
}

func (o *QuotationOverlay) GetByNumber(ctx context.Context, number string) (*quotation.Quotation, error) {
	if local, err := o.store.Quotations(ctx); err == nil {
		for _, q := range local {
			if q.Number == number && !q.DeletionMark {
				return q, nil
			}
		}
	}
	return o.QuotationRemote.GetByNumber(ctx, number)
}

func (o *QuotationOverlay) List(ctx context.Context, f quotation.ListFilter) (domain.ListResult[*quotation.Quotation], error) {
	res, err := o.QuotationRemote.List(ctx, f)
	if err != nil {
		return res, err
	}

	merged, err := o.store.MergedQuotations(ctx, res.Items)
	if err != nil {
		return res, err
	}
	if !f.IncludeDeleted {
		live := make([]*quotation.Quotation, 0, len(merged))
		for _, q := range merged {
			if !q.DeletionMark {
				live = append(live, q)
			}
		}
		merged = live
	}
	res.TotalCount += int64(len(merged) - len(res.Items))
	res.Items = merged
	return res, nil
}

// NumbersWithPrefix returns the union of both stores so the sequencer
// never reissues a number that exists only locally.
func (o *QuotationOverlay) NumbersWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	numbers, err := o.QuotationRemote.NumbersWithPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(numbers))
	for _, n := range numbers {
		seen[n] = true
	}
	if local, lErr := o.store.Quotations(ctx); lErr == nil {
		for _, q := range local {
			if strings.HasPrefix(q.Number, prefix) && !seen[q.Number] {
				seen[q.Number] = true
				numbers = append(numbers, q.Number)
			}
		}
	}
	return numbers, nil
}

func (o *QuotationOverlay) Between(ctx context.Context, from, to time.Time) ([]*quotation.Quotation, error) {
	remote, err := o.QuotationRemote.Between(ctx, from, to)
	if err != nil {
		return nil, err
	}

	merged, err := o.store.MergedQuotations(ctx, remote)
	if err != nil {
		return nil, err
	}
	// Local overrides can move a row out of the window; refilter after
	// merging.
	inWindow := make([]*quotation.Quotation, 0, len(merged))
	for _, q := range merged {
		if !q.DeletionMark && !q.Date.Before(from) && q.Date.Before(to) {
			inWindow = append(inWindow, q)
		}
	}
	return inWindow, nil
}

// ConfigOverlay implements config.Repository, merging the aggregate per
// sub-collection on read.
type ConfigOverlay struct {
	remote config.Repository
	store  *Store
}

// OverlayConfiguration wraps remote so configuration reads apply the merge
// policy to every sub-collection.
func (s *Store) OverlayConfiguration(remote config.Repository) *ConfigOverlay {
	return &ConfigOverlay{remote: remote, store: s}
}

func (o *ConfigOverlay) Get(ctx context.Context) (*config.Configuration, error) {
	stored, err := o.remote.Get(ctx)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}

	merged, mErr := o.store.MergedConfiguration(ctx, stored)
	if mErr != nil {
		return nil, mErr
	}
	if merged == nil {
		// Neither store has a configuration yet.
		return nil, err
	}
	return merged, nil
}

func (o *ConfigOverlay) Save(ctx context.Context, cfg *config.Configuration) error {
	return o.remote.Save(ctx, cfg)
}
