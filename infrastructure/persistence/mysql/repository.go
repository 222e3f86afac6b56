package mysql

import (
	"context"
	"errors"
	"slices"

	"catalog/domain/shared"
	"catalog/infrastructure/persistence"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Mapper converts between an entity and its row.
type Mapper[E any, M any] interface {
	ToModel(entity E) *M
	// ToEntity must re-validate the row; invalid data is an error, never a zero entity.
	ToEntity(model *M) (E, error)
}

// Scope narrows a query. It is how filters reach SQL.
type Scope = func(*gorm.DB) *gorm.DB

// RepositoryConfig describes the table behind one entity kind.
type RepositoryConfig[E any, M any, F comparable] struct {
	Kind     string
	IDColumn string
	Mapper   Mapper[E, M]

	// SortableFields are column names Search may order by.
	SortableFields []string
	// DefaultSort applies only when the search names no sort at all.
	DefaultSort    string
	DefaultSortDir shared.SortDirection
	// TieBreakers follow the sort column in ascending order, then IDColumn,
	// so rows with equal keys keep one order across pages.
	TieBreakers    []string

	// FilterScope translates a present filter into a WHERE scope.
	FilterScope func(filter F) Scope
}

// Repository is the GORM implementation of shared.SearchableRepository.
// Transactions attached with persistence.ContextWithTx are used as-is.
type Repository[E shared.Entity, M any, F comparable] struct {
	db  *gorm.DB
	cfg RepositoryConfig[E, M, F]
}

func NewRepository[E shared.Entity, M any, F comparable](db *gorm.DB, cfg RepositoryConfig[E, M, F]) *Repository[E, M, F] {
	return &Repository[E, M, F]{db: db, cfg: cfg}
}

func (r *Repository[E, M, F]) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

// table starts a fresh statement on the entity's table.
func (r *Repository[E, M, F]) table(ctx context.Context) *gorm.DB {
	return r.getDB(ctx).Model(new(M))
}

func (r *Repository[E, M, F]) byID(id shared.ValueObject) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Name: r.cfg.IDColumn}, Value: id.String()})
	}
}

func (r *Repository[E, M, F]) Insert(ctx context.Context, entity E) error {
	return r.getDB(ctx).Create(r.cfg.Mapper.ToModel(entity)).Error
}

// BulkInsert writes every row in one INSERT statement.
func (r *Repository[E, M, F]) BulkInsert(ctx context.Context, entities []E) error {
	if len(entities) == 0 {
		return nil
	}
	models := make([]*M, len(entities))
	for i, e := range entities {
		models[i] = r.cfg.Mapper.ToModel(e)
	}
	return r.getDB(ctx).Create(models).Error
}

// Update checks existence first, then overwrites every column. The two
// statements are not atomic unless the caller supplies a transaction.
func (r *Repository[E, M, F]) Update(ctx context.Context, entity E) error {
	id := entity.EntityID()
	found, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return shared.NewNotFoundError(r.cfg.Kind, id)
	}

	model := r.cfg.Mapper.ToModel(entity)
	return r.getDB(ctx).Model(model).Select("*").Updates(model).Error
}

func (r *Repository[E, M, F]) Delete(ctx context.Context, id shared.ValueObject) error {
	if id == nil {
		return shared.NewNotFoundError(r.cfg.Kind)
	}
	found, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return shared.NewNotFoundError(r.cfg.Kind, id)
	}
	return r.getDB(ctx).Scopes(r.byID(id)).Delete(new(M)).Error
}

func (r *Repository[E, M, F]) exists(ctx context.Context, id shared.ValueObject) (bool, error) {
	var count int64
	if err := r.table(ctx).Scopes(r.byID(id)).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository[E, M, F]) FindByID(ctx context.Context, id shared.ValueObject) (E, bool, error) {
	var zero E
	if id == nil {
		return zero, false, nil
	}

	var model M
	err := r.getDB(ctx).Scopes(r.byID(id)).Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}

	entity, err := r.cfg.Mapper.ToEntity(&model)
	if err != nil {
		return zero, false, err
	}
	return entity, true, nil
}

func (r *Repository[E, M, F]) FindAll(ctx context.Context) ([]E, error) {
	var models []M
	if err := r.getDB(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.toEntities(models)
}

func (r *Repository[E, M, F]) SortableFields() []string {
	return slices.Clone(r.cfg.SortableFields)
}

// Search issues one COUNT and one SELECT with the same WHERE clause. The
// SELECT adds ORDER BY and OFFSET/LIMIT for the requested page.
func (r *Repository[E, M, F]) Search(ctx context.Context, params shared.SearchParams[F]) (shared.SearchResult[E], error) {
	filter := r.filterScope(params)

	var total int64
	if err := r.table(ctx).Scopes(filter).Count(&total).Error; err != nil {
		return shared.SearchResult[E]{}, err
	}

	query := r.table(ctx).Scopes(filter)
	if order, ok := r.orderBy(params.Sort(), params.SortDir()); ok {
		query = query.Order(order)
	}

	var models []M
	if err := query.Offset(params.Offset()).Limit(params.PerPage()).Find(&models).Error; err != nil {
		return shared.SearchResult[E]{}, err
	}

	items, err := r.toEntities(models)
	if err != nil {
		return shared.SearchResult[E]{}, err
	}
	return shared.NewSearchResult(items, int(total), params.Page(), params.PerPage()), nil
}

func (r *Repository[E, M, F]) filterScope(params shared.SearchParams[F]) Scope {
	filter, ok := params.Filter()
	if !ok || r.cfg.FilterScope == nil {
		return noScope
	}
	if scope := r.cfg.FilterScope(filter); scope != nil {
		return scope
	}
	return noScope
}

func noScope(db *gorm.DB) *gorm.DB { return db }

// orderBy returns false when the result must keep storage order: an
// unsupported sort field, or no sort and no default.
func (r *Repository[E, M, F]) orderBy(sort string, dir shared.SortDirection) (clause.OrderBy, bool) {
	if sort == "" {
		if r.cfg.DefaultSort == "" {
			return clause.OrderBy{}, false
		}
		sort, dir = r.cfg.DefaultSort, r.cfg.DefaultSortDir
	}
	if !slices.Contains(r.cfg.SortableFields, sort) {
		return clause.OrderBy{}, false
	}

	columns := []clause.OrderByColumn{{
		Column: clause.Column{Name: sort},
		Desc:   dir == shared.SortDesc,
	}}
	seen := []string{sort}
	for _, name := range append(slices.Clone(r.cfg.TieBreakers), r.cfg.IDColumn) {
		if name == "" || slices.Contains(seen, name) {
			continue
		}
		seen = append(seen, name)
		columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: name}})
	}
	return clause.OrderBy{Columns: columns}, true
}

func (r *Repository[E, M, F]) toEntities(models []M) ([]E, error) {
	out := make([]E, 0, len(models))
	for i := range models {
		entity, err := r.cfg.Mapper.ToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}
