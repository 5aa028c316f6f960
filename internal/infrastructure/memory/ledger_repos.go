package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

type productRepo struct{ v view }

func (r productRepo) Create(ctx context.Context, p *entity.Product) error {
	return r.v.do(ctx, "products.create", func(st *state) error {
		for _, existing := range st.products.rows {
			if existing.Name == p.Name {
				return fmt.Errorf("%w: producto %q", domain.ErrDuplicate, p.Name)
			}
		}
		st.products.put(p.ID, *p)
		return nil
	})
}

func (r productRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.v.do(ctx, "products.get", func(st *state) error {
		if p, ok := st.products.get(id); ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r productRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	var out *entity.Product
	err := r.v.do(ctx, "products.get", func(st *state) error {
		for _, p := range st.products.rows {
			if p.Name == name {
				p := p
				out = &p
				break
			}
		}
		return nil
	})
	return out, err
}

func (r productRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r productRepo) Update(ctx context.Context, p *entity.Product) error {
	return r.v.do(ctx, "products.update", func(st *state) error {
		if _, ok := st.products.get(p.ID); !ok {
			return domain.ErrNotFound
		}
		for id, existing := range st.products.rows {
			if id != p.ID && existing.Name == p.Name {
				return fmt.Errorf("%w: producto %q", domain.ErrDuplicate, p.Name)
			}
		}
		st.products.put(p.ID, *p)
		return nil
	})
}

func (r productRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.v.do(ctx, "products.list", func(st *state) error {
		for _, p := range page(st.products.all(), limit, offset) {
			p := p
			out = append(out, &p)
		}
		return nil
	})
	return out, err
}

func (r productRepo) Delete(ctx context.Context, id string) error {
	return r.v.do(ctx, "products.delete", func(st *state) error {
		if _, ok := st.products.get(id); !ok {
			return domain.ErrNotFound
		}
		for _, pos := range st.positions.rows {
			if pos.ProductID == id {
				return fmt.Errorf("%w: el producto tiene stock registrado", domain.ErrConflict)
			}
		}
		for _, rec := range st.stockOuts.rows {
			if rec.ProductID == id {
				return fmt.Errorf("%w: el producto tiene salidas registradas", domain.ErrConflict)
			}
		}
		for _, m := range st.movements {
			if m.ProductID == id {
				return fmt.Errorf("%w: el producto tiene movimientos registrados", domain.ErrConflict)
			}
		}
		st.products.del(id)
		return nil
	})
}

type positionRepo struct{ v view }

func (r positionRepo) GetByID(ctx context.Context, id string) (*entity.StockPosition, error) {
	var out *entity.StockPosition
	err := r.v.do(ctx, "positions.get", func(st *state) error {
		if p, ok := st.positions.get(id); ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r positionRepo) GetByProduct(ctx context.Context, productID string) (*entity.StockPosition, error) {
	var out *entity.StockPosition
	err := r.v.do(ctx, "positions.get", func(st *state) error {
		for _, p := range st.positions.rows {
			if p.ProductID == productID {
				p := p
				out = &p
				break
			}
		}
		return nil
	})
	return out, err
}

func (r positionRepo) GetByProductForUpdate(ctx context.Context, productID string) (*entity.StockPosition, error) {
	return r.GetByProduct(ctx, productID)
}

func (r positionRepo) Create(ctx context.Context, pos *entity.StockPosition) error {
	return r.v.do(ctx, "positions.create", func(st *state) error {
		for _, p := range st.positions.rows {
			if p.ProductID == pos.ProductID {
				return fmt.Errorf("%w: posición para producto %s", domain.ErrDuplicate, pos.ProductID)
			}
		}
		st.positions.put(pos.ID, *pos)
		return nil
	})
}

func (r positionRepo) Update(ctx context.Context, pos *entity.StockPosition) error {
	return r.v.do(ctx, "positions.update", func(st *state) error {
		if _, ok := st.positions.get(pos.ID); !ok {
			return domain.ErrNotFound
		}
		st.positions.put(pos.ID, *pos)
		return nil
	})
}

func (r positionRepo) Delete(ctx context.Context, id string) error {
	return r.v.do(ctx, "positions.delete", func(st *state) error {
		if !st.positions.del(id) {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r positionRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockPosition, error) {
	var out []*entity.StockPosition
	err := r.v.do(ctx, "positions.list", func(st *state) error {
		for _, p := range page(st.positions.all(), limit, offset) {
			p := p
			out = append(out, &p)
		}
		return nil
	})
	return out, err
}

type movementRepo struct{ v view }

func (r movementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	return r.v.do(ctx, "movements.create", func(st *state) error {
		st.movements = append(st.movements, *m)
		return nil
	})
}

func (r movementRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	err := r.v.do(ctx, "movements.list", func(st *state) error {
		for _, m := range st.movements {
			if m.CreatedAt.Before(from) || m.CreatedAt.After(to) {
				continue
			}
			m := m
			out = append(out, &m)
		}
		return nil
	})
	sortMovements(out)
	return out, err
}

func (r movementRepo) FirstByProduct(ctx context.Context, productID string) (*entity.StockMovement, error) {
	var out *entity.StockMovement
	err := r.v.do(ctx, "movements.first", func(st *state) error {
		for _, m := range st.movements {
			if m.ProductID != productID {
				continue
			}
			if out == nil || m.CreatedAt.Before(out.CreatedAt) {
				m := m
				out = &m
			}
		}
		return nil
	})
	return out, err
}

// AllMovements devuelve el historial completo en orden de inserción.
func (s *Store) AllMovements() []entity.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.StockMovement(nil), s.state.movements...)
}

type stockOutRepo struct{ v view }

func (r stockOutRepo) Create(ctx context.Context, rec *entity.StockOutRecord) error {
	return r.v.do(ctx, "stockouts.create", func(st *state) error {
		st.stockOuts.put(rec.ID, *rec)
		return nil
	})
}

func (r stockOutRepo) GetByID(ctx context.Context, id string) (*entity.StockOutRecord, error) {
	var out *entity.StockOutRecord
	err := r.v.do(ctx, "stockouts.get", func(st *state) error {
		if rec, ok := st.stockOuts.get(id); ok {
			out = &rec
		}
		return nil
	})
	return out, err
}

func (r stockOutRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.StockOutRecord, error) {
	return r.GetByID(ctx, id)
}

func (r stockOutRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockOutRecord, error) {
	var out []*entity.StockOutRecord
	err := r.v.do(ctx, "stockouts.list", func(st *state) error {
		for _, rec := range page(st.stockOuts.all(), limit, offset) {
			rec := rec
			out = append(out, &rec)
		}
		return nil
	})
	return out, err
}

func (r stockOutRepo) Update(ctx context.Context, rec *entity.StockOutRecord) error {
	return r.v.do(ctx, "stockouts.update", func(st *state) error {
		if _, ok := st.stockOuts.get(rec.ID); !ok {
			return domain.ErrNotFound
		}
		st.stockOuts.put(rec.ID, *rec)
		return nil
	})
}

func (r stockOutRepo) Delete(ctx context.Context, id string) error {
	return r.v.do(ctx, "stockouts.delete", func(st *state) error {
		if !st.stockOuts.del(id) {
			return domain.ErrNotFound
		}
		return nil
	})
}
