package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

type userRepo struct{ v view }

func (r userRepo) Create(ctx context.Context, u *entity.User) error {
	return r.v.do(ctx, "users.create", func(st *state) error {
		for _, existing := range st.users.rows {
			if strings.EqualFold(existing.Username, u.Username) {
				return domain.ErrUsernameTaken
			}
		}
		st.users.put(u.ID, *u)
		return nil
	})
}

func (r userRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.v.do(ctx, "users.get", func(st *state) error {
		if u, ok := st.users.get(id); ok {
			out = &u
		}
		return nil
	})
	return out, err
}

func (r userRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var out *entity.User
	err := r.v.do(ctx, "users.get", func(st *state) error {
		for _, u := range st.users.rows {
			if strings.EqualFold(u.Username, username) {
				u := u
				out = &u
				break
			}
		}
		return nil
	})
	return out, err
}

type balanceRepo struct{ v view }

func (r balanceRepo) Create(ctx context.Context, b *entity.Balance) error {
	return r.v.do(ctx, "balances.create", func(st *state) error {
		st.balances.put(b.ID, *b)
		return nil
	})
}

func (r balanceRepo) GetByID(ctx context.Context, id string) (*entity.Balance, error) {
	var out *entity.Balance
	err := r.v.do(ctx, "balances.get", func(st *state) error {
		if b, ok := st.balances.get(id); ok {
			out = &b
		}
		return nil
	})
	return out, err
}

func (r balanceRepo) List(ctx context.Context, limit, offset int) ([]*entity.Balance, error) {
	var out []*entity.Balance
	err := r.v.do(ctx, "balances.list", func(st *state) error {
		for _, b := range page(st.balances.all(), limit, offset) {
			b := b
			out = append(out, &b)
		}
		return nil
	})
	return out, err
}

type transactionRepo struct{ v view }

func (r transactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	return r.v.do(ctx, "transactions.create", func(st *state) error {
		st.transactions.put(t.ID, *t)
		return nil
	})
}

func (r transactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var out *entity.Transaction
	err := r.v.do(ctx, "transactions.get", func(st *state) error {
		if t, ok := st.transactions.get(id); ok {
			out = &t
		}
		return nil
	})
	return out, err
}

func (r transactionRepo) List(ctx context.Context, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	err := r.v.do(ctx, "transactions.list", func(st *state) error {
		for _, t := range page(st.transactions.all(), limit, offset) {
			t := t
			out = append(out, &t)
		}
		return nil
	})
	return out, err
}

func (r transactionRepo) Update(ctx context.Context, t *entity.Transaction) error {
	return r.v.do(ctx, "transactions.update", func(st *state) error {
		if _, ok := st.transactions.get(t.ID); !ok {
			return domain.ErrNotFound
		}
		st.transactions.put(t.ID, *t)
		return nil
	})
}

func (r transactionRepo) Delete(ctx context.Context, id string) error {
	return r.v.do(ctx, "transactions.delete", func(st *state) error {
		if !st.transactions.del(id) {
			return domain.ErrNotFound
		}
		return nil
	})
}
