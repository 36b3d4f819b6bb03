package handler

import (
	"context"
	"sort"

	"go-storefront/internal/model"
	"go-storefront/internal/repository"
)

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(u *model.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

type fakeProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*model.Product{}, nextID: 1}
}

func (f *fakeProductRepo) conflicts(p *model.Product) bool {
	for _, existing := range f.products {
		if existing.ID == p.ID {
			continue
		}
		if existing.ProductCode == p.ProductCode || existing.Name == p.Name {
			return true
		}
	}
	return false
}

func (f *fakeProductRepo) Create(p *model.Product) error {
	if f.conflicts(p) {
		return repository.ErrDuplicate
	}
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) FindAll() ([]model.Product, error) {
	out := make([]model.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProductRepo) FindByID(id uint) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) FindByCode(code string) (*model.Product, error) {
	for _, p := range f.products {
		if p.ProductCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductRepo) Update(p *model.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	if f.conflicts(p) {
		return repository.ErrDuplicate
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(id uint) error {
	delete(f.products, id)
	return nil
}

type fakeGateway struct {
	syncErr    error
	sessionErr error
	url        string
}

func (f *fakeGateway) SyncProduct(context.Context, *model.Product) error {
	return f.syncErr
}

func (f *fakeGateway) CreateCheckoutSession(context.Context, *model.Product) (string, error) {
	if f.sessionErr != nil {
		return "", f.sessionErr
	}
	return f.url, nil
}
