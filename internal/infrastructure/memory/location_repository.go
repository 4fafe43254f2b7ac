package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación en memoria de LocationRepository.
type LocationRepo struct {
	a access
}

func (r *LocationRepo) Create(_ context.Context, location *entity.Location) error {
	return r.a.write(func(st *state) error {
		if _, ok := st.locations[location.LocationID]; ok {
			return domain.ErrDuplicateKey
		}
		st.locations[location.LocationID] = *location
		return nil
	})
}

func (r *LocationRepo) GetByID(_ context.Context, locationID string) (*entity.Location, error) {
	var out *entity.Location
	err := r.a.read(func(st *state) error {
		if l, ok := st.locations[locationID]; ok {
			out = &l
		}
		return nil
	})
	return out, err
}

func (r *LocationRepo) Update(_ context.Context, location *entity.Location) error {
	return r.a.write(func(st *state) error {
		current, ok := st.locations[location.LocationID]
		if !ok {
			return domain.ErrNotFound
		}
		current.Name = location.Name
		current.Address = location.Address
		current.UpdatedAt = location.UpdatedAt
		st.locations[location.LocationID] = current
		return nil
	})
}

func (r *LocationRepo) List(_ context.Context) ([]*entity.Location, error) {
	var out []*entity.Location
	err := r.a.read(func(st *state) error {
		out = make([]*entity.Location, 0, len(st.locations))
		for _, l := range st.locations {
			l := l
			out = append(out, &l)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].LocationID < out[j].LocationID })
	return out, err
}

func (r *LocationRepo) Count(_ context.Context) (int, error) {
	var n int
	err := r.a.read(func(st *state) error {
		n = len(st.locations)
		return nil
	})
	return n, err
}

func (r *LocationRepo) Delete(_ context.Context, locationID string) error {
	return r.a.write(func(st *state) error {
		if _, ok := st.locations[locationID]; !ok {
			return domain.ErrNotFound
		}
		for _, m := range st.movements {
			if m.References(locationID) {
				return domain.ErrHasDependents
			}
		}
		delete(st.locations, locationID)
		return nil
	})
}
