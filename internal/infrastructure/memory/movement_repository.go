package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria del ledger.
type MovementRepo struct {
	a access
}

// Create asigna el siguiente id. Un id nunca se reutiliza, aunque se borre el movimiento.
func (r *MovementRepo) Create(_ context.Context, movement *entity.Movement) error {
	return r.a.write(func(st *state) error {
		movement.MovementID = st.nextID
		st.nextID++
		if movement.Timestamp.IsZero() {
			movement.Timestamp = time.Now().UTC()
		}
		st.movements[movement.MovementID] = *movement
		return nil
	})
}

func (r *MovementRepo) GetByID(_ context.Context, movementID int64) (*entity.Movement, error) {
	var out *entity.Movement
	err := r.a.read(func(st *state) error {
		if m, ok := st.movements[movementID]; ok {
			out = &m
		}
		return nil
	})
	return out, err
}

func (r *MovementRepo) List(_ context.Context) ([]*entity.Movement, error) {
	return r.filter(func(entity.Movement) bool { return true })
}

func (r *MovementRepo) ListByProduct(_ context.Context, productID string) ([]*entity.Movement, error) {
	return r.filter(func(m entity.Movement) bool { return m.ProductID == productID })
}

// filter devuelve los movimientos que cumplen keep, más reciente primero (timestamp, id).
func (r *MovementRepo) filter(keep func(entity.Movement) bool) ([]*entity.Movement, error) {
	var out []*entity.Movement
	err := r.a.read(func(st *state) error {
		out = make([]*entity.Movement, 0, len(st.movements))
		for _, m := range st.movements {
			if keep(m) {
				m := m
				out = append(out, &m)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].MovementID > out[j].MovementID
	})
	return out, err
}

func (r *MovementRepo) Count(_ context.Context) (int, error) {
	var n int
	err := r.a.read(func(st *state) error {
		n = len(st.movements)
		return nil
	})
	return n, err
}

func (r *MovementRepo) Delete(_ context.Context, movementID int64) error {
	return r.a.write(func(st *state) error {
		if _, ok := st.movements[movementID]; !ok {
			return domain.ErrNotFound
		}
		delete(st.movements, movementID)
		return nil
	})
}
