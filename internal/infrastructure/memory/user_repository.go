package memory

import (
	"context"
	"math"

	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	db *DB
}

func (r *UserRepo) emailTakenLocked(email, exceptID string) bool {
	for _, u := range r.db.users {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}
	return false
}

// Create inserta el usuario; ErrEmailAlreadyExists si el email ya existe.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.emailTakenLocked(user.Email, "") {
		return domain.ErrEmailAlreadyExists
	}
	now := r.db.now()
	user.Balance = 0
	user.CreatedAt = now
	user.UpdatedAt = now
	r.db.users[user.ID] = *user
	return nil
}

// GetByEmail incluye el hash para comparar en el login.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, u := range r.db.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

// Update reemplaza name, email y password.
func (r *UserRepo) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[user.ID]
	if !ok {
		return nil, nil
	}
	if r.emailTakenLocked(user.Email, user.ID) {
		return nil, domain.ErrEmailAlreadyExists
	}
	u.Name = user.Name
	u.Email = user.Email
	u.PasswordHash = user.PasswordHash
	u.UpdatedAt = r.db.now()
	r.db.users[u.ID] = u
	u.PasswordHash = ""
	return &u, nil
}

// Delete elimina el usuario y sus transacciones.
func (r *UserRepo) Delete(_ context.Context, id string) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}
	delete(r.db.users, id)
	for tid, t := range r.db.transactions {
		if t.UserID == id {
			delete(r.db.transactions, tid)
		}
	}
	return &entity.User{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}

// TopUp suma amount al saldo; ErrInvalidAmount si el resultado desborda int64.
func (r *UserRepo) TopUp(_ context.Context, id string, amount int64) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}
	if amount > math.MaxInt64-u.Balance {
		return nil, domain.ErrInvalidAmount
	}
	u.Balance += amount
	u.UpdatedAt = r.db.now()
	r.db.users[id] = u
	return &entity.User{ID: u.ID, Name: u.Name, Email: u.Email, Balance: u.Balance, UpdatedAt: u.UpdatedAt}, nil
}

// GetBalance devuelve id, name, email y balance.
func (r *UserRepo) GetBalance(_ context.Context, id string) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}
	return &entity.User{ID: u.ID, Name: u.Name, Email: u.Email, Balance: u.Balance}, nil
}
