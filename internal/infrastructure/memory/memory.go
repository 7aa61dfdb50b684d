// Package memory implementa los puertos de persistencia en memoria (STORAGE_DRIVER=memory y tests).
// Reproduce las restricciones de la base: email único, llaves foráneas y borrado en cascada.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

// DB estado compartido por los cuatro repositorios.
type DB struct {
	mu           sync.RWMutex
	users        map[string]entity.User
	stores       map[string]entity.Store
	items        map[string]entity.Item
	transactions map[string]entity.Transaction
	now          func() time.Time
}

// New crea una base vacía.
func New() *DB {
	return &DB{
		users:        make(map[string]entity.User),
		stores:       make(map[string]entity.Store),
		items:        make(map[string]entity.Item),
		transactions: make(map[string]entity.Transaction),
		now:          time.Now,
	}
}

// Users devuelve el repositorio de usuarios.
func (db *DB) Users() *UserRepo { return &UserRepo{db: db} }

// Stores devuelve el repositorio de tiendas.
func (db *DB) Stores() *StoreRepo { return &StoreRepo{db: db} }

// Items devuelve el repositorio de items.
func (db *DB) Items() *ItemRepo { return &ItemRepo{db: db} }

// Transactions devuelve el repositorio de transacciones.
func (db *DB) Transactions() *TransactionRepo { return &TransactionRepo{db: db} }

// deleteItemLocked borra el item y sus transacciones. Requiere mu tomado.
func (db *DB) deleteItemLocked(id string) {
	delete(db.items, id)
	for tid, t := range db.transactions {
		if t.ItemID == id {
			delete(db.transactions, tid)
		}
	}
}

func sortByCreated[T any](list []*T, created func(*T) time.Time) {
	sort.SliceStable(list, func(i, j int) bool { return created(list[i]).Before(created(list[j])) })
}
