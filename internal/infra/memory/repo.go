// Package memory реализует репозитории поверх атомарного снапшот-стора.
// Любая операция «проверь-и-измени» выполняется внутри одной трансформации
// Write — отдельные Read и Write не атомарны относительно других запросов
// и периодического рессида.
package memory

import (
	"log"

	"github.com/VallenDraa/mock-development-api/internal/domain"
	"github.com/VallenDraa/mock-development-api/internal/store"
)

// Ensure: Repo implements the repository contracts
var (
	_ domain.UsersRepo    = (*Repo)(nil)
	_ domain.PostsRepo    = (*Repo)(nil)
	_ domain.CommentsRepo = (*Repo)(nil)
)

// ---- In-memory репозиторий поверх *store.Store ----

type Repo struct {
	logger *log.Logger
	store  *store.Store
}

func NewRepo(logger *log.Logger, s *store.Store) *Repo {
	return &Repo{logger: logger, store: s}
}
