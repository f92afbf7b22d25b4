// Package store держит единственный изменяемый снапшот доменных сущностей.
//
// Дисциплина copy-on-write: Read отдаёт текущий снапшот как есть, и вызывающий
// не имеет права его менять; Write строит из текущего снапшота новый и
// подменяет указатель целиком под локом. Читатель во время записи видит либо
// старый снапшот, либо новый — никогда смесь.
package store

import (
	"sync"

	"github.com/VallenDraa/mock-development-api/internal/domain"
)

type Transform func(domain.Snapshot) domain.Snapshot

type Store struct {
	mu   sync.RWMutex
	snap domain.Snapshot
}

func New() *Store {
	return &Store{}
}

// Read возвращает текущий снапшот. Срезы внутри разделяются с стором:
// мутация возвращённого значения — ошибка вызывающего.
func (s *Store) Read() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Write применяет трансформацию к текущему снапшоту и устанавливает результат
// одним неделимым шагом. Лок держится на всю трансформацию, поэтому
// «проверь-и-измени» внутри одного transform атомарен относительно
// конкурентных Write — включая периодический рессид, у которого нет
// никакого приоритета над обычными записями.
func (s *Store) Write(t Transform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = t(s.snap)
}
