package usecase

import (
	"maps"
	"slices"
)

// AccordionState — множество продуктов с раскрытой панелью деталей.
// Значение неизменяемо: переходы возвращают новое состояние.
type AccordionState struct {
	open map[string]struct{}
}

func NewAccordionState(ids ...string) AccordionState {
	open := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		open[id] = struct{}{}
	}
	return AccordionState{open: open}
}

// Toggle удаляет productID, если он есть, и добавляет, если его нет.
func (s AccordionState) Toggle(productID string) AccordionState {
	next := maps.Clone(s.open)
	if next == nil {
		next = make(map[string]struct{}, 1)
	}

	if _, ok := next[productID]; ok {
		delete(next, productID)
	} else {
		next[productID] = struct{}{}
	}

	return AccordionState{open: next}
}

func (s AccordionState) IsOpen(productID string) bool {
	_, ok := s.open[productID]
	return ok
}

// OpenIDs возвращает раскрытые панели в отсортированном порядке.
func (s AccordionState) OpenIDs() []string {
	ids := slices.Collect(maps.Keys(s.open))
	slices.Sort(ids)
	if ids == nil {
		ids = []string{}
	}
	return ids
}

func (s AccordionState) Len() int {
	return len(s.open)
}
