package logic

import "abook/internal/domain"

// SetLastShown lets tests stage a displayed list, including stale ones.
func (l *Logic) SetLastShown(persons []domain.Person) {
	l.shown = append([]domain.Person(nil), persons...)
}
