package entities

import (
	"sort"
	"strings"
)

// ValidationErrors собирает ошибки валидации по полям запроса.
// Все нарушения возвращаются клиенту вместе, а не по первому найденному.
type ValidationErrors map[string]string

// Add добавляет сообщение об ошибке для поля. Первое сообщение для поля выигрывает.
func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

// Error реализует интерфейс error.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(v))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Empty сообщает, были ли зарегистрированы нарушения.
func (v ValidationErrors) Empty() bool {
	return len(v) == 0
}
