// Package tasks keeps the in-memory task list shown next to the
// timer. Tasks are not persisted across restarts.
package tasks

import (
	"fmt"
	"strings"
)

// List holds ordered task descriptions. It is not safe for concurrent
// use; UI callers run on a single event loop.
type List struct {
	items []string
}

// NewList returns an empty task list.
func NewList() *List {
	return &List{}
}

// Add appends a task. Blank text is rejected.
func (list *List) Add(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("add task: text is empty")
	}
	list.items = append(list.items, text)
	return nil
}

// Edit replaces the task at index.
func (list *List) Edit(index int, text string) error {
	if index < 0 || index >= len(list.items) {
		return fmt.Errorf("edit task: index %d out of range", index)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("edit task: text is empty")
	}
	list.items[index] = text
	return nil
}

// Remove deletes the task at index.
func (list *List) Remove(index int) error {
	if index < 0 || index >= len(list.items) {
		return fmt.Errorf("remove task: index %d out of range", index)
	}
	list.items = append(list.items[:index], list.items[index+1:]...)
	return nil
}

// Items returns a copy of the task descriptions.
func (list *List) Items() []string {
	return append([]string(nil), list.items...)
}

// Len returns the number of tasks.
func (list *List) Len() int {
	return len(list.items)
}
