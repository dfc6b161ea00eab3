package main

import "github.com/dattgoswami/spreadsheet-backend-library/contracts"

// Revision is one history record: the cell touched by a write and the
// value it held before (nil = the cell did not exist).
type Revision struct {
	CellId string
	Value  *contracts.Value
}

// History keeps the past/future revision stacks backing undo and redo.
// The history is linear: any write invalidates the future stack.
type History struct {
	past   []Revision
	future []Revision
}

func NewHistory() *History {
	return &History{}
}

// RecordWrite pushes the prior state of a cell onto the past stack and
// discards any pending redo chain.
func (h *History) RecordWrite(cellId string, prior *contracts.Value) {
	h.past = append(h.past, Revision{CellId: cellId, Value: prior})
	h.future = h.future[:0]
}

func (h *History) PeekPast() (Revision, bool) {
	if len(h.past) == 0 {
		return Revision{}, false
	}
	return h.past[len(h.past)-1], true
}

func (h *History) PopPast() (Revision, bool) {
	revision, ok := h.PeekPast()
	if ok {
		h.past = h.past[:len(h.past)-1]
	}
	return revision, ok
}

// PushPast re-adds a record without clearing the future stack; redo uses
// it to move a record back.
func (h *History) PushPast(revision Revision) {
	h.past = append(h.past, revision)
}

func (h *History) PopFuture() (Revision, bool) {
	if len(h.future) == 0 {
		return Revision{}, false
	}
	revision := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	return revision, true
}

func (h *History) PushFuture(revision Revision) {
	h.future = append(h.future, revision)
}

func (h *History) PastLen() int {
	return len(h.past)
}

func (h *History) FutureLen() int {
	return len(h.future)
}
