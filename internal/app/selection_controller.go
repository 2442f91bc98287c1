package app

import "sort"

// SelectionController owns the set of paper IDs the user has marked for the
// deep dive. Membership drives everything downstream: the chat context, the
// audio subset, and the transcript reset.
type SelectionController struct {
	members map[string]bool
	order   []string
	version int
}

func NewSelectionController() *SelectionController {
	return &SelectionController{members: map[string]bool{}}
}

// Version is a revision counter bumped by every call that changes
// membership. The coordinator watches it to detect selection changes without
// diffing the set.
func (s *SelectionController) Version() int {
	return s.version
}

func (s *SelectionController) Count() int {
	return len(s.members)
}

func (s *SelectionController) Contains(id string) bool {
	return s.members[id]
}

// Selected returns the member IDs in the order they were first selected.
func (s *SelectionController) Selected() []string {
	out := make([]string, 0, len(s.order))
	for _, id := range s.order {
		if s.members[id] {
			out = append(out, id)
		}
	}
	return out
}

// SortedSelected returns the member IDs in lexical order, for callers that
// need a stable set representation regardless of click order.
func (s *SelectionController) SortedSelected() []string {
	out := s.Selected()
	sort.Strings(out)
	return out
}

// Toggle flips one ID in or out of the set.
func (s *SelectionController) Toggle(id string) {
	if id == "" {
		return
	}
	if s.members[id] {
		delete(s.members, id)
		s.dropFromOrder(id)
	} else {
		s.members[id] = true
		s.order = append(s.order, id)
	}
	s.bump()
}

// SelectAll replaces the set with every given ID. Re-selecting an identical
// set leaves the version alone so the chat transcript survives.
func (s *SelectionController) SelectAll(ids []string) {
	next := make(map[string]bool, len(ids))
	order := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || next[id] {
			continue
		}
		next[id] = true
		order = append(order, id)
	}
	if s.sameMembership(next) {
		return
	}
	s.members = next
	s.order = order
	s.bump()
}

func (s *SelectionController) sameMembership(next map[string]bool) bool {
	if len(next) != len(s.members) {
		return false
	}
	for id := range next {
		if !s.members[id] {
			return false
		}
	}
	return true
}

// Clear empties the set. Clearing an already empty set is a no-op and does
// not bump the version.
func (s *SelectionController) Clear() {
	if len(s.members) == 0 {
		return
	}
	s.members = map[string]bool{}
	s.order = s.order[:0]
	s.bump()
}

// Remove drops the given IDs from the set. IDs not present are ignored; the
// version bumps only if membership actually changed.
func (s *SelectionController) Remove(ids []string) {
	changed := false
	for _, id := range ids {
		if s.members[id] {
			delete(s.members, id)
			s.dropFromOrder(id)
			changed = true
		}
	}
	if changed {
		s.bump()
	}
}

// dropFromOrder keeps order in lockstep with membership, so a removed ID
// re-selected later appears exactly once.
func (s *SelectionController) dropFromOrder(id string) {
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// ToggleAll clears the set when every given ID is already selected and
// selects all of them otherwise.
func (s *SelectionController) ToggleAll(ids []string) {
	if len(ids) > 0 && s.allSelected(ids) {
		s.Clear()
		return
	}
	s.SelectAll(ids)
}

func (s *SelectionController) allSelected(ids []string) bool {
	for _, id := range ids {
		if !s.members[id] {
			return false
		}
	}
	return true
}

func (s *SelectionController) bump() {
	s.version++
}
