package models

// ResolveToggle is the single transition function behind every idempotent
// engagement toggle (like, favorite, follow). Given the current flag and the
// requested direction it returns the next flag and the counter delta.
// Repeating a toggle in the same direction yields delta 0, so double calls
// are no-ops that still report success.
func ResolveToggle(current, engage bool) (next bool, delta int) {
	if current == engage {
		return current, 0
	}
	if engage {
		return true, 1
	}
	return false, -1
}

// ClampCount floors a counter at zero. Counters must never go negative even
// if a disengage races ahead of the state it was computed from.
func ClampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// ToggleResult is the minimal post-mutation state a toggle returns: the
// viewer-scoped flag and the authoritative counter, updated together.
type ToggleResult struct {
	Active bool `json:"active"`
	Count  int  `json:"count"`
}
