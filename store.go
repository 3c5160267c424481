package lifetrack

// Store is the single mutation authority over the root aggregate. It is
// explicitly constructed and passed by reference; there is no package-level
// instance.
//
// All operations are dispatched from one logical thread of control: the
// engine is a single-writer, cooperative model and the Store does no
// locking of its own. Every Apply is a synchronous pure transformation; a
// new snapshot becomes visible to readers immediately on commit, before any
// persistence I/O completes.
type Store struct {
	current AppData
	subs    []func(AppData)
}

// NewStore creates a store holding the built-in empty default aggregate.
func NewStore() *Store {
	return &Store{current: DefaultData()}
}

// State returns the current snapshot. Snapshots are immutable values: the
// reducer never mutates a published snapshot, so callers may keep them
// without copying but must not write through the contained slices.
func (s *Store) State() AppData {
	return s.current
}

// Subscribe registers a hook invoked after every committed operation that
// changed the snapshot. The persistence adapter attaches here.
func (s *Store) Subscribe(fn func(AppData)) {
	s.subs = append(s.subs, fn)
}

// Apply runs one operation as an atomic transition. Operations that resolve
// to a no-op (nil action, edit of a non-existent id) retain the prior
// snapshot unchanged and fire no commit hooks.
func (s *Store) Apply(a Action) {
	next, changed := reduce(s.current, a)
	if !changed {
		return
	}
	s.current = next
	for _, fn := range s.subs {
		fn(next)
	}
}

// reduce maps (snapshot, action) to the next snapshot. It is total and
// deterministic; the boolean reports whether the snapshot changed.
func reduce(d AppData, a Action) (AppData, bool) {
	switch v := a.(type) {
	case ReplaceAll:
		return v.Data.normalize(), true

	case AddTransaction:
		return addTransaction(d, v.Tx), true
	case UpdateTransaction:
		return updateTransaction(d, v.Tx)
	case DeleteTransaction:
		return deleteTransaction(d, v.ID)

	case AddAccount:
		d.Accounts = appendCopy(d.Accounts, v.Account)
		return d, true
	case UpdateAccount:
		accounts, ok := replaceByID(d.Accounts, v.Account, func(a Account) string { return a.ID })
		d.Accounts = accounts
		return d, ok
	case DeleteAccount:
		accounts, ok := removeByID(d.Accounts, v.ID, func(a Account) string { return a.ID })
		d.Accounts = accounts
		return d, ok

	case AddHabit:
		d.Habits = appendCopy(d.Habits, v.Habit)
		return d, true
	case UpdateHabit:
		habits, ok := replaceByID(d.Habits, v.Habit, func(h Habit) string { return h.ID })
		d.Habits = habits
		return d, ok
	case DeleteHabit:
		habits, ok := removeByID(d.Habits, v.ID, func(h Habit) string { return h.ID })
		d.Habits = habits
		return d, ok

	case AddGoal:
		d.Goals = appendCopy(d.Goals, v.Goal)
		return d, true
	case UpdateGoal:
		goals, ok := replaceByID(d.Goals, v.Goal, func(g Goal) string { return g.ID })
		d.Goals = goals
		return d, ok
	case DeleteGoal:
		goals, ok := removeByID(d.Goals, v.ID, func(g Goal) string { return g.ID })
		d.Goals = goals
		return d, ok

	case SetMood:
		moods := make([]Mood, 0, len(d.Moods)+1)
		for _, m := range d.Moods {
			if m.Date != v.Entry.Date {
				moods = append(moods, m)
			}
		}
		d.Moods = append(moods, v.Entry)
		return d, true

	case AddCategory:
		cat := v.Category
		cat.IsCustom = true
		d.CustomCategories = appendCopy(d.CustomCategories, cat)
		return d, true
	case DeleteCategory:
		cats, ok := removeByID(d.CustomCategories, v.ID, func(c Category) string { return c.ID })
		d.CustomCategories = cats
		return d, ok

	case UpdateSettings:
		d.Settings = d.Settings.merge(v.Patch)
		return d, true

	case ResetAll:
		return DefaultData(), true
	}
	// Only a nil Action can reach this point: the snapshot is retained.
	return d, false
}

func appendCopy[T any](xs []T, x T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, xs...)
	return append(out, x)
}

func replaceByID[T any](xs []T, x T, id func(T) string) ([]T, bool) {
	target := id(x)
	for i := range xs {
		if id(xs[i]) != target {
			continue
		}
		out := make([]T, len(xs))
		copy(out, xs)
		out[i] = x
		return out, true
	}
	return xs, false
}

func removeByID[T any](xs []T, target string, id func(T) string) ([]T, bool) {
	for i := range xs {
		if id(xs[i]) != target {
			continue
		}
		out := make([]T, 0, len(xs)-1)
		out = append(out, xs[:i]...)
		return append(out, xs[i+1:]...), true
	}
	return xs, false
}
