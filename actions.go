package lifetrack

// Action is the closed set of operations accepted by a [Store]. One struct
// per operation kind, each carrying its typed payload; the unexported
// method seals the union so dispatch in the reducer is exhaustive by
// construction.
type Action interface {
	isAction()
}

// ReplaceAll wholesale-replaces the root aggregate (load/import).
type ReplaceAll struct{ Data AppData }

// AddTransaction appends a transaction and applies its signed effect to the
// linked account's balance, if any.
type AddTransaction struct{ Tx Transaction }

// UpdateTransaction replaces the transaction with the same id, reverting the
// old version's balance effect before applying the new one. Unknown ids are
// a no-op.
type UpdateTransaction struct{ Tx Transaction }

// DeleteTransaction removes a transaction by id, reverting its balance
// effect. Unknown ids are a no-op.
type DeleteTransaction struct{ ID string }

// AddAccount appends an account.
type AddAccount struct{ Account Account }

// UpdateAccount replaces the account with the same id. The balance carried
// by the payload is authoritative; it is not re-derived from transaction
// history.
type UpdateAccount struct{ Account Account }

// DeleteAccount removes an account by id. Transactions referencing it keep
// their accountId and become dangling references, tolerated at read time.
type DeleteAccount struct{ ID string }

// AddHabit appends a habit.
type AddHabit struct{ Habit Habit }

// UpdateHabit replaces the habit with the same id. Unknown ids are a no-op.
type UpdateHabit struct{ Habit Habit }

// DeleteHabit removes a habit by id.
type DeleteHabit struct{ ID string }

// AddGoal appends a goal.
type AddGoal struct{ Goal Goal }

// UpdateGoal replaces the goal with the same id. Unknown ids are a no-op.
type UpdateGoal struct{ Goal Goal }

// DeleteGoal removes a goal by id.
type DeleteGoal struct{ ID string }

// SetMood records the mood for a day, replacing any existing entry for that
// date.
type SetMood struct{ Entry Mood }

// AddCategory appends a user-defined category.
type AddCategory struct{ Category Category }

// DeleteCategory removes a user-defined category by id. Built-in categories
// are not part of this collection and cannot be deleted through this path.
type DeleteCategory struct{ ID string }

// UpdateSettings shallow-merges the patch into settings.
type UpdateSettings struct{ Patch SettingsPatch }

// ResetAll replaces the root aggregate with the built-in empty default.
type ResetAll struct{}

func (ReplaceAll) isAction()        {}
func (AddTransaction) isAction()    {}
func (UpdateTransaction) isAction() {}
func (DeleteTransaction) isAction() {}
func (AddAccount) isAction()        {}
func (UpdateAccount) isAction()     {}
func (DeleteAccount) isAction()     {}
func (AddHabit) isAction()          {}
func (UpdateHabit) isAction()       {}
func (DeleteHabit) isAction()       {}
func (AddGoal) isAction()           {}
func (UpdateGoal) isAction()        {}
func (DeleteGoal) isAction()        {}
func (SetMood) isAction()           {}
func (AddCategory) isAction()       {}
func (DeleteCategory) isAction()    {}
func (UpdateSettings) isAction()    {}
func (ResetAll) isAction()          {}
