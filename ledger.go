package lifetrack

import "github.com/shopspring/decimal"

// This file keeps account balances consistent with transaction history.
// Every function is pure: input slices are never mutated, a fresh copy is
// returned whenever anything changes.
//
// The delta uses the transaction's stated amount in its own currency against
// the account's balance field regardless of the account's currency. No
// cross-currency normalization happens at this layer.

// creditAccount returns the account list with the given delta applied to the
// balance of the account with the given id. An empty id or an unknown id
// leaves the list untouched (same slice).
func creditAccount(accounts []Account, id string, delta decimal.Decimal) []Account {
	if id == "" {
		return accounts
	}
	for i, acc := range accounts {
		if acc.ID != id {
			continue
		}
		out := make([]Account, len(accounts))
		copy(out, accounts)
		acc.Balance = acc.Balance.Add(delta)
		out[i] = acc
		return out
	}
	return accounts
}

// addTransaction appends tx and applies its signed effect to the linked
// account.
func addTransaction(d AppData, tx Transaction) AppData {
	d.Accounts = creditAccount(d.Accounts, tx.AccountID, tx.signedEffect())
	txs := make([]Transaction, 0, len(d.Transactions)+1)
	txs = append(txs, d.Transactions...)
	d.Transactions = append(txs, tx)
	return d
}

// updateTransaction replaces the stored version of tx. The old version's
// effect is reverted on its old account before the new version's effect is
// applied on its (possibly different) account. The revert-then-apply order
// holds even when the account is unchanged, so repeated edits of amount or
// type never compound.
func updateTransaction(d AppData, tx Transaction) (AppData, bool) {
	old, ok := d.TransactionByID(tx.ID)
	if !ok {
		return d, false
	}

	accounts := creditAccount(d.Accounts, old.AccountID, old.signedEffect().Neg())
	accounts = creditAccount(accounts, tx.AccountID, tx.signedEffect())
	d.Accounts = accounts

	txs := make([]Transaction, len(d.Transactions))
	for i, t := range d.Transactions {
		if t.ID == tx.ID {
			txs[i] = tx
		} else {
			txs[i] = t
		}
	}
	d.Transactions = txs
	return d, true
}

// deleteTransaction reverts the transaction's effect on its linked account
// and removes it from the collection.
func deleteTransaction(d AppData, id string) (AppData, bool) {
	old, ok := d.TransactionByID(id)
	if !ok {
		return d, false
	}

	d.Accounts = creditAccount(d.Accounts, old.AccountID, old.signedEffect().Neg())

	txs := make([]Transaction, 0, len(d.Transactions)-1)
	for _, t := range d.Transactions {
		if t.ID != id {
			txs = append(txs, t)
		}
	}
	d.Transactions = txs
	return d, true
}
