package store

import (
	"sort"

	"aqari/internal/models"
)

// Kind identifies one persisted entity collection. Dispatch anywhere in the
// save pipeline goes through this closed set, never through raw key strings.
type Kind int

const (
	KindProperty Kind = iota
	KindUnit
	KindTenant
	KindOwner
	KindContract
	KindTransaction
	KindExpense
	KindWallet
	KindUser
	KindReminder
	KindPayoutVoucher
)

// collections maps the public collection key used by the save-item and
// delete-item endpoints to its entity kind. The two endpoints share this
// table, so they cannot drift apart.
var collections = map[string]Kind{
	"properties":     KindProperty,
	"units":          KindUnit,
	"tenants":        KindTenant,
	"owners":         KindOwner,
	"contracts":      KindContract,
	"transactions":   KindTransaction,
	"expenses":       KindExpense,
	"wallets":        KindWallet,
	"users":          KindUser,
	"reminders":      KindReminder,
	"payoutVouchers": KindPayoutVoucher,
}

// Resolve returns the entity kind for a public collection key.
func Resolve(key string) (Kind, bool) {
	k, ok := collections[key]
	return k, ok
}

// Collections returns all registered public keys, sorted.
func Collections() []string {
	keys := make([]string, 0, len(collections))
	for k := range collections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Model returns a fresh model pointer for the kind, used as the GORM target
// for map-based upserts and deletes.
func (k Kind) Model() interface{} {
	switch k {
	case KindProperty:
		return &models.Property{}
	case KindUnit:
		return &models.Unit{}
	case KindTenant:
		return &models.Tenant{}
	case KindOwner:
		return &models.Owner{}
	case KindContract:
		return &models.LeaseContract{}
	case KindTransaction:
		return &models.Transaction{}
	case KindExpense:
		return &models.Expense{}
	case KindWallet:
		return &models.Wallet{}
	case KindUser:
		return &models.User{}
	case KindReminder:
		return &models.Reminder{}
	case KindPayoutVoucher:
		return &models.PayoutVoucher{}
	}
	return nil
}

func (k Kind) String() string {
	for key, kind := range collections {
		if kind == k {
			return key
		}
	}
	return "unknown"
}
