package models

// Wallet is a balance ledger owned by a user or by the system itself.
// Balance only moves through Transaction application.
type Wallet struct {
	ID        string  `gorm:"column:id;primaryKey" json:"id"`
	UserID    string  `gorm:"column:userId;index" json:"userId"`
	OwnerType string  `gorm:"column:ownerType" json:"ownerType"` // system / user
	Balance   float64 `gorm:"column:balance" json:"balance"`
}

func (Wallet) TableName() string { return "wallets" }

// Transaction is one wallet movement, optionally tied to a contract.
type Transaction struct {
	ID          string `gorm:"column:id;primaryKey" json:"id"`
	WalletID    string `gorm:"column:walletId;index" json:"walletId"`
	ContractID  string `gorm:"column:contractId;index" json:"contractId"`
	Type        string `gorm:"column:type" json:"type"`
	Amount      string `gorm:"column:amount" json:"amount"`
	Date        string `gorm:"column:date" json:"date"`
	Description string `gorm:"column:description" json:"description"`
}

func (Transaction) TableName() string { return "transactions" }
