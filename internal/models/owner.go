package models

// Owner is a landlord profile linked 1:1 to a User. The national id doubles
// as an alternate login key.
type Owner struct {
	ID                        string `gorm:"column:id;primaryKey" json:"id"`
	Name                      string `gorm:"column:name" json:"name"`
	NationalID                string `gorm:"column:nationalId;uniqueIndex" json:"nationalId"`
	Phone                     string `gorm:"column:phone" json:"phone"`
	Email                     string `gorm:"column:email" json:"email"`
	ManagementFeeType         string `gorm:"column:managementFeeType" json:"managementFeeType"`
	ManagementFeeValue        string `gorm:"column:managementFeeValue" json:"managementFeeValue"`
	ManagementAgreementStatus string `gorm:"column:managementAgreementStatus" json:"managementAgreementStatus"`
	UserID                    string `gorm:"column:userId;uniqueIndex" json:"userId"`

	Properties []Property `gorm:"foreignKey:OwnerID" json:"properties"`
}

func (Owner) TableName() string { return "owners" }
