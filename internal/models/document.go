package models

// Document is an attachment belonging to a property, a tenant or a contract;
// exactly one of the parent ids is set.
type Document struct {
	ID         string `gorm:"column:id;primaryKey" json:"id"`
	Name       string `gorm:"column:name" json:"name"`
	URL        string `gorm:"column:url" json:"url"`
	PropertyID string `gorm:"column:propertyId;index" json:"propertyId"`
	TenantID   string `gorm:"column:tenantId;index" json:"tenantId"`
	ContractID string `gorm:"column:contractId;index" json:"contractId"`
}

func (Document) TableName() string { return "documents" }
