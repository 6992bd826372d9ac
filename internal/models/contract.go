package models

// LeaseContract links a Tenant to a Unit/Property and owns its payment
// schedule outright: the schedule is replaced wholesale on every contract
// save, never merged row by row.
type LeaseContract struct {
	ID               string `gorm:"column:id;primaryKey" json:"id"`
	PropertyID       string `gorm:"column:propertyId;index" json:"propertyId"`
	PropertyAddress  string `gorm:"column:propertyAddress" json:"propertyAddress"`
	UnitID           string `gorm:"column:unitId;index" json:"unitId"`
	TenantID         string `gorm:"column:tenantId;index" json:"tenantId"`
	TenantName       string `gorm:"column:tenantName" json:"tenantName"`
	TenantNationalID string `gorm:"column:tenantNationalId" json:"tenantNationalId"`
	TenantPhone      string `gorm:"column:tenantPhone" json:"tenantPhone"`
	LandlordName     string `gorm:"column:landlordName" json:"landlordName"`
	LandlordID       string `gorm:"column:landlordId" json:"landlordId"`
	LandlordPhone    string `gorm:"column:landlordPhone" json:"landlordPhone"`
	RepresentedBy    string `gorm:"column:representedBy" json:"representedBy"`
	StartDate        string `gorm:"column:startDate" json:"startDate"`
	EndDate          string `gorm:"column:endDate" json:"endDate"`
	RentAmount       string `gorm:"column:rentAmount" json:"rentAmount"`
	RentCycle        string `gorm:"column:rentCycle" json:"rentCycle"`
	SecurityDeposit  string `gorm:"column:securityDeposit" json:"securityDeposit"`
	LeasePurpose     string `gorm:"column:leasePurpose" json:"leasePurpose"`
	Terms            string `gorm:"column:terms" json:"terms"`
	ContractStatus   string `gorm:"column:contractStatus" json:"contractStatus"`
	ApprovalStatus   string `gorm:"column:approvalStatus" json:"approvalStatus"`

	PaymentSchedule []PaymentSchedule `gorm:"foreignKey:ContractID" json:"paymentSchedule"`
	Documents       []Document        `gorm:"foreignKey:ContractID" json:"documents"`
}

func (LeaseContract) TableName() string { return "leaseContracts" }

// PaymentSchedule is one due installment of a contract. Rows are server-side
// children: ids are generated on insert, amounts stored as text.
type PaymentSchedule struct {
	ID         string `gorm:"column:id;primaryKey" json:"id"`
	ContractID string `gorm:"column:contractId;index" json:"contractId"`
	DueDate    string `gorm:"column:dueDate" json:"dueDate"`
	Amount     string `gorm:"column:amount" json:"amount"`
}

func (PaymentSchedule) TableName() string { return "paymentSchedules" }
