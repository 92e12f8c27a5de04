package domain

// UserCompanyRole is the role a user holds within a company.
type UserCompanyRole string

const (
	RoleAdmin    UserCompanyRole = "ADMIN"
	RoleMember   UserCompanyRole = "MEMBER"
	RoleReadOnly UserCompanyRole = "READONLY"
)

// Company scopes every ledger entity. Branch/point-of-sale CRUD lives outside
// the core; the core only needs the scoping identifier.
type Company struct {
	CompanyID   string `json:"companyID"`
	Name        string `json:"name"`
	TaxID       string `json:"taxID,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
