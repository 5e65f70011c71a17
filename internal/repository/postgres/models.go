package postgres

import "numberwise-dashboard/internal/domain"

// Фиксированная компания, которая должна существовать всегда
const (
	DefaultCompanyName   = "Numberwise"
	DefaultCompanyDomain = "numberwise.nl"
)

// Учетная запись администратора для демо-стенда
const (
	DemoAdminEmail     = "admin@numberwise.nl"
	DemoAdminFirstName = "Numberwise"
	DemoAdminLastName  = "Admin"
)

// demoStatusLimit - сколько клиентов без статусов заполняются за один прогон
const demoStatusLimit = 5

// DemoClients - демо-клиенты, CompanyID проставляется при вставке
var DemoClients = []domain.Client{
	{Name: "ABC Manufacturing Ltd", ContactEmail: strPtr("finance@abcmanufacturing.nl"), AccountingSystem: domain.AccountingExactOnline},
	{Name: "XYZ Services BV", ContactEmail: strPtr("admin@xyzservices.nl"), AccountingSystem: domain.AccountingSnelStart},
	{Name: "Tech Solutions Pro", ContactEmail: strPtr("accounting@techsolutions.nl"), AccountingSystem: domain.AccountingExactOnline},
	{Name: "Green Energy Partners", ContactEmail: strPtr("info@greenenergy.nl"), AccountingSystem: domain.AccountingSnelStart},
	{Name: "Retail Excellence BV", ContactEmail: strPtr("finance@retailexcellence.nl"), AccountingSystem: domain.AccountingExactOnline},
}

// counterRange - полуинтервал [Min, Min+Span) для случайного счетчика
type counterRange struct {
	Min  int
	Span int
}

var (
	zenvoicesRanges = struct{ Pending, Processing, Ready, Failed counterRange }{
		Pending:    counterRange{0, 10},
		Processing: counterRange{0, 5},
		Ready:      counterRange{0, 15},
		Failed:     counterRange{0, 3},
	}
	accountingRanges = struct{ Pending, Posted, Errors counterRange }{
		Pending: counterRange{0, 8},
		Posted:  counterRange{50, 200},
		Errors:  counterRange{0, 3},
	}
)

func strPtr(s string) *string { return &s }
