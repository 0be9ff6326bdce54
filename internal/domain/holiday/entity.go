package holiday

import "time"

type HolidayType string

const (
	TypeUAEOfficial HolidayType = "uae_official"
	TypeCompany     HolidayType = "company"
	TypeOptional    HolidayType = "optional"
)

func (t HolidayType) Valid() bool {
	switch t {
	case TypeUAEOfficial, TypeCompany, TypeOptional:
		return true
	}
	return false
}

// Holiday is a paid or unpaid holiday spanning an inclusive date range.
// Multi-day holidays (Eid breaks) are single rows. Rows are never deleted,
// only deactivated.
type Holiday struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Year      int
	Type      HolidayType
	IsPaid    bool
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
