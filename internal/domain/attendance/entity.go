package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

// OvertimeType is the employee's overtime policy applied to the day:
// paid policy accrues an amount, offset policy accrues compensatory hours.
type OvertimeType string

const (
	OvertimeNone   OvertimeType = "none"
	OvertimePaid   OvertimeType = "paid"
	OvertimeOffset OvertimeType = "offset"
)

type WorkType string

const (
	WorkTypeOffice WorkType = "office"
	WorkTypeRemote WorkType = "remote"
	WorkTypeField  WorkType = "field"
)

// Work locations are a fixed set; the timesheet keeps a per-location day
// breakdown over exactly these names.
const (
	LocationHeadOffice   = "Head Office"
	LocationKEZAD        = "KEZAD"
	LocationSafario      = "Safario"
	LocationSites        = "Sites"
	LocationMeeting      = "Meeting"
	LocationEvent        = "Event"
	LocationWorkFromHome = "Work From Home"
)

// WorkLocations lists the fixed location set in breakdown order.
var WorkLocations = []string{
	LocationHeadOffice,
	LocationKEZAD,
	LocationSafario,
	LocationSites,
	LocationMeeting,
	LocationEvent,
	LocationWorkFromHome,
}

// Record is one employee-day of attendance. Capture (clock times, GPS) is
// owned by the capture surface; the classification fields below the status
// block are written by this engine and frozen once the owning month's
// timesheet is submitted.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time

	ClockIn         *time.Time
	ClockOut        *time.Time
	ClockInLat      *decimal.Decimal
	ClockInLon      *decimal.Decimal
	ClockInAddress  *string
	ClockOutLat     *decimal.Decimal
	ClockOutLon     *decimal.Decimal
	ClockOutAddress *string

	WorkLocation *string
	WorkType     WorkType
	Status       Status

	// Classification (engine-owned)
	OvertimeType          OvertimeType
	RegularHours          decimal.Decimal
	OvertimeHours         decimal.Decimal
	IsNightOvertime       bool
	IsHolidayOvertime     bool
	OvertimeAmount        decimal.Decimal
	OffsetHoursEarned     decimal.Decimal
	FoodAllowanceEligible bool
	FoodAllowanceAmount   decimal.Decimal

	IsLate                bool
	LateMinutes           int
	IsEarlyDeparture      bool
	EarlyDepartureMinutes int

	// Compliance breach flags (engine-owned)
	ExceedsDailyLimit    bool
	ExceedsOvertimeLimit bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
