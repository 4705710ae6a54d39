package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrGetDepartureDetailsQueryIsNotConstructed = errors.New(
		"GetDepartureDetailsQuery must be created via NewGetDepartureDetailsQuery constructor",
	)
)

// GetDepartureDetailsQuery reads one departure with its derived financials,
// expense ledger and carrier history.
type GetDepartureDetailsQuery struct {
	departureID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDepartureDetailsQuery creates a query for a departure's detail view.
func NewGetDepartureDetailsQuery(departureID kernel.UUID) (GetDepartureDetailsQuery, error) {
	if err := departureID.Validate(); err != nil {
		return GetDepartureDetailsQuery{}, err
	}

	return GetDepartureDetailsQuery{departureID: departureID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDepartureDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetDepartureDetailsQueryIsNotConstructed)
}

// DepartureID returns the departure being inspected.
func (q GetDepartureDetailsQuery) DepartureID() kernel.UUID {
	return q.departureID
}

// ExpenseLine is one ledger entry in the detail view.
type ExpenseLine struct {
	ID          kernel.UUID
	Category    string
	Description string
	Amount      float64
	Date        time.Time
}

// CarrierLine is one carrier leg in the detail view. An open leg has no To
// and no FinalStatus.
type CarrierLine struct {
	Carrier      string
	TrackingCode string
	IsFinalLeg   bool
	From         time.Time
	To           *time.Time
	FinalStatus  string
}

// GetDepartureDetailsQueryResponse is the full departure detail view.
// MarginPercent is nil when revenue is zero: undefined, rendered as an
// em-dash, never a division by zero.
type GetDepartureDetailsQueryResponse struct {
	ID                 kernel.UUID
	OriginCountry      string
	OriginCity         string
	DestinationCountry string
	Transport          string
	ScheduledAt        time.Time
	DurationDays       int
	Notes              string
	NotifyClients      bool
	Status             string
	DepartedAt         *time.Time
	Notified           bool
	NotifiedAt         *time.Time
	Version            int

	ParcelCount   int
	TotalWeightKg float64
	DaysRemaining int

	Revenue       float64
	ExpenseTotal  float64
	Gain          float64
	MarginPercent *float64

	Expenses []ExpenseLine
	Carriers []CarrierLine
}
