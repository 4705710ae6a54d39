package http

import (
	"time"

	"freight/internal/core/application/usecases/queries"
)

// Error is the JSON error envelope returned by every failing route.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDepartureRequest creates a departure, optionally sweeping matching
// unassigned parcels onto it.
type CreateDepartureRequest struct {
	OriginCountry      string    `json:"originCountry"`
	OriginCity         string    `json:"originCity"`
	DestinationCountry string    `json:"destinationCountry"`
	Transport          string    `json:"transport"`
	ScheduledAt        time.Time `json:"scheduledAt"`
	DurationDays       int       `json:"durationDays"`
	Notes              string    `json:"notes"`
	NotifyClients      bool      `json:"notifyClients"`
	AutoAssign         bool      `json:"autoAssign"`
}

// CreateDepartureResponse reports the new departure and how many parcels the
// auto-assign sweep picked up.
type CreateDepartureResponse struct {
	ID            string `json:"id"`
	AssignedCount int    `json:"assignedCount"`
}

// UpdateDepartureRequest edits a scheduled or departed departure.
// ExpectedVersion carries the version the caller last saw; a stale value is
// rejected with a conflict.
type UpdateDepartureRequest struct {
	OriginCountry      string    `json:"originCountry"`
	OriginCity         string    `json:"originCity"`
	DestinationCountry string    `json:"destinationCountry"`
	Transport          string    `json:"transport"`
	ScheduledAt        time.Time `json:"scheduledAt"`
	DurationDays       int       `json:"durationDays"`
	Notes              string    `json:"notes"`
	ExpectedVersion    int       `json:"expectedVersion"`
}

// NotifyRequest selects the notification channel.
type NotifyRequest struct {
	Target string `json:"target"`
}

// AssignCarrierRequest assigns or replaces the departure's carrier leg.
type AssignCarrierRequest struct {
	Carrier      string `json:"carrier"`
	TrackingCode string `json:"trackingCode"`
	IsFinalLeg   bool   `json:"isFinalLeg"`
	Notify       bool   `json:"notify"`
	NotifyTarget string `json:"notifyTarget"`
}

// RefreshTrackingResponse reports how many parcels advanced.
type RefreshTrackingResponse struct {
	Updated int `json:"updated"`
}

// AssignParcelsRequest assigns a batch of parcels to a departure.
type AssignParcelsRequest struct {
	ParcelIDs []string `json:"parcelIds"`
}

// ScanAssignRequest assigns the parcel identified by a scanned code.
type ScanAssignRequest struct {
	Code string `json:"code"`
}

// CreateParcelRequest registers a parcel at intake.
type CreateParcelRequest struct {
	TrackingCode         string `json:"trackingCode"`
	SupplierTrackingCode string `json:"supplierTrackingCode"`
	ClientRef            string `json:"clientRef"`
	Description          string `json:"description"`
	OriginCountry        string `json:"originCountry"`
	OriginCity           string `json:"originCity"`
	DestinationCountry   string `json:"destinationCountry"`
	Transport            string `json:"transport"`
	PackageType          string `json:"packageType"`
	BillingUnit          string `json:"billingUnit"`
}

// ReceiveParcelRequest records measured values at the warehouse; the billing
// unit picks which one prices the parcel.
type ReceiveParcelRequest struct {
	WeightKg float64 `json:"weightKg"`
	VolumeM3 float64 `json:"volumeM3"`
	Quantity int     `json:"quantity"`
}

// RecordPaymentRequest registers a client payment against a parcel's
// billed amount.
type RecordPaymentRequest struct {
	Amount float64 `json:"amount"`
}

// AddExpenseRequest appends a cost entry to a departure's ledger.
type AddExpenseRequest struct {
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

// Departure is one row of the departure board.
type Departure struct {
	ID                 string     `json:"id"`
	OriginCountry      string     `json:"originCountry"`
	OriginCity         string     `json:"originCity"`
	DestinationCountry string     `json:"destinationCountry"`
	Transport          string     `json:"transport"`
	ScheduledAt        time.Time  `json:"scheduledAt"`
	DurationDays       int        `json:"durationDays"`
	Status             string     `json:"status"`
	DepartedAt         *time.Time `json:"departedAt,omitempty"`
	Notified           bool       `json:"notified"`
	ParcelCount        int        `json:"parcelCount"`
	TotalWeightKg      float64    `json:"totalWeightKg"`
	TotalRevenue       float64    `json:"totalRevenue"`
	DaysRemaining      int        `json:"daysRemaining"`
}

// CarrierLeg is one entry of a departure's carrier history. An open leg has
// no "to" and no final status.
type CarrierLeg struct {
	Carrier      string     `json:"carrier"`
	TrackingCode string     `json:"trackingCode"`
	IsFinalLeg   bool       `json:"isFinalLeg"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	FinalStatus  string     `json:"finalStatus,omitempty"`
}

// Expense is one ledger entry.
type Expense struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

// DepartureDetails is the full departure view with derived financials.
// MarginPercent is null while the departure has no revenue.
type DepartureDetails struct {
	Departure
	Notes         string       `json:"notes"`
	NotifyClients bool         `json:"notifyClients"`
	NotifiedAt    *time.Time   `json:"notifiedAt,omitempty"`
	Version       int          `json:"version"`
	Revenue       float64      `json:"revenue"`
	ExpenseTotal  float64      `json:"expenseTotal"`
	Gain          float64      `json:"gain"`
	MarginPercent *float64     `json:"marginPercent"`
	Expenses      []Expense    `json:"expenses"`
	Carriers      []CarrierLeg `json:"carriers"`
}

// Parcel is one row of a parcel listing.
type Parcel struct {
	ID                   string  `json:"id"`
	TrackingCode         string  `json:"trackingCode"`
	SupplierTrackingCode string  `json:"supplierTrackingCode,omitempty"`
	ClientRef            string  `json:"clientRef"`
	Description          string  `json:"description,omitempty"`
	OriginCountry        string  `json:"originCountry"`
	OriginCity           string  `json:"originCity"`
	DestinationCountry   string  `json:"destinationCountry"`
	Transport            string  `json:"transport"`
	PackageType          string  `json:"packageType"`
	BillingUnit          string  `json:"billingUnit"`
	WeightKg             float64 `json:"weightKg"`
	VolumeM3             float64 `json:"volumeM3"`
	Quantity             int     `json:"quantity"`
	Amount               float64 `json:"amount"`
	PaidAmount           float64 `json:"paidAmount"`
	Status               string  `json:"status"`
	DepartureID          *string `json:"departureId,omitempty"`
}

// PeriodStats is the financial summary of one reporting window.
// MarginPercent and Trend.Percent are null when undefined; the UI renders
// them as an em-dash.
type PeriodStats struct {
	Period         string    `json:"period"`
	WindowStart    time.Time `json:"windowStart"`
	WindowEnd      time.Time `json:"windowEnd"`
	DepartureCount int       `json:"departureCount"`
	Revenue        float64   `json:"revenue"`
	Expenses       float64   `json:"expenses"`
	Gain           float64   `json:"gain"`
	MarginPercent  *float64  `json:"marginPercent"`
	Trend          Trend     `json:"trend"`
}

// Trend is the month-over-month revenue movement. Kind is "undefined",
// "new" or "percent"; Percent is set only for "percent".
type Trend struct {
	Kind    string   `json:"kind"`
	Percent *float64 `json:"percent,omitempty"`
}

func toParcelContract(p queries.GetParcelsQueryResponse) Parcel {
	out := Parcel{
		ID:                   p.ID.String(),
		TrackingCode:         p.TrackingCode,
		SupplierTrackingCode: p.SupplierTrackingCode,
		ClientRef:            p.ClientRef,
		Description:          p.Description,
		OriginCountry:        p.OriginCountry,
		OriginCity:           p.OriginCity,
		DestinationCountry:   p.DestinationCountry,
		Transport:            p.Transport,
		PackageType:          p.PackageType,
		BillingUnit:          p.BillingUnit,
		WeightKg:             p.WeightKg,
		VolumeM3:             p.VolumeM3,
		Quantity:             p.Quantity,
		Amount:               p.Amount,
		PaidAmount:           p.PaidAmount,
		Status:               p.Status,
	}
	if p.DepartureID != nil {
		id := p.DepartureID.String()
		out.DepartureID = &id
	}
	return out
}
