package domain

import (
	"fmt"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/cycle"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DefaultCycleLength    = 28
	DefaultPeriodDuration = 5

	MaxCycleLength    = 120
	MaxPeriodDuration = 30
)

// Condition is a health condition tag attached to an entry.
// @Description Health condition tag.
type Condition string

const (
	ConditionNone            Condition = "none"
	ConditionPCOS            Condition = "pcos"
	ConditionEndometriosis   Condition = "endometriosis"
	ConditionAnemia          Condition = "anemia"
	ConditionThyroidDisorder Condition = "thyroid_disorder"
	ConditionStress          Condition = "stress"
	ConditionOther           Condition = "other"
)

// Conditions lists every accepted condition tag.
var Conditions = []Condition{
	ConditionNone,
	ConditionPCOS,
	ConditionEndometriosis,
	ConditionAnemia,
	ConditionThyroidDisorder,
	ConditionStress,
	ConditionOther,
}

func (c Condition) Valid() bool {
	for _, known := range Conditions {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeConditions drops duplicates, keeping first-seen order. "none" is
// dropped when any other tag is present; an empty set becomes ["none"].
func NormalizeConditions(in []Condition) []Condition {
	seen := make(map[Condition]bool, len(in))
	out := make([]Condition, 0, len(in))
	for _, c := range in {
		if c == ConditionNone || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) == 0 {
		return []Condition{ConditionNone}
	}
	return out
}

// Source records where an entry came from.
// @Description Provenance of a period entry.
type Source string

const (
	SourceManual    Source = "manual"
	SourceImported  Source = "imported"
	SourcePredicted Source = "predicted"
)

type PeriodEntry struct {
	ID              uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID                      `gorm:"type:uuid;not null;index:idx_period_entries_user_date;uniqueIndex:idx_period_entries_user_client_request" json:"user_id"`
	LastPeriodDate  time.Time                      `gorm:"type:date;not null;index:idx_period_entries_user_date,sort:desc" json:"last_period_date"`
	CycleLength     int                            `gorm:"not null;default:28" json:"cycle_length"`
	PeriodDuration  int                            `gorm:"not null;default:5" json:"period_duration"`
	Conditions      datatypes.JSONSlice[Condition] `gorm:"not null" json:"conditions"`
	Notes           *string                        `gorm:"type:text" json:"notes,omitempty"`
	Source          Source                         `gorm:"type:varchar(16);not null;default:'manual'" json:"source"`
	ClientRequestID *string                        `gorm:"type:varchar(255);uniqueIndex:idx_period_entries_user_client_request" json:"client_request_id,omitempty"`
	CreatedAt       time.Time                      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                      `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PeriodEntry) TableName() string {
	return "period_entries"
}

func (e *PeriodEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Validate checks the invariants predictions rely on.
func (e *PeriodEntry) Validate() error {
	if e.LastPeriodDate.IsZero() {
		return fmt.Errorf("%w: last_period_date is required", ErrInvalidInput)
	}
	if e.CycleLength < 1 || e.CycleLength > MaxCycleLength {
		return fmt.Errorf("%w: cycle_length must be between 1 and %d", ErrInvalidInput, MaxCycleLength)
	}
	if e.PeriodDuration < 1 || e.PeriodDuration > MaxPeriodDuration {
		return fmt.Errorf("%w: period_duration must be between 1 and %d", ErrInvalidInput, MaxPeriodDuration)
	}
	for _, c := range e.Conditions {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown condition %q", ErrInvalidInput, c)
		}
	}
	return nil
}

// CycleEntry exposes the fields the predictor works on.
func (e *PeriodEntry) CycleEntry() cycle.Entry {
	return cycle.Entry{
		LastPeriodDate: e.LastPeriodDate,
		CycleLength:    e.CycleLength,
		PeriodDuration: e.PeriodDuration,
		RecordedAt:     e.CreatedAt,
	}
}

// CycleEntries converts stored entries for the overlay builder.
func CycleEntries(entries []PeriodEntry) []cycle.Entry {
	out := make([]cycle.Entry, len(entries))
	for i := range entries {
		out[i] = entries[i].CycleEntry()
	}
	return out
}

// CreatePeriodEntryRequest is the request body for recording a period.
// @Description Request payload for recording a period start.
type CreatePeriodEntryRequest struct {
	// First day of the most recent period (YYYY-MM-DD)
	LastPeriodDate string `json:"last_period_date" validate:"required,datetime=2006-01-02" example:"2024-01-01"`
	// Days between period starts (defaults to 28)
	CycleLength *int `json:"cycle_length,omitempty" validate:"omitempty,min=1,max=120" example:"28" minimum:"1" maximum:"120"`
	// Days of bleeding (defaults to 5)
	PeriodDuration *int `json:"period_duration,omitempty" validate:"omitempty,min=1,max=30" example:"5" minimum:"1" maximum:"30"`
	// Health condition tags
	Conditions []Condition `json:"conditions,omitempty" validate:"omitempty,max=7,dive,condition" example:"stress"`
	// Free-text notes
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	// Provenance: manual, imported or predicted (defaults to manual)
	Source *Source `json:"source,omitempty" validate:"omitempty,oneof=manual imported predicted" example:"manual" enums:"manual,imported,predicted"`
	// Optional client-generated ID for idempotent requests (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
}

// UpdatePeriodEntryRequest is the request body for editing an entry. Omitted fields are unchanged.
// @Description Partial update of a period entry.
type UpdatePeriodEntryRequest struct {
	LastPeriodDate *string      `json:"last_period_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-02"`
	CycleLength    *int         `json:"cycle_length,omitempty" validate:"omitempty,min=1,max=120" example:"30"`
	PeriodDuration *int         `json:"period_duration,omitempty" validate:"omitempty,min=1,max=30" example:"4"`
	Conditions     *[]Condition `json:"conditions,omitempty" validate:"omitempty,max=7,dive,condition"`
	Notes          *string      `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Source         *Source      `json:"source,omitempty" validate:"omitempty,oneof=manual imported predicted"`
}

// PeriodEntryResponse is the response body for entry endpoints.
// @Description Period entry with the prediction derived from it.
type PeriodEntryResponse struct {
	ID              uuid.UUID        `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID          uuid.UUID        `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	LastPeriodDate  string           `json:"last_period_date" example:"2024-01-01"`
	CycleLength     int              `json:"cycle_length" example:"28"`
	PeriodDuration  int              `json:"period_duration" example:"5"`
	Conditions      []Condition      `json:"conditions"`
	Notes           *string          `json:"notes,omitempty"`
	Source          Source           `json:"source" example:"manual"`
	ClientRequestID *string          `json:"client_request_id,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Prediction      cycle.Prediction `json:"prediction"`
}

func (e *PeriodEntry) ToResponse() PeriodEntryResponse {
	conditions := []Condition(e.Conditions)
	if conditions == nil {
		conditions = []Condition{}
	}
	return PeriodEntryResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		LastPeriodDate:  e.LastPeriodDate.Format(cycle.DateLayout),
		CycleLength:     e.CycleLength,
		PeriodDuration:  e.PeriodDuration,
		Conditions:      conditions,
		Notes:           e.Notes,
		Source:          e.Source,
		ClientRequestID: e.ClientRequestID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		Prediction:      cycle.CalculatePeriodStats(e.CycleEntry()),
	}
}

// PeriodEntryListResponse is the response body for listing entries.
// @Description Paginated list of period entries, latest first.
type PeriodEntryListResponse struct {
	Data       []PeriodEntryResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// PeriodEntryFilter contains filter parameters for listing entries
type PeriodEntryFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// PeriodEntryStats aggregates a user's entries.
// @Description Entry count and averages.
type PeriodEntryStats struct {
	Count             int64   `json:"count" example:"6"`
	AvgCycleLength    float64 `json:"avg_cycle_length" example:"28.5"`
	AvgPeriodDuration float64 `json:"avg_period_duration" example:"4.8"`
}
