package facility

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrFacilityNotFound = errors.New("facility not found")

const facilityColumns = `id, community_id, name, description, mode, opening_hours,
	slot_duration_minutes, capacity_per_slot, buffer_minutes, max_advance_days,
	max_active_bookings, requires_approval, fee_amount_cents, fee_currency,
	fee_deposit_cents, cancellation_notice_hours, created_at, updated_at`

type facilityRow struct {
	ID                      uuid.UUID      `db:"id"`
	CommunityID             uuid.UUID      `db:"community_id"`
	Name                    string         `db:"name"`
	Description             string         `db:"description"`
	Mode                    string         `db:"mode"`
	OpeningHours            WeeklyHours    `db:"opening_hours"`
	SlotDurationMinutes     int            `db:"slot_duration_minutes"`
	CapacityPerSlot         int            `db:"capacity_per_slot"`
	BufferMinutes           int            `db:"buffer_minutes"`
	MaxAdvanceDays          int            `db:"max_advance_days"`
	MaxActiveBookings       int            `db:"max_active_bookings"`
	RequiresApproval        bool           `db:"requires_approval"`
	FeeAmountCents          sql.NullInt64  `db:"fee_amount_cents"`
	FeeCurrency             sql.NullString `db:"fee_currency"`
	FeeDepositCents         sql.NullInt64  `db:"fee_deposit_cents"`
	CancellationNoticeHours int            `db:"cancellation_notice_hours"`
	CreatedAt               time.Time      `db:"created_at"`
	UpdatedAt               time.Time      `db:"updated_at"`
}

func (r facilityRow) toFacility() *Facility {
	cfg := Config{
		Mode:                    Mode(r.Mode),
		OpeningHours:            r.OpeningHours,
		SlotDurationMinutes:     r.SlotDurationMinutes,
		CapacityPerSlot:         r.CapacityPerSlot,
		BufferMinutes:           r.BufferMinutes,
		MaxAdvanceDays:          r.MaxAdvanceDays,
		MaxActiveBookings:       r.MaxActiveBookings,
		RequiresApproval:        r.RequiresApproval,
		CancellationNoticeHours: r.CancellationNoticeHours,
	}
	if r.FeeAmountCents.Valid {
		fee := &Fee{AmountCents: r.FeeAmountCents.Int64, Currency: r.FeeCurrency.String}
		if r.FeeDepositCents.Valid {
			deposit := r.FeeDepositCents.Int64
			fee.DepositCents = &deposit
		}
		cfg.Fee = fee
	}

	return &Facility{
		ID:          r.ID,
		CommunityID: r.CommunityID,
		Name:        r.Name,
		Description: r.Description,
		Config:      cfg,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func feeColumns(fee *Fee) (sql.NullInt64, sql.NullString, sql.NullInt64) {
	if fee == nil {
		return sql.NullInt64{}, sql.NullString{}, sql.NullInt64{}
	}
	deposit := sql.NullInt64{}
	if fee.DepositCents != nil {
		deposit = sql.NullInt64{Int64: *fee.DepositCents, Valid: true}
	}
	return sql.NullInt64{Int64: fee.AmountCents, Valid: true},
		sql.NullString{String: fee.Currency, Valid: true},
		deposit
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateFacility(ctx context.Context, f *Facility) (*Facility, error) {
	query := `
		INSERT INTO facilities (id, community_id, name, description, mode, opening_hours,
			slot_duration_minutes, capacity_per_slot, buffer_minutes, max_advance_days,
			max_active_bookings, requires_approval, fee_amount_cents, fee_currency,
			fee_deposit_cents, cancellation_notice_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + facilityColumns

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	cfg := f.Config
	amount, currency, deposit := feeColumns(cfg.Fee)

	var row facilityRow
	err := r.db.GetContext(ctx, &row, query,
		f.ID, f.CommunityID, f.Name, f.Description, string(cfg.Mode), cfg.OpeningHours,
		cfg.SlotDurationMinutes, cfg.CapacityPerSlot, cfg.BufferMinutes, cfg.MaxAdvanceDays,
		cfg.MaxActiveBookings, cfg.RequiresApproval, amount, currency,
		deposit, cfg.CancellationNoticeHours,
	)
	if err != nil {
		return nil, err
	}

	return row.toFacility(), nil
}

func (r *repository) GetFacilityByID(ctx context.Context, id uuid.UUID) (*Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities WHERE id = $1`

	var row facilityRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}

	return row.toFacility(), nil
}

func (r *repository) ListFacilities(ctx context.Context, communityID *uuid.UUID) ([]Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities`
	args := []interface{}{}

	if communityID != nil {
		query += ` WHERE community_id = $1`
		args = append(args, *communityID)
	}

	query += ` ORDER BY name ASC`

	var rows []facilityRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	facilities := make([]Facility, 0, len(rows))
	for _, row := range rows {
		facilities = append(facilities, *row.toFacility())
	}
	return facilities, nil
}

func (r *repository) UpdateConfig(ctx context.Context, id uuid.UUID, cfg Config) (*Facility, error) {
	query := `
		UPDATE facilities
		SET mode = $2, opening_hours = $3, slot_duration_minutes = $4, capacity_per_slot = $5,
			buffer_minutes = $6, max_advance_days = $7, max_active_bookings = $8,
			requires_approval = $9, fee_amount_cents = $10, fee_currency = $11,
			fee_deposit_cents = $12, cancellation_notice_hours = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + facilityColumns

	amount, currency, deposit := feeColumns(cfg.Fee)

	var row facilityRow
	err := r.db.GetContext(ctx, &row, query,
		id, string(cfg.Mode), cfg.OpeningHours, cfg.SlotDurationMinutes, cfg.CapacityPerSlot,
		cfg.BufferMinutes, cfg.MaxAdvanceDays, cfg.MaxActiveBookings,
		cfg.RequiresApproval, amount, currency,
		deposit, cfg.CancellationNoticeHours,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}

	return row.toFacility(), nil
}
