package models

import (
	"gorm.io/gorm"
)

// RevenueHistory is the durable revenue record. Entries are created
// exactly once per booking transition into completed and survive the
// deletion of the booking they reference.
type RevenueHistory struct {
	gorm.Model
	BookingID       uint    `json:"booking_id" gorm:"index"`
	BarberID        uint    `json:"barber_id"`
	ServicePrice    float64 `json:"service_price"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	CustomerName    string  `json:"customer_name"`
	ServiceName     string  `json:"service_name"`
}

// ensureRevenueEntry records the booking's revenue unless an entry
// already exists. A concurrent sweep can race the insert; the unique
// booking_id index makes the loser a no-op.
func ensureRevenueEntry(tx *gorm.DB, b *Booking) error {
	var count int64
	if err := tx.Model(&RevenueHistory{}).Where("booking_id = ?", b.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	entry := RevenueHistory{
		BookingID:       b.ID,
		BarberID:        b.BarberID,
		ServicePrice:    b.ServicePrice,
		AppointmentDate: b.AppointmentDate,
		AppointmentTime: b.AppointmentTime,
		CustomerName:    b.CustomerName,
		ServiceName:     b.ServiceName,
	}
	if err := tx.Create(&entry).Error; err != nil {
		if IsUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

// StatsFilter narrows revenue queries to one barber and/or a date range
// (inclusive, YYYY-MM-DD). Zero values mean no filtering.
type StatsFilter struct {
	BarberID *uint
	FromDate string
	ToDate   string
}

func (f StatsFilter) apply(q *gorm.DB, barberCol, dateCol string) *gorm.DB {
	if f.BarberID != nil {
		q = q.Where(barberCol+" = ?", *f.BarberID)
	}
	if f.FromDate != "" {
		q = q.Where(dateCol+" >= ?", f.FromDate)
	}
	if f.ToDate != "" {
		q = q.Where(dateCol+" <= ?", f.ToDate)
	}
	return q
}

// TotalRevenue sums the ledger plus still-open bookings (neither
// cancelled nor completed) that have no ledger entry yet. The anti-join
// keeps revenue from deleted-but-completed bookings and never counts a
// booking twice.
func TotalRevenue(dbc *gorm.DB, f StatsFilter) (float64, error) {
	var ledger float64
	q := f.apply(dbc.Model(&RevenueHistory{}), "barber_id", "appointment_date").
		Select("COALESCE(SUM(service_price), 0)")
	if err := q.Scan(&ledger).Error; err != nil {
		return 0, err
	}

	var open float64
	sub := dbc.Model(&RevenueHistory{}).Select("booking_id")
	bq := f.apply(dbc.Model(&Booking{}), "barber_id", "appointment_date").
		Select("COALESCE(SUM(service_price), 0)").
		Where("status NOT IN ?", []BookingStatus{StatusCancelled, StatusCompleted}).
		Where("id NOT IN (?)", sub)
	if err := bq.Scan(&open).Error; err != nil {
		return 0, err
	}
	return ledger + open, nil
}

// RevenueTrend is one (date, barber) bucket of ledgered revenue.
type RevenueTrend struct {
	Date     string  `json:"date"`
	BarberID uint    `json:"barber_id"`
	Revenue  float64 `json:"revenue"`
}

// RevenueTrends groups ledgered revenue by appointment date and barber,
// ordered by date.
func RevenueTrends(dbc *gorm.DB, f StatsFilter) ([]RevenueTrend, error) {
	var trends []RevenueTrend
	q := f.apply(dbc.Model(&RevenueHistory{}), "barber_id", "appointment_date").
		Select("appointment_date AS date, barber_id, SUM(service_price) AS revenue").
		Group("appointment_date, barber_id").
		Order("appointment_date")
	if err := q.Scan(&trends).Error; err != nil {
		return nil, err
	}
	return trends, nil
}
