package bookingcache

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
	"github.com/m04kA/SMC-ParkingGateway/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"parking_spot_id",
	"start_time",
	"end_time",
	"status",
	"total_amount",
	"service_fee",
	"owner_payout",
	"payment_status",
	"vehicle_plate",
	"vehicle_make",
	"vehicle_model",
	"vehicle_color",
	"special_requests",
	"cancellation_reason",
	"checked_in_at",
	"checked_out_at",
	"created_at",
	"updated_at",
}

// Repository локальное зеркало бронирований, полученных от ParkingCore.
// Записи никогда не удаляются, история бронирований сохраняется локально.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория зеркала бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет серверное представление бронирования, целиком замещая
// предыдущую закэшированную копию с тем же ID
func (r *Repository) Upsert(ctx context.Context, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Insert("booking_cache").
		Columns(bookingColumns...).
		Values(
			booking.ID,
			booking.UserID,
			booking.ParkingSpotID,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.TotalAmount,
			booking.ServiceFee,
			booking.OwnerPayout,
			booking.PaymentStatus,
			booking.VehiclePlate,
			booking.VehicleMake,
			booking.VehicleModel,
			booking.VehicleColor,
			booking.SpecialRequests,
			booking.CancellationReason,
			booking.CheckedInAt,
			booking.CheckedOutAt,
			booking.CreatedAt,
			booking.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			parking_spot_id = EXCLUDED.parking_spot_id,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			status = EXCLUDED.status,
			total_amount = EXCLUDED.total_amount,
			service_fee = EXCLUDED.service_fee,
			owner_payout = EXCLUDED.owner_payout,
			payment_status = EXCLUDED.payment_status,
			vehicle_plate = EXCLUDED.vehicle_plate,
			vehicle_make = EXCLUDED.vehicle_make,
			vehicle_model = EXCLUDED.vehicle_model,
			vehicle_color = EXCLUDED.vehicle_color,
			special_requests = EXCLUDED.special_requests,
			cancellation_reason = EXCLUDED.cancellation_reason,
			checked_in_at = EXCLUDED.checked_in_at,
			checked_out_at = EXCLUDED.checked_out_at,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID получает закэшированное бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("booking_cache").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return booking, nil
}

// ListByUser получает историю бронирований пользователя из зеркала.
// Опционально фильтрует по статусу.
func (r *Repository) ListByUser(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("booking_cache").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListActive получает все незавершённые бронирования из зеркала.
// Используется фоновым обновлением для опроса ParkingCore.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("booking_cache").
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		OrderBy("updated_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ParkingSpotID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.TotalAmount,
		&booking.ServiceFee,
		&booking.OwnerPayout,
		&booking.PaymentStatus,
		&booking.VehiclePlate,
		&booking.VehicleMake,
		&booking.VehicleModel,
		&booking.VehicleColor,
		&booking.SpecialRequests,
		&booking.CancellationReason,
		&booking.CheckedInAt,
		&booking.CheckedOutAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}
