package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/pkg/dbmetrics"
	"github.com/barberhq/scheduling-service/pkg/psqlbuilder"
)

// pq: unique_violation
const uniqueViolationCode = "23505"

// detailsColumns колонки денормализованного представления записи
var detailsColumns = []string{
	"a.id",
	"a.client_name",
	"a.client_phone",
	"a.service_id",
	"a.professional_id",
	"a.appointment_date",
	"a.status",
	"a.total_value",
	"a.created_at",
	"a.updated_at",
	"s.name AS service_name",
	"s.description AS service_description",
	"s.price AS service_price",
	"s.duration AS service_duration",
	"p.name AS professional_name",
}

// Repository репозиторий записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись. Если в контексте есть активная транзакция,
// выполняется внутри неё — usecase создания оборачивает проверку слота
// и вставку в одну сериализуемую транзакцию.
func (r *Repository) Create(ctx context.Context, ap *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_name",
			"client_phone",
			"service_id",
			"professional_id",
			"appointment_date",
			"status",
			"total_value",
		).
		Values(
			ap.ClientName,
			ap.ClientPhone,
			ap.ServiceID,
			ap.ProfessionalID,
			ap.AppointmentDate,
			ap.Status,
			ap.TotalValue,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ap.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	ap.CreatedAt = createdAt.Time
	ap.UpdatedAt = updatedAt.Time

	return ap, nil
}

// GetByID получает сырую строку записи без присоединённых полей
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_name",
		"client_phone",
		"service_id",
		"professional_id",
		"appointment_date",
		"status",
		"total_value",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var ap domain.Appointment
	var professionalID sql.NullInt64

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ap.ID,
		&ap.ClientName,
		&ap.ClientPhone,
		&ap.ServiceID,
		&professionalID,
		&ap.AppointmentDate,
		&ap.Status,
		&ap.TotalValue,
		&ap.CreatedAt,
		&ap.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	if professionalID.Valid {
		ap.ProfessionalID = &professionalID.Int64
	}

	return &ap, nil
}

// GetDetailsByID получает запись вместе с полями услуги и мастера
func (r *Repository) GetDetailsByID(ctx context.Context, id int64) (*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.detailsBuilder().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details, err := r.scanDetails(rows)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrAppointmentNotFound
	}

	return details[0], nil
}

// List получает записи с присоединёнными полями, опционально фильтруя
// по календарной дате и мастеру. Сортировка по времени записи.
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.detailsBuilder()

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(
			squirrel.Expr("DATE(a.appointment_date) = ?", filter.Date.Format(domain.DateFormat)),
		)
	}
	if filter.ProfessionalID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.professional_id": *filter.ProfessionalID})
	}

	query, args, err := selectBuilder.
		OrderBy("a.appointment_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDetails(rows)
}

// CountConflicts подсчитывает не отменённые записи, занимающие слот.
// Слот определяется точным совпадением appointment_date; если указан
// мастер, учитываются только его записи, иначе любые записи на этот
// момент времени. Внутри транзакции строки блокируются FOR UPDATE,
// чтобы параллельное создание на тот же слот не прошло проверку.
func (r *Repository) CountConflicts(ctx context.Context, q domain.SlotQuery) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("appointments").
		Where(squirrel.Eq{"appointment_date": q.Date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled})

	if q.ProfessionalID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": *q.ProfessionalID})
	}
	if q.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *q.ExcludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountConflicts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountConflicts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("%w: CountConflicts - scan id: %v", ErrScanRow, err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountConflicts - rows error: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByServiceID подсчитывает записи, ссылающиеся на услугу.
// Используется при удалении услуги для защиты ссылочной целостности.
func (r *Repository) CountByServiceID(ctx context.Context, serviceID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByServiceID - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByServiceID - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update сохраняет уже слитую в usecase строку записи целиком
func (r *Repository) Update(ctx context.Context, ap *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("client_name", ap.ClientName).
		Set("client_phone", ap.ClientPhone).
		Set("service_id", ap.ServiceID).
		Set("professional_id", ap.ProfessionalID).
		Set("appointment_date", ap.AppointmentDate).
		Set("status", ap.Status).
		Set("total_value", ap.TotalValue).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ap.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete физически удаляет запись
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// DistinctDates получает календарные даты, на которые есть хотя бы
// одна запись, в диапазоне [start, end] включительно
func (r *Repository) DistinctDates(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT DATE(appointment_date) AS date").
		From("appointments").
		Where(squirrel.Expr(
			"DATE(appointment_date) BETWEEN ? AND ?",
			start.Format(domain.DateFormat),
			end.Format(domain.DateFormat),
		)).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DistinctDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DistinctDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: DistinctDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DistinctDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

func (r *Repository) detailsBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(detailsColumns...).
		From("appointments a").
		Join("services s ON s.id = a.service_id").
		LeftJoin("professionals p ON p.id = a.professional_id")
}

// scanDetails сканирует результаты запроса в слайс записей с деталями
func (r *Repository) scanDetails(rows *sql.Rows) ([]*domain.AppointmentDetails, error) {
	details := make([]*domain.AppointmentDetails, 0)

	for rows.Next() {
		var d domain.AppointmentDetails
		var professionalID sql.NullInt64
		var professionalName sql.NullString

		err := rows.Scan(
			&d.ID,
			&d.ClientName,
			&d.ClientPhone,
			&d.ServiceID,
			&professionalID,
			&d.AppointmentDate,
			&d.Status,
			&d.TotalValue,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.ServiceName,
			&d.ServiceDescription,
			&d.ServicePrice,
			&d.ServiceDuration,
			&professionalName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDetails - scan row: %v", ErrScanRow, err)
		}

		if professionalID.Valid {
			d.ProfessionalID = &professionalID.Int64
		}
		if professionalName.Valid {
			d.ProfessionalName = &professionalName.String
		}

		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetails - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
