package professional

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/pkg/dbmetrics"
	"github.com/barberhq/scheduling-service/pkg/psqlbuilder"
)

// pq: unique_violation
const uniqueViolationCode = "23505"

var professionalColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает мастера. Набор связанных услуг вставляется отдельным
// вызовом ReplaceServices — сервисный слой объединяет оба в транзакцию.
func (r *Repository) Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professionals").
		Columns("name", "email", "phone", "status").
		Values(p.Name, p.Email, p.Phone, p.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает мастера вместе со списком ID его услуг
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Professional
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}

	serviceIDs, err := r.getServiceIDs(ctx, executor, p.ID)
	if err != nil {
		return nil, err
	}
	p.ServiceIDs = serviceIDs

	return &p, nil
}

// List получает мастеров, отсортированных по имени.
// При onlyActive=true возвращаются только активные мастера.
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.ProfessionalActive})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)
	for rows.Next() {
		var p domain.Professional
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Email,
			&p.Phone,
			&p.Status,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		professionals = append(professionals, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	// Подтягиваем связанные услуги для каждого мастера
	for _, p := range professionals {
		serviceIDs, err := r.getServiceIDs(ctx, executor, p.ID)
		if err != nil {
			return nil, err
		}
		p.ServiceIDs = serviceIDs
	}

	return professionals, nil
}

// EmailExists проверяет занятость email, опционально исключая мастера
// (на обновлении собственный email не считается конфликтом)
func (r *Repository) EmailExists(ctx context.Context, email string, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("professionals").
		Where(squirrel.Eq{"email": email})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: EmailExists - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: EmailExists - scan id: %v", ErrScanRow, err)
	}

	return true, nil
}

// Update применяет частичное обновление полей мастера.
// Набор услуг обновляется отдельно через ReplaceServices.
func (r *Repository) Update(ctx context.Context, id int64, update domain.ProfessionalUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("professionals").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.Email != nil {
		updateBuilder = updateBuilder.Set("email", *update.Email)
	}
	if update.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *update.Phone)
	}
	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrProfessionalNotFound
	}

	return nil
}

// SetStatus переводит мастера в указанный статус (мягкое удаление —
// это SetStatus(inactive); строка из таблицы не удаляется никогда)
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.ProfessionalStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("professionals").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrProfessionalNotFound
	}

	return nil
}

// ReplaceServices заменяет набор связанных услуг целиком:
// удаление всех старых связей и вставка новых. Вызывается только внутри
// транзакции вместе с обновлением строки мастера.
func (r *Repository) ReplaceServices(ctx context.Context, professionalID int64, serviceIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("professional_services").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceServices - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceServices - execute delete: %v", ErrExecQuery, err)
	}

	if len(serviceIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("professional_services").
		Columns("professional_id", "service_id")
	for _, serviceID := range serviceIDs {
		insertBuilder = insertBuilder.Values(professionalID, serviceID)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceServices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) getServiceIDs(ctx context.Context, executor dbmetrics.DBExecutor, professionalID int64) ([]int64, error) {
	query, args, err := psqlbuilder.Select("service_id").
		From("professional_services").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("service_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getServiceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	serviceIDs := make([]int64, 0)
	for rows.Next() {
		var serviceID int64
		if err := rows.Scan(&serviceID); err != nil {
			return nil, fmt.Errorf("%w: getServiceIDs - scan service_id: %v", ErrScanRow, err)
		}
		serviceIDs = append(serviceIDs, serviceID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getServiceIDs - rows error: %v", ErrScanRow, err)
	}

	return serviceIDs, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
