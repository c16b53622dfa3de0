package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `
	c.id, c.name, c.mobile, c.location, c.sales_person_id, sp.name, c.created_at, c.updated_at
	FROM customers c JOIN sales_persons sp ON sp.id = c.sales_person_id`

func scanCustomer(row pgx.Row, c *entity.Customer, extra ...any) error {
	dest := append([]any{
		&c.ID, &c.Name, &c.Mobile, &c.Location, &c.SalesPersonID, &c.SalesPersonName, &c.CreatedAt, &c.UpdatedAt,
	}, extra...)
	return row.Scan(dest...)
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, mobile, location, sales_person_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Mobile, customer.Location, customer.SalesPersonID,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, mobile = $3, location = $4, sales_person_id = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Mobile, customer.Location, customer.SalesPersonID, customer.UpdatedAt,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID. Los seguimientos caen en cascada.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un cliente por ID (sin seguimientos).
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var c entity.Customer
	err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` WHERE c.id = $1`, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista clientes por nombre con búsqueda en nombre/móvil y filtro por vendedor.
func (r *CustomerRepo) List(ctx context.Context, f repository.CustomerFilter) ([]*entity.Customer, int, error) {
	query := `SELECT ` + customerColumns + `, COUNT(*) OVER()
		WHERE ($1 = '' OR c.name ILIKE $2 OR c.mobile ILIKE $2)
		  AND ($3 = '' OR c.sales_person_id = $3)
		ORDER BY c.name, c.id
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, f.Search, likePattern(f.Search), f.SalesPersonID, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var (
		list  []*entity.Customer
		total int
	)
	for rows.Next() {
		var c entity.Customer
		if err := scanCustomer(rows, &c, &total); err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// ListWithFollowUps carga todos los clientes con sus seguimientos ordenados por fecha.
// Las dos consultas leen la misma foto de la base.
func (r *CustomerRepo) ListWithFollowUps(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := readSnapshot(ctx, r.q, func(q Querier) error {
		var err error
		customers, err = listWithFollowUps(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func listWithFollowUps(ctx context.Context, q Querier) ([]entity.Customer, error) {
	rows, err := q.Query(ctx, `SELECT `+customerColumns+` ORDER BY c.created_at, c.id`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	var customers []entity.Customer
	index := make(map[string]int)
	for rows.Next() {
		var c entity.Customer
		if err := scanCustomer(rows, &c); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		index[c.ID] = len(customers)
		customers = append(customers, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	fuRows, err := q.Query(ctx, `SELECT `+followUpColumns+` FROM follow_ups ORDER BY follow_up_date, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list follow-ups: %w", err)
	}
	defer fuRows.Close()
	for fuRows.Next() {
		var f entity.FollowUp
		if err := scanFollowUp(fuRows, &f); err != nil {
			return nil, fmt.Errorf("scan follow-up: %w", err)
		}
		if i, ok := index[f.CustomerID]; ok {
			customers[i].FollowUps = append(customers[i].FollowUps, f)
		}
	}
	return customers, fuRows.Err()
}
