package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
)

const appointmentColumns = `id_agendamento, cpf, hora_agendamento, data_agendamento, valor, servico`

// AppointmentRepository stores appointments in the agendamento table.
type AppointmentRepository struct {
	db *Provider
}

func NewAppointmentRepository(db *Provider) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (int64, error) {
	var id int64
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx,
			`INSERT INTO agendamento (cpf, hora_agendamento, data_agendamento, valor, servico)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id_agendamento`,
			a.ClientCPF, pgTime(a.Time), pgDate(a.Date), numericFromAmount(a.Amount), a.Service,
		).Scan(&id)
		return appointmentWriteError("insert appointment", err)
	})
	return id, err
}

// List returns every appointment ordered by id.
func (r *AppointmentRepository) List(ctx context.Context) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+appointmentColumns+` FROM agendamento ORDER BY id_agendamento`)
		if err != nil {
			return fmt.Errorf("list appointments: %w", err)
		}
		out, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Appointment, error) {
			return scanAppointment(row)
		})
		if err != nil {
			return fmt.Errorf("list appointments: %w", err)
		}
		return nil
	})
	return out, err
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		var err error
		a, err = scanAppointment(conn.QueryRow(ctx,
			`SELECT `+appointmentColumns+` FROM agendamento WHERE id_agendamento = $1`, id))
		return appointmentReadError("find appointment", err)
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindOwnerCPF resolves the CPF of the client joined to the appointment.
func (r *AppointmentRepository) FindOwnerCPF(ctx context.Context, id int64) (string, error) {
	var cpf string
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx,
			`SELECT u.cpf
			 FROM agendamento a
			 JOIN usuario u ON a.cpf = u.cpf
			 WHERE a.id_agendamento = $1`, id,
		).Scan(&cpf)
		return appointmentReadError("find appointment owner", err)
	})
	return cpf, err
}

// Update locks the row, lets mutate merge the new values into it and writes
// all five columns back in the same transaction.
func (r *AppointmentRepository) Update(ctx context.Context, id int64, mutate func(*domain.Appointment)) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		a, err = scanAppointment(tx.QueryRow(ctx,
			`SELECT `+appointmentColumns+` FROM agendamento WHERE id_agendamento = $1 FOR UPDATE`, id))
		if err != nil {
			return appointmentReadError("lock appointment", err)
		}

		mutate(&a)
		a.ID = id

		_, err = tx.Exec(ctx,
			`UPDATE agendamento
			 SET cpf = $1, hora_agendamento = $2, data_agendamento = $3, valor = $4, servico = $5
			 WHERE id_agendamento = $6`,
			a.ClientCPF, pgTime(a.Time), pgDate(a.Date), numericFromAmount(a.Amount), a.Service, id,
		)
		return appointmentWriteError("update appointment", err)
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		var deleted int64
		err := conn.QueryRow(ctx,
			`DELETE FROM agendamento WHERE id_agendamento = $1 RETURNING id_agendamento`, id,
		).Scan(&deleted)
		return appointmentReadError("delete appointment", err)
	})
}

func scanAppointment(row pgx.Row) (domain.Appointment, error) {
	var (
		a       domain.Appointment
		cpf     pgtype.Text
		hora    pgtype.Time
		data    pgtype.Date
		valor   pgtype.Numeric
		servico pgtype.Text
	)
	if err := row.Scan(&a.ID, &cpf, &hora, &data, &valor, &servico); err != nil {
		return a, err
	}
	amount, err := amountFromNumeric(valor)
	if err != nil {
		return a, err
	}

	a.ClientCPF = cpf.String
	a.Time = timeOfDay(hora)
	a.Date = date(data)
	a.Amount = amount
	a.Service = servico.String
	return a, nil
}

func appointmentReadError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrAppointmentNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func appointmentWriteError(op string, err error) error {
	if err != nil && pgCode(err) == codeForeignKeyViolation {
		return domain.ErrUnknownClient
	}
	return appointmentReadError(op, err)
}
