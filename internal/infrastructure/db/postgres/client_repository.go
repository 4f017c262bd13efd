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

const clientColumns = `nome, cpf, telefone, email, senha, data_nascimento, genero`

// ClientRepository stores clients in the usuario table.
type ClientRepository struct {
	db *Provider
}

func NewClientRepository(db *Provider) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	return r.queryOne(ctx, "insert client",
		`INSERT INTO usuario (`+clientColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+clientColumns,
		c.Name, c.CPF, c.Phone, c.Email, c.PasswordHash, pgDate(c.BirthDate), c.Gender,
	)
}

func (r *ClientRepository) FindByCPF(ctx context.Context, cpf string) (*domain.Client, error) {
	return r.queryOne(ctx, "find client",
		`SELECT `+clientColumns+` FROM usuario WHERE cpf = $1`, cpf)
}

func (r *ClientRepository) Replace(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	return r.queryOne(ctx, "update client",
		`UPDATE usuario
		 SET nome = $1, telefone = $2, email = $3, senha = $4, data_nascimento = $5, genero = $6
		 WHERE cpf = $7
		 RETURNING `+clientColumns,
		c.Name, c.Phone, c.Email, c.PasswordHash, pgDate(c.BirthDate), c.Gender, c.CPF,
	)
}

// Delete removes the client unless appointments still reference it.
func (r *ClientRepository) Delete(ctx context.Context, cpf string) (*domain.Client, error) {
	return r.queryOne(ctx, "delete client",
		`DELETE FROM usuario WHERE cpf = $1 RETURNING `+clientColumns, cpf)
}

func (r *ClientRepository) queryOne(ctx context.Context, op, sql string, args ...any) (*domain.Client, error) {
	var c domain.Client
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		var err error
		c, err = scanClient(conn.QueryRow(ctx, sql, args...))
		return clientError(op, err)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanClient(row pgx.Row) (domain.Client, error) {
	var (
		c                               domain.Client
		nome, telefone, email, senha, g pgtype.Text
		nascimento                      pgtype.Date
	)
	if err := row.Scan(&nome, &c.CPF, &telefone, &email, &senha, &nascimento, &g); err != nil {
		return c, err
	}
	c.Name = nome.String
	c.Phone = telefone.String
	c.Email = email.String
	c.PasswordHash = senha.String
	c.BirthDate = date(nascimento)
	c.Gender = g.String
	return c, nil
}

func clientError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrClientNotFound
	case pgCode(err) == codeUniqueViolation && pgConstraint(err) == constraintClientPK:
		return domain.ErrClientExists
	case pgCode(err) == codeUniqueViolation:
		return domain.ErrEmailInUse
	case pgCode(err) == codeForeignKeyViolation:
		return domain.ErrClientHasAppointments
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
