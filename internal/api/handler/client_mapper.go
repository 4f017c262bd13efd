package handler

import (
	"github.com/cabeleireiro/agenda-api/internal/core/domain"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
)

func toCreateClientInput(req createClientRequest) (ports.ClientInput, error) {
	birth, err := domain.ParseDate(*req.DataNascimento)
	if err != nil {
		return ports.ClientInput{}, err
	}
	return ports.ClientInput{
		CPF:       *req.CPF,
		Name:      *req.Nome,
		Phone:     *req.Telefone,
		Email:     *req.Email,
		Password:  *req.Senha,
		BirthDate: birth,
		Gender:    *req.Genero,
	}, nil
}

func toReplaceClientInput(cpf string, req updateClientRequest) (ports.ClientInput, error) {
	birth, err := domain.ParseDate(*req.DataNascimento)
	if err != nil {
		return ports.ClientInput{}, err
	}
	return ports.ClientInput{
		CPF:       cpf,
		Name:      *req.Nome,
		Phone:     *req.Telefone,
		Email:     *req.Email,
		Password:  *req.Senha,
		BirthDate: birth,
		Gender:    *req.Genero,
	}, nil
}

func toClientResponse(c *domain.Client) clientResponse {
	resp := clientResponse{
		Nome:     c.Name,
		CPF:      c.CPF,
		Telefone: c.Phone,
		Email:    c.Email,
		Genero:   c.Gender,
	}
	if !c.BirthDate.IsZero() {
		s := c.BirthDate.String()
		resp.DataNascimento = &s
	}
	return resp
}
