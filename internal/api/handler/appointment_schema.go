package handler

import (
	"encoding/json"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
)

// --- Request types ---

// Pointer fields distinguish an absent key from a zero value.

type createAppointmentRequest struct {
	CPF     *string      `json:"cpf"     validate:"required,cpf"`
	Hora    *string      `json:"hora"    validate:"required,timeofday"`
	Data    *string      `json:"data"    validate:"required,datetime=2006-01-02"`
	Valor   *json.Number `json:"valor"   validate:"required,amount"`
	Servico *string      `json:"servico" validate:"required,max=100"`
}

type updateAppointmentRequest struct {
	CPF     *string      `json:"cpf"     validate:"omitempty,cpf"`
	Hora    *string      `json:"hora"    validate:"omitempty,timeofday"`
	Data    *string      `json:"data"    validate:"omitempty,datetime=2006-01-02"`
	Valor   *json.Number `json:"valor"   validate:"omitempty,amount"`
	Servico *string      `json:"servico" validate:"omitempty,max=100"`
}

// --- Response types ---

type appointmentResponse struct {
	ID      int64            `json:"Id_Agendamento"`
	CPF     string           `json:"CPF"`
	Hora    domain.TimeOfDay `json:"Hora_Agendamento"`
	Data    domain.Date      `json:"Data_Agendamento"`
	Valor   domain.Amount    `json:"Valor"`
	Servico string           `json:"Servico"`
}

type createAppointmentResponse struct {
	ID int64 `json:"id_agendamento"`
}

type ownerResponse struct {
	CPF string `json:"CPF"`
}

type messageResponse struct {
	Message string `json:"message"`
}
