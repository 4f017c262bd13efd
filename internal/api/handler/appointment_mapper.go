package handler

import (
	"github.com/cabeleireiro/agenda-api/internal/core/domain"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
)

// --- Request → Service input ---

// The requests are validated before mapping, so parse errors cannot occur
// for present fields; they are still returned rather than ignored.

func toCreateAppointmentInput(req createAppointmentRequest, idempotencyKey string) (ports.CreateAppointmentInput, error) {
	hora, err := domain.ParseTimeOfDay(*req.Hora)
	if err != nil {
		return ports.CreateAppointmentInput{}, err
	}
	data, err := domain.ParseDate(*req.Data)
	if err != nil {
		return ports.CreateAppointmentInput{}, err
	}
	valor, err := domain.ParseAmount(req.Valor.String())
	if err != nil {
		return ports.CreateAppointmentInput{}, err
	}

	return ports.CreateAppointmentInput{
		ClientCPF:      *req.CPF,
		Time:           hora,
		Date:           data,
		Amount:         valor,
		Service:        *req.Servico,
		IdempotencyKey: idempotencyKey,
	}, nil
}

func toAppointmentPatch(req updateAppointmentRequest) (domain.AppointmentPatch, error) {
	patch := domain.AppointmentPatch{
		ClientCPF: req.CPF,
		Service:   req.Servico,
	}
	if req.Hora != nil {
		hora, err := domain.ParseTimeOfDay(*req.Hora)
		if err != nil {
			return patch, err
		}
		patch.Time = &hora
	}
	if req.Data != nil {
		data, err := domain.ParseDate(*req.Data)
		if err != nil {
			return patch, err
		}
		patch.Date = &data
	}
	if req.Valor != nil {
		valor, err := domain.ParseAmount(req.Valor.String())
		if err != nil {
			return patch, err
		}
		patch.Amount = &valor
	}
	return patch, nil
}

// --- Service result → HTTP response ---

func toAppointmentResponse(a domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:      a.ID,
		CPF:     a.ClientCPF,
		Hora:    a.Time,
		Data:    a.Date,
		Valor:   a.Amount,
		Servico: a.Service,
	}
}

func toAppointmentResponses(list []domain.Appointment) []appointmentResponse {
	out := make([]appointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAppointmentResponse(a))
	}
	return out
}
