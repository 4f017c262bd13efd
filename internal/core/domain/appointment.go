package domain

import "strconv"

// Appointment is a booked service for a client.
type Appointment struct {
	ID        int64
	ClientCPF string
	Time      TimeOfDay
	Date      Date
	Amount    Amount
	Service   string
}

// AppointmentPatch carries the fields supplied by a partial update. Nil
// fields keep the stored value.
type AppointmentPatch struct {
	ClientCPF *string
	Time      *TimeOfDay
	Date      *Date
	Amount    *Amount
	Service   *string
}

// Empty reports whether the patch changes nothing.
func (p AppointmentPatch) Empty() bool {
	return p.ClientCPF == nil && p.Time == nil && p.Date == nil && p.Amount == nil && p.Service == nil
}

// Fields lists the wire names of the supplied fields, in a stable order.
func (p AppointmentPatch) Fields() []string {
	var out []string
	if p.ClientCPF != nil {
		out = append(out, "cpf")
	}
	if p.Time != nil {
		out = append(out, "hora")
	}
	if p.Date != nil {
		out = append(out, "data")
	}
	if p.Amount != nil {
		out = append(out, "valor")
	}
	if p.Service != nil {
		out = append(out, "servico")
	}
	return out
}

// Apply overwrites a's fields with every non-nil field of the patch. The
// result is always a full row.
func (p AppointmentPatch) Apply(a *Appointment) {
	if p.ClientCPF != nil {
		a.ClientCPF = *p.ClientCPF
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Amount != nil {
		a.Amount = *p.Amount
	}
	if p.Service != nil {
		a.Service = *p.Service
	}
}

// AuditKey identifies the appointment in the audit log.
func (a Appointment) AuditKey() string {
	return strconv.FormatInt(a.ID, 10)
}
