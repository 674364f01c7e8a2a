package service

import (
	"Asamblea_Hub/internal/model"
	"Asamblea_Hub/internal/pkg"
)

// Notifier envía avisos por correo a los voluntarios.
type Notifier struct {
	smtp pkg.SMTPConfig
}

func NewNotifier(smtp pkg.SMTPConfig) *Notifier {
	return &Notifier{smtp: smtp}
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.smtp.Enabled()
}

func (n *Notifier) ShiftAssigned(volunteer *model.User, position *model.Position, assembly *model.Assembly, shift *model.Shift) error {
	html := pkg.ShiftAssignedHTML(volunteer.Name, position.Name, assembly.Title, shift.StartTime, shift.EndTime)
	return pkg.SendEmail(n.smtp, volunteer.Email, "Nuevo turno asignado", html)
}
