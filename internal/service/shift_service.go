package service

import (
	"context"
	"errors"
	"time"

	"Asamblea_Hub/internal/model"
	"Asamblea_Hub/internal/repository/mysql"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	timeLayout = "15:04"
	// Motivo registrado cuando el voluntario rechaza sin explicación.
	DefaultRejectionReason = "Sin motivo"
)

var (
	ErrShiftNotFound = errors.New("No se pudo encontrar el turno.")
	ErrShiftTimes    = errors.New("La hora de fin debe ser posterior a la de inicio.")
	ErrRejectWithout = errors.New("No se puede rechazar un turno sin voluntario asignado.")
	ErrInvalidShift  = errors.New("Datos no válidos.")
)

type ShiftService struct {
	repo       *mysql.ShiftRepository
	positions  *mysql.PositionRepository
	assemblies *mysql.AssemblyRepository
	users      *mysql.UserRepository
	notifier   *Notifier
	log        *zap.Logger
}

func NewShiftService(db *gorm.DB, notifier *Notifier, log *zap.Logger) *ShiftService {
	return &ShiftService{
		repo:       &mysql.ShiftRepository{DB: db},
		positions:  &mysql.PositionRepository{DB: db},
		assemblies: &mysql.AssemblyRepository{DB: db},
		users:      &mysql.UserRepository{DB: db},
		notifier:   notifier,
		log:        log,
	}
}

func (s *ShiftService) ListPopulated(ctx context.Context) ([]model.PopulatedShift, error) {
	return s.repo.ListPopulated(ctx)
}

// Add crea un turno combinando la fecha del día con las horas HH:MM del
// formulario. La hora de fin debe ser posterior a la de inicio.
func (s *ShiftService) Add(ctx context.Context, positionID uint64, volunteerID *uint64, date, startTime, endTime string, assemblyID uint64) (*model.Shift, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidShift
	}
	start, err := combine(day, startTime)
	if err != nil {
		return nil, ErrInvalidShift
	}
	end, err := combine(day, endTime)
	if err != nil {
		return nil, ErrInvalidShift
	}
	if !end.After(start) {
		return nil, ErrShiftTimes
	}

	shift := &model.Shift{
		PositionID:  positionID,
		VolunteerID: volunteerID,
		StartTime:   start,
		EndTime:     end,
		AssemblyID:  assemblyID,
	}
	if err := s.repo.Create(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// AssemblyDays expande el rango de fechas de la asamblea en sus días de
// calendario, para el alta de turnos.
func (s *ShiftService) AssemblyDays(assemblyID uint64) ([]time.Time, error) {
	assembly, err := s.assemblies.FindByID(assemblyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAssemblyNotFound
	}
	if err != nil {
		return nil, err
	}

	start := truncateToDay(assembly.StartDate)
	end := truncateToDay(assembly.EndDate)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}

// Assign asigna (o con nil desasigna) el voluntario del turno. Cualquier
// asignación limpia el estado de rechazo previo. La pertenencia del
// voluntario a la asamblea se filtra solo en la interfaz.
func (s *ShiftService) Assign(ctx context.Context, shiftID uint64, volunteerID *uint64) error {
	err := s.repo.Assign(ctx, shiftID, volunteerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrShiftNotFound
	}
	if err != nil {
		return err
	}

	if volunteerID != nil {
		s.notifyAssigned(ctx, shiftID, *volunteerID)
	}
	return nil
}

// Reject rechaza el turno en nombre del voluntario asignado. Un turno sin
// voluntario (incluido uno ya rechazado) no puede rechazarse.
func (s *ShiftService) Reject(ctx context.Context, shiftID uint64, reason string) (*model.Shift, error) {
	if reason == "" {
		reason = DefaultRejectionReason
	}

	shift, err := s.repo.Reject(ctx, shiftID, reason)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrShiftNotFound
	case errors.Is(err, mysql.ErrShiftUnassigned):
		return nil, ErrRejectWithout
	case err != nil:
		return nil, err
	}
	return shift, nil
}

// notifyAssigned avisa por email al voluntario; es un mejor esfuerzo y
// nunca hace fallar la asignación.
func (s *ShiftService) notifyAssigned(ctx context.Context, shiftID, volunteerID uint64) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return
	}

	shift, err := s.repo.FindByID(ctx, shiftID)
	if err != nil {
		return
	}
	volunteer, err := s.users.FindByID(volunteerID)
	if err != nil {
		return
	}
	position, err := s.positions.FindByID(shift.PositionID)
	if err != nil {
		return
	}
	assembly, err := s.assemblies.FindByID(shift.AssemblyID)
	if err != nil {
		return
	}

	if err := s.notifier.ShiftAssigned(volunteer, position, assembly, shift); err != nil {
		s.log.Warn("shift assignment email failed",
			zap.Uint64("shift_id", shiftID),
			zap.Uint64("volunteer_id", volunteerID),
			zap.Error(err))
	}
}

func combine(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse(timeLayout, hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
