package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"cadastro-api/internal/domain"
	"cadastro-api/internal/repository"
)

var (
	ErrRecordServiceNotConfigured = errors.New("record service not configured")
	ErrRecordNotFound             = errors.New("record not found")
)

// MissingFieldsError señala campos obligatorios ausentes en una creación.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "required fields missing: " + strings.Join(e.Fields, ", ")
}

// RecordService coordina validación, defaults y acceso al repositorio.
type RecordService struct {
	logger *zap.Logger
	repo   repository.RecordRepository
}

func NewRecordService(logger *zap.Logger, repo repository.RecordRepository) *RecordService {
	return &RecordService{logger: logger, repo: repo}
}

// ListQuery son los parámetros de List tal como llegan del router, todavía
// sin tipar ni validar.
type ListQuery struct {
	ID        string
	Recipient string
	Sender    string
	Note      string
	Page      string
}

// NormalizePage colapsa a 1 cualquier valor que no sea un entero positivo.
func NormalizePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (s *RecordService) List(ctx context.Context, q ListQuery) ([]domain.Record, error) {
	if s == nil || s.repo == nil {
		return nil, ErrRecordServiceNotConfigured
	}

	filter := repository.RecordFilter{
		ID:        strings.TrimSpace(q.ID),
		Recipient: q.Recipient,
		Sender:    q.Sender,
		Note:      q.Note,
	}
	return s.repo.List(ctx, filter, NormalizePage(q.Page))
}

type CreateInput struct {
	Sender    string
	Recipient string
	Note      *string
}

func (s *RecordService) Create(ctx context.Context, in CreateInput) (int64, error) {
	if s == nil || s.repo == nil {
		return 0, ErrRecordServiceNotConfigured
	}

	var missing []string
	if strings.TrimSpace(in.Sender) == "" {
		missing = append(missing, "sender")
	}
	if strings.TrimSpace(in.Recipient) == "" {
		missing = append(missing, "recipient")
	}
	if len(missing) > 0 {
		return 0, &MissingFieldsError{Fields: missing}
	}

	return s.repo.Create(ctx, in.Sender, in.Recipient, in.Note)
}

type UpdateInput struct {
	Sender    string
	Recipient string
	Note      *string
}

// Update reemplaza los tres campos mutables del registro identificado por id.
// Los campos ausentes del request se escriben vacíos, no se preservan.
func (s *RecordService) Update(ctx context.Context, id int64, in UpdateInput) error {
	if s == nil || s.repo == nil {
		return ErrRecordServiceNotConfigured
	}

	affected, err := s.repo.Update(ctx, id, in.Sender, in.Recipient, in.Note)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
