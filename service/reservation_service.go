package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mk-watch-mods/models"
	"mk-watch-mods/repository"
)

// ReservationNotifier is what the reservation service needs from the notifier
type ReservationNotifier interface {
	Send(ctx context.Context, req models.ReservationRequest) error
}

// ReservationService validates reservation requests and notifies the shop
type ReservationService struct {
	notifier ReservationNotifier
	repo     repository.ReservationRepositoryInterface // nil when persistence is disabled
	timeout  time.Duration
	now      func() time.Time
	log      *zap.SugaredLogger
}

// NewReservationService creates a new ReservationService. repo may be nil.
func NewReservationService(
	notifier ReservationNotifier,
	repo repository.ReservationRepositoryInterface,
	timeout time.Duration,
	log *zap.SugaredLogger,
) *ReservationService {
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}
	return &ReservationService{
		notifier: notifier,
		repo:     repo,
		timeout:  timeout,
		now:      time.Now,
		log:      log,
	}
}

// ValidateReservation checks name and contact, stopping at the first problem
func ValidateReservation(name, contact string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Reason: ReasonMissingName}
	}
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return &ValidationError{Reason: ReasonMissingContact}
	}
	if !isEmailShaped(contact) && !isPhoneShaped(contact) {
		return &ValidationError{Reason: ReasonInvalidContact}
	}
	return nil
}

func isEmailShaped(s string) bool {
	return strings.Contains(s, "@") && strings.Contains(s, ".")
}

func isPhoneShaped(s string) bool {
	digits := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(s)
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Submit validates the request and sends the notification.
// It returns *ValidationError for bad input and *NotifyError when sending fails.
func (s *ReservationService) Submit(ctx context.Context, name, contact string, product models.Product, collection string) (*models.ReservationResult, error) {
	if err := ValidateReservation(name, contact); err != nil {
		s.log.Infof("⚠️  Submit: Rejected reservation for model=%s: %v", product.Name, err)
		return nil, err
	}

	req := models.ReservationRequest{
		CustomerName:    strings.TrimSpace(name),
		CustomerContact: strings.TrimSpace(contact),
		ModelName:       product.Name,
		CollectionName:  collection,
		RequestedAt:     s.now(),
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	sendErr := s.safeSend(sendCtx, req)

	result := &models.ReservationResult{Request: req}
	result.ID, result.Recorded = s.record(ctx, req, sendErr)

	if sendErr != nil {
		return nil, &NotifyError{Cause: sendErr, Recorded: result.Recorded}
	}

	s.log.Infof("✅ Submit: Reservation sent for model=%s recorded=%t", req.ModelName, result.Recorded)
	return result, nil
}

// safeSend keeps a misbehaving transport from taking the session down
func (s *ReservationService) safeSend(ctx context.Context, req models.ReservationRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("❌ Submit: Notifier panicked: %v", r)
			err = &TransportError{Stage: "submit", Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return s.notifier.Send(ctx, req)
}

func (s *ReservationService) record(ctx context.Context, req models.ReservationRequest, sendErr error) (string, bool) {
	if s.repo == nil {
		return "", false
	}

	reservation := &models.Reservation{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		ModelName:       req.ModelName,
		CollectionName:  req.CollectionName,
		Status:          models.ReservationNotified,
		CreatedAt:       req.RequestedAt.UTC(),
	}
	if sendErr != nil {
		reservation.Status = models.ReservationNotifyFailed
		reservation.NotifyError = sendErr.Error()
	}

	if err := s.repo.Insert(ctx, reservation); err != nil {
		s.log.Errorf("❌ Submit: Failed to record reservation: %v", err)
		return "", false
	}
	return reservation.ID, true
}
