package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/notification"
	domainTelegram "homework_status_bot/internal/domain/telegram"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/practicum"

	"github.com/sirupsen/logrus"
)

const errorMessageFormat = "Сбой в работе программы: %v"

// StatusFetcher returns the decoded homework status payload for changes since fromDate.
type StatusFetcher interface {
	GetHomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}

// Sleeper blocks between poll cycles.
type Sleeper interface {
	Wait(ctx context.Context) error
}

// DeliveryError wraps a failed attempt to send a notification. It is only
// logged, never announced.
type DeliveryError struct {
	Kind    notification.Kind
	Message string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to send %s message %q: %v", e.Kind, e.Message, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// IsRecoverable reports whether err belongs to the per-cycle error taxonomy:
// such errors are announced and polling continues. Anything else stops Run.
func IsRecoverable(err error) bool {
	var (
		transportErr *practicum.TransportError
		serviceErr   *practicum.ServiceError
		shapeErr     *homework.ShapeError
		missingErr   *homework.MissingFieldError
		unknownErr   *homework.UnknownStatusError
	)
	return errors.As(err, &transportErr) ||
		errors.As(err, &serviceErr) ||
		errors.As(err, &shapeErr) ||
		errors.As(err, &missingErr) ||
		errors.As(err, &unknownErr)
}

// PollerService polls the status API on a fixed cadence and forwards status
// changes and errors to a Telegram chat. It owns the cursor and the
// deduplication gate; a single goroutine drives it.
type PollerService struct {
	cfg     *config.AppConfig
	fetcher StatusFetcher
	sender  domainTelegram.Sender
	sleeper Sleeper
	gate    *notification.Gate
	logger  logrus.FieldLogger
	cursor  int64
}

// NewPollerService creates a poller whose first request asks for changes
// since cursor (unix seconds, normally the process start time).
func NewPollerService(
	cfg *config.AppConfig,
	fetcher StatusFetcher,
	sender domainTelegram.Sender,
	sleeper Sleeper,
	logger logrus.FieldLogger,
	cursor int64,
) *PollerService {
	return &PollerService{
		cfg:     cfg,
		fetcher: fetcher,
		sender:  sender,
		sleeper: sleeper,
		gate:    notification.NewGate(),
		logger:  logger,
		cursor:  cursor,
	}
}

// Cursor returns the lower bound of the next poll window.
func (s *PollerService) Cursor() int64 {
	return s.cursor
}

// Run validates credentials and then polls until ctx is cancelled or an
// unexpected error occurs. It never returns nil.
func (s *PollerService) Run(ctx context.Context) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	s.logger.WithField("cursor", s.cursor).Info("Polling started")
	for {
		if err := s.iterate(ctx); err != nil {
			return err
		}
	}
}

// iterate runs one cycle followed by the fixed delay. The delay runs on every
// path, including a returned error.
func (s *PollerService) iterate(ctx context.Context) (err error) {
	defer func() {
		if waitErr := s.sleeper.Wait(ctx); waitErr != nil && err == nil {
			err = waitErr
		}
	}()
	return s.RunCycle(ctx)
}

// RunCycle performs a single fetch, validate, extract and notify pass without
// sleeping. Recoverable errors are announced through the error channel of the
// gate and swallowed; other errors are returned.
func (s *PollerService) RunCycle(ctx context.Context) error {
	err := s.poll(ctx)
	if err == nil {
		return nil
	}
	if !IsRecoverable(err) {
		return err
	}
	s.reportError(err)
	return nil
}

func (s *PollerService) poll(ctx context.Context) error {
	response, err := s.fetcher.GetHomeworkStatuses(ctx, s.cursor)
	if err != nil {
		return err
	}
	homeworks, err := homework.ValidateResponse(response)
	if err != nil {
		return err
	}
	if len(homeworks) == 0 {
		s.logger.WithField("cursor", s.cursor).Info("No homework in response")
		return nil
	}

	s.logger.Debug("Extracting homework status")
	message, err := homework.ExtractMessage(homeworks[0])
	if err != nil {
		return err
	}

	if !s.gate.ShouldSend(notification.KindStatus, message) {
		s.logger.Debug("Status unchanged since last notification, skipping")
		return nil
	}
	if err := s.deliver(notification.KindStatus, message); err != nil {
		// retried on the next cycle since neither the gate nor the cursor moved
		return nil
	}
	s.advanceCursor(response)
	return nil
}

func (s *PollerService) reportError(cause error) {
	message := fmt.Sprintf(errorMessageFormat, cause)
	s.logger.WithError(cause).Error("Poll cycle failed")
	if !s.gate.ShouldSend(notification.KindError, message) {
		s.logger.Debug("Same error already announced, skipping notification")
		return
	}
	_ = s.deliver(notification.KindError, message)
}

// deliver sends message and records it in the gate on success. Failures are
// logged and returned as *DeliveryError.
func (s *PollerService) deliver(kind notification.Kind, message string) error {
	entry := s.logger.WithField("kind", kind)
	entry.WithField("message", message).Debug("Sending message")
	if err := s.sender.SendMessage(s.cfg.TelegramChatID, message); err != nil {
		derr := &DeliveryError{Kind: kind, Message: message, Err: err}
		entry.WithError(derr).Error("Message delivery failed")
		return derr
	}
	s.gate.Record(kind, message)
	entry.WithField("message", message).Info("Message sent")
	return nil
}

// advanceCursor moves the cursor to the response watermark. It never moves
// backwards and ignores values that are not whole numbers.
func (s *PollerService) advanceCursor(response any) {
	obj, ok := response.(map[string]any)
	if !ok {
		return
	}
	raw, ok := obj[homework.FieldCurrentDate]
	if !ok {
		s.logger.Debug("Response has no current_date, cursor unchanged")
		return
	}
	watermark, ok := toUnix(raw)
	if !ok {
		s.logger.WithField("current_date", raw).Warn("Ignoring non-integer current_date")
		return
	}
	if watermark < s.cursor {
		s.logger.WithFields(logrus.Fields{"current_date": watermark, "cursor": s.cursor}).
			Warn("Ignoring current_date behind the cursor")
		return
	}
	s.cursor = watermark
	s.logger.WithField("cursor", s.cursor).Info("Cursor advanced")
}

func toUnix(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
