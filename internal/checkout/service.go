package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/cart"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/events"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/pending"
	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/submit"
)

// Service runs the checkout workflow: validate the customer, snapshot
// the cart into an order record, submit it, and clear the cart only
// once the order is finalized. The cart survives every failure path
// except the locally-finalized download fallback.
type Service struct {
	carts     cart.Store
	submitter submit.Submitter
	fallback  submit.Submitter
	pending   pending.Storage // optional
	publisher events.Publisher
	log       *slog.Logger

	mu       sync.Mutex
	inFlight map[string]struct{} // sessions with a submission pending
}

func NewService(carts cart.Store, submitter submit.Submitter, log *slog.Logger) *Service {
	return &Service{
		carts:     carts,
		submitter: submitter,
		fallback:  &submit.DownloadSubmitter{},
		publisher: events.NopPublisher{},
		log:       log,
		inFlight:  make(map[string]struct{}),
	}
}

// SetPendingStorage enables the local pending-order queue.
func (s *Service) SetPendingStorage(storage pending.Storage) {
	s.pending = storage
}

// SetPublisher enables order event publishing.
func (s *Service) SetPublisher(publisher events.Publisher) {
	s.publisher = publisher
}

// Checkout submits the session's cart on behalf of the customer. On
// success (including the locally-finalized fallback) the cart is
// cleared; on any error it is left untouched so the user can retry.
func (s *Service) Checkout(ctx context.Context, sessionID string, customer domain.CustomerInfo) (*submit.Outcome, error) {
	if fieldErr := ValidateCustomer(customer); fieldErr != nil {
		return nil, fieldErr
	}

	if !s.begin(sessionID) {
		return nil, ErrSubmissionInFlight
	}
	defer s.end(sessionID)

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	order := BuildOrder(c, customer, NewOrderID(), time.Now())

	outcome, err := s.submitter.Submit(ctx, order)
	if err != nil {
		outcome, err = s.recover(ctx, order, err)
		if err != nil {
			return nil, err
		}
	}

	s.finalize(ctx, sessionID, order, outcome)
	return outcome, nil
}

// recover handles a failed remote write by saving the order to the
// pending queue and finalizing it locally as a download. Validation
// and configuration failures are not recoverable here.
func (s *Service) recover(ctx context.Context, order *domain.OrderRecord, submitErr error) (*submit.Outcome, error) {
	var remoteErr *submit.RemoteError
	var transportErr *submit.TransportError
	if !errors.As(submitErr, &remoteErr) && !errors.As(submitErr, &transportErr) {
		return nil, submitErr
	}

	s.log.Warn("remote order write failed, falling back to local download",
		"order_id", order.ID, "error", submitErr)

	if s.pending != nil {
		if err := s.pending.Save(ctx, order); err != nil {
			s.log.Error("failed to save pending order", "order_id", order.ID, "error", err)
		}
	}

	outcome, err := s.fallback.Submit(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("fallback submission failed: %w", err)
	}
	outcome.Message = fmt.Sprintf("remote write failed (%v); order saved locally for manual upload", submitErr)
	return outcome, nil
}

func (s *Service) finalize(ctx context.Context, sessionID string, order *domain.OrderRecord, outcome *submit.Outcome) {
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.log.Error("failed to clear cart after submission", "session_id", sessionID, "error", err)
	}

	event := events.OrderEvent{
		OrderID:      order.ID,
		CustomerName: order.Customer.Name,
		TotalAmount:  order.Summary.TotalAmount,
		TotalItems:   order.Summary.TotalItems,
		SubmittedVia: string(outcome.Via),
		CreatedAt:    time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Error("failed to publish order event", "order_id", order.ID, "error", err)
	}
}

// begin marks the session's submission as in flight. While pending, a
// second submission for the same session is rejected instead of queued.
func (s *Service) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.inFlight[sessionID]; exists {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *Service) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}
