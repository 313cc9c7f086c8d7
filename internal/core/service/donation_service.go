package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/maisondespoir/orphanage-api/internal/core/domain"
	"github.com/maisondespoir/orphanage-api/internal/core/ports"
)

// DonationService implements use cases on donations.
type DonationService struct {
	repo       ports.DonationRepository
	dispatcher ports.NotificationDispatcher // optional
	log        zerolog.Logger
}

func NewDonationService(repo ports.DonationRepository, dispatcher ports.NotificationDispatcher, log zerolog.Logger) *DonationService {
	return &DonationService{repo: repo, dispatcher: dispatcher, log: log}
}

func (s *DonationService) List(ctx context.Context, actor ports.Claims) ([]domain.Donation, error) {
	if err := requireAuth(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Create records a donation as confirmed and queues a receipt notification
// for the donor.
func (s *DonationService) Create(ctx context.Context, actor ports.Claims, in ports.DonationInput) (*domain.Donation, error) {
	if err := requireAuth(actor); err != nil {
		return nil, err
	}
	if in.Type == "" {
		in.Type = domain.DonationOneOff
	}

	donation := &domain.Donation{
		DonorName:  in.DonorName,
		DonorEmail: in.DonorEmail,
		Amount:     in.Amount,
		Type:       in.Type,
		Status:     domain.DonationConfirmed,
		Date:       in.Date,
		Message:    in.Message,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := s.repo.Create(ctx, donation)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		s.dispatcher.Enqueue(ports.Notification{
			Kind:      ports.NotifyDonationReceipt,
			Recipient: created.DonorEmail,
			Subject:   "Merci pour votre don",
			Body:      fmt.Sprintf("Don de %.2f EUR enregistré le %s.", created.Amount, created.Date),
		})
	}

	s.log.Info().Str("donation_id", created.ID).Float64("amount", created.Amount).Str("type", string(created.Type)).Msg("donation recorded")
	return created, nil
}
