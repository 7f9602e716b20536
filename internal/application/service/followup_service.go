package service

import (
	"context"
	"log"
	"time"

	"github.com/g2rism/backoffice-api/internal/domain/repository"
	"github.com/g2rism/backoffice-api/pkg/email"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// FollowUpService sends each advisor a daily digest of leads whose follow-up
// date falls on the current day
type FollowUpService struct {
	leadRepo     repository.LeadRepository
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	emailService *email.EmailService
	scheduler    *cron.Cron
}

// NewFollowUpService creates a new follow-up service
func NewFollowUpService(
	leadRepo repository.LeadRepository,
	userRepo repository.UserRepository,
	settingsRepo repository.SettingsRepository,
	emailService *email.EmailService,
) *FollowUpService {
	return &FollowUpService{
		leadRepo:     leadRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		emailService: emailService,
	}
}

// Start schedules the daily digest with the given cron expression
func (s *FollowUpService) Start(spec string) error {
	s.scheduler = cron.New()
	_, err := s.scheduler.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := s.SendDailyDigest(ctx); err != nil {
			log.Printf("follow-up digest failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.scheduler.Start()
	return nil
}

// Stop halts the scheduler, waiting for a running job to finish
func (s *FollowUpService) Stop() {
	if s.scheduler != nil {
		<-s.scheduler.Stop().Done()
	}
}

// SendDailyDigest emails each advisor the leads due for follow-up today.
// Disabled entirely when email notifications are off in the agency settings.
func (s *FollowUpService) SendDailyDigest(ctx context.Context) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}
	if settings != nil && !settings.EmailNotifications {
		return nil
	}

	today := time.Now().Format("2006-01-02")
	leads, err := s.leadRepo.DueForFollowUp(ctx, today)
	if err != nil {
		return err
	}
	if len(leads) == 0 {
		return nil
	}

	byAdvisor := make(map[uuid.UUID][]email.FollowUpReminder)
	for i := range leads {
		lead := &leads[i]
		if lead.AssignedTo == uuid.Nil || lead.NextFollowUpDate == nil {
			continue
		}
		byAdvisor[lead.AssignedTo] = append(byAdvisor[lead.AssignedTo], email.FollowUpReminder{
			LeadCode: lead.Code,
			LeadName: lead.FullName,
			Phone:    lead.Contact.Phone,
			DueAt:    *lead.NextFollowUpDate,
		})
	}

	for advisorID, reminders := range byAdvisor {
		advisor, err := s.userRepo.GetByID(ctx, advisorID)
		if err != nil {
			return err
		}
		if advisor == nil || !advisor.Active {
			continue
		}
		if err := s.emailService.SendFollowUpDigest(advisor.Email, advisor.FirstName, reminders); err != nil {
			log.Printf("follow-up digest to %s failed: %v", advisor.Email, err)
		}
	}

	return nil
}
