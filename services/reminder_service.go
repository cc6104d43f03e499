// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"studioviking-backend/ledger"
	"studioviking-backend/models"
	"studioviking-backend/utils"
)

// ReminderService sends next-day appointment reminders over WhatsApp
// (or SMS when the phone is not E.164). Every failure is logged and
// skipped; reminders must never take the process down.
type ReminderService struct {
	ledger *ledger.Ledger
	client *twilio.RestClient
	log    zerolog.Logger
}

func NewReminderService(led *ledger.Ledger, log zerolog.Logger) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		ledger: led,
		log:    log,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the daily reminder pass at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	s.log.Info().Msg("reminder scheduler started")
}

// SendDailyReminders messages every client with a confirmed
// appointment tomorrow.
func (s *ReminderService) SendDailyReminders() {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" {
		s.log.Info().Msg("twilio not configured, skipping reminder pass")
		return
	}

	tomorrow := utils.DateOf(s.ledger.Now().AddDate(0, 0, 1))
	s.log.Info().Str("date", tomorrow).Msg("starting reminder pass")

	clients := s.ledger.Clients()
	sent := 0
	for _, apt := range s.ledger.Appointments() {
		if apt.Date != tomorrow || apt.Status != models.StatusConfirmed {
			continue
		}

		var phone string
		for _, client := range clients {
			if client.ID == apt.ClientID {
				phone = client.Phone
				break
			}
		}
		if phone == "" {
			s.log.Warn().Str("appointment", apt.ID).Msg("no phone for appointment client, skipping reminder")
			continue
		}

		message := fmt.Sprintf(
			"Olá %s! Lembrete do Studio Viking: %s amanhã (%s) às %s com %s. Até lá! ⚔️",
			apt.ClientName, apt.ServiceName, apt.Date, apt.Time, apt.Professional,
		)
		if err := s.send(phone, message); err != nil {
			s.log.Warn().Err(err).Str("appointment", apt.ID).Msg("failed to send reminder")
			continue
		}
		sent++
	}

	s.log.Info().Int("sent", sent).Msg("reminder pass completed")
}

func (s *ReminderService) send(phone, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(message)

	// WhatsApp for E.164 numbers, plain SMS otherwise.
	if strings.HasPrefix(phone, "+") {
		params.SetTo("whatsapp:" + phone)
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetTo(phone)
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		s.log.Debug().Str("sid", *resp.Sid).Str("to", phone).Time("at", time.Now()).Msg("reminder sent")
	}
	return nil
}
