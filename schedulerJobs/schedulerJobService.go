package schedulerJobs

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mentorConnect/emailNotifications"
	"mentorConnect/model"
	"mentorConnect/utils"
)

const (
	statusCalculationInterval = 30 * time.Minute
	reviewsEmailInterval      = 15 * time.Minute
	jobTimeout                = 5 * time.Minute
)

type JobStore interface {
	UpdatePastMeetingsStatus(ctx context.Context, before time.Time, from, to model.MeetingStatus) (int64, error)
	GetMeetingsAwaitingReviewEmail(ctx context.Context) ([]model.MeetingNotification, error)
	MarkReviewEmailSent(ctx context.Context, meetingId primitive.ObjectID) error
}

type Jobs struct {
	store     JobStore
	mailer    emailNotifications.Sender
	scheduler *gocron.Scheduler
	now       func() time.Time
}

func NewJobs(store JobStore, mailer emailNotifications.Sender) *Jobs {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()
	return &Jobs{
		store:     store,
		mailer:    mailer,
		scheduler: scheduler,
		now:       time.Now,
	}
}

func (j *Jobs) Start() error {
	if err := j.startAsyncJob(j.statusCalculation, statusCalculationInterval, 0); err != nil {
		return err
	}
	// review emails run after statuses had a chance to move meetings to completed
	if err := j.startAsyncJob(j.sendReviewEmails, reviewsEmailInterval, time.Minute); err != nil {
		return err
	}
	j.scheduler.StartAsync()
	return nil
}

func (j *Jobs) Stop() {
	j.scheduler.Stop()
}

func (j *Jobs) startAsyncJob(jobFunc func(), interval, delay time.Duration) error {
	s := j.scheduler.Every(interval)
	if delay == 0 {
		s.StartImmediately()
	} else {
		s.StartAt(j.now().UTC().Add(delay))
	}
	if _, err := s.Do(jobFunc); err != nil {
		return fmt.Errorf("initializing job(%s): %w", utils.GetFunctionName(jobFunc), err)
	}
	return nil
}

func runJobWithTimeout(jobFunc func(ctx context.Context)) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	jobFunc(ctx)
}
