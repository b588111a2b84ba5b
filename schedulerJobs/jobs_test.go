package schedulerJobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorConnect/database/memoryStore"
	"mentorConnect/model"
)

type recordingSender struct {
	sent []model.EmailMessage
	fail bool
}

func (r *recordingSender) Send(_ context.Context, message model.EmailMessage) error {
	if r.fail {
		return errors.New("sendgrid unavailable")
	}
	r.sent = append(r.sent, message)
	return nil
}

var now = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestJobs(store JobStore, sender *recordingSender) *Jobs {
	jobs := NewJobs(store, sender)
	jobs.now = func() time.Time { return now }
	return jobs
}

func createMeeting(t *testing.T, store *memoryStore.Store, mentor, mentee *model.User, date time.Time, status model.MeetingStatus) *model.Meeting {
	t.Helper()
	meeting := &model.Meeting{Mentor: mentor.Id, Mentee: mentee.Id, Date: date, TimeSlot: "09:00-10:00", Topic: "Go", Status: status}
	require.NoError(t, store.CreateMeeting(context.Background(), meeting))
	return meeting
}

func createUsers(t *testing.T, store *memoryStore.Store) (*model.User, *model.User) {
	t.Helper()
	mentor := &model.User{Name: "Ada", Email: "ada@example.com", Role: model.RoleMentor}
	mentee := &model.User{Name: "Bob", Email: "bob@example.com", Role: model.RoleMentee}
	require.NoError(t, store.CreateUser(context.Background(), mentor))
	require.NoError(t, store.CreateUser(context.Background(), mentee))
	return mentor, mentee
}

func TestStatusCalculation(t *testing.T) {
	store := memoryStore.New()
	mentor, mentee := createUsers(t, store)
	yesterday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	confirmed := createMeeting(t, store, mentor, mentee, yesterday, model.Upcoming)
	unconfirmed := createMeeting(t, store, mentor, mentee, yesterday.Add(-24*time.Hour), model.Pending)
	todays := createMeeting(t, store, mentor, mentee, today, model.Upcoming)

	newTestJobs(store, &recordingSender{}).statusCalculation()

	ctx := context.Background()
	for meeting, want := range map[*model.Meeting]model.MeetingStatus{
		confirmed:   model.Completed,
		unconfirmed: model.Cancelled,
		todays:      model.Upcoming,
	} {
		stored, err := store.GetMeeting(ctx, meeting.Id)
		require.NoError(t, err)
		assert.Equal(t, want, stored.Status)
	}
}

func TestSendReviewEmails(t *testing.T) {
	store := memoryStore.New()
	mentor, mentee := createUsers(t, store)
	day := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	createMeeting(t, store, mentor, mentee, day, model.Completed)
	createMeeting(t, store, mentor, mentee, day.Add(48*time.Hour), model.Upcoming)

	sender := &recordingSender{}
	jobs := newTestJobs(store, sender)
	jobs.sendReviewEmails()
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "bob@example.com", sender.sent[0].ToEmail)
	assert.Contains(t, sender.sent[0].Subject, "Ada")

	jobs.sendReviewEmails()
	assert.Len(t, sender.sent, 1)
}

func TestSendReviewEmailsRetriesFailedDelivery(t *testing.T) {
	store := memoryStore.New()
	mentor, mentee := createUsers(t, store)
	createMeeting(t, store, mentor, mentee, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), model.Completed)

	sender := &recordingSender{fail: true}
	jobs := newTestJobs(store, sender)
	jobs.sendReviewEmails()
	assert.Empty(t, sender.sent)

	sender.fail = false
	jobs.sendReviewEmails()
	assert.Len(t, sender.sent, 1)
}

func TestStartAndStop(t *testing.T) {
	jobs := newTestJobs(memoryStore.New(), &recordingSender{})
	require.NoError(t, jobs.Start())
	jobs.Stop()
}
