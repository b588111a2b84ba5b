package schedulerJobs

import (
	"context"
	"log"
	"time"

	"mentorConnect/model"
	"mentorConnect/utils"
)

// statusCalculation closes out meetings whose day has passed: confirmed meetings
// become completed and requests the mentor never confirmed become cancelled.
func (j *Jobs) statusCalculation() {
	runJobWithTimeout(func(ctx context.Context) {
		today := utils.StartOfDay(j.now().UTC())
		j.runUpdateManyJob(ctx, today, model.Upcoming, model.Completed)
		j.runUpdateManyJob(ctx, today, model.Pending, model.Cancelled)
	})
}

func (j *Jobs) runUpdateManyJob(ctx context.Context, before time.Time, from, to model.MeetingStatus) {
	modified, err := j.store.UpdatePastMeetingsStatus(ctx, before, from, to)
	if err != nil {
		log.Printf("UpdateMany job error (%s -> %s): %v\n", from, to, err)
		return
	}
	log.Printf("Modified %v meetings from %s to %s status\n", modified, from, to)
}
