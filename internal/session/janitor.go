package session

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Janitor sweeps idle sessions on a schedule so the server variant does not
// accumulate dead conversations forever.
type Janitor struct {
	cron    *cron.Cron
	manager *Manager
	maxIdle time.Duration
}

func NewJanitor(manager *Manager, maxIdle time.Duration) *Janitor {
	return &Janitor{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		manager: manager,
		maxIdle: maxIdle,
	}
}

// Start schedules a sweep every five minutes.
func (j *Janitor) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		if removed := j.manager.ExpireIdle(j.maxIdle); removed > 0 {
			log.Printf("expired %d idle session(s)", removed)
		}
	})
	if err != nil {
		return err
	}
	j.cron.Start()
	log.Printf("session janitor started (max idle %s)", j.maxIdle)
	return nil
}

func (j *Janitor) Stop() {
	if j.cron != nil {
		ctx := j.cron.Stop()
		<-ctx.Done()
	}
}
