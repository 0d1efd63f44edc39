package bench

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/symtab/utils/service"
	"github.com/tuannh982/symtab/utils/timer"
)

type progressRequest struct {
	interval time.Duration
	firedAt  time.Time
}

func (r *progressRequest) Duration() time.Duration {
	return r.interval
}

func (r *progressRequest) SetTimeoutTs(t time.Time) {
	r.firedAt = t
}

func (r *progressRequest) TimeoutTs() time.Time {
	return r.firedAt
}

// Reporter logs the progress of a run every interval.
type Reporter struct {
	*service.SimpleService
	timer    timer.Timer[*progressRequest]
	interval time.Duration
	progress func() Progress
	log      *log.Entry
}

func NewReporter(interval time.Duration, progress func() Progress, logger *log.Entry) *Reporter {
	r := &Reporter{
		timer:    timer.NewTimer[*progressRequest](),
		interval: interval,
		progress: progress,
		log:      logger.WithField("component", "progress"),
	}
	r.SimpleService = service.NewSimpleService(r)
	return r
}

func (r *Reporter) OnStart(ctx context.Context) error {
	if err := r.timer.Start(ctx); err != nil {
		return err
	}
	go func() {
		r.timer.Reset(&progressRequest{interval: r.interval})
		last := Progress{}
		for {
			select {
			case req := <-r.timer.C():
				cur := r.progress()
				r.log.WithFields(log.Fields{
					"queries": humanize.Comma(cur.Queries),
					"words":   humanize.Comma(cur.Words),
					"rate":    humanize.Comma(int64(float64(cur.Queries-last.Queries)/r.interval.Seconds())) + " queries/s",
					"elapsed": cur.Elapsed,
				}).Info("progress")
				last = cur
				r.timer.Reset(req)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (r *Reporter) OnStop() {
	r.timer.Stop()
}
