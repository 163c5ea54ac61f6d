package event

import (
	log "github.com/sirupsen/logrus"

	"github.com/carterpaul1/cis453l-project/pkg/domain/service"
)

// LogDispatcher publishes domain events as structured log entries.
type LogDispatcher struct {
	logger log.FieldLogger
}

var _ service.EventDispatcher = &LogDispatcher{}

func NewLogDispatcher(logger log.FieldLogger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(event service.Event) error {
	d.logger.WithFields(log.Fields{
		"type":    event.Type(),
		"payload": event,
	}).Info("domain event")
	return nil
}
