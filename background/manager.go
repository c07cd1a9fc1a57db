package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"

	"github.com/community-help/portal-api/external/onesignal"
	"github.com/community-help/portal-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// BackgroundManager runs the portal's notification jobs.
type BackgroundManager struct {
	store store.CommunityCore

	notifier NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, taskServer *machinery.Server, onesignalAppID string) *BackgroundManager {
	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store:      store.NewCommunityStore(ormDB),
		notifier:   NewOnesignalNotificationCenter(onesignalAppID, o),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("portal-worker", 5)
	return m.worker.Launch()
}
