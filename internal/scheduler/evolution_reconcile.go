package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/internal/config"
)

// Reconciler regrava os derivados das linhas de evolução que divergem
type Reconciler interface {
	Reconcile(ctx context.Context) (int, error)
}

type EvolutionReconcileConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// EvolutionReconcileService agenda a correção periódica da evolução de clientes
type EvolutionReconcileService struct {
	scheduler           *gocron.Scheduler
	config              EvolutionReconcileConfig
	reconciler          Reconciler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastFixedRows       int
	lastError           string
}

func NewEvolutionReconcileService(reconciler Reconciler, appConfig *config.Config) *EvolutionReconcileService {
	reconcileConfig := EvolutionReconcileConfig{
		CronSchedule: appConfig.EvolutionReconcile.CronSchedule,
		SyncEnabled:  appConfig.EvolutionReconcile.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reconcileConfig.CronSchedule,
		"sync_enabled":  reconcileConfig.SyncEnabled,
	}).Info("Configuração do agendador de reconciliação da evolução carregada")

	return &EvolutionReconcileService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     reconcileConfig,
		reconciler: reconciler,
	}
}

// Start inicia o agendador
func (s *EvolutionReconcileService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconciliação da evolução desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconciliação da evolução")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reconcile(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação da evolução: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação da evolução")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *EvolutionReconcileService) reconcile(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação da evolução já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	fixed, err := s.reconciler.Reconcile(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastFixedRows = fixed
	s.lastError = ""

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro na reconciliação da evolução de clientes")
		return
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":   time.Since(startTime).String(),
		"fixed_rows": fixed,
	}).Info("Reconciliação da evolução concluída")
}

// TriggerManualSync inicia manualmente uma reconciliação
func (s *EvolutionReconcileService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação da evolução já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reconciliação manual da evolução")
	go s.reconcile(context.Background())
}

// GetStatus retorna o status atual da reconciliação
func (s *EvolutionReconcileService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_fixed_rows":        s.lastFixedRows,
		"last_error":             s.lastError,
	}
}
