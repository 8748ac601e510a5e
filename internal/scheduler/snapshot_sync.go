// Package scheduler contém os serviços de agendamento para persistência de snapshots
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mje-dashboard/infrastructure/repository"
	"github.com/vfg2006/mje-dashboard/internal/config"
	"github.com/vfg2006/mje-dashboard/internal/usecases/aggregating"
	"github.com/vfg2006/mje-dashboard/pkg/utils"
)

const syncTimeout = 2 * time.Minute

type SnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SnapshotSyncService grava periodicamente a tabela agregada no banco, um lote por execução
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	snapshotRepo        repository.AggregateSnapshotRepository
	table               *aggregating.Table
	config              SnapshotSyncConfig
	newBatchID          func() (string, error)
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastBatchID         string
	lastError           string
}

func NewSnapshotSyncService(
	snapshotRepo repository.AggregateSnapshotRepository,
	table *aggregating.Table,
	cfg *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: cfg.SnapshotSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.SnapshotSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("scheduler: configuração do snapshot da tabela agregada carregada")

	return &SnapshotSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		snapshotRepo: snapshotRepo,
		table:        table,
		config:       syncConfig,
		newBatchID:   utils.GenerateID,
	}
}

// Start prepara a tabela de snapshots e agenda a cron quando habilitada.
// A tabela é criada mesmo com a cron desabilitada, pois o snapshot manual e a consulta do último lote dependem dela.
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if err := s.snapshotRepo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("erro ao preparar tabela de snapshots: %w", err)
	}

	if !s.config.SyncEnabled {
		logrus.Info("scheduler: cron de snapshot desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: iniciando cron de snapshot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("scheduler: erro ao gravar snapshot")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: parando cron de snapshot")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncSnapshot grava a tabela agregada atual sob um novo lote. Execuções sobrepostas são ignoradas.
func (s *SnapshotSyncService) SyncSnapshot(ctx context.Context) error {
	if !s.beginSync() {
		logrus.Warn("scheduler: snapshot já está em execução")
		return nil
	}

	batchID, err := s.runSync(ctx)
	s.finishSync(batchID, err)

	return err
}

// runSync retorna o id do lote gravado, ou vazio quando não havia linhas para gravar
func (s *SnapshotSyncService) runSync(ctx context.Context) (string, error) {
	rows := s.table.Rows()
	if len(rows) == 0 {
		logrus.Warn("scheduler: tabela agregada vazia, nenhum lote gravado")
		return "", nil
	}

	batchID, err := s.newBatchID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id do lote: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	logger := logrus.WithFields(logrus.Fields{
		"batch_id": batchID,
		"rows":     len(rows),
	})
	logger.Info("scheduler: gravando snapshot da tabela agregada")

	if err := s.snapshotRepo.SaveSnapshot(ctx, batchID, rows); err != nil {
		return batchID, fmt.Errorf("erro ao salvar lote %s: %w", batchID, err)
	}

	logger.Info("scheduler: snapshot gravado")
	return batchID, nil
}

func (s *SnapshotSyncService) beginSync() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *SnapshotSyncService) finishSync(batchID string, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		return
	}
	s.lastError = ""
	if batchID != "" {
		s.lastBatchID = batchID
	}
}

// TriggerManualSync inicia manualmente um snapshot. Retorna false quando já existe um em andamento.
func (s *SnapshotSyncService) TriggerManualSync() bool {
	if !s.beginSync() {
		logrus.Info("scheduler: snapshot já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("scheduler: iniciando snapshot manual")
	go func() {
		batchID, err := s.runSync(context.Background())
		if err != nil {
			logrus.WithError(err).Error("scheduler: erro no snapshot manual")
		}
		s.finishSync(batchID, err)
	}()

	return true
}

// IsRunning informa se há um snapshot em execução
func (s *SnapshotSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_batch_id":          s.lastBatchID,
		"last_error":             s.lastError,
	}
}
