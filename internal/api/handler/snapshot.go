package handler

import (
	"net/http"

	"github.com/vfg2006/mje-dashboard/infrastructure/repository"
	"github.com/vfg2006/mje-dashboard/internal/domain"
	"github.com/vfg2006/mje-dashboard/pkg/apiErrors"
	"github.com/vfg2006/mje-dashboard/pkg/log"
)

type latestSnapshotResponse struct {
	Batch *domain.SnapshotBatch  `json:"batch"`
	Rows  []domain.SnapshotEntry `json:"rows"`
}

// LatestSnapshot retorna o último lote persistido da tabela agregada
func LatestSnapshot(repo repository.AggregateSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if repo == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Banco de dados não configurado", nil)
			return
		}

		batch, err := repo.GetLatestBatch(r.Context())
		if err != nil {
			logger.WithError(err).Error("snapshot: erro ao buscar último lote")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar último snapshot", nil)
			return
		}

		response := latestSnapshotResponse{Rows: []domain.SnapshotEntry{}}
		if batch != nil {
			entries, err := repo.ListByBatch(r.Context(), batch.BatchID)
			if err != nil {
				logger.WithError(err).WithField("batch_id", batch.BatchID).Error("snapshot: erro ao buscar linhas do lote")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar último snapshot", nil)
				return
			}
			response.Batch = batch
			response.Rows = entries
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}
