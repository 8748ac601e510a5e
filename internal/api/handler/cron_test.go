package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

type fakeSyncer struct {
	triggered int
	busy      bool
}

func (f *fakeSyncer) TriggerManualSync() bool {
	if f.busy {
		return false
	}
	f.triggered++
	return true
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true, "triggered": f.triggered}
}

func cronRequest(cronType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/"+cronType+"/run", nil)
	params := httprouter.Params{{Key: "type", Value: cronType}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		cronType   string
		syncer     *fakeSyncer
		wantStatus int
		wantBody   string
		wantCalls  int
	}{
		{name: "snapshot", cronType: CronJobTypeSnapshot, syncer: &fakeSyncer{}, wantStatus: http.StatusAccepted, wantBody: `"started":true`, wantCalls: 1},
		{name: "all", cronType: CronJobTypeAll, syncer: &fakeSyncer{}, wantStatus: http.StatusAccepted, wantBody: `"type":"all"`, wantCalls: 1},
		{name: "já em execução", cronType: CronJobTypeSnapshot, syncer: &fakeSyncer{busy: true}, wantStatus: http.StatusAccepted, wantBody: `"started":false`},
		{name: "tipo inválido", cronType: "meta", syncer: &fakeSyncer{}, wantStatus: http.StatusBadRequest, wantBody: "VAL_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RunCronJob(CronJobServices{SnapshotSyncService: tt.syncer}).ServeHTTP(rec, cronRequest(tt.cronType))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Equal(t, tt.wantCalls, tt.syncer.triggered)
		})
	}
}

func TestRunCronJob_ServiceUnavailable(t *testing.T) {
	rec := httptest.NewRecorder()
	RunCronJob(CronJobServices{}).ServeHTTP(rec, cronRequest(CronJobTypeSnapshot))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_003")
}

func TestGetCronStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	GetCronStatus(CronJobServices{SnapshotSyncService: &fakeSyncer{triggered: 2}}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"snapshot":{"sync_enabled":true,"triggered":2}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	GetCronStatus(CronJobServices{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
	assert.JSONEq(t, `{}`, rec.Body.String())
}
