package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mje-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/mje-dashboard/infrastructure/repository"
	"github.com/vfg2006/mje-dashboard/infrastructure/spreadsheet"
	"github.com/vfg2006/mje-dashboard/internal/api"
	"github.com/vfg2006/mje-dashboard/internal/config"
	"github.com/vfg2006/mje-dashboard/internal/scheduler"
	"github.com/vfg2006/mje-dashboard/internal/usecases/aggregating"
	"github.com/vfg2006/mje-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/mje-dashboard/internal/usecases/presenting"
	"github.com/vfg2006/mje-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}
	if cfg.UsesDefaultSecret() {
		logrus.Warn("config: SECRET_KEY padrão em uso, defina um segredo antes de expor as rotas administrativas")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A tabela agregada é construída uma única vez; qualquer falha aqui impede a subida do servidor
	table := loadTable(cfg)

	dashboard := presenting.NewDashboard(table, cfg.Dashboard.YearSuffix)
	authenticator := authenticating.NewService(cfg)

	deps := api.Dependencies{
		Presenter:     dashboard,
		Authenticator: authenticator,
	}

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		snapshotRepo := repository.NewAggregateSnapshotRepository(pgConn)
		snapshotSyncService := scheduler.NewSnapshotSyncService(snapshotRepo, table, cfg)

		// Start cria a tabela de snapshots mesmo com a cron desabilitada; sem ela as rotas de snapshot falham
		if err := snapshotSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao iniciar o agendador de snapshot")
		}
		logrus.Info("Agendador de snapshot iniciado com sucesso")

		deps.SnapshotRepo = snapshotRepo
		deps.SnapshotSync = snapshotSyncService
	} else {
		logrus.Info("Banco de dados desabilitado: snapshots indisponíveis")
	}

	server, err := api.New(cfg, deps)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// loadTable lê a planilha configurada e agrega os registros
func loadTable(cfg *config.Config) *aggregating.Table {
	reader := spreadsheet.NewReader(spreadsheet.Columns{
		Category:       cfg.Data.CategoryColumn,
		DocumentNumber: cfg.Data.DocumentNumberColumn,
		DocumentDate:   cfg.Data.DocumentDateColumn,
		HeaderText:     cfg.Data.HeaderTextColumn,
		Division:       cfg.Data.DivisionColumn,
	}, cfg.Data.Sheet)

	records, err := reader.Load(cfg.Data.File)
	if err != nil {
		logrus.WithError(err).WithField("file", cfg.Data.File).Fatal("Erro ao carregar a planilha")
	}

	table := aggregating.NewTable(records)
	logrus.WithFields(logrus.Fields{
		"records": len(records),
		"rows":    table.Len(),
		"months":  len(table.Months()),
	}).Info("Tabela agregada construída")

	return table
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
