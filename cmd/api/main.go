package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/infrastructure/migration"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/api"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-report-api/internal/usecases/selling"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

func main() {
	// Valores monetários saem como número no JSON, como o painel espera
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Infof("Nível de log configurado para: %s", log.Configure(cfg.App.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.EnsureSchema(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o schema do banco")
	}

	salesRepo := repository.NewSalesRepository(pgConn)

	salesService := selling.NewService(salesRepo, cfg.Importer.NullDocumentPolicy)
	rankingService := ranking.NewSalesRankingService(salesRepo)

	server, err := api.New(
		cfg,
		salesService,
		rankingService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
