package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/infrastructure/migration"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/usecases/migrating"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// flagKeys liga cada flag à chave de configuração correspondente
var flagKeys = map[string]string{
	"file":                 "IMPORT_FILE",
	"skip-rows":            "IMPORT_SKIP_ROWS",
	"delimiter":            "IMPORT_DELIMITER",
	"encoding":             "IMPORT_ENCODING",
	"sheet":                "IMPORT_SHEET",
	"null-document-policy": "IMPORT_NULL_DOCUMENT_POLICY",
}

func main() {
	flags := pflag.NewFlagSet("importer", pflag.ExitOnError)
	flags.String("file", "", "planilha a importar (.csv ou .xlsx)")
	flags.Int("skip-rows", 2, "linhas de cabeçalho a descartar")
	flags.String("delimiter", ",", "separador de colunas do CSV")
	flags.String("encoding", "auto", "codificação do CSV: auto, utf-8, windows-1252, iso-8859-1")
	flags.String("sheet", "", "aba do XLSX (padrão: a primeira)")
	flags.String("null-document-policy", config.NullDocumentDistinct, "clientes sem documento: distinct ou shared")
	dryRun := flags.Bool("dry-run", false, "valida e classifica sem gravar no banco")
	_ = flags.Parse(os.Args[1:])

	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			logrus.WithError(err).Fatalf("Erro ao registrar flag %s", name)
		}
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, err := spreadsheet.Read(cfg.Importer.File, cfg.Importer)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler a planilha")
	}
	logrus.Infof("%d registros lidos de %s", len(records), cfg.Importer.File)

	var repo repository.SalesRepository
	if !*dryRun {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
		}
		defer conn.Close()

		if err := migration.EnsureSchema(ctx, conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar o schema do banco")
		}

		repo = repository.NewSalesRepository(conn)
	}

	importer := migrating.NewImporter(repo, cfg.Importer.NullDocumentPolicy)

	result, err := importer.Run(ctx, records, *dryRun)
	if err != nil {
		logrus.WithError(err).Fatal("Importação falhou")
	}

	fmt.Println(utils.PrettyJson(result))
}
