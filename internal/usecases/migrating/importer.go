// Package migrating carrega a planilha histórica de vendas no banco em uma
// única transação.
package migrating

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/classifying"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

const (
	runIDSize     = 10
	progressEvery = 500
)

// Writer é o subconjunto do repositório usado na carga
type Writer interface {
	InsertClient(ctx context.Context, client *domain.Client) (int64, error)
	InsertProduct(ctx context.Context, product *domain.Product) (int64, error)
	InsertSale(ctx context.Context, sale *domain.Sale) (int64, error)
	InsertLineItem(ctx context.Context, item *domain.SaleLineItem) (int64, error)
}

type Importer struct {
	repo   repository.SalesRepository
	policy string
}

func NewImporter(repo repository.SalesRepository, nullDocumentPolicy string) *Importer {
	return &Importer{
		repo:   repo,
		policy: nullDocumentPolicy,
	}
}

// Run converte, filtra e grava os registros. Qualquer erro desfaz a carga
// inteira. Em dryRun nada é gravado e os contadores refletem o que seria criado.
func (i *Importer) Run(ctx context.Context, records []spreadsheet.Record, dryRun bool) (*domain.ImportResult, error) {
	start := time.Now()

	runID, err := utils.GenerateID(runIDSize)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da execução")
	}

	logger := log.ForContext(ctx).WithField(log.RunIDField, runID)

	rows := ParseRows(records)
	valid, skipped := FilterRows(rows)

	logger.WithFields(log.Fields{
		"import_total":   len(rows),
		"import_skipped": skipped,
		"import_dry_run": dryRun,
	}).Infof("Iniciando carga: %d linhas válidas de %d", len(valid), len(rows))

	result := &domain.ImportResult{
		RunID:       runID,
		TotalRows:   len(rows),
		SkippedRows: skipped,
		DryRun:      dryRun,
	}

	if dryRun {
		if err := i.load(ctx, logger, &dryRunWriter{}, valid, result); err != nil {
			return nil, err
		}
	} else {
		err = i.repo.WithTransaction(ctx, func(repo repository.SalesRepository) error {
			return i.load(ctx, logger, repo, valid, result)
		})
		if err != nil {
			logger.WithError(err).Error("Carga revertida")
			return nil, errors.Wrap(err, "erro na carga histórica, nenhuma linha foi gravada")
		}
	}

	result.Duration = time.Since(start)

	logger.WithFields(log.Fields{
		"import_clients":  result.ClientsCreated,
		"import_products": result.ProductsCreated,
		"import_sales":    result.SalesCreated,
	}).Infof("Carga concluída em %v", result.Duration)

	return result, nil
}

func (i *Importer) load(ctx context.Context, logger log.Logger, w Writer, rows []domain.ImportRow, result *domain.ImportResult) error {
	state := newRunState(i.policy)

	for idx, row := range rows {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "carga cancelada")
		}

		if err := importRow(ctx, w, state, row, result); err != nil {
			return errors.Wrapf(err, "erro na linha %d", row.Line)
		}

		if (idx+1)%progressEvery == 0 {
			logger.Debugf("Progresso: %d/%d linhas processadas", idx+1, len(rows))
		}
	}

	return nil
}

func importRow(ctx context.Context, w Writer, state *runState, row domain.ImportRow, result *domain.ImportResult) error {
	classification := classifying.Classify(row.Article)

	clientID, err := state.clients.Resolve(row.ClientDocument, func() (int64, error) {
		id, err := w.InsertClient(ctx, &domain.Client{
			DocumentID: DocumentKey(row.ClientDocument),
			Name:       row.ClientName,
			Phone:      row.ClientPhone,
		})
		if err != nil {
			return 0, err
		}
		result.ClientsCreated++
		return id, nil
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar cliente")
	}

	productID, err := state.products.ResolveOrCreate(classification.NormalizedName, func() (int64, error) {
		id, err := w.InsertProduct(ctx, &domain.Product{
			OriginalName:   *row.Article,
			NormalizedName: classification.NormalizedName,
			Category:       classification.Category,
			Brand:          classification.Brand,
			ExtraData:      row.ExtraData,
		})
		if err != nil {
			return 0, err
		}
		result.ProductsCreated++
		return id, nil
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar produto")
	}

	saleID, err := w.InsertSale(ctx, &domain.Sale{
		Date:           *row.Date,
		DocumentType:   row.DocumentType,
		DocumentNumber: row.DocumentNumber,
		CreditTerm:     row.CreditTerm,
		PaymentMethod:  row.PaymentMethod,
		Note:           row.Note,
		Currency:       row.Currency,
		ExchangeRate:   utils.ToNullDecimal(row.ExchangeRate),
		Salesperson:    row.Salesperson,
		ClientID:       clientID,
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar venda")
	}

	_, err = w.InsertLineItem(ctx, &domain.SaleLineItem{
		SaleID:      saleID,
		ProductID:   productID,
		Quantity:    utils.ToNullDecimal(row.Quantity),
		Amount:      utils.ToNullDecimal(row.Amount),
		AmountLocal: utils.ToNullDecimal(row.AmountLocal),
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar detalhe da venda")
	}

	result.SalesCreated++
	result.ProcessedRows++

	return nil
}

// dryRunWriter numera as entidades sem gravar nada
type dryRunWriter struct {
	next int64
}

func (w *dryRunWriter) id() int64 {
	w.next++
	return w.next
}

func (w *dryRunWriter) InsertClient(context.Context, *domain.Client) (int64, error) {
	return w.id(), nil
}

func (w *dryRunWriter) InsertProduct(context.Context, *domain.Product) (int64, error) {
	return w.id(), nil
}

func (w *dryRunWriter) InsertSale(context.Context, *domain.Sale) (int64, error) {
	return w.id(), nil
}

func (w *dryRunWriter) InsertLineItem(context.Context, *domain.SaleLineItem) (int64, error) {
	return w.id(), nil
}
