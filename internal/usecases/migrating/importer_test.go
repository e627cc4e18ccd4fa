package migrating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-report-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func runInline(repo *mocks.MockSalesRepository) func(context.Context, func(repository.SalesRepository) error) error {
	return func(_ context.Context, fn func(repository.SalesRepository) error) error {
		return fn(repo)
	}
}

func TestImporterRun_SingleRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)

	repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline(repo))

	repo.EXPECT().InsertClient(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Client) (int64, error) {
			assert.Equal(t, "12345678", *c.DocumentID)
			assert.Equal(t, "Juan Pérez", *c.Name)
			return 1, nil
		})

	repo.EXPECT().InsertProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Product) (int64, error) {
			assert.Equal(t, "Mouse Logitech M90", p.OriginalName)
			assert.Equal(t, "mouse logitech m90", p.NormalizedName)
			assert.Equal(t, "Mouse", p.Category)
			assert.Equal(t, "LOGITECH", p.Brand)
			return 10, nil
		})

	repo.EXPECT().InsertSale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.Sale) (int64, error) {
			assert.Equal(t, int64(1), s.ClientID)
			assert.Equal(t, "2024-03-01", s.Date.Format(domain.DateLayout))
			return 100, nil
		})

	repo.EXPECT().InsertLineItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, li *domain.SaleLineItem) (int64, error) {
			assert.Equal(t, int64(100), li.SaleID)
			assert.Equal(t, int64(10), li.ProductID)
			assert.Equal(t, "1", li.Quantity.Decimal.String())
			assert.Equal(t, "25.5", li.AmountLocal.Decimal.String())
			return 1000, nil
		})

	importer := NewImporter(repo, config.NullDocumentDistinct)
	result, err := importer.Run(context.Background(), []spreadsheet.Record{validRow(3)}, false)

	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 1, result.TotalRows)
	assert.Equal(t, 0, result.SkippedRows)
	assert.Equal(t, 1, result.ProcessedRows)
	assert.Equal(t, 1, result.ClientsCreated)
	assert.Equal(t, 1, result.ProductsCreated)
	assert.Equal(t, 1, result.SalesCreated)
}

func TestImporterRun_SharedClientDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)

	second := validRow(4)
	second.Fields[colArticle] = "Teclado Genius KB-110"

	repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline(repo))
	repo.EXPECT().InsertClient(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(1)
	repo.EXPECT().InsertProduct(gomock.Any(), gomock.Any()).Return(int64(10), nil)
	repo.EXPECT().InsertProduct(gomock.Any(), gomock.Any()).Return(int64(11), nil)

	var clientIDs []int64
	repo.EXPECT().InsertSale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.Sale) (int64, error) {
			clientIDs = append(clientIDs, s.ClientID)
			return int64(100 + len(clientIDs)), nil
		}).Times(2)
	repo.EXPECT().InsertLineItem(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)

	importer := NewImporter(repo, config.NullDocumentDistinct)
	result, err := importer.Run(context.Background(), []spreadsheet.Record{validRow(3), second}, false)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1}, clientIDs)
	assert.Equal(t, 1, result.ClientsCreated)
	assert.Equal(t, 2, result.SalesCreated)
}

func TestImporterRun_SameProductIsCreatedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)

	second := validRow(4)
	second.Fields[colArticle] = "  MOUSE   logitech m90!! "
	second.Fields[colClientDocument] = "87654321"

	repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline(repo))
	repo.EXPECT().InsertClient(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().InsertClient(gomock.Any(), gomock.Any()).Return(int64(2), nil)
	repo.EXPECT().InsertProduct(gomock.Any(), gomock.Any()).Return(int64(10), nil).Times(1)

	var productIDs []int64
	repo.EXPECT().InsertSale(gomock.Any(), gomock.Any()).Return(int64(100), nil).Times(2)
	repo.EXPECT().InsertLineItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, li *domain.SaleLineItem) (int64, error) {
			productIDs = append(productIDs, li.ProductID)
			return 1, nil
		}).Times(2)

	importer := NewImporter(repo, config.NullDocumentDistinct)
	result, err := importer.Run(context.Background(), []spreadsheet.Record{validRow(3), second}, false)

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 10}, productIDs)
	assert.Equal(t, 1, result.ProductsCreated)
	assert.Equal(t, 2, result.ClientsCreated)
}

func TestImporterRun_ErrorAbortsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)
	failure := errors.New("violação de chave estrangeira")

	repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.SalesRepository) error) error {
			// a transação real faz rollback quando fn falha
			return fn(repo)
		})
	repo.EXPECT().InsertClient(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().InsertProduct(gomock.Any(), gomock.Any()).Return(int64(10), nil)
	repo.EXPECT().InsertSale(gomock.Any(), gomock.Any()).Return(int64(0), failure)

	importer := NewImporter(repo, config.NullDocumentDistinct)
	result, err := importer.Run(context.Background(), []spreadsheet.Record{validRow(3), validRow(4)}, false)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, failure)
	assert.ErrorContains(t, err, "linha 3")
}

func TestImporterRun_SkipsInvalidRowsBeforeWriting(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)

	invalid := validRow(4)
	invalid.Fields[colAmountLocal] = ""

	repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInline(repo))
	repo.EXPECT().InsertClient(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(1)
	repo.EXPECT().InsertProduct(gomock.Any(), gomock.Any()).Return(int64(10), nil).Times(1)
	repo.EXPECT().InsertSale(gomock.Any(), gomock.Any()).Return(int64(100), nil).Times(1)
	repo.EXPECT().InsertLineItem(gomock.Any(), gomock.Any()).Return(int64(1000), nil).Times(1)

	importer := NewImporter(repo, config.NullDocumentDistinct)
	result, err := importer.Run(context.Background(), []spreadsheet.Record{validRow(3), invalid}, false)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 1, result.SkippedRows)
	assert.Equal(t, 1, result.ProcessedRows)
}

func TestImporterRun_DryRunDoesNotWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesRepository(ctrl)

	noDocument := validRow(4)
	noDocument.Fields[colClientDocument] = ""
	anotherNoDocument := validRow(5)
	anotherNoDocument.Fields[colClientDocument] = ""

	importer := NewImporter(repo, config.NullDocumentShared)
	result, err := importer.Run(context.Background(), []spreadsheet.Record{validRow(3), noDocument, anotherNoDocument}, true)

	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 3, result.ProcessedRows)
	assert.Equal(t, 2, result.ClientsCreated)
	assert.Equal(t, 1, result.ProductsCreated)
	assert.Equal(t, 3, result.SalesCreated)
}
