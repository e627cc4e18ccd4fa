// Package selling implementa o CRUD de vendas usado pela API
package selling

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/classifying"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

type SalesService interface {
	AddSale(ctx context.Context, request *domain.SaleRequest) (int64, error)
	EditSale(ctx context.Context, saleID int64, request *domain.SaleRequest) error
	DeleteSale(ctx context.Context, saleID int64) error
	ListSales(ctx context.Context, search string) ([]*domain.SaleRecord, error)
}

type Service struct {
	salesRepository    repository.SalesRepository
	nullDocumentPolicy string
}

func NewService(salesRepository repository.SalesRepository, nullDocumentPolicy string) SalesService {
	return &Service{
		salesRepository:    salesRepository,
		nullDocumentPolicy: nullDocumentPolicy,
	}
}

func (s *Service) ListSales(ctx context.Context, search string) ([]*domain.SaleRecord, error) {
	sales, err := s.salesRepository.ListSales(ctx, search)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar vendas")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "falha ao listar vendas")
	}

	return sales, nil
}

// AddSale grava cliente (se novo), produto (se novo), venda e detalhe em uma transação
func (s *Service) AddSale(ctx context.Context, request *domain.SaleRequest) (int64, error) {
	saleDate, err := validateRequest(request)
	if err != nil {
		return 0, err
	}

	var saleID int64
	err = s.salesRepository.WithTransaction(ctx, func(repo repository.SalesRepository) error {
		clientID, err := s.resolveClient(ctx, repo, request)
		if err != nil {
			return err
		}

		productID, err := resolveProduct(ctx, repo, request.Article)
		if err != nil {
			return err
		}

		saleID, err = repo.InsertSale(ctx, &domain.Sale{
			Date:           saleDate,
			DocumentType:   request.DocumentType,
			DocumentNumber: request.DocumentNumber,
			PaymentMethod:  request.PaymentMethod,
			Salesperson:    request.Salesperson,
			ClientID:       clientID,
		})
		if err != nil {
			return err
		}

		_, err = repo.InsertLineItem(ctx, &domain.SaleLineItem{
			SaleID:      saleID,
			ProductID:   productID,
			Quantity:    utils.ToNullDecimal(request.Quantity),
			AmountLocal: utils.ToNullDecimal(request.AmountLocal),
		})
		return err
	})
	if err != nil {
		return 0, s.toSaleError(ctx, err, 0, "falha ao registrar venda")
	}

	log.ForContext(ctx).WithField("sale_id", saleID).Info("Venda registrada")

	return saleID, nil
}

// EditSale atualiza cabeçalho e detalhe. Produto e cliente existentes nunca são
// alterados: se o artigo ou o documento mudar, a venda passa a apontar para outro registro.
func (s *Service) EditSale(ctx context.Context, saleID int64, request *domain.SaleRequest) error {
	saleDate, err := validateRequest(request)
	if err != nil {
		return err
	}

	err = s.salesRepository.WithTransaction(ctx, func(repo repository.SalesRepository) error {
		sale, err := repo.GetSaleByID(ctx, saleID)
		if err != nil {
			return err
		}

		item, err := repo.GetLineItemBySaleID(ctx, saleID)
		if err != nil {
			return err
		}

		if sale == nil || item == nil {
			return NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrSaleNotFound, saleID, "")
		}

		product, err := repo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return err
		}

		if product == nil || product.OriginalName != request.Article {
			productID, err := resolveProduct(ctx, repo, request.Article)
			if err != nil {
				return err
			}
			item.ProductID = productID
		}

		client, err := repo.GetClientByID(ctx, sale.ClientID)
		if err != nil {
			return err
		}

		if client == nil || !sameDocument(client.DocumentID, utils.TrimToNil(request.ClientDocument)) {
			clientID, err := s.resolveClient(ctx, repo, request)
			if err != nil {
				return err
			}
			sale.ClientID = clientID
		}

		sale.Date = saleDate
		sale.DocumentType = request.DocumentType
		sale.DocumentNumber = request.DocumentNumber
		sale.PaymentMethod = request.PaymentMethod
		sale.Salesperson = request.Salesperson
		if err := repo.UpdateSale(ctx, sale); err != nil {
			return err
		}

		item.Quantity = utils.ToNullDecimal(request.Quantity)
		item.AmountLocal = utils.ToNullDecimal(request.AmountLocal)
		return repo.UpdateLineItem(ctx, item)
	})
	if err != nil {
		return s.toSaleError(ctx, err, saleID, "falha ao atualizar venda")
	}

	log.ForContext(ctx).WithField("sale_id", saleID).Info("Venda atualizada")

	return nil
}

// DeleteSale remove os detalhes e a venda em uma transação
func (s *Service) DeleteSale(ctx context.Context, saleID int64) error {
	err := s.salesRepository.WithTransaction(ctx, func(repo repository.SalesRepository) error {
		if err := repo.DeleteLineItemsBySaleID(ctx, saleID); err != nil {
			return err
		}

		affected, err := repo.DeleteSale(ctx, saleID)
		if err != nil {
			return err
		}

		if affected == 0 {
			return NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrSaleNotFound, saleID, "")
		}

		return nil
	})
	if err != nil {
		return s.toSaleError(ctx, err, saleID, "falha ao excluir venda")
	}

	log.ForContext(ctx).WithField("sale_id", saleID).Info("Venda excluída")

	return nil
}

// resolveClient procura o cliente pelo documento e o cria quando não existe.
// Sem documento segue a política configurada, como na carga histórica.
func (s *Service) resolveClient(ctx context.Context, repo repository.SalesRepository, request *domain.SaleRequest) (int64, error) {
	document := utils.TrimToNil(request.ClientDocument)

	var (
		client *domain.Client
		err    error
	)
	switch {
	case document != nil:
		client, err = repo.FindClientByDocument(ctx, *document)
	case s.nullDocumentPolicy == config.NullDocumentShared:
		client, err = repo.FindClientWithoutDocument(ctx)
	}
	if err != nil {
		return 0, err
	}

	if client != nil {
		return client.ID, nil
	}

	name := strings.TrimSpace(request.ClientName)
	return repo.InsertClient(ctx, &domain.Client{
		DocumentID: document,
		Name:       &name,
		Phone:      utils.TrimToNil(request.ClientPhone),
	})
}

// resolveProduct procura o produto pelo nome normalizado e o classifica ao criar
func resolveProduct(ctx context.Context, repo repository.SalesRepository, article string) (int64, error) {
	classification := classifying.Classify(&article)

	product, err := repo.FindProductByNormalizedName(ctx, classification.NormalizedName)
	if err != nil {
		return 0, err
	}

	if product != nil {
		return product.ID, nil
	}

	return repo.InsertProduct(ctx, &domain.Product{
		OriginalName:   article,
		NormalizedName: classification.NormalizedName,
		Category:       classification.Category,
		Brand:          classification.Brand,
	})
}

func validateRequest(request *domain.SaleRequest) (time.Time, error) {
	if request == nil {
		return time.Time{}, NewSaleError(ErrMissingRequiredData, apiErrors.ErrInvalidRequest, "corpo da requisição vazio")
	}

	request.Article = strings.TrimSpace(request.Article)
	request.ClientName = strings.TrimSpace(request.ClientName)

	var missing []string
	if strings.TrimSpace(request.Date) == "" {
		missing = append(missing, "fecha")
	}
	if request.Article == "" {
		missing = append(missing, "articulos")
	}
	if request.ClientName == "" {
		missing = append(missing, "cliente")
	}
	if request.AmountLocal == nil {
		missing = append(missing, "importe_soles")
	}
	if len(missing) > 0 {
		return time.Time{}, NewSaleError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, strings.Join(missing, ", "))
	}

	date, err := utils.ParseDate(strings.TrimSpace(request.Date))
	if err != nil {
		return time.Time{}, NewSaleError(ErrInvalidDate, apiErrors.ErrInvalidFormat, fmt.Sprintf("fecha %q", request.Date))
	}

	return *date, nil
}

// toSaleError mantém erros já tipados e converte falhas de banco
func (s *Service) toSaleError(ctx context.Context, err error, saleID int64, details string) error {
	var saleErr *SaleError
	if errors.As(err, &saleErr) {
		return saleErr
	}

	log.ForContext(ctx).WithError(err).WithField("sale_id", saleID).Error("Erro de banco de dados")

	return NewSaleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, saleID, details)
}

func sameDocument(current, requested *string) bool {
	current = utils.TrimToNil(current)
	if current == nil || requested == nil {
		return current == nil && requested == nil
	}
	return *current == *requested
}
