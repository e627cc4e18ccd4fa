package ranking

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

type RankingService interface {
	GetSalespersonRanking(ctx context.Context) ([]*domain.SalespersonTotal, error)
	GetCategoryReport(ctx context.Context) ([]*domain.CategoryBrandSummary, error)
}

type SalesRankingService struct {
	SalesRepository repository.SalesRepository
}

func NewSalesRankingService(salesRepository repository.SalesRepository) RankingService {
	return &SalesRankingService{
		SalesRepository: salesRepository,
	}
}

// GetSalespersonRanking soma o importe em soles por vendedor, do maior para o menor
func (s *SalesRankingService) GetSalespersonRanking(ctx context.Context) ([]*domain.SalespersonTotal, error) {
	ranking, err := s.SalesRepository.SalespersonTotals(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar totais por vendedor")
		return nil, err
	}

	for _, item := range ranking {
		item.Total = utils.RoundWithTwoDecimalPlace(item.Total)
	}

	return ranking, nil
}

func (s *SalesRankingService) GetCategoryReport(ctx context.Context) ([]*domain.CategoryBrandSummary, error) {
	report, err := s.SalesRepository.CategoryReport(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar relatório por categoria")
		return nil, err
	}

	for _, item := range report {
		item.Total = utils.RoundWithTwoDecimalPlace(item.Total)
	}

	return report, nil
}
