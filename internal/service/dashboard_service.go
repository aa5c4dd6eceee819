package service

import (
	"log"

	"go-sales-dashboard/internal/model"
	"go-sales-dashboard/internal/repository"
)

// StockToday is today's stock-in and stock-out row counts
type StockToday struct {
	Tanggal string `json:"tanggal"`
	Masuk   int64  `json:"masuk"`
	Keluar  int64  `json:"keluar"`
}

type DashboardService interface {
	CountInboundToday() (int64, error)
	CountOutboundToday() (int64, error)
	GetStockToday() (*StockToday, error)
	GetWeeklyChart() ([]model.StockFlowPoint, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	clock       Clock
}

func NewDashboardService(productRepo repository.ProductRepository, txRepo repository.TransactionRepository, clock Clock) DashboardService {
	return &dashboardService{productRepo: productRepo, txRepo: txRepo, clock: clock}
}

func (s *dashboardService) today() string {
	return s.clock.Today().Format(DateLayout)
}

func (s *dashboardService) CountInboundToday() (int64, error) {
	return s.productRepo.CountByDate(s.today())
}

func (s *dashboardService) CountOutboundToday() (int64, error) {
	return s.txRepo.CountByDate(s.today())
}

func (s *dashboardService) GetStockToday() (*StockToday, error) {
	today := s.today()
	in, err := s.productRepo.CountByDate(today)
	if err != nil {
		return nil, err
	}
	out, err := s.txRepo.CountByDate(today)
	if err != nil {
		return nil, err
	}
	return &StockToday{Tanggal: today, Masuk: in, Keluar: out}, nil
}

// GetWeeklyChart returns WindowDays zero-filled points ending today
func (s *dashboardService) GetWeeklyChart() ([]model.StockFlowPoint, error) {
	today := s.clock.Today()
	from := windowStart(today)

	rows, err := s.txRepo.GetStockFlow(from.Format(DateLayout), today.Format(DateLayout))
	if err != nil {
		log.Printf("dashboard: stock flow: %v", err)
		return nil, err
	}
	return fillStockFlow(today, rows), nil
}
