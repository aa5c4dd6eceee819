package service

import (
	"fmt"
	"log"

	"go-sales-dashboard/internal/cache"
	"go-sales-dashboard/internal/model"
	"go-sales-dashboard/internal/repository"
)

// NoBestSeller is reported when nothing was sold on the selected day
const NoBestSeller = "N/A"

type SalesService interface {
	GetDailySummary(date string) (*model.DailySummary, error)
	RequestPDF(date string) (*PDFAck, error)
}

// PDFAck acknowledges a report request; no document is produced yet
type PDFAck struct {
	Message string `json:"message"`
	Tanggal string `json:"tanggal"`
}

type salesService struct {
	txRepo repository.TransactionRepository
	cache  cache.Cache
	clock  Clock
}

func NewSalesService(txRepo repository.TransactionRepository, c cache.Cache, clock Clock) SalesService {
	if c == nil {
		c = cache.Nop{}
	}
	return &salesService{txRepo: txRepo, cache: c, clock: clock}
}

func (s *salesService) GetDailySummary(date string) (*model.DailySummary, error) {
	day, err := s.clock.ParseDate(date)
	if err != nil {
		return nil, err
	}
	key := day.Format(DateLayout)

	// Only finished days are cached; today keeps moving
	cacheable := day.Before(s.clock.Today())
	cacheKey := fmt.Sprintf(cache.KeyDailySummary, key)
	if cacheable {
		var cached model.DailySummary
		if s.cache.Get(cacheKey, &cached) {
			return &cached, nil
		}
	}

	from := windowStart(day)
	snap, err := s.txRepo.GetSalesSnapshot(key, from.Format(DateLayout))
	if err != nil {
		log.Printf("sales: snapshot for %s: %v", key, err)
		return nil, err
	}

	products := rankProducts(snap.Products)
	summary := &model.DailySummary{
		Tanggal:           key,
		BarangTerjual:     snap.TotalSold,
		PalingLaris:       NoBestSeller,
		TrafikMingguan:    fillTraffic(day, snap.Traffic),
		ListProdukTerjual: products,
	}
	if len(products) > 0 {
		summary.PalingLaris = products[0].Nama
	}

	if cacheable {
		s.cache.Set(cacheKey, summary)
	}
	return summary, nil
}

func (s *salesService) RequestPDF(date string) (*PDFAck, error) {
	day, err := s.clock.ParseDate(date)
	if err != nil {
		return nil, err
	}
	key := day.Format(DateLayout)
	return &PDFAck{
		Message: fmt.Sprintf("PDF report for %s has been requested", key),
		Tanggal: key,
	}, nil
}
