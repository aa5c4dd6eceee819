package service

import (
	"sort"
	"time"

	"go-sales-dashboard/internal/model"
)

// rankProducts orders by quantity descending, then name ascending. The store
// already sorts this way; sorting again keeps the tie-break independent of it.
func rankProducts(in []model.ProductSales) []model.ProductSales {
	out := make([]model.ProductSales, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Jumlah != out[j].Jumlah {
			return out[i].Jumlah > out[j].Jumlah
		}
		return out[i].Nama < out[j].Nama
	})
	return out
}

// fillTraffic expands sparse per-day totals into exactly WindowDays points
// ending at day, with zero for days without sales. Totals outside the window
// are ignored.
func fillTraffic(day time.Time, totals []model.DailyTotal) []model.TrafficPoint {
	byDate := make(map[string]int, len(totals))
	for _, t := range totals {
		byDate[t.Tanggal] += t.Total
	}

	from := windowStart(day)
	points := make([]model.TrafficPoint, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		d := from.AddDate(0, 0, i)
		key := d.Format(DateLayout)
		points = append(points, model.TrafficPoint{
			Tanggal: key,
			Hari:    d.Weekday().String(),
			Total:   byDate[key],
		})
	}
	return points
}

// fillStockFlow does the same for the inbound/outbound chart
func fillStockFlow(day time.Time, rows []model.StockFlowPoint) []model.StockFlowPoint {
	byDate := make(map[string]model.StockFlowPoint, len(rows))
	for _, r := range rows {
		p := byDate[r.Tgl]
		p.Masuk += r.Masuk
		p.Keluar += r.Keluar
		byDate[r.Tgl] = p
	}

	from := windowStart(day)
	points := make([]model.StockFlowPoint, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		key := from.AddDate(0, 0, i).Format(DateLayout)
		p := byDate[key]
		p.Tgl = key
		points = append(points, p)
	}
	return points
}
