package model

// ProductSales is one row of the per-product breakdown for a day
type ProductSales struct {
	Nama   string `json:"nama"`
	Jumlah int    `json:"jumlah"`
}

// DailyTotal is the raw per-date sum read from the transaksi ledger
type DailyTotal struct {
	Tanggal string
	Total   int
}

// TrafficPoint is one day of the trailing 7-day sales series
type TrafficPoint struct {
	Tanggal string `json:"tanggal"`
	Hari    string `json:"hari"`
	Total   int    `json:"total"`
}

// SalesSnapshot holds the raw results of the daily summary sub-queries
type SalesSnapshot struct {
	TotalSold int
	Products  []ProductSales
	Traffic   []DailyTotal
}

// DailySummary is the payload of GET /api/penjualan
type DailySummary struct {
	Tanggal           string         `json:"tanggal"`
	BarangTerjual     int            `json:"barangTerjual"`
	PalingLaris       string         `json:"palingLaris"`
	TrafikMingguan    []TrafficPoint `json:"trafikMingguan"`
	ListProdukTerjual []ProductSales `json:"listProdukTerjual"`
}

// StockFlowPoint is one day of the weekly inbound/outbound chart
type StockFlowPoint struct {
	Tgl    string `json:"tgl"`
	Masuk  int    `json:"masuk"`
	Keluar int    `json:"keluar"`
}

// CountResponse wraps the today counters
type CountResponse struct {
	Total int64 `json:"total"`
}
