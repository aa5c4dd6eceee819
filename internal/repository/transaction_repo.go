package repository

import (
	"database/sql"
	"time"

	"go-sales-dashboard/internal/model"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// TransactionRepository reads the transaksi (stock-out) ledger and the
// aggregates built on top of it
type TransactionRepository interface {
	CountByDate(date string) (int64, error)
	GetSalesSnapshot(date, from string) (*model.SalesSnapshot, error)
	GetStockFlow(from, to string) ([]model.StockFlowPoint, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) CountByDate(date string) (int64, error) {
	var total int64
	err := r.db.Model(&model.Transaksi{}).Where("tanggal_transaksi = ?", date).Count(&total).Error
	return total, err
}

// GetSalesSnapshot runs the daily summary sub-queries for date inside one
// read-only snapshot. Traffic covers [from, date].
func (r *transactionRepo) GetSalesSnapshot(date, from string) (*model.SalesSnapshot, error) {
	var snap model.SalesSnapshot

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Total units sold on the day
		if err := tx.Model(&model.Transaksi{}).
			Select("COALESCE(SUM(jumlah_terjual), 0)").
			Where("tanggal_transaksi = ?", date).
			Scan(&snap.TotalSold).Error; err != nil {
			return err
		}

		// Per-product breakdown, best seller first, ties by name
		if err := tx.Table("transaksi AS t").
			Select("p.nama_produk AS nama, COALESCE(SUM(t.jumlah_terjual), 0) AS jumlah").
			Joins("JOIN produk AS p ON p.id_produk = t.id_produk").
			Where("t.tanggal_transaksi = ?", date).
			// each produk row is a stock-in batch, so batches of one product share a name
			Group("p.nama_produk").
			Order("jumlah DESC, nama ASC").
			Scan(&snap.Products).Error; err != nil {
			return err
		}

		// Trailing traffic per day
		rows, err := tx.Model(&model.Transaksi{}).
			Select("tanggal_transaksi AS tanggal, COALESCE(SUM(jumlah_terjual), 0) AS total").
			Where("tanggal_transaksi BETWEEN ? AND ?", from, date).
			Group("tanggal_transaksi").
			Order("tanggal_transaksi ASC").
			Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var day time.Time
			var total int
			if err := rows.Scan(&day, &total); err != nil {
				return err
			}
			snap.Traffic = append(snap.Traffic, model.DailyTotal{Tanggal: day.Format(dateLayout), Total: total})
		}
		return rows.Err()
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})

	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetStockFlow unions the produk ("in") and transaksi ("out") ledgers over
// [from, to] and sums both sides per day, ascending by date
func (r *transactionRepo) GetStockFlow(from, to string) ([]model.StockFlowPoint, error) {
	var results []model.StockFlowPoint

	rows, err := r.db.Raw(`
		SELECT tgl,
			COALESCE(SUM(masuk), 0) AS masuk,
			COALESCE(SUM(keluar), 0) AS keluar
		FROM (
			SELECT tanggal AS tgl, jumlah AS masuk, 0 AS keluar
			FROM produk
			WHERE tanggal BETWEEN ? AND ?
			UNION ALL
			SELECT tanggal_transaksi AS tgl, 0 AS masuk, jumlah_terjual AS keluar
			FROM transaksi
			WHERE tanggal_transaksi BETWEEN ? AND ?
		) AS arus
		GROUP BY tgl
		ORDER BY tgl ASC
	`, from, to, from, to).Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var day time.Time
		var data model.StockFlowPoint
		if err := rows.Scan(&day, &data.Masuk, &data.Keluar); err != nil {
			return nil, err
		}
		data.Tgl = day.Format(dateLayout)
		results = append(results, data)
	}

	return results, rows.Err()
}
