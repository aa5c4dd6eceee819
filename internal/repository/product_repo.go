package repository

import (
	"go-sales-dashboard/internal/model"

	"gorm.io/gorm"
)

// ProductRepository reads the produk (stock-in) ledger
type ProductRepository interface {
	CountByDate(date string) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// CountByDate counts stock-in rows recorded on date (YYYY-MM-DD)
func (r *productRepo) CountByDate(date string) (int64, error) {
	var total int64
	err := r.db.Model(&model.Produk{}).Where("tanggal = ?", date).Count(&total).Error
	return total, err
}
