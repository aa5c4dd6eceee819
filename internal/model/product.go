package model

import "time"

// Produk is one stock-in event: a quantity of a product received on a date
type Produk struct {
	ID         uint      `gorm:"column:id_produk;primaryKey" json:"id_produk"`
	NamaProduk string    `gorm:"column:nama_produk;type:varchar(255);not null" json:"nama_produk"`
	Jumlah     int       `gorm:"column:jumlah;not null;default:0" json:"jumlah"`
	Tanggal    time.Time `gorm:"column:tanggal;type:date;not null;index" json:"tanggal"`
}

func (Produk) TableName() string {
	return "produk"
}
