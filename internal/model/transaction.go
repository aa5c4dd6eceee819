package model

import "time"

// Transaksi is one stock-out (sale) event for a product on a date
type Transaksi struct {
	ID               uint      `gorm:"column:id_transaksi;primaryKey" json:"id_transaksi"`
	ProdukID         uint      `gorm:"column:id_produk;not null;index" json:"id_produk"`
	Produk           *Produk   `gorm:"foreignKey:ProdukID;references:ID" json:"produk,omitempty"`
	JumlahTerjual    int       `gorm:"column:jumlah_terjual;not null" json:"jumlah_terjual"`
	TanggalTransaksi time.Time `gorm:"column:tanggal_transaksi;type:date;not null;index" json:"tanggal_transaksi"`
}

func (Transaksi) TableName() string {
	return "transaksi"
}
