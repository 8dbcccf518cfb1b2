package specification

import "gorm.io/gorm"

// WarehouseIs filters datacard reports by canonical warehouse id
type WarehouseIs struct {
	Warehouse string
}

func (s WarehouseIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("warehouse = ?", s.Warehouse)
}

// DescriptionContains filters reports by a case-insensitive description substring
type DescriptionContains struct {
	Substring string
}

func (s DescriptionContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("description ILIKE ?", "%"+s.Substring+"%")
}

// WeekOfYear filters reports by week number and, when Year > 0, by year
type WeekOfYear struct {
	Week int
	Year int
}

func (s WeekOfYear) Apply(db *gorm.DB) *gorm.DB {
	db = db.Where("week = ?", s.Week)
	if s.Year > 0 {
		db = db.Where("year = ?", s.Year)
	}
	return db
}

// NewestFirst orders reports the way the dashboard lists them
type NewestFirst struct {
	ByListOrder bool
}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	if s.ByListOrder {
		return db.Order("year DESC, week DESC, section, list_order")
	}
	return db.Order("year DESC, week DESC")
}
