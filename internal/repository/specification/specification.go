package specification

import "gorm.io/gorm"

// Specification applies a reusable query predicate to a GORM query
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

type Limit struct {
	Count int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Count)
}
