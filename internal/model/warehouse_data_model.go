package model

import "time"

// TestDataOrder mirrors the synced order snapshot table. Rows are written by
// the dashboard sync job; this service only reads them.
type TestDataOrder struct {
	OrderId       int64     `gorm:"column:order_id;primaryKey"`
	OrderClassId  int       `gorm:"column:order_class_id"`
	OrderStatusId int       `gorm:"column:order_status_id"`
	FetchedAt     time.Time `gorm:"column:fetched_at"`
	LookupCode    string    `gorm:"column:lookup_code"`
}

func (TestDataOrder) TableName() string {
	return "data_testdata"
}

// DataCardReport mirrors the weekly datacard report table. Day values are
// nullable: a report may not cover every day of its week.
type DataCardReport struct {
	Id          int64    `gorm:"column:id;primaryKey"`
	Warehouse   string   `gorm:"column:warehouse"`
	Description string   `gorm:"column:description"`
	Total       *float64 `gorm:"column:total"`
	Day1Value   *float64 `gorm:"column:day1_value"`
	Day2Value   *float64 `gorm:"column:day2_value"`
	Day3Value   *float64 `gorm:"column:day3_value"`
	Day4Value   *float64 `gorm:"column:day4_value"`
	Day5Value   *float64 `gorm:"column:day5_value"`
	Day6Value   *float64 `gorm:"column:day6_value"`
	Day7Value   *float64 `gorm:"column:day7_value"`
	Year        int      `gorm:"column:year"`
	Week        int      `gorm:"column:week"`
	Section     string   `gorm:"column:section"`
	ListOrder   int      `gorm:"column:list_order"`
}

func (DataCardReport) TableName() string {
	return "data_datacardreport"
}

// DayValues returns day slot values in Monday..Sunday order
func (r *DataCardReport) DayValues() [7]*float64 {
	return [7]*float64{r.Day1Value, r.Day2Value, r.Day3Value, r.Day4Value, r.Day5Value, r.Day6Value, r.Day7Value}
}
