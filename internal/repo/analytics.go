package repo

import (
	"context"
)

type GenderCount struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}

type AgeGroupCount struct {
	AgeGroup string `json:"age_group"`
	Count    int64  `json:"count"`
}

// GenderCounts groups by the stored gender string verbatim; distinct
// casing yields distinct groups.
func (r *GormRepo) GenderCounts(ctx context.Context) ([]GenderCount, error) {
	rows := []GenderCount{}
	err := r.DB.WithContext(ctx).
		Raw("SELECT gender, COUNT(*) AS count FROM customers GROUP BY gender").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AgeGroupCounts buckets with fixed boundaries. A NULL age fails every
// comparison and falls through the CASE to the 60+ bucket, which is the
// documented contract.
func (r *GormRepo) AgeGroupCounts(ctx context.Context) ([]AgeGroupCount, error) {
	rows := []AgeGroupCount{}
	err := r.DB.WithContext(ctx).
		Raw(`SELECT
			CASE
				WHEN age < 18 THEN '0-17'
				WHEN age BETWEEN 18 AND 35 THEN '18-35'
				WHEN age BETWEEN 36 AND 60 THEN '36-60'
				ELSE '60+'
			END AS age_group,
			COUNT(*) AS count
		FROM customers
		GROUP BY age_group`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
