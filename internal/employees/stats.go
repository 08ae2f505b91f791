package employees

import (
	"errors"
	"sort"
)

// ErrNoRecords is returned by statistics over an empty selection.
var ErrNoRecords = errors.New("no matching records")

// MinMaxSalary returns the lowest- and highest-paid records of a
// profession.
func (db *DB) MinMaxSalary(p Profession) (min, max Record, err error) {
	group := db.ByPosition(p)
	if len(group) == 0 {
		return Record{}, Record{}, ErrNoRecords
	}
	min, max = group[0], group[0]
	for _, r := range group[1:] {
		if r.Salary < min.Salary {
			min = r
		}
		if r.Salary > max.Salary {
			max = r
		}
	}
	return min, max, nil
}

// AvgSalary returns the mean salary of a profession.
func (db *DB) AvgSalary(p Profession) (int, error) {
	group := db.ByPosition(p)
	if len(group) == 0 {
		return 0, ErrNoRecords
	}
	var total int64
	for _, r := range group {
		total += int64(r.Salary)
	}
	return int(total / int64(len(group))), nil
}

// MedianSalary returns the upper median salary of a profession.
func (db *DB) MedianSalary(p Profession) (int, error) {
	group := db.ByPosition(p)
	if len(group) == 0 {
		return 0, ErrNoRecords
	}
	salaries := make([]int, len(group))
	for i, r := range group {
		salaries[i] = r.Salary
	}
	sort.Ints(salaries)
	return salaries[len(salaries)/2], nil
}

// TopSalaries returns up to n records of a profession, highest salary
// first.
func (db *DB) TopSalaries(p Profession, n int) ([]Record, error) {
	group := db.ByPosition(p)
	if len(group) == 0 {
		return nil, ErrNoRecords
	}
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Salary > group[j].Salary
	})
	if n > len(group) {
		n = len(group)
	}
	if n < 0 {
		n = 0
	}
	return group[:n], nil
}

// AvgSalaryByAgeRange returns the mean salary of all records whose age
// lies in [lo, hi], inclusive on both ends.
func (db *DB) AvgSalaryByAgeRange(lo, hi int) (int, error) {
	var total int64
	var count int
	for _, r := range db.records {
		if r.Age >= lo && r.Age <= hi {
			total += int64(r.Salary)
			count++
		}
	}
	if count == 0 {
		return 0, ErrNoRecords
	}
	return int(total / int64(count)), nil
}
