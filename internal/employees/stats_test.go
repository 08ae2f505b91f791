package employees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsDB() *DB {
	return NewDB(
		Record{Name: "Ada", Position: Engineer, Age: 36, Salary: 4200},
		Record{Name: "Bo", Position: Engineer, Age: 29, Salary: 3100},
		Record{Name: "Cy", Position: Engineer, Age: 48, Salary: 5000},
		Record{Name: "Di", Position: Engineer, Age: 33, Salary: 3700},
		Record{Name: "Greg", Position: Doctor, Age: 51, Salary: 3900},
	)
}

func TestMinMaxSalary(t *testing.T) {
	db := statsDB()
	min, max, err := db.MinMaxSalary(Engineer)

	require.NoError(t, err)
	assert.Equal(t, "Bo", min.Name)
	assert.Equal(t, "Cy", max.Name)
}

func TestAvgSalary(t *testing.T) {
	db := statsDB()
	avg, err := db.AvgSalary(Engineer)

	require.NoError(t, err)
	assert.Equal(t, 4000, avg) // (4200+3100+5000+3700)/4
}

func TestMedianSalaryUpperMedian(t *testing.T) {
	db := statsDB()
	med, err := db.MedianSalary(Engineer)

	require.NoError(t, err)
	// Sorted salaries 3100,3700,4200,5000; upper median is index 2.
	assert.Equal(t, 4200, med)
}

func TestTopSalaries(t *testing.T) {
	db := statsDB()
	top, err := db.TopSalaries(Engineer, 2)

	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Cy", top[0].Name)
	assert.Equal(t, "Ada", top[1].Name)
}

func TestTopSalariesClampsToGroupSize(t *testing.T) {
	db := statsDB()
	top, err := db.TopSalaries(Doctor, 10)

	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestAvgSalaryByAgeRange(t *testing.T) {
	db := statsDB()
	avg, err := db.AvgSalaryByAgeRange(30, 40)

	require.NoError(t, err)
	assert.Equal(t, 3950, avg) // Ada 4200, Di 3700
}

func TestStatsOnEmptySelection(t *testing.T) {
	db := statsDB()

	_, _, err := db.MinMaxSalary(Lawyer)
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = db.AvgSalary(Lawyer)
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = db.MedianSalary(Lawyer)
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = db.TopSalaries(Lawyer, 3)
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = db.AvgSalaryByAgeRange(90, 99)
	assert.ErrorIs(t, err, ErrNoRecords)
}
