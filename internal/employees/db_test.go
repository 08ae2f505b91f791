package employees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDB() *DB {
	return NewDB(
		Record{Name: "Ada", Position: Engineer, Age: 36, Salary: 4200},
		Record{Name: "Greg", Position: Doctor, Age: 51, Salary: 3900},
		Record{Name: "Lena", Position: Lawyer, Age: 44, Salary: 5100},
		Record{Name: "Bo", Position: Engineer, Age: 29, Salary: 3100},
		Record{Name: "Mira", Position: Doctor, Age: 38, Salary: 4400},
	)
}

func positions(records []Record) []Profession {
	out := make([]Profession, len(records))
	for i, r := range records {
		out[i] = r.Position
	}
	return out
}

func TestNewDBGroupsByProfession(t *testing.T) {
	db := sampleDB()

	assert.Equal(t, 5, db.Len())
	assert.Equal(t,
		[]Profession{Engineer, Engineer, Doctor, Doctor, Lawyer},
		positions(db.All()))
}

func TestNewDBPreservesOrderWithinGroup(t *testing.T) {
	db := sampleDB()
	engineers := db.ByPosition(Engineer)

	require.Len(t, engineers, 2)
	assert.Equal(t, "Ada", engineers[0].Name)
	assert.Equal(t, "Bo", engineers[1].Name)
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	db := NewDB()
	id1 := db.Insert(Record{Name: "Ada", Position: Engineer})
	id2 := db.Insert(Record{Name: "Bo", Position: Doctor})

	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), id2)
}

func TestInsertKeepsGrouping(t *testing.T) {
	db := sampleDB()
	db.Insert(Record{Name: "Nia", Position: Engineer, Age: 31, Salary: 3500})

	assert.Equal(t,
		[]Profession{Engineer, Engineer, Engineer, Doctor, Doctor, Lawyer},
		positions(db.All()))

	// New records go to the end of their group.
	engineers := db.ByPosition(Engineer)
	assert.Equal(t, "Nia", engineers[len(engineers)-1].Name)
}

func TestInsertUpsertsByName(t *testing.T) {
	db := sampleDB()
	before, ok := db.FindByName("Bo")
	require.True(t, ok)

	id := db.Insert(Record{Name: "Bo", Position: Engineer, Age: 30, Salary: 3300})

	// Same id, updated record, no growth.
	assert.Equal(t, before.ID, id)
	assert.Equal(t, 5, db.Len())

	after, ok := db.FindByName("Bo")
	require.True(t, ok)
	assert.Equal(t, 3300, after.Salary)
	assert.Equal(t, 30, after.Age)
}

func TestRemoveByID(t *testing.T) {
	db := sampleDB()
	rec, ok := db.FindByName("Greg")
	require.True(t, ok)

	db.Remove(rec.ID)

	assert.Equal(t, 4, db.Len())
	_, ok = db.FindByName("Greg")
	assert.False(t, ok)
	_, ok = db.FindByID(rec.ID)
	assert.False(t, ok)
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	db := sampleDB()
	db.Remove(999)
	assert.Equal(t, 5, db.Len())
}

func TestRemoveByName(t *testing.T) {
	db := sampleDB()
	db.RemoveByName("Lena")

	assert.Equal(t, 4, db.Len())
	assert.Empty(t, db.ByPosition(Lawyer))

	// Indices stay consistent after the tail shifted.
	mira, ok := db.FindByName("Mira")
	require.True(t, ok)
	got, ok := db.FindByID(mira.ID)
	require.True(t, ok)
	assert.Equal(t, "Mira", got.Name)
}

func TestFindMisses(t *testing.T) {
	db := sampleDB()

	_, ok := db.FindByID(42)
	assert.False(t, ok)
	_, ok = db.FindByName("Nobody")
	assert.False(t, ok)
}

func TestAllReturnsACopy(t *testing.T) {
	db := sampleDB()
	all := db.All()
	all[0].Name = "mutated"

	rec, ok := db.FindByID(all[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", rec.Name)
}

func TestByPositionEmptyGroup(t *testing.T) {
	db := NewDB(Record{Name: "Ada", Position: Engineer})
	assert.Empty(t, db.ByPosition(Lawyer))
}
