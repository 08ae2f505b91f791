package employees

import "sort"

// DB holds the roster. The record slice is kept grouped by profession
// (in Profession constant order); two hash indices give O(1) lookup by
// name and by id. The name index maps to ids, the id index to slice
// positions, so the id index is the only one rebuilt when positions
// shift.
type DB struct {
	records []Record
	byName  map[string]uint64
	byID    map[uint64]int
	nextID  uint64
}

// NewDB builds a roster from the given records. Input order is
// preserved within each profession group; ids are assigned fresh.
func NewDB(records ...Record) *DB {
	db := &DB{
		byName: make(map[string]uint64),
		byID:   make(map[uint64]int),
		nextID: 1,
	}
	db.records = make([]Record, len(records))
	copy(db.records, records)
	sort.SliceStable(db.records, func(i, j int) bool {
		return db.records[i].Position < db.records[j].Position
	})
	for i := range db.records {
		db.records[i].ID = db.nextID
		db.nextID++
		db.byName[db.records[i].Name] = db.records[i].ID
	}
	db.rebuildIDIndex()
	return db
}

// Insert adds a record and returns its id. Names are unique: inserting
// a record whose name already exists replaces the existing record in
// place and keeps its id. New records are placed at the end of their
// profession group.
func (db *DB) Insert(rec Record) uint64 {
	if id, ok := db.byName[rec.Name]; ok {
		idx := db.byID[id]
		rec.ID = id
		db.records[idx] = rec
		return id
	}

	// Upper bound of the record's profession group.
	idx := sort.Search(len(db.records), func(i int) bool {
		return db.records[i].Position > rec.Position
	})
	rec.ID = db.nextID
	db.nextID++

	db.records = append(db.records, Record{})
	copy(db.records[idx+1:], db.records[idx:])
	db.records[idx] = rec

	db.byName[rec.Name] = rec.ID
	db.rebuildIDIndex()
	return rec.ID
}

// Remove deletes the record with the given id, if present.
func (db *DB) Remove(id uint64) {
	idx, ok := db.byID[id]
	if !ok {
		return
	}
	delete(db.byName, db.records[idx].Name)
	db.records = append(db.records[:idx], db.records[idx+1:]...)
	db.rebuildIDIndex()
}

// RemoveByName deletes the record with the given name, if present.
func (db *DB) RemoveByName(name string) {
	if id, ok := db.byName[name]; ok {
		db.Remove(id)
	}
}

// FindByID returns the record with the given id.
func (db *DB) FindByID(id uint64) (Record, bool) {
	idx, ok := db.byID[id]
	if !ok {
		return Record{}, false
	}
	return db.records[idx], true
}

// FindByName returns the record with the given name.
func (db *DB) FindByName(name string) (Record, bool) {
	id, ok := db.byName[name]
	if !ok {
		return Record{}, false
	}
	return db.FindByID(id)
}

// Len returns the number of records.
func (db *DB) Len() int {
	return len(db.records)
}

// All returns a copy of the roster in storage order (grouped by
// profession).
func (db *DB) All() []Record {
	out := make([]Record, len(db.records))
	copy(out, db.records)
	return out
}

// ByPosition returns a copy of the contiguous group of records for one
// profession.
func (db *DB) ByPosition(p Profession) []Record {
	lo := sort.Search(len(db.records), func(i int) bool {
		return db.records[i].Position >= p
	})
	hi := sort.Search(len(db.records), func(i int) bool {
		return db.records[i].Position > p
	})
	out := make([]Record, hi-lo)
	copy(out, db.records[lo:hi])
	return out
}

func (db *DB) rebuildIDIndex() {
	clear(db.byID)
	for i := range db.records {
		db.byID[db.records[i].ID] = i
	}
}
