package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const validLayoutYAML = `
hotel:
  floors:
    - floor: 2
      rooms: [201, 202]
    - floor: 1
      rooms: [103, 101, 102]
`

func TestDefaultLayout(t *testing.T) {
	layout := DefaultLayout()
	require.Len(t, layout.Floors, 10)
	assert.Equal(t, 97, layout.RoomCount())

	first := layout.Floors[0]
	assert.Equal(t, 1, first.Floor)
	assert.Equal(t, []int{101, 102, 103, 104, 105, 106, 107, 108, 109, 110}, first.Rooms)

	top := layout.Floors[9]
	assert.Equal(t, 10, top.Floor)
	assert.Equal(t, []int{1001, 1002, 1003, 1004, 1005, 1006, 1007}, top.Rooms)
	assert.NoError(t, layout.Validate())
}

func TestStandardLayout_SingleFloorIsTopFloor(t *testing.T) {
	layout := StandardLayout(1, 10, 3)
	require.Len(t, layout.Floors, 1)
	assert.Equal(t, []int{1001, 1002, 1003}, layout.Floors[0].Rooms)
}

func TestLayoutValidate_Empty(t *testing.T) {
	assert.ErrorIs(t, Layout{}.Validate(), ErrEmptyLayout)
}

func TestLayoutValidate_Violations(t *testing.T) {
	layout := Layout{Floors: []FloorLayout{
		{Floor: 1, Rooms: []int{101, 101}},
		{Floor: 1, Rooms: []int{102}},
		{Floor: 0, Rooms: []int{1}},
		{Floor: 3},
	}}
	err := layout.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate room 101")
	assert.Contains(t, err.Error(), "duplicate floor 1")
	assert.Contains(t, err.Error(), "floor number must be >= 1")
	assert.Contains(t, err.Error(), "floor 3 has no rooms")
}

func TestNew_OrdersFloorsAscending(t *testing.T) {
	layout, err := LoadLayoutFromBytes([]byte(validLayoutYAML))
	require.NoError(t, err)

	inv, err := New(layout)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, inv.Floors())
	assert.Equal(t, 5, inv.Len())

	var numbers []int
	inv.Each(func(r *Room) { numbers = append(numbers, r.Number) })
	assert.Equal(t, []int{103, 101, 102, 201, 202}, numbers, "in-floor order follows the layout")
}

func TestNew_InvalidLayout(t *testing.T) {
	_, err := New(Layout{})
	assert.Error(t, err)
}

func TestSnapshotIsACopy(t *testing.T) {
	inv, err := New(StandardLayout(2, 2, 2))
	require.NoError(t, err)

	snap := inv.Snapshot()
	snap[1][0].Occupied = true
	assert.False(t, inv.FloorRooms(1)[0].Occupied)
}

func TestVacant(t *testing.T) {
	inv, err := New(StandardLayout(2, 2, 2))
	require.NoError(t, err)
	inv.FloorRooms(1)[1].Occupied = true

	var got []RoomID
	for _, r := range inv.Vacant() {
		got = append(got, r.ID())
	}
	assert.Equal(t, []RoomID{{1, 101}, {2, 1001}, {2, 1002}}, got)
}

func TestFloorRooms_UnknownFloor(t *testing.T) {
	inv, err := New(DefaultLayout())
	require.NoError(t, err)
	assert.Nil(t, inv.FloorRooms(42))
}

func TestLoadLayoutFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hotel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validLayoutYAML), 0644))

	layout, err := LoadLayoutFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, layout.RoomCount())
}

func TestLoadLayoutFromFile_Missing(t *testing.T) {
	_, err := LoadLayoutFromFile("/nonexistent/hotel.yaml")
	assert.Error(t, err)
}

func TestLoadLayoutFromBytes_Invalid(t *testing.T) {
	_, err := LoadLayoutFromBytes([]byte("hotel: [unclosed"))
	assert.Error(t, err)

	_, err = LoadLayoutFromBytes([]byte("hotel:\n  floors: []\n"))
	assert.ErrorIs(t, err, ErrEmptyLayout)
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Compare(Room{Floor: 1, Number: 110}, Room{Floor: 2, Number: 201}))
	assert.Negative(t, Compare(Room{Floor: 2, Number: 201}, Room{Floor: 2, Number: 202}))
	assert.Zero(t, Compare(Room{Floor: 2, Number: 201}, Room{Floor: 2, Number: 201, Occupied: true}))
	assert.Positive(t, Compare(Room{Floor: 3, Number: 301}, Room{Floor: 2, Number: 299}))
}

// Property: every standard layout builds an inventory whose identities are unique
// and whose size matches the layout.
func TestPropertyStandardLayoutIdentitiesUnique(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		floors := rapid.IntRange(1, 12).Draw(t, "floors")
		perFloor := rapid.IntRange(1, 99).Draw(t, "per_floor")
		top := rapid.IntRange(1, 20).Draw(t, "top")

		inv, err := New(StandardLayout(floors, perFloor, top))
		if err != nil {
			t.Fatalf("standard layout rejected: %v", err)
		}
		want := (floors-1)*perFloor + top
		if inv.Len() != want {
			t.Fatalf("Len() = %d, want %d", inv.Len(), want)
		}
		seen := make(map[RoomID]bool, want)
		inv.Each(func(r *Room) {
			if seen[r.ID()] {
				t.Fatalf("duplicate room %s", r)
			}
			seen[r.ID()] = true
		})
		if len(seen) != want {
			t.Fatalf("saw %d rooms, want %d", len(seen), want)
		}
	})
}
