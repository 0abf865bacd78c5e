package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
	boxany "github.com/uccidibuti/box-any"
)

func TestFillBoxContainers(t *testing.T) {
	for _, checked := range []bool{true, false} {
		containers := NewBoxContainers(300)

		FillBoxContainers(containers, 300, checked)

		u8, ok := boxany.DowncastRef[[]uint8](&containers[0])
		require.True(t, ok)
		require.Len(t, *u8, 300)
		require.Equal(t, uint8(299&0xff), (*u8)[299])

		u64, ok := boxany.DowncastRef[[]uint64](&containers[3])
		require.True(t, ok)
		require.Equal(t, uint64(299), (*u64)[299])

		ClearBoxContainers(containers)

		u16, ok := boxany.DowncastRef[[]uint16](&containers[1])
		require.True(t, ok)
		require.Empty(t, *u16)
		require.Equal(t, 300, cap(*u16))

		boxany.DropAll(containers)
	}
}

func TestFillDynContainers(t *testing.T) {
	containers := NewDynContainers(10)

	FillDynContainers(containers, 10)

	u32 := *containers[2].AsAny().(*Slice[uint32])
	require.Equal(t, Slice[uint32]{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, u32)

	ClearDynContainers(containers)
	require.Empty(t, *containers[2].AsAny().(*Slice[uint32]))
}

func TestClearBoxContainers_WrongShapePanics(t *testing.T) {
	containers := []boxany.Box{
		boxany.From([]uint16(nil)),
		boxany.From([]uint16(nil)),
		boxany.From([]uint32(nil)),
		boxany.From([]uint64(nil)),
	}

	defer boxany.DropAll(containers)

	require.Panics(t, func() { ClearBoxContainers(containers) })
}
