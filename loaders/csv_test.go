package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lophi-data/lophi/columnstore"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestLoadCSV_InfersTypesPerColumn(t *testing.T) {
	path := writeTempCSV(t, "id,score,flag,segment\n1,1.5,true,a\n2,2.5,false,b\n3,,true,c\n")

	store, err := LoadCSV(path, 0)
	require.NoError(t, err)
	require.Equal(t, 3, store.Rows())

	id, err := store.Column("id")
	require.NoError(t, err)
	require.Equal(t, columnstore.Int64, id.Type)

	score, err := store.Column("score")
	require.NoError(t, err)
	require.Equal(t, columnstore.Float64, score.Type)
	require.False(t, score.Valid[2], "empty cell is null")

	flag, err := store.Column("flag")
	require.NoError(t, err)
	require.Equal(t, columnstore.Bool, flag.Type)

	segment, err := store.Column("segment")
	require.NoError(t, err)
	require.Equal(t, columnstore.Utf8, segment.Type)
}

func TestLoadCSV_WidensIntColumnToFloatWhenDecimalAppears(t *testing.T) {
	path := writeTempCSV(t, "x\n1\n2\n3.5\n")

	store, err := LoadCSV(path, 0)
	require.NoError(t, err)

	x, err := store.Column("x")
	require.NoError(t, err)
	require.Equal(t, columnstore.Float64, x.Type)
}

func TestLoadCSV_SampleLengthBoundsInferenceNotFullRead(t *testing.T) {
	// First two rows look like ints; the third row would widen to Utf8,
	// but inferSchemaLength=2 means the sample never sees it. The row is
	// still present in the Store, with a failed-parse cell mapped null.
	path := writeTempCSV(t, "x\n1\n2\nnot_a_number\n")

	store, err := LoadCSV(path, 2)
	require.NoError(t, err)
	require.Equal(t, 3, store.Rows())

	x, err := store.Column("x")
	require.NoError(t, err)
	require.Equal(t, columnstore.Int64, x.Type)
	require.False(t, x.Valid[2])
}

func TestLoadCSV_AllNullColumnDefaultsToInt64(t *testing.T) {
	path := writeTempCSV(t, "x,y\n,1\n,2\n")

	store, err := LoadCSV(path, 0)
	require.NoError(t, err)

	x, err := store.Column("x")
	require.NoError(t, err)
	require.Equal(t, columnstore.Int64, x.Type)
	require.False(t, x.Valid[0])
	require.False(t, x.Valid[1])
}
