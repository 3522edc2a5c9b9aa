package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(cmd, raw string, appended int) Entry {
	return Entry{
		Timestamp: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		Command:   cmd,
		RawFile:   raw,
		Appended:  appended,
		Outcome:   "applied",
	}
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	err := Append(dir, []Entry{entry("merge", "march.csv", 12)})
	require.NoError(t, err)

	got, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "merge", got[0].Command)
	assert.Equal(t, "march.csv", got[0].RawFile)
	assert.Equal(t, 12, got[0].Appended)
	assert.True(t, got[0].Timestamp.Equal(time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)))
}

func TestAppendWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{entry("merge", "a.csv", 1)}))
	require.NoError(t, Append(dir, []Entry{entry("merge", "b.csv", 2)}))

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "timestamp,"))

	got, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b.csv", got[1].RawFile)
}

func TestReadMissing(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRoundTripCounts(t *testing.T) {
	e := Entry{
		Timestamp:  time.Now().UTC().Truncate(time.Second),
		Command:    "merge",
		RawFile:    "export.csv",
		Appended:   3,
		Duplicates: 2,
		Dropped:    1,
		Outcome:    "aborted",
	}

	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.True(t, got.Timestamp.Equal(e.Timestamp))
	assert.Equal(t, e.Command, got.Command)
	assert.Equal(t, e.RawFile, got.RawFile)
	assert.Equal(t, e.Appended, got.Appended)
	assert.Equal(t, e.Duplicates, got.Duplicates)
	assert.Equal(t, e.Dropped, got.Dropped)
	assert.Equal(t, e.Outcome, got.Outcome)
}
