package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/exectime-go/pkg/log"
)

func TestExportJSONL(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	reader, err := log.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	var buf bytes.Buffer
	require.NoError(t, export(reader, "jsonl", &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)

	var lap map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &lap))
	assert.Equal(t, "LAP", lap["kind"])
	assert.Equal(t, "build", lap["label"])
	assert.Equal(t, "link", lap["lap_name"])
	assert.Equal(t, "1 minute, 5.000 seconds (65.000012345s)", lap["formatted"])
	assert.Equal(t, map[string]any{"days": 0.0, "hours": 0.0, "minutes": 1.0, "seconds": 5.000012345}, lap["time"])

	var cmd map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[5]), &cmd))
	assert.Equal(t, "COMMAND", cmd["kind"])
	assert.Equal(t, "make", cmd["command"])
	assert.Equal(t, 2.0, cmd["exit_code"])
}

func TestExportCSV(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	reader, err := log.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	var buf bytes.Buffer
	require.NoError(t, export(reader, "csv", &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 7)

	assert.Equal(t, []string{"timestamp", "run_id", "kind", "label", "elapsed_ns", "formatted", "lap_index", "exit_code"}, rows[0])
	assert.Equal(t, "START", rows[1][2])
	assert.Equal(t, "0", rows[1][4])
	assert.Equal(t, "0.0 second (0ns)", rows[1][5])
	assert.Equal(t, "1", rows[2][6])
	assert.Equal(t, "3700056891730", rows[6][4])
	assert.Equal(t, "2", rows[6][7])
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	reader, err := log.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	err = export(reader, "xml", &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown format: xml")
}
