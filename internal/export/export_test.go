package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/auditlens/soc-extract/internal/record"
)

func sample() record.ResultSet {
	return record.ResultSet{
		{
			record.FileNameKey:          "a.pdf",
			"ThirdPartyServiceProvider": "Acme Corp",
			"ServicesProvided":          []any{"Payroll", "Benefits"},
		},
		{
			record.FileNameKey:   "b.pdf",
			"ReportPeriod":       "2024-01-01 to 2024-12-31",
			"SubserviceProvider": nil,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample()))

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	header := rows[0]
	assert.Equal(t, record.FileNameKey, header[0])
	assert.Equal(t, []string{record.FileNameKey, "ReportPeriod", "ServicesProvided", "SubserviceProvider", "ThirdPartyServiceProvider"}, header)

	byCol := func(row []string) map[string]string {
		m := map[string]string{}
		for i, h := range header {
			m[h] = row[i]
		}
		return m
	}

	first := byCol(rows[1])
	assert.Equal(t, "a.pdf", first[record.FileNameKey])
	assert.Equal(t, `["Payroll","Benefits"]`, first["ServicesProvided"])
	assert.Equal(t, "", first["ReportPeriod"]) // missing key renders empty

	second := byCol(rows[2])
	assert.Equal(t, "", second["SubserviceProvider"]) // null renders empty
	assert.Equal(t, "2024-01-01 to 2024-12-31", second["ReportPeriod"])
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, sample()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "a.pdf", first[record.FileNameKey])
	assert.Equal(t, []any{"Payroll", "Benefits"}, first["ServicesProvided"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	_, hasNull := second["SubserviceProvider"]
	assert.True(t, hasNull) // null values stay present per line
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample()))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "b.pdf", out[1][record.FileNameKey])
	assert.True(t, strings.Contains(buf.String(), "\n  "), "output is indented")
}

func TestWriteJSONEmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sample()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Reports")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, record.FileNameKey, rows[0][0])
	assert.Equal(t, "a.pdf", rows[1][0])
}
