package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zakayo-api/internal/infrastructure/memory"
)

func readCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCustomersCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteCustomersCSV(buf, memory.SeedCustomers()))
	records := readCSV(t, buf)
	require.Len(t, records, 5)
	assert.Equal(t, "name", records[0][1])
	assert.Equal(t, []string{"3", "Bwana Ahmed Hassan", "ahmed.hassan@hotmail.com", "+255734567890",
		"Arusha, Tanzania", "3", "15", "3200000", "Active"}, records[3])
}

func TestWriteOrdersCSV_FechaOpcional(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteOrdersCSV(buf, memory.SeedOrders()))
	records := readCSV(t, buf)
	require.Len(t, records, 5)
	assert.Equal(t, "2024-01-20", records[1][10])
	assert.Equal(t, "", records[2][10])
}

func TestWriteInvoicesAndDeliveryNotesCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteInvoicesCSV(buf, memory.SeedInvoices()))
	records := readCSV(t, buf)
	require.Len(t, records, 4)
	assert.Equal(t, "2065000", records[3][8])

	buf.Reset()
	require.NoError(t, WriteDeliveryNotesCSV(buf, memory.SeedDeliveryNotes()))
	records = readCSV(t, buf)
	require.Len(t, records, 4)
	assert.Equal(t, "In Transit", records[2][7])
}

func TestWriteCSV_ColeccionVaciaSoloCabecera(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteInvoicesCSV(buf, nil))
	assert.Len(t, readCSV(t, buf), 1)
}
