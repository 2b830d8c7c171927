package reports

import (
	"bytes"
	"testing"
	"time"

	"workshoppro/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var generatedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func sampleTable() *Table {
	return StockAlertsTable([]models.StockAlert{
		{ID: uuid.New(), PartName: "Filtro de óleo", Supplier: "Auto Peças", CurrentStock: 2, MinStock: 10, Priority: models.AlertPriorityHigh},
		{ID: uuid.New(), PartName: "Vela, ignição", Supplier: "Fornecedor não informado", CurrentStock: 4, MinStock: 10, Priority: models.AlertPriorityMedium},
	})
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatExcel, f)

	_, err = ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormat_FileNameAndContentType(t *testing.T) {
	assert.Equal(t, "estoque_2025-03-10.pdf", FormatPDF.FileName("estoque", generatedAt))
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Contains(t, FormatCSV.ContentType(), "text/csv")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))

	out := buf.String()
	assert.Contains(t, out, "Peça,Fornecedor,Estoque atual,Estoque mínimo,Prioridade\n")
	assert.Contains(t, out, "Filtro de óleo,Auto Peças,2,10,Alta\n")
	assert.Contains(t, out, `"Vela, ignição"`)
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, sampleTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Alertas de Estoque")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Peça", rows[0][0])
	assert.Equal(t, "Filtro de óleo", rows[1][0])
	assert.Equal(t, "Média", rows[2][4])
}

func TestWritePDF(t *testing.T) {
	data, err := Render(FormatPDF, sampleTable(), generatedAt)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Relatorio", sheetName(""))
	assert.Equal(t, "ab", sheetName("a/b"))
	assert.Len(t, []rune(sheetName("Relatório muito longo de ordens de serviço")), 31)
}

func TestServiceOrdersTable(t *testing.T) {
	table := ServiceOrdersTable([]models.RecentOrder{{
		OrderNumber: "OS000001",
		ClientName:  "Maria",
		Vehicle:     "Fiat Uno",
		Service:     "Troca de óleo",
		Status:      models.OrderStatusInProgress,
		Value:       1234.5,
		Date:        generatedAt,
	}})

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"OS000001", "Maria", "Fiat Uno", "Troca de óleo", "Em andamento", "R$ 1.234,50", "10/03/2025"}, table.Rows[0])
}
