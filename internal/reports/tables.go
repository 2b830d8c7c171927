package reports

import (
	"strconv"

	"workshoppro/internal/models"
)

var orderStatusLabels = map[string]string{
	models.OrderStatusQuote:         "Orçamento",
	models.OrderStatusApproved:      "Aprovado",
	models.OrderStatusInProgress:    "Em andamento",
	models.OrderStatusAwaitingParts: "Aguardando peças",
	models.OrderStatusCompleted:     "Concluída",
	models.OrderStatusDelivered:     "Entregue",
	models.OrderStatusCancelled:     "Cancelada",
}

var alertPriorityLabels = map[models.AlertPriority]string{
	models.AlertPriorityHigh:   "Alta",
	models.AlertPriorityMedium: "Média",
	models.AlertPriorityLow:    "Baixa",
}

func statusLabel(status string) string {
	if l, ok := orderStatusLabels[status]; ok {
		return l
	}
	return status
}

func ClientsTable(clients []*models.Client) *Table {
	t := &Table{
		Title:   "Clientes",
		Headers: []string{"Nome", "E-mail", "Telefone", "Documento", "Endereço", "Cadastro"},
		Rows:    make([][]string, 0, len(clients)),
	}
	for _, c := range clients {
		t.Rows = append(t.Rows, []string{
			c.Name, deref(c.Email), deref(c.Phone), deref(c.Document), deref(c.Address), FormatDate(c.CreatedAt),
		})
	}
	return t
}

func ServiceOrdersTable(orders []models.RecentOrder) *Table {
	t := &Table{
		Title:   "Ordens de Serviço",
		Headers: []string{"Número", "Cliente", "Veículo", "Serviço", "Status", "Valor", "Data"},
		Rows:    make([][]string, 0, len(orders)),
	}
	for _, o := range orders {
		t.Rows = append(t.Rows, []string{
			o.OrderNumber, o.ClientName, o.Vehicle, o.Service, statusLabel(o.Status), FormatCurrency(o.Value), FormatDate(o.Date),
		})
	}
	return t
}

func InventoryTable(rows []models.InventoryStockRow) *Table {
	t := &Table{
		Title:   "Estoque",
		Headers: []string{"Peça", "Fornecedor", "Estoque atual", "Estoque mínimo"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			deref(r.PartName), deref(r.SupplierName), strconv.Itoa(r.CurrentStock), strconv.Itoa(r.MinStock),
		})
	}
	return t
}

func StockAlertsTable(alerts []models.StockAlert) *Table {
	t := &Table{
		Title:   "Alertas de Estoque",
		Headers: []string{"Peça", "Fornecedor", "Estoque atual", "Estoque mínimo", "Prioridade"},
		Rows:    make([][]string, 0, len(alerts)),
	}
	for _, a := range alerts {
		t.Rows = append(t.Rows, []string{
			a.PartName, a.Supplier, strconv.Itoa(a.CurrentStock), strconv.Itoa(a.MinStock), alertPriorityLabels[a.Priority],
		})
	}
	return t
}

func TransactionsTable(txs []*models.Transaction) *Table {
	t := &Table{
		Title:   "Transações",
		Headers: []string{"Data", "Tipo", "Descrição", "Categoria", "Status", "Valor"},
		Rows:    make([][]string, 0, len(txs)),
	}
	for _, tx := range txs {
		kind := "Receita"
		if tx.Type == models.TransactionTypeExpense {
			kind = "Despesa"
		}
		t.Rows = append(t.Rows, []string{
			FormatISODate(tx.Date), kind, tx.Description, tx.Category, tx.Status, FormatCurrency(tx.Amount),
		})
	}
	return t
}
