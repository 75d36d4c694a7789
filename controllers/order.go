// controllers/order.go
package controllers

import (
	"ak-storefront/models"
	"ak-storefront/store"
	"ak-storefront/utils"
	"bytes"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/tealeg/xlsx"
)

// OrderController handles checkout, order history and admin order requests
type OrderController struct {
	Store    *store.Store
	Notifier *utils.Notifier

	pending sync.WaitGroup
}

// NewOrderController creates a new OrderController. A nil notifier disables emails.
func NewOrderController(s *store.Store, notifier *utils.Notifier) *OrderController {
	return &OrderController{Store: s, Notifier: notifier}
}

// Checkout creates an order from the cart and emails a confirmation
func (oc *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if !decode(w, r, &req) {
		return
	}

	order, err := oc.Store.Checkout(req)
	if err != nil {
		storeError(w, err)
		return
	}

	if oc.Notifier != nil {
		oc.pending.Add(1)
		go func(email string, order models.Order) {
			defer oc.pending.Done()
			if err := oc.Notifier.SendOrderConfirmationEmail(email, order); err != nil {
				log.Printf("Failed to send email to %s: %v", email, err)
			}
		}(order.Email, order)
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"order":   order,
		"message": "Order placed successfully",
	})
}

// Wait blocks until every confirmation email in flight has been handled.
func (oc *OrderController) Wait() {
	oc.pending.Wait()
}

// GetOrders lists placed orders, newest first
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, oc.Store.Orders())
}

// DeleteOrder removes one order (Admin only)
func (oc *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if !oc.Store.DeleteOrder(mux.Vars(r)["id"]) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

// DeleteOrders removes a batch of orders (Admin only)
func (oc *OrderController) DeleteOrders(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if !decode(w, r, &body) {
		return
	}
	if len(body.IDs) == 0 {
		http.Error(w, "No order ids given", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": oc.Store.DeleteOrders(body.IDs)})
}

// GetStats summarizes catalog and sales (Admin only)
func (oc *OrderController) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, oc.Store.Stats())
}

// salesReportHeaders are the columns of the exported sales report
var salesReportHeaders = []string{
	"ID", "Customer", "Phone", "Email", "Date", "Time", "Items", "Total", "Status", "Address",
}

// ExportOrders downloads every order as an Excel sales report (Admin only)
func (oc *OrderController) ExportOrders(w http.ResponseWriter, r *http.Request) {
	file, err := salesReport(oc.Store.Orders())
	if err != nil {
		log.Println("Failed to build sales report:", err)
		http.Error(w, "Failed to create Excel sheet", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		log.Println("Failed to write sales report:", err)
		http.Error(w, "Failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := "AK_Sales_Report_" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Println("Failed to send sales report:", err)
	}
}

func salesReport(orders []models.Order) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales Report")
	if err != nil {
		return nil, err
	}

	header := sheet.AddRow()
	for _, h := range salesReportHeaders {
		header.AddCell().SetValue(h)
	}

	for _, o := range orders {
		items := make([]string, len(o.Items))
		for i, it := range o.Items {
			items[i] = it.Product.NameEn + " (" + it.SelectedSize + ")"
		}

		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.Phone)
		row.AddCell().SetValue(o.Email)
		row.AddCell().SetValue(o.Date)
		row.AddCell().SetValue(o.Time)
		row.AddCell().SetValue(strings.Join(items, ", "))
		row.AddCell().SetValue(strconv.FormatFloat(o.Total, 'f', -1, 64) + " QAR")
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(o.Address)
	}
	return file, nil
}
