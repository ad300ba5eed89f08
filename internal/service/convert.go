package service

import (
	"time"

	"salesdash/internal/aggregate"
	"salesdash/internal/dto"
	"salesdash/internal/excel"
	"salesdash/internal/model"
)

func toFileInfoResponse(f excel.FileInfo) dto.FileInfoResponse {
	return dto.FileInfoResponse{
		Name:    f.Name,
		Label:   f.Label,
		ModTime: f.ModTime.Format(time.RFC3339),
	}
}

func toProductAggregateResponse(a model.ProductAggregate) dto.ProductAggregateResponse {
	resp := dto.ProductAggregateResponse{
		ProductCode:      a.ProductCode,
		ProductName:      a.ProductName,
		TotalQuantity:    a.TotalQuantity,
		Unit:             a.Unit,
		AverageUnitPrice: a.AverageUnitPrice,
		DerivedUnitPrice: a.DerivedUnitPrice,
		TotalSubtotal:    a.TotalSubtotal,
		TotalCost:        a.TotalCost,
	}
	if len(a.Periods) > 0 {
		resp.Periods = make(map[string]dto.PeriodMetricsResponse, len(a.Periods))
		for label, pm := range a.Periods {
			resp.Periods[label] = dto.PeriodMetricsResponse{Quantity: pm.Quantity, Subtotal: pm.Subtotal}
		}
	}
	return resp
}

func toLineItemResponse(it model.LineItem) dto.LineItemResponse {
	var orderDate *string
	if it.OrderDate != nil {
		d := it.OrderDate.Format("2006-01-02")
		orderDate = &d
	}
	return dto.LineItemResponse{
		ProductCode:  it.ProductCode,
		ProductName:  it.ProductName,
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		UnitPrice:    it.UnitPrice,
		Subtotal:     it.Subtotal,
		CostTotal:    it.CostTotal,
		OrderID:      it.OrderID,
		OrderDate:    orderDate,
		CustomerName: it.CustomerName,
		Period:       it.PeriodLabel,
	}
}

func toSummaryResponse(s aggregate.SalesSummary, periods []string) dto.SalesSummaryResponse {
	resp := dto.SalesSummaryResponse{
		Periods:          periods,
		TotalSales:       s.TotalSales,
		TotalProfit:      s.TotalProfit,
		OrderCount:       s.OrderCount,
		AverageMarginPct: s.AverageMarginPct,
	}
	for _, d := range s.DailySales {
		resp.DailySales = append(resp.DailySales, dto.DailySalesResponse{
			Date:   d.Date.Format("2006-01-02"),
			Amount: d.Sales,
		})
	}
	for _, c := range s.TopCustomers {
		resp.TopCustomers = append(resp.TopCustomers, dto.NameAmountResponse{Name: c.Name, Amount: c.Amount})
	}
	for _, p := range s.TopProducts {
		resp.TopProducts = append(resp.TopProducts, dto.NameAmountResponse{Name: p.Name, Amount: p.Amount})
	}
	for _, m := range s.TopMarginProducts {
		resp.TopMarginProducts = append(resp.TopMarginProducts, dto.ProductMarginResponse{
			Name:      m.Name,
			Sales:     m.Sales,
			Profit:    m.Profit,
			MarginPct: m.MarginPct,
		})
	}
	return resp
}

func toInventoryItemResponse(rec model.InventoryRecord) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ProductCode:    rec.ProductCode,
		ProductName:    rec.ProductName,
		OnHand:         rec.OnHand,
		Warehouse:      rec.Warehouse,
		Unit:           rec.Unit,
		UnitCost:       rec.UnitCost,
		TotalCost:      rec.TotalCost,
		SafetyStock:    rec.SafetyStock,
		Category:       rec.Category,
		Subcategory:    rec.Subcategory,
		Vendor:         rec.Vendor,
		ListPrice1:     rec.ListPrice1,
		ListPrice2:     rec.ListPrice2,
		SuggestedPrice: rec.SuggestedPrice,
		GrossMarginPct: rec.GrossMarginPct,
	}
}

func toReconciledResponse(r model.ReconciledProduct) dto.ReconciledProductResponse {
	return dto.ReconciledProductResponse{
		ProductAggregateResponse: toProductAggregateResponse(r.ProductAggregate),
		OnHand:                   r.OnHand,
		StockDifference:          r.StockDifference,
	}
}
