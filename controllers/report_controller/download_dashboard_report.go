// ════════════════════════════════════════════════════════════
// Path: controllers/report_controller/download_dashboard_report.go
// Dashboard summary PDF export
// ════════════════════════════════════════════════════════════

package report_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/noord-hq/noord-backend/datasync"
	"github.com/noord-hq/noord-backend/insights"
	"github.com/noord-hq/noord-backend/middleware"
	"github.com/noord-hq/noord-backend/models"
	"github.com/noord-hq/noord-backend/services"
)

// DownloadDashboardReport godoc
// @Summary Download the dashboard as PDF
// @Description Renders the synced sales summary, top sellers and insights into a downloadable PDF report.
// @Tags Reports
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary "PDF report"
// @Failure 412 {object} models.ApiResponse "No synced data yet"
// @Failure 500 {object} models.ApiResponse
// @Router /reports/dashboard.pdf [get]
func DownloadDashboardReport(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	data, rng, syncedAt := datasync.Default().Dashboard(userID)
	if len(data.Sales) == 0 && len(data.Products) == 0 {
		c.JSON(http.StatusPreconditionFailed, models.ErrorResponse(c, "Run a sync before exporting a report"))
		return
	}

	storeName := "My Store"
	if conn, err := services.GetConnection(userID); err == nil && conn.StoreName != "" {
		storeName = conn.StoreName
	}

	buf, err := generateDashboardPDF(storeName, data, rng, syncedAt)
	if err != nil {
		log.Printf("[report.dashboard] ERROR generating PDF user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate report"))
		return
	}

	log.Printf("[report.dashboard] generated user=%s bytes=%d", userID, len(buf))
	c.Header("Content-Disposition", `attachment; filename="noord-dashboard-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf)
}

func generateDashboardPDF(storeName string, data models.DashboardData, rng *models.SyncRange, syncedAt time.Time) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("DASHBOARD REPORT", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(storeName, props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	subtitle := "No analytics range synced"
	if rng != nil {
		subtitle = fmt.Sprintf("Period: %s to %s", rng.Start.Format("Jan 02, 2006"), rng.End.Format("Jan 02, 2006"))
	}
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(subtitle, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})
	if !syncedAt.IsZero() {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("Synced at: %s", syncedAt.Format("Jan 02, 2006 15:04")), props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Totals
	var totalRevenue float64
	var totalOrders int
	for _, day := range data.Sales {
		totalRevenue += day.TotalSales
		totalOrders += day.TotalOrders
	}

	m.Row(5, func() {
		m.Col(4, func() {
			m.Text("REVENUE", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(4, func() {
			m.Text("ORDERS", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(4, func() {
			m.Text("CUSTOMERS", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
	})
	m.Row(8, func() {
		m.Col(4, func() {
			m.Text(fmt.Sprintf("R$ %.2f", totalRevenue), props.Text{Size: 12, Style: consts.Bold, Color: darkGray})
		})
		m.Col(4, func() {
			m.Text(fmt.Sprintf("%d", totalOrders), props.Text{Size: 12, Style: consts.Bold, Color: darkGray})
		})
		m.Col(4, func() {
			m.Text(fmt.Sprintf("%d", data.TotalCustomers), props.Text{Size: 12, Style: consts.Bold, Color: darkGray})
		})
	})

	m.Row(8, func() {})

	// Top sellers table
	if len(data.TopSellers) > 0 {
		m.Row(6, func() {
			m.Col(8, func() {
				m.Text("Product", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text("Qty", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text("Revenue", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
			})
		})

		for _, seller := range data.TopSellers {
			m.Row(6, func() {
				m.Col(8, func() {
					m.Text(seller.Name, props.Text{Size: 9, Color: darkGray})
				})
				m.Col(2, func() {
					m.Text(fmt.Sprintf("%d", seller.Quantity), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
				})
				m.Col(2, func() {
					m.Text(fmt.Sprintf("R$ %.2f", seller.Revenue), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
				})
			})
		}

		m.Row(8, func() {})
	}

	// Insights
	list := insights.BuildAll(data)
	if len(list) > 0 {
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text("INSIGHTS", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
			})
		})
		for _, ins := range list {
			m.Row(5, func() {
				m.Col(4, func() {
					m.Text(ins.Title, props.Text{Size: 9, Style: consts.Bold, Color: darkGray})
				})
				m.Col(8, func() {
					m.Text(ins.Message, props.Text{Size: 9, Color: mediumGray})
				})
			})
		}
		m.Row(8, func() {})
	}

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Generated by Noord", props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
