package medicineControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/planet-of-health/pharmacy-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /medicines/export: the whole catalog as a spreadsheet for the admin
// dashboard.
func ExportMedicinesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var medicines []models.Medicine
		if err := db.Find(&medicines).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medicines"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Medicines")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "NameEN", "NameRU", "Generic", "CompanyName", "Power",
			"PackQuantity", "Price", "DiscountPrice", "Category", "CreatedDate",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, m := range medicines {
			row := sheet.AddRow()
			row.AddCell().SetValue(m.ID)
			row.AddCell().SetValue(m.NameEN)
			row.AddCell().SetValue(m.NameRU)
			row.AddCell().SetValue(m.Generic)
			row.AddCell().SetValue(m.CompanyName)
			row.AddCell().SetValue(m.Power)
			row.AddCell().SetValue(m.PackQuantity)
			row.AddCell().SetValue(m.Price)
			row.AddCell().SetValue(m.DiscountPrice)
			row.AddCell().SetValue(m.CategoryName)
			row.AddCell().SetValue(m.CreatedDate + " " + m.CreatedTime)
		}

		c.Header("Content-Disposition", "attachment; filename=medicines.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
