package admin

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

func (ar *AdminRoutesManager) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	filename := fmt.Sprintf("catalog-%s.%s", time.Now().Format("20060102"), format)

	var err error
	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		err = ar.exportService.WriteCSV(r.Context(), w)
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		err = ar.exportService.WriteXLSX(r.Context(), w)
	default:
		gecho.BadRequest(w, gecho.WithMessage("format must be csv or xlsx"), gecho.Send())
		return
	}

	// headers are already out, so a failure can only be logged
	if err != nil {
		ar.logger.Error("Catalog export failed", gecho.Field("format", format), gecho.Field("error", err))
	}
}
