package http

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"debt-payoff/domain"
	"debt-payoff/export"
	"debt-payoff/service"
)

type ExportHandler struct {
	engine *service.PayoffEngine
	debts  *service.DebtService
	now    func() time.Time
}

func NewExportHandler(engine *service.PayoffEngine, debts *service.DebtService) *ExportHandler {
	return &ExportHandler{engine: engine, debts: debts, now: time.Now}
}

func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, h.debts.List()); err != nil {
		writeError(w, err)
		return
	}
	writeFile(w, "text/csv", "debts.csv", &buf)
}

// PDF renders the stored debts. With ?strategy=snowball|avalanche the multi-debt
// summary is included; a plan that cannot be computed is left out.
func (h *ExportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	debts := h.debts.List()
	report := export.PDFReport{Debts: debts, Generated: h.now()}

	if s := r.URL.Query().Get("strategy"); s != "" {
		strategy, err := domain.ParseStrategy(s)
		if err != nil {
			writeError(w, err)
			return
		}
		plan, err := h.engine.SimulateMultiDebt(debts, strategy)
		if err != nil {
			log.Printf("Warning: leaving payoff plan out of PDF: %v", err)
		} else {
			report.Plan = &plan
		}
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, report); err != nil {
		writeError(w, err)
		return
	}
	writeFile(w, "application/pdf", "PayoffPlan.pdf", &buf)
}

type shareResponse struct {
	URL string `json:"url"`
}

func (h *ExportHandler) Share(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	if base == "" {
		base = "http://" + r.Host + "/"
	}

	link, err := export.ShareLink(base, h.debts.List())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shareResponse{URL: link})
}

func writeFile(w http.ResponseWriter, contentType, filename string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing %s: %v", filename, err)
	}
}
