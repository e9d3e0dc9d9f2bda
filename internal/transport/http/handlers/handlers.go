package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/naijatax/paye-calculator/internal/calculation"
	"github.com/naijatax/paye-calculator/internal/currency"
	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/naijatax/paye-calculator/internal/output"
	"github.com/naijatax/paye-calculator/internal/payroll"
	"github.com/naijatax/paye-calculator/internal/requestctx"
	"github.com/naijatax/paye-calculator/internal/transport/http/api"
	"github.com/naijatax/paye-calculator/internal/transport/http/middleware"
	"github.com/naijatax/paye-calculator/pkg/dateutil"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Engine   *calculation.TaxEngine
	Payroll  *payroll.Service
	Log      logrus.FieldLogger
	validate *validator.Validate
	now      func() time.Time
}

func NewHandler(engine *calculation.TaxEngine, svc *payroll.Service, log logrus.FieldLogger) *Handler {
	return &Handler{Engine: engine, Payroll: svc, Log: log, validate: newValidator(), now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/tax", h.HandleTax)
	r.Post("/gross-from-net", h.HandleGrossFromNet)
	r.Post("/payroll", h.HandlePayroll)
	r.Post("/payslip", h.HandlePayslip)
	r.Get("/currencies", h.HandleCurrencies)

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.HandleListEmployees)
		r.Post("/import", h.HandleImportEmployees)
		r.Delete("/{employeeID}", h.HandleDeleteEmployee)
	})
	r.Get("/payroll/run", h.HandleRunPayroll)
	r.Get("/payroll/run.csv", h.HandleRunPayrollCSV)
}

// decode reads and validates a JSON body, writing the failure response itself
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	reqID := middleware.GetRequestID(r.Context())
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON", reqID)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", validationMessage(err), reqID)
		return false
	}
	return true
}

func (h *Handler) HandleTax(w http.ResponseWriter, r *http.Request) {
	var req taxRequest
	if !h.decode(w, r, &req) {
		return
	}
	reqID := middleware.GetRequestID(r.Context())

	in := req.inputs()
	report := domain.TaxReport{Inputs: in, Result: h.Engine.CalculateTax(in)}
	if len(req.Currencies) > 0 {
		conversions, err := currency.Convert(report.Result, req.Currencies...)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "unknown_currency", err.Error(), reqID)
			return
		}
		report.Conversions = conversions
	}
	api.Success(w, report, reqID)
}

func (h *Handler) HandleGrossFromNet(w http.ResponseWriter, r *http.Request) {
	var req grossFromNetRequest
	if !h.decode(w, r, &req) {
		return
	}
	res := h.Engine.FindGrossFromNet(decimal.NewFromFloat(req.TargetMonthlyNet), req.PensionEnabled, req.NHFEnabled)
	api.Success(w, res, middleware.GetRequestID(r.Context()))
}

// HandlePayroll runs an ad-hoc roster without storing it
func (h *Handler) HandlePayroll(w http.ResponseWriter, r *http.Request) {
	var req payrollRequest
	if !h.decode(w, r, &req) {
		return
	}
	id := requestctx.GetIdentity(r.Context())
	api.Success(w, h.Engine.RunPayroll(id.UserID, req.employees()), middleware.GetRequestID(r.Context()))
}

// HandlePayslip returns a text payslip, or a PDF for Pro callers asking for one
func (h *Handler) HandlePayslip(w http.ResponseWriter, r *http.Request) {
	var req payslipRequest
	if !h.decode(w, r, &req) {
		return
	}
	reqID := middleware.GetRequestID(r.Context())

	period := dateutil.MonthPeriod(h.now())
	if req.Period != "" {
		month, err := time.Parse("2006-01", req.Period)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "validation_error", "Period must be in YYYY-MM format", reqID)
			return
		}
		period = dateutil.MonthPeriod(month)
	}
	slip := output.Payslip{EmployeeName: req.EmployeeName, Period: period, Result: h.Engine.CalculateTax(req.inputs())}

	if r.URL.Query().Get("format") != "pdf" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(output.FormatPayslip(slip))
		return
	}

	var buf bytes.Buffer
	if err := output.WritePayslipPDF(&buf, slip, requestctx.GetIdentity(r.Context()).IsPro); err != nil {
		h.fail(w, err, reqID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip.pdf"`)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) HandleCurrencies(w http.ResponseWriter, r *http.Request) {
	api.Success(w, currency.All(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleListEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Payroll.Employees(r.Context(), requestctx.GetIdentity(r.Context()).UserID)
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) HandleImportEmployees(w http.ResponseWriter, r *http.Request) {
	var req payrollRequest
	if !h.decode(w, r, &req) {
		return
	}
	reqID := middleware.GetRequestID(r.Context())
	id := requestctx.GetIdentity(r.Context())

	imported, err := h.Payroll.Import(r.Context(), id.UserID, id.IsPro, req.employees())
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Created(w, imported, reqID)
}

func (h *Handler) HandleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	err := h.Payroll.Remove(r.Context(), requestctx.GetIdentity(r.Context()).UserID, chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"deleted": chi.URLParam(r, "employeeID")}, reqID)
}

func (h *Handler) HandleRunPayroll(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	run, err := h.Payroll.Run(r.Context(), requestctx.GetIdentity(r.Context()).UserID)
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	api.Success(w, run, reqID)
}

func (h *Handler) HandleRunPayrollCSV(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	run, err := h.Payroll.Run(r.Context(), requestctx.GetIdentity(r.Context()).UserID)
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	data, err := output.PayrollCSV(run)
	if err != nil {
		h.fail(w, err, reqID)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="payroll.csv"`)
	_, _ = w.Write(data)
}

// fail maps domain errors onto status codes
func (h *Handler) fail(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, domain.ErrProRequired):
		api.Fail(w, http.StatusForbidden, "pro_required", err.Error(), reqID)
	case errors.Is(err, payroll.ErrOwnerRequired):
		api.Fail(w, http.StatusUnauthorized, "identity_required", err.Error(), reqID)
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), reqID)
	default:
		h.Log.WithError(err).WithField("requestId", reqID).Error("request failed")
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal error", reqID)
	}
}
