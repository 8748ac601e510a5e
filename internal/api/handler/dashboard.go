package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/vfg2006/mje-dashboard/infrastructure/spreadsheet"
	"github.com/vfg2006/mje-dashboard/internal/domain"
	"github.com/vfg2006/mje-dashboard/internal/usecases/presenting"
	"github.com/vfg2006/mje-dashboard/pkg/apiErrors"
	"github.com/vfg2006/mje-dashboard/pkg/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PageConfig são os dados fixos do cabeçalho da página
type PageConfig struct {
	Title   string
	LogoURL string
}

type pageData struct {
	Title       string
	LogoURL     string
	Options     []domain.MonthOption
	Default     domain.Month
	Columns     []string
	InitialView domain.ViewState
}

// DashboardPage renderiza a página HTML com a seleção inicial já calculada
func DashboardPage(presenter presenting.Presenter, page PageConfig, templates *template.Template) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		selected := presenter.DefaultSelection()
		data := pageData{
			Title:       page.Title,
			LogoURL:     page.LogoURL,
			Options:     presenter.Options(),
			Default:     selected,
			Columns:     spreadsheet.AggregateHeader,
			InitialView: presenter.View(selected),
		}

		// Renderiza em buffer para não devolver HTML parcial em caso de erro
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, "dashboard.html", data); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao renderizar template")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar o dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	})
}

// DashboardMonths retorna as opções do seletor de mês e a seleção padrão
func DashboardMonths(presenter presenting.Presenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.AvailableMonths{
			Options: presenter.Options(),
			Default: presenter.DefaultSelection(),
		})
	})
}

// DashboardView recalcula gráficos e tabela para o mês informado em ?month=
func DashboardView(presenter presenting.Presenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, present, err := parseMonth(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: mês inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		if !present {
			month = presenter.DefaultSelection()
		}

		view := presenter.View(month)

		logger.WithFields(log.Fields{
			"month": int(month),
			"rows":  len(view.Rows),
		}).Info("dashboard: visão gerada")

		writeJSON(w, r, http.StatusOK, view)
	})
}

// DashboardExport devolve a tabela agregada do mês (ou completa, sem ?month=) como .xlsx
func DashboardExport(presenter presenting.Presenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, present, err := parseMonth(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		filename := "mje-contagem.xlsx"
		var rows []domain.AggregateRow
		if present {
			rows = presenter.Rows(&month)
			filename = fmt.Sprintf("mje-contagem-%02d.xlsx", int(month))
		} else {
			rows = presenter.Rows(nil)
		}

		var buf bytes.Buffer
		if err := spreadsheet.WriteAggregate(&buf, rows); err != nil {
			logger.WithError(err).Error("dashboard: erro ao gerar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}

		logger.WithFields(log.Fields{
			"rows":     len(rows),
			"filename": filename,
		}).Info("dashboard: planilha exportada")

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		_, _ = buf.WriteTo(w)
	})
}

// parseMonth lê ?month=. present é false quando o parâmetro não foi informado.
func parseMonth(r *http.Request) (month domain.Month, present bool, err error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return 0, false, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf("mês inválido '%s': deve ser numérico", raw)
	}

	month = domain.Month(n)
	if !month.Valid() {
		return 0, true, fmt.Errorf("mês inválido %d: deve estar entre 1 e 12", n)
	}

	return month, true, nil
}
