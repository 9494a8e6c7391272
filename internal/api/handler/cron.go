package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSampleReconcile = "sample-reconcile"
)

// CronJob é satisfeito pelos serviços do pacote scheduler
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SampleReconcileService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSampleReconcile:
			if services.SampleReconcileService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Reconciliação de preços não disponível", nil)
				return
			}
			services.SampleReconcileService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: sample-reconcile", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron: execução manual solicitada")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SampleReconcileService != nil {
			status[CronJobTypeSampleReconcile] = services.SampleReconcileService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
