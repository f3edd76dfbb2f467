package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/jsonld"
	"github.com/cayleygraph/quad/nquads"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ontograph/ontograph"
	"github.com/ontograph/ontograph/clog"
	"github.com/ontograph/ontograph/query"
)

var (
	queryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "ontograph_query_duration_seconds",
		Help: "Time spent evaluating queries.",
	})
	queryErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ontograph_query_errors_total",
		Help: "Queries rejected as malformed.",
	})
	tripleCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ontograph_triples",
		Help: "Triples in the current set.",
	})
)

func init() {
	prometheus.MustRegister(queryDuration, queryErrors, tripleCount)
}

// API exposes one handle over HTTP.
type API struct {
	handle *ontograph.Handle
}

type queryRequest struct {
	Query string `json:"query"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func jsonError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

// ServeQuery runs one query against the current triple set.
func (api *API) ServeQuery(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %v", err))
		return
	}
	res, err := api.handle.Query(req.Query)
	if err != nil {
		if errors.Is(err, query.ErrMalformedQuery) {
			queryErrors.Inc()
			jsonError(w, http.StatusBadRequest, err)
			return
		}
		jsonError(w, http.StatusInternalServerError, err)
		return
	}
	queryDuration.Observe(res.ExecutionTime.Seconds())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// ServeExport streams the triple set in the requested format.
func (api *API) ServeExport(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	set := api.handle.Set()
	tripleCount.Set(float64(len(set.Triples)))

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "turtle"
	}
	var err error
	switch format {
	case "turtle":
		w.Header().Set("Content-Type", "text/turtle")
		err = set.WriteTurtle(w)
	case "nquads":
		w.Header().Set("Content-Type", "application/n-quads")
		qw := nquads.NewWriter(w)
		_, err = quad.Copy(qw, set.Reader())
		if err == nil {
			err = qw.Close()
		}
	case "jsonld":
		w.Header().Set("Content-Type", "application/ld+json")
		qw := jsonld.NewWriter(w)
		_, err = quad.Copy(qw, set.Reader())
		if err == nil {
			err = qw.Close()
		}
	default:
		jsonError(w, http.StatusBadRequest, fmt.Errorf("unsupported format: %q", format))
		return
	}
	if err != nil {
		clog.Errorf("export: %v", err)
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Triples int    `json:"triples"`
}

// ServeHealth reports readiness and the current set size.
func (api *API) ServeHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	set := api.handle.Set()
	tripleCount.Set(float64(len(set.Triples)))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(healthResponse{Status: "ok", Triples: len(set.Triples)})
}
