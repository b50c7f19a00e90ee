package ui

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"adlens/internal/errors"
	"adlens/internal/filter"
	"adlens/internal/insight"
	"adlens/internal/pipeline"
	"adlens/internal/rollup"
)

const defaultTopCampaigns = 10

// snapshot fetches the current snapshot, serving from cache when the source
// content is unchanged. On failure it writes the error response and returns
// nil; handlers just bail out.
func (s *Server) snapshot(w http.ResponseWriter) *pipeline.Snapshot {
	snap, hit, err := s.pipeline.RunCached(s.cache)
	if err != nil {
		writeError(w, err)
		return nil
	}
	if !hit {
		log.Printf("[Server] built snapshot %s", snap.ID)
	}
	return snap
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Server] encode response: %v", err)
	}
}

// writeError maps AppError codes onto HTTP statuses. A missing source is a
// dependency problem, not a server bug.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.GetCode(err) == errors.CodeSourceMissing {
		status = http.StatusServiceUnavailable
	}
	log.Printf("[Server] request failed: %v", err)
	writeJSON(w, status, map[string]string{
		"code":  errors.GetCode(err),
		"error": err.Error(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
}

func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":             snap.ID,
		"fingerprint":    snap.Fingerprint,
		"created_at":     snap.CreatedAt,
		"marketing_rows": len(snap.Marketing),
		"business_days":  len(snap.Business),
		"merged_days":    len(snap.Merged),
		"reconcile":      snap.Reconcile,
		"cached":         s.cache.Len(),
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	f := parseFilter(r)
	writeJSON(w, http.StatusOK, insight.KPIs(filter.Apply(snap.Marketing, f), filter.Apply(snap.Merged, f)))
}

func (s *Server) handleTimeseries(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	f := parseFilter(r)
	writeJSON(w, http.StatusOK, insight.Timeseries(filter.Apply(snap.DailyTotals, f)))
}

func (s *Server) handlePlatformSpend(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	f := parseFilter(r)
	writeJSON(w, http.StatusOK, insight.PlatformSpend(filter.Apply(snap.ByDayPlatform, f)))
}

func (s *Server) handleTopCampaigns(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	n := defaultTopCampaigns
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"code":  errors.CodeConfigInvalid,
				"error": "n must be a non-negative integer",
			})
			return
		}
		n = parsed
	}
	f := parseFilter(r)
	writeJSON(w, http.StatusOK, rollup.TopCampaigns(filter.Apply(snap.ByCampaign, f), n))
}

func (s *Server) handleChannels(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	f := parseFilter(r)
	writeJSON(w, http.StatusOK, filter.Apply(snap.ByPlatform, f))
}

func (s *Server) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	f := parseFilter(r)
	writeJSON(w, http.StatusOK, insight.SpendOrdersTrend(filter.Apply(snap.Merged, f)))
}

func (s *Server) handleMarketing(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	f := parseFilter(r)
	writeJSON(w, http.StatusOK, filter.Apply(snap.Marketing, f))
}

func (s *Server) handleMerged(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	f := parseFilter(r)
	writeJSON(w, http.StatusOK, filter.Apply(snap.Merged, f))
}

func (s *Server) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	s.cache.Invalidate(snap.Fingerprint)
	writeJSON(w, http.StatusOK, map[string]interface{}{"invalidated": snap.Fingerprint})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "dashboard page missing", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}
