package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lynq/internal/agent"
	"lynq/internal/core"
	"lynq/internal/profile"
)

const profileCacheKey = "profile"

// getProfile returns the current profile document, served from cache when
// fresh.
func (s *Server) getProfile(ctx context.Context) (core.Profile, error) {
	if p, found := s.profileCache.Get(profileCacheKey); found {
		slog.DebugContext(ctx, "Profile cache hit")
		return p, nil
	}

	// Add a small timeout to avoid hanging on slow providers
	cctx, cancel := context.WithTimeout(ctx, 7*time.Second)
	defer cancel()
	p, err := s.reader.ReadProfile(cctx)
	if err != nil {
		return core.Profile{}, fmt.Errorf("read profile: %w", err)
	}

	s.profileCache.Set(profileCacheKey, p)
	return p, nil
}

// getSummary aggregates one domain, served from cache when fresh.
func (s *Server) getSummary(ctx context.Context, d core.Domain) (core.Summary, error) {
	if summary, found := s.summaryCache.Get(string(d)); found {
		slog.DebugContext(ctx, "Summary cache hit", "domain", string(d))
		return summary, nil
	}

	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := core.Aggregate(d, p)
	if err != nil {
		return nil, err
	}

	s.summaryCache.Set(string(d), summary)
	return summary, nil
}

// invalidateProfile drops the cached profile and every derived summary.
func (s *Server) invalidateProfile() {
	s.profileCache.Delete(profileCacheKey)
	for _, d := range core.Domains() {
		s.summaryCache.Delete(string(d))
	}
}

func (s *Server) handleGetUserData(w http.ResponseWriter, r *http.Request) {
	p, err := s.getProfile(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Profile read error", "error", err)
		writeError(w, http.StatusBadGateway, "failed to read user data")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutUserData(w http.ResponseWriter, r *http.Request) {
	writer, ok := s.reader.(profile.Writer)
	if !ok {
		writeError(w, http.StatusMethodNotAllowed, "backend is read-only")
		return
	}

	var p core.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile document")
		return
	}

	if err := writer.WriteProfile(r.Context(), p); err != nil {
		slog.ErrorContext(r.Context(), "Profile write error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store user data")
		return
	}

	// Summaries are derived from the document, drop them with it
	s.invalidateProfile()
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	d, err := core.ParseDomain(r.PathValue("domain"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown domain: %s", r.PathValue("domain")))
		return
	}

	summary, err := s.getSummary(r.Context(), d)
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary aggregation error", "error", err, "domain", string(d))
		writeError(w, http.StatusBadGateway, "failed to build summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handleRequestInsight kicks off an asynchronous agent fetch for the domain.
// It always answers 202 with the current session snapshot; whether this call
// started the fetch or an earlier one did is reported but changes nothing
// for the caller.
func (s *Server) handleRequestInsight(w http.ResponseWriter, r *http.Request) {
	d, err := core.ParseDomain(r.PathValue("domain"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown domain: %s", r.PathValue("domain")))
		return
	}

	p, err := s.getProfile(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Profile read error", "error", err, "domain", string(d))
		writeError(w, http.StatusBadGateway, "failed to read user data")
		return
	}

	started := s.orchestrator.RequestInsight(r.Context(), d, p.User)
	session := s.orchestrator.Store().Snapshot(d)

	writeJSON(w, http.StatusAccepted, struct {
		Started bool   `json:"started"`
		Text    string `json:"text"`
		Loading bool   `json:"isLoading"`
		Err     string `json:"error"`
	}{started, session.Text, session.Loading, session.Err})
}

func (s *Server) handleGetInsight(w http.ResponseWriter, r *http.Request) {
	d, err := core.ParseDomain(r.PathValue("domain"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown domain: %s", r.PathValue("domain")))
		return
	}
	writeJSON(w, http.StatusOK, s.orchestrator.Store().Snapshot(d))
}

// handleAgentGenerate proxies a raw generation envelope to the agent
// service, mirroring upstream failures to the caller.
func (s *Server) handleAgentGenerate(w http.ResponseWriter, r *http.Request) {
	var env agent.Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(env.AgentType) == "" {
		writeError(w, http.StatusBadRequest, "agent_type is required")
		return
	}

	resp, err := s.agentClient.Generate(r.Context(), env)
	if err != nil {
		var reqErr *agent.RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode != 0 {
			writeError(w, reqErr.StatusCode, reqErr.Detail)
			return
		}
		slog.ErrorContext(r.Context(), "Agent generate error", "error", err, "agent_type", env.AgentType)
		writeError(w, http.StatusBadGateway, agent.FailureMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleAgentOutput proxies the agent's most recent output. Concurrent
// requests for the same agent share one upstream call.
func (s *Server) handleAgentOutput(w http.ResponseWriter, r *http.Request) {
	agentName := strings.TrimSpace(r.URL.Query().Get("agent"))
	if agentName == "" {
		writeError(w, http.StatusBadRequest, "agent query parameter is required")
		return
	}

	raw, err := s.agentClient.FetchOutput(r.Context(), agentName)
	if err != nil {
		var reqErr *agent.RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode != 0 {
			writeError(w, reqErr.StatusCode, reqErr.Detail)
			return
		}
		slog.ErrorContext(r.Context(), "Agent output error", "error", err, "agent", agentName)
		writeError(w, http.StatusBadGateway, agent.FailureMessage(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
