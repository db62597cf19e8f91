package server

import (
	"encoding/json"
	"net/http"

	"github.com/inktrace/inktrace/pkg/errors"
	"github.com/inktrace/inktrace/pkg/pipeline"
)

// generateRequest is the POST /api/v1/generate payload. Options uses the
// same JSON shape the CLI builds internally, so clients and scripts can
// share configuration.
type generateRequest struct {
	SVG     string           `json:"svg"`
	Options pipeline.Options `json:"options"`
}

type generateResponse struct {
	Elements []elementPayload `json:"elements"`
	Stats    statsPayload     `json:"stats"`
}

// elementPayload carries one generated document. Data is the full *.lp
// text; Dir and File tell the client where the element belongs inside a
// library tree.
type elementPayload struct {
	Kind string `json:"kind"`
	UUID string `json:"uuid"`
	Dir  string `json:"dir"`
	File string `json:"file"`
	Data string `json:"data"`
}

type statsPayload struct {
	Polylines  int   `json:"polylines"`
	Points     int   `json:"points"`
	Closed     int   `json:"closed"`
	ParseMs    int64 `json:"parse_ms"`
	GenerateMs int64 `json:"generate_ms"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "invalid request body: " + err.Error(),
		})
		return
	}

	if req.SVG == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidSVG, "svg document is empty"))
		return
	}

	result, err := s.runner.Execute(r.Context(), []byte(req.SVG), req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := generateResponse{
		Elements: make([]elementPayload, len(result.Elements)),
		Stats: statsPayload{
			Polylines:  result.Stats.PolylineCount,
			Points:     result.Stats.PointCount,
			Closed:     result.Stats.ClosedCount,
			ParseMs:    result.Stats.ParseTime.Milliseconds(),
			GenerateMs: result.Stats.GenerateTime.Milliseconds(),
		},
	}
	for i, el := range result.Elements {
		resp.Elements[i] = elementPayload{
			Kind: string(el.Kind),
			UUID: el.UUID,
			Dir:  el.Kind.Dir(),
			File: el.Kind.FileName(),
			Data: string(el.Data),
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
