package service

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/introspec-io/introspec/assembler"
	"github.com/introspec-io/introspec/gather"
	"github.com/introspec-io/introspec/spec"
)

// Handler serves the assembled document. Safe for concurrent requests:
// every request assembles into its own document and registry.
type Handler struct {
	gatherer  *gather.Gatherer
	assembler *assembler.Assembler
	logger    spec.Logger
}

// NewHandler returns a Handler gathering from source and assembling with
// the given assembler configuration.
func NewHandler(source gather.Source, asm *assembler.Assembler) *Handler {
	if asm == nil {
		asm = assembler.New()
	}
	return &Handler{
		gatherer:  gather.NewGatherer(source),
		assembler: asm,
		logger:    spec.NopLogger{},
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func (h *Handler) WithLogger(logger spec.Logger) *Handler {
	if logger == nil {
		logger = spec.NopLogger{}
	}
	h.gatherer.WithLogger(logger)
	h.logger = logger
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	logger := h.logger.With("request_id", uuid.NewString())

	batch, err := h.gatherer.Gather(r.Context())
	if err != nil {
		logger.Error("gathering resource metadata failed", "error", err)
		http.Error(w, "gathering resource metadata failed", http.StatusInternalServerError)
		return
	}

	asm := h.assembler.Clone()
	if asm.Host() == "" {
		asm.SetHost(r.Host)
	}
	doc, err := asm.Assemble(batch)
	if err != nil {
		logger.Error("document assembly failed", "error", err)
		http.Error(w, "document assembly failed", http.StatusInternalServerError)
		return
	}

	format := spec.NegotiateFormat(r.Header.Get("Accept"))
	data, err := spec.Encode(doc, format)
	if err != nil {
		logger.Error("document encoding failed", "format", format.String(), "error", err)
		http.Error(w, "document encoding failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.MediaType())
	if _, err := w.Write(data); err != nil {
		logger.Warn("writing response failed", "error", err)
		return
	}
	logger.Info("served document",
		"format", format.String(),
		"paths", len(doc.Paths),
		"definitions", len(doc.Definitions))
}
