package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jmcdev/cryptomark-api/internal/httputil"
	"github.com/jmcdev/cryptomark-api/internal/market"
)

// MarketHandler serves the trending-pools passthrough.
type MarketHandler struct {
	client *market.Client
	logger *zerolog.Logger
}

func NewMarketHandler(client *market.Client, logger *zerolog.Logger) *MarketHandler {
	return &MarketHandler{
		client: client,
		logger: logger,
	}
}

// Home returns the upstream trending-pools JSON verbatim.
func (h *MarketHandler) Home(w http.ResponseWriter, r *http.Request) {
	body, err := h.client.TrendingPools(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("trending pools fetch failed")
		httputil.Error(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
