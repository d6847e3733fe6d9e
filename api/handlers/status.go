package handlers

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"

	"github.com/sweeplabs/sweep-bridging/bridge"
)

type StatusReader interface {
	Status(ctx context.Context, provider bridge.ProviderName, srcTxHash common.Hash, srcChainID uint64) (*bridge.BridgeReceipt, error)
}

type TransferTracker interface {
	Enqueue(ctx context.Context, key string, provider bridge.ProviderName, srcTxHash common.Hash, srcChainID uint64)
}

type StatusHandler struct {
	tracker StatusReader
	jobs    TransferTracker
}

func NewStatusHandler(tracker StatusReader) *StatusHandler {
	return &StatusHandler{
		tracker: tracker,
	}
}

// WithTracking keeps watching unsettled transfers in the background after they
// have been queried once.
func (h *StatusHandler) WithTracking(jobs TransferTracker) *StatusHandler {
	h.jobs = jobs
	return h
}

// HandleStatus returns the current settlement state of a transfer. The
// provider query parameter is optional; without it every provider is probed.
func (h *StatusHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainId, ok := new(big.Int).SetString(vars["chainId"], 10)
	if !ok {
		JSONError(w, fmt.Errorf("invalid chainId"), http.StatusBadRequest)
		return
	}

	txHash := vars["txHash"]
	if len(txHash) != 66 {
		JSONError(w, fmt.Errorf("invalid txHash"), http.StatusBadRequest)
		return
	}

	provider := bridge.ProviderName(r.URL.Query().Get("provider"))
	receipt, err := h.tracker.Status(r.Context(), provider, common.HexToHash(txHash), chainId.Uint64())
	if err != nil {
		switch {
		case errors.Is(err, bridge.ErrTransferNotFound):
			JSONError(w, err, http.StatusNotFound)
		case errors.Is(err, bridge.ErrUnknownProvider):
			JSONError(w, err, http.StatusBadRequest)
		default:
			JSONError(w, err, http.StatusInternalServerError)
		}
		return
	}

	if h.jobs != nil && !receipt.Status.Terminal() {
		key := fmt.Sprintf("transfer-%s-%d", receipt.SourceTxHash.Hex(), receipt.SourceChainID)
		h.jobs.Enqueue(context.WithoutCancel(r.Context()), key, receipt.Provider, receipt.SourceTxHash, receipt.SourceChainID)
	}

	JSONResponse(w, receipt, http.StatusOK)
}
