package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Coin balance
// @Tags Coins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CoinBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /coins/balance [get]
func (h *Handler) coinBalance(c *gin.Context) {
	user := currentUser(c)
	log := h.logger.WithField("method", "coinBalance").WithField("user_id", user.ID)

	balance, err := h.coinService.Balance(c.Request.Context(), user.ID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CoinBalanceResponse{
		Coins:          balance.Coins,
		BirrEquivalent: balance.BirrEquivalent,
	})
}

// @Summary Coin transaction history
// @Tags Coins
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items" default(50)
// @Success 200 {array} CoinTransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /coins/transactions [get]
func (h *Handler) coinTransactions(c *gin.Context) {
	user := currentUser(c)
	log := h.logger.WithField("method", "coinTransactions").WithField("user_id", user.ID)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	txs, err := h.coinService.Transactions(c.Request.Context(), user.ID, limit)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCoinTransactionResponses(txs))
}

// @Summary Convert coins to Birr
// @Tags Coins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conversion body ConvertCoinsRequest true "Amount of coins"
// @Success 200 {object} ConvertCoinsResponse
// @Failure 400 {object} map[string]string "Below minimum or insufficient coins"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /coins/convert [post]
func (h *Handler) convertCoins(c *gin.Context) {
	var input ConvertCoinsRequest
	user := currentUser(c)
	log := h.logger.WithField("method", "convertCoins").WithField("user_id", user.ID)

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	conv, err := h.coinService.Convert(c.Request.Context(), user.ID, input.Amount)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ConvertCoinsResponse{
		Message:        "Coins converted successfully",
		ConvertedCoins: conv.ConvertedCoins,
		BirrAmount:     conv.BirrAmount,
		NewBalance:     conv.NewBalance,
	})
}
