package httptransport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corebank/internal/domain/transactions"
)

// TransactionHandlers exposes the transaction service's protected routes.
type TransactionHandlers struct {
	service  *transactions.Service
	hostname string
}

// NewTransactionHandlers wires the transaction HTTP surface.
func NewTransactionHandlers(service *transactions.Service, hostname string) *TransactionHandlers {
	return &TransactionHandlers{service: service, hostname: hostname}
}

// Register attaches the routes behind the token gate.
func (h *TransactionHandlers) Register(router *Router) {
	router.Secured.GET("/transactions/:account_number", h.handleList)
}

func (h *TransactionHandlers) handleList(c *gin.Context) {
	if _, ok := IdentityFrom(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is missing"})
		return
	}

	accountNumber := c.Param("account_number")
	list, err := h.service.ListByAccount(c.Request.Context(), accountNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []transactions.Transaction{}
	}

	c.JSON(http.StatusOK, gin.H{
		"account_number": accountNumber,
		"transactions":   list,
		"host":           h.hostname,
	})
}
