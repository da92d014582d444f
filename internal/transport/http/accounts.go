package httptransport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"corebank/internal/domain/accounts"
)

// AccountHandlers exposes the account service's protected routes.
type AccountHandlers struct {
	service  *accounts.Service
	hostname string
}

// NewAccountHandlers wires the account HTTP surface.
func NewAccountHandlers(service *accounts.Service, hostname string) *AccountHandlers {
	return &AccountHandlers{service: service, hostname: hostname}
}

// Register attaches the routes behind the token gate.
func (h *AccountHandlers) Register(router *Router) {
	router.Secured.GET("/accounts", h.handleList)
	router.Secured.POST("/accounts", h.handleCreate)
	router.Secured.GET("/accounts/:account_number", h.handleGet)
}

func (h *AccountHandlers) handleList(c *gin.Context) {
	identity, ok := IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is missing"})
		return
	}

	list, err := h.service.List(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []accounts.Account{}
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":  identity.UserID,
		"accounts": list,
		"host":     h.hostname,
	})
}

type createAccountRequest struct {
	AccountNumber string  `json:"account_number"`
	Balance       float64 `json:"balance"`
	AccountType   string  `json:"account_type"`
}

func (h *AccountHandlers) handleCreate(c *gin.Context) {
	identity, ok := IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is missing"})
		return
	}

	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AccountNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account_number required"})
		return
	}

	account, err := h.service.Create(c.Request.Context(), identity.UserID, accounts.CreateParams{
		AccountNumber: req.AccountNumber,
		Balance:       req.Balance,
		AccountType:   req.AccountType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "account created",
		"account_number": account.AccountNumber,
	})
}

func (h *AccountHandlers) handleGet(c *gin.Context) {
	identity, ok := IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is missing"})
		return
	}

	account, err := h.service.Get(c.Request.Context(), identity.UserID, c.Param("account_number"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}
