package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/celo-academy/academy-engine/internal/coursetoken"
	"github.com/celo-academy/academy-engine/internal/domain"
	"github.com/celo-academy/academy-engine/internal/enrollment"
	"github.com/celo-academy/academy-engine/internal/executor"
	"github.com/celo-academy/academy-engine/internal/oracle"
	"github.com/celo-academy/academy-engine/internal/session"
	"github.com/celo-academy/academy-engine/internal/sponsorship"
	"github.com/celo-academy/academy-engine/internal/store"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// GetEnrollmentCount returns the mirrored enrollment count for a course
	// GET /api/v1/courses/:slug/enrollment-count
	GetEnrollmentCount(c *gin.Context)

	// SyncEnrollment records an enrollment in the mirror after verifying it
	// on chain
	// POST /api/v1/courses/:slug/sync-enrollment
	SyncEnrollment(c *gin.Context)

	// GetSession returns the current smart-account session snapshot
	// GET /api/v1/session
	GetSession(c *gin.Context)

	// GetSessionCalls lists the sponsored calls tracked this session
	// GET /api/v1/session/calls
	GetSessionCalls(c *gin.Context)

	// ForceReconnect clears persisted session state and rebuilds the session
	// POST /api/v1/session/reconnect
	ForceReconnect(c *gin.Context)

	// Enroll enrolls the session's user in a course
	// POST /api/v1/courses/:slug/enroll
	Enroll(c *gin.Context)

	// CompleteModule marks a course module complete for the session's user
	// POST /api/v1/courses/:slug/modules/:index/complete
	CompleteModule(c *gin.Context)

	// GetProgress returns enrollment and per-module completion state
	// GET /api/v1/courses/:slug/progress?course_id=<id>&modules=<count>
	GetProgress(c *gin.Context)

	// GetSponsoredContracts lists the contracts eligible for gas sponsorship
	// GET /api/v1/sponsorship/contracts
	GetSponsoredContracts(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	chain    domain.Chain
	mirror   store.Store
	courses  enrollment.Service
	sessions session.Manager
	exec     executor.Executor
	oracle   oracle.Oracle
	registry sponsorship.Registry
}

// NewHandler creates a new REST API handler
func NewHandler(
	chain domain.Chain,
	mirror store.Store,
	courses enrollment.Service,
	sessions session.Manager,
	exec executor.Executor,
	orc oracle.Oracle,
	registry sponsorship.Registry,
) Handler {
	return &handler{
		chain:    chain,
		mirror:   mirror,
		courses:  courses,
		sessions: sessions,
		exec:     exec,
		oracle:   orc,
		registry: registry,
	}
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"chain":  string(h.chain),
	})
}

func (h *handler) GetEnrollmentCount(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		respondBadRequest(c, "Course slug is required")
		return
	}

	count, err := h.mirror.CountEnrollments(c.Request.Context(), slug)
	if err != nil {
		respondInternalError(c, err, "Failed to count enrollments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

type syncEnrollmentRequest struct {
	Address  string `json:"address" binding:"required"`
	CourseID string `json:"course_id"`
	TxHash   string `json:"tx_hash"`
}

// SyncEnrollment verifies the claimed enrollment against the chain before
// writing the mirror row, so the mirror cannot be inflated by unverified
// requests. Repeated syncs for the same pair are no-ops.
func (h *handler) SyncEnrollment(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		respondBadRequest(c, "Course slug is required")
		return
	}

	var req syncEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if !domain.IsValidAddress(req.Address) {
		respondValidationError(c, "invalid address")
		return
	}

	ctx := c.Request.Context()
	tokenID := coursetoken.TokenID(slug, req.CourseID)
	enrolled, err := h.oracle.IsEnrolled(ctx, oracle.Identity{WalletAddress: req.Address}, tokenID)
	if err != nil {
		respondChainError(c, err, "Failed to verify enrollment on chain")
		return
	}
	if !enrolled {
		respondNotFound(c, "No on-chain enrollment found for address")
		return
	}

	var txHash *string
	if req.TxHash != "" {
		txHash = &req.TxHash
	}
	if err := h.mirror.UpsertEnrollment(ctx, slug, domain.NormalizeAddress(req.Address), string(domain.MethodSponsored), txHash); err != nil {
		respondInternalError(c, err, "Failed to record enrollment")
		return
	}

	count, err := h.mirror.CountEnrollments(ctx, slug)
	if err != nil {
		respondInternalError(c, err, "Failed to count enrollments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"synced": true, "count": count})
}

func (h *handler) GetSession(c *gin.Context) {
	snapshot := h.sessions.Session()
	c.JSON(http.StatusOK, gin.H{
		"session":                 snapshot,
		"is_ready":                h.sessions.IsReady(),
		"can_sponsor_transaction": h.sessions.CanSponsorTransaction(),
	})
}

func (h *handler) GetSessionCalls(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"calls": h.exec.Calls()})
}

func (h *handler) ForceReconnect(c *gin.Context) {
	if err := h.sessions.ForceReconnect(c.Request.Context()); err != nil {
		respondInternalError(c, err, "Failed to reconnect session")
		return
	}
	h.GetSession(c)
}

type enrollRequest struct {
	CourseID string `json:"course_id"`
}

func (h *handler) Enroll(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		respondBadRequest(c, "Course slug is required")
		return
	}

	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	receipt, err := h.courses.Enroll(c.Request.Context(), slug, req.CourseID)
	if err != nil {
		h.respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

type completeModuleRequest struct {
	CourseID string `json:"course_id"`
}

func (h *handler) CompleteModule(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		respondBadRequest(c, "Course slug is required")
		return
	}
	index, err := strconv.ParseUint(c.Param("index"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid module index")
		return
	}

	var req completeModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	receipt, err := h.courses.CompleteModule(c.Request.Context(), slug, req.CourseID, index)
	if err != nil {
		h.respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *handler) GetProgress(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		respondBadRequest(c, "Course slug is required")
		return
	}

	moduleCount, err := strconv.Atoi(c.DefaultQuery("modules", "0"))
	if err != nil || moduleCount < 0 {
		respondBadRequest(c, "Invalid module count")
		return
	}

	progress, err := h.courses.Progress(c.Request.Context(), slug, c.Query("course_id"), moduleCount)
	if err != nil {
		h.respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *handler) GetSponsoredContracts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"chain":     string(h.chain),
		"contracts": h.registry.SponsoredContracts(h.chain),
	})
}

func (h *handler) respondActionError(c *gin.Context, err error) {
	switch {
	case err == domain.ErrWalletNotConnected || err == domain.ErrNoWalletAvailable:
		respondBadRequest(c, "No wallet connected")
	case err == domain.ErrSessionNotReady:
		respondSessionNotReady(c, err.Error())
	default:
		respondChainError(c, err, "Course action failed")
	}
}
