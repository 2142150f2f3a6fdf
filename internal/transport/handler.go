package transport

import (
	"fmt"
	"io"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/recyclechain/ewaste-backend/internal/model"
	"github.com/recyclechain/ewaste-backend/internal/service"
	"go.uber.org/zap"
)

// maxImageBytes caps an uploaded evidence image.
const maxImageBytes = 8 << 20

// Handler serves the pipeline and aggregate endpoints.
type Handler struct {
	submitter Submitter
	verifier  Verifier
	status    StatusChecker
	board     BoardProvider
	rewards   RewardsProvider
	logger    *zap.Logger
}

// NewHandler builds a Handler from the five service surfaces.
func NewHandler(
	submitter Submitter,
	verifier Verifier,
	status StatusChecker,
	board BoardProvider,
	rewards RewardsProvider,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		submitter: submitter,
		verifier:  verifier,
		status:    status,
		board:     board,
		rewards:   rewards,
		logger:    logger.Named("handler"),
	}
}

// Router assembles the gin engine with middleware and routes.
func (h *Handler) Router(logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(logger))

	engine.GET("/healthz", h.health)

	v1 := engine.Group("/api/v1")
	v1.POST("/items", h.submit)
	v1.POST("/items/:id/verify", h.verify)
	v1.GET("/items/:id/status", h.checkStatus)
	v1.GET("/leaderboard", h.leaderboard)
	v1.GET("/rewards", h.rewardsView)

	return engine
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type submitResponse struct {
	Message string `json:"message"`
	ItemID  uint64 `json:"itemId,omitempty"`
	Visible bool   `json:"visible"`
}

func (h *Handler) submit(c *gin.Context) {
	req := service.SubmitRequest{
		ItemType: c.PostForm("itemType"),
		Location: c.PostForm("location"),
	}

	if file, err := c.FormFile("image"); err == nil {
		if file.Size > maxImageBytes {
			abortWithError(c, fmt.Errorf("%w: image exceeds %d bytes", model.ErrValidation, maxImageBytes))
			return
		}
		f, err := file.Open()
		if err != nil {
			abortWithError(c, fmt.Errorf("open image upload: %w", err))
			return
		}
		defer f.Close()
		req.Image, err = io.ReadAll(f)
		if err != nil {
			abortWithError(c, fmt.Errorf("read image upload: %w", err))
			return
		}
	}

	result, err := h.submitter.Submit(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := submitResponse{Message: result.Message, Visible: result.Visible}
	if result.IDResolved {
		resp.ItemID = uint64(result.DisplayID)
	}
	c.JSON(http.StatusCreated, resp)
}

type verifyResponse struct {
	Message string `json:"message"`
	ItemID  uint64 `json:"itemId,omitempty"`
}

func (h *Handler) verify(c *gin.Context) {
	displayID, err := model.ParseDisplayID(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	result, err := h.verifier.Verify(c.Request.Context(), displayID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := verifyResponse{Message: "Item verified successfully!"}
	if result.IDResolved {
		resp.ItemID = uint64(result.DisplayID)
		resp.Message = fmt.Sprintf("Item ID %d verified successfully!", result.DisplayID)
	}
	c.JSON(http.StatusOK, resp)
}

type statusResponse struct {
	Status  string `json:"status"`
	Pending bool   `json:"pending"`
	Message string `json:"message"`
}

func (h *Handler) checkStatus(c *gin.Context) {
	displayID, err := model.ParseDisplayID(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	result, err := h.status.Check(c.Request.Context(), displayID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{
		Status:  result.Status.String(),
		Pending: result.Pending,
		Message: result.Message,
	})
}

type leaderboardRow struct {
	Rank           int           `json:"rank"`
	Address        string        `json:"address"`
	DisplayAddress string        `json:"displayAddress"`
	Verified       int           `json:"verified"`
	Badges         []model.Badge `json:"badges,omitempty"`
	Self           bool          `json:"self,omitempty"`
}

type leaderboardResponse struct {
	Rows []leaderboardRow `json:"rows"`
	Rank int              `json:"rank,omitempty"`
	You  struct {
		Submitted int `json:"submitted"`
		Verified  int `json:"verified"`
	} `json:"you"`
}

func (h *Handler) leaderboard(c *gin.Context) {
	address := c.Query("address")
	if address != "" && !common.IsHexAddress(address) {
		abortWithError(c, fmt.Errorf("%w: invalid address", model.ErrValidation))
		return
	}

	board := h.board.Compute(address)

	resp := leaderboardResponse{Rows: make([]leaderboardRow, 0, len(board.Rows)), Rank: board.Rank}
	for i, row := range board.Rows {
		resp.Rows = append(resp.Rows, leaderboardRow{
			Rank:           i + 1,
			Address:        row.Address,
			DisplayAddress: ShortAddress(row.Address),
			Verified:       row.Verified,
			Badges:         row.Badges,
			Self:           row.Self,
		})
	}
	resp.You.Submitted = board.You.Submitted
	resp.You.Verified = board.You.Verified
	c.JSON(http.StatusOK, resp)
}

type rewardsResponse struct {
	Balance      float64       `json:"balance"`
	BalanceValue float64       `json:"balanceValue"`
	Earned       int           `json:"earned"`
	EarnedValue  int           `json:"earnedValue"`
	Submitted    int           `json:"submitted"`
	Verified     int           `json:"verified"`
	TotalItems   uint64        `json:"totalItems"`
	Badges       []model.Badge `json:"badges,omitempty"`
}

func (h *Handler) rewardsView(c *gin.Context) {
	address := c.Query("address")
	if !common.IsHexAddress(address) {
		abortWithError(c, fmt.Errorf("%w: invalid address", model.ErrValidation))
		return
	}

	result, err := h.rewards.Compute(c.Request.Context(), common.HexToAddress(address))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rewardsResponse{
		Balance:      result.Balance,
		BalanceValue: result.BalanceValue,
		Earned:       result.Earned,
		EarnedValue:  result.EarnedValue,
		Submitted:    result.Submitted,
		Verified:     result.Verified,
		TotalItems:   result.TotalItems,
		Badges:       result.Badges,
	})
}

// ShortAddress renders an address in the usual abbreviated wallet form.
// Already-short seed entries pass through unchanged.
func ShortAddress(address string) string {
	if len(address) <= 13 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
