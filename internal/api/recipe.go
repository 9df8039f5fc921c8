package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipe-genie/backend/internal/service"
)

// IdempotencyKeyHeader optionally marks a generation request as
// replayable: a successful response is cached and returned again for the
// same key instead of paying for fresh generation calls.
const IdempotencyKeyHeader = "Idempotency-Key"

// RecipeHandler handles recipe-and-image generation requests
type RecipeHandler struct {
	pipeline service.RecipePipeline
	cache    *service.ResultCache
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(pipeline service.RecipePipeline, cache *service.ResultCache) *RecipeHandler {
	return &RecipeHandler{
		pipeline: pipeline,
		cache:    cache,
	}
}

// Generate handles POST /generate_recipe_and_image
func (h *RecipeHandler) Generate(c *gin.Context) {
	var req GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Ingredients) == 0 || req.NumPeople <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredients and number of people are required"})
		return
	}

	pipelineReq := &service.RecipeRequest{
		Ingredients: req.Ingredients,
		NumPeople:   req.NumPeople,
		Dietary:     req.Dietary,
		Allergies:   req.Allergies,
	}

	// The replay key binds the header to the caller and the exact payload;
	// the bare header value is never used as a cache key.
	replayKey := service.ReplayKey(c.GetString("api_key"), c.GetHeader(IdempotencyKeyHeader), pipelineReq)
	if cached, ok := h.cache.Get(c.Request.Context(), replayKey); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.pipeline.GenerateRecipeAndImage(c.Request.Context(), pipelineReq)
	if err != nil {
		status, message := statusForPipelineError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	h.cache.Set(c.Request.Context(), replayKey, result)

	c.JSON(http.StatusOK, result)
}

// statusForPipelineError maps pipeline errors onto HTTP statuses:
// 400 for input and feasibility problems, 500 for remote-service and
// storage failures. Remote failures surface only the generic sentinel
// message, never transport detail.
func statusForPipelineError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrDietaryConflict):
		return http.StatusBadRequest, "Non-vegetarian ingredients selected with vegetarian dietary choice. Please remove non-vegetarian ingredients."
	case errors.Is(err, service.ErrRecipeInfeasible):
		return http.StatusBadRequest, "Recipe cannot be generated with provided combination of ingredients, allergens, and dietary restrictions"
	case errors.Is(err, service.ErrGenerationFailed):
		return http.StatusInternalServerError, "Failed to generate recipe"
	case errors.Is(err, service.ErrImageGeneration):
		return http.StatusInternalServerError, "Failed to generate image"
	case errors.Is(err, service.ErrImageDownload):
		return http.StatusInternalServerError, "Failed to download image"
	case errors.Is(err, service.ErrImageUpload):
		return http.StatusInternalServerError, "Failed to store image"
	default:
		return http.StatusInternalServerError, "An unexpected error occurred: " + err.Error()
	}
}
