package api

import (
	"errors"
	"fmt"
	"io"
	"time"

	"roboforecast/internal"
	"roboforecast/internal/app"
	"roboforecast/internal/domain"
	"roboforecast/internal/report"
	"roboforecast/internal/repository"

	"github.com/gin-gonic/gin"
)

type projectionsRequest struct {
	TargetYear *int               `json:"targetYear"`
	Alpha      *float64           `json:"alpha"`
	Weights    map[string]float64 `json:"weights"`
}

type projectionsResponse struct {
	RunID            string                 `json:"runId"`
	TargetYear       int                    `json:"targetYear"`
	CreatedAt        time.Time              `json:"createdAt"`
	Rows             []report.ProjectionRow `json:"rows"`
	FailedCategories []string               `json:"failedCategories"`
}

func (m ApiHandler) projections(c *gin.Context) {
	var requestBody projectionsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil && !errors.Is(err, io.EOF) {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	runConfig, err := m.Config.RunConfig()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.TargetYear != nil {
		runConfig.TargetYear = *requestBody.TargetYear
	}
	if requestBody.Alpha != nil {
		runConfig.Alpha = *requestBody.Alpha
	}
	if len(requestBody.Weights) > 0 {
		weights := internal.Weights{}
		for method, weight := range requestBody.Weights {
			weights[domain.Method(method)] = weight
		}
		if err := weights.Validate(); err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		runConfig.Weights = weights
	}

	set, err := m.runProjections(c, *runConfig)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, projectionsResponse{
		RunID:            set.RunID.String(),
		TargetYear:       set.TargetYear,
		CreatedAt:        set.CreatedAt,
		Rows:             report.Assemble(*set),
		FailedCategories: set.FailedCategories(),
	})
}

func (m ApiHandler) report(c *gin.Context) {
	runConfig, err := m.Config.RunConfig()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	set, err := m.runProjections(c, *runConfig)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.String(200, report.TextReport(*set))
}

func (m ApiHandler) runProjections(c *gin.Context, runConfig app.RunConfig) (*domain.ProjectionSet, error) {
	series, err := m.MarketDataRepository.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load historical data: %w", err)
	}

	return m.ProjectionService.RunProjections(c.Request.Context(), app.RunProjectionsInput{
		Series:     series,
		Categories: repository.DefaultCategories(),
		Config:     runConfig,
	})
}
