// Package http is the demo HTTP surface over the solving engine: decode a
// puzzle in any supported textual format, step or run the technique
// solver against it, and render the result back out. Grounded on the
// teacher's internal/transport/http/routes.go gin wiring (route groups,
// JSON request/response structs with binding tags, log.Printf error
// logging, HMAC session tokens) — generalised from the teacher's ~10
// gameplay-session endpoints to the four stateless codec/solver
// endpoints this engine exposes.
package http

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sudoku-engine/internal/codec"
	"sudoku-engine/internal/explain"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/render"
	"sudoku-engine/internal/serverconfig"
	"sudoku-engine/internal/solver"
	"sudoku-engine/internal/sudokuerr"
)

func logError(op string, err error) {
	log.Printf("%s: %v", op, err)
}

var cfg *serverconfig.Config

// RegisterRoutes wires the demo endpoints onto r.
func RegisterRoutes(r *gin.Engine, c *serverconfig.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/decode", decodeHandler)
		api.POST("/solve/step", solveStepHandler)
		api.POST("/solve/run", solveRunHandler)
		api.GET("/render/:format", renderHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// decodeRequest accepts a puzzle in any of the engine's text formats. Both
// fields are required: Format names the format, Body holds the text.
type decodeRequest struct {
	Format string `json:"format" binding:"required"` // s81, csv, gvc, gridblock, clipboard
	Body   string `json:"body" binding:"required"`
}

type decodeResponse struct {
	Token string `json:"token"`
	Dump  string `json:"dump"`
}

// decodeHandler ingests a puzzle string and returns a signed token
// carrying the full grid state (values, givens, candidates), plus a
// human-readable dump of the grid as loaded.
func decodeHandler(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := decodeToGrid(req.Format, req.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := signGrid(g)
	if err != nil {
		logError("decode: sign token", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign session"})
		return
	}

	c.JSON(http.StatusOK, decodeResponse{
		Token: token,
		Dump:  render.Dump(g, explain.Snapshot{}),
	})
}

type solveStepRequest struct {
	Token    string `json:"token" binding:"required"`
	Strategy string `json:"strategy"`
	Explain  bool   `json:"explain"`
}

type solveStepResponse struct {
	Token       string               `json:"token"`
	Applied     bool                 `json:"applied"`
	Technique   string               `json:"technique,omitempty"`
	Explanation *explain.Explanation `json:"explanation,omitempty"`
	Solved      bool                 `json:"solved"`
	Dump        string               `json:"dump"`
}

// solveStepHandler applies a single technique step (the first applicable
// one in the requested strategy's priority order) and returns the
// resulting grid state.
func solveStepHandler(c *gin.Context) {
	var req solveStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := gridFromToken(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	strat, err := resolveStrategy(req.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := solveStepResponse{Dump: ""}
	if step, ok := solver.Step1(g, strat, req.Explain); ok {
		resp.Applied = true
		resp.Technique = step.TechniqueID
		if req.Explain && step.Outcome.Explanation.Technique != "" {
			exp := step.Outcome.Explanation
			resp.Explanation = &exp
		}
	}
	resp.Solved = g.Solved()
	resp.Dump = render.Dump(g, explain.Snapshot{})

	token, err := signGrid(g)
	if err != nil {
		logError("solve/step: sign token", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign session"})
		return
	}
	resp.Token = token

	c.JSON(http.StatusOK, resp)
}

type solveRunRequest struct {
	Token    string `json:"token" binding:"required"`
	Strategy string `json:"strategy"`
	Explain  bool   `json:"explain"`
}

type solveRunResponse struct {
	Token        string                `json:"token"`
	Steps        []string              `json:"steps"`
	Explanations []explain.Explanation `json:"explanations,omitempty"`
	Solved       bool                  `json:"solved"`
	Dump         string                `json:"dump"`
}

// solveRunHandler drives the solver loop to completion (or exhaustion)
// under the requested strategy and returns every step taken.
func solveRunHandler(c *gin.Context) {
	var req solveRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := gridFromToken(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	strat, err := resolveStrategy(req.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := solver.Run(g, strat, req.Explain)

	ids := make([]string, 0, len(result.Steps))
	for _, s := range result.Steps {
		ids = append(ids, s.TechniqueID)
	}

	token, err := signGrid(g)
	if err != nil {
		logError("solve/run: sign token", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign session"})
		return
	}

	c.JSON(http.StatusOK, solveRunResponse{
		Token:        token,
		Steps:        ids,
		Explanations: solver.Explanations(result),
		Solved:       result.Solved,
		Dump:         render.Dump(g, explain.Snapshot{}),
	})
}

// renderHandler re-encodes the grid carried by the token query param
// ("?token=...") into the requested format, exercising every codec from
// the token's session-carrier (gridblock) into the caller's choice.
func renderHandler(c *gin.Context) {
	format := c.Param("format")
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token query parameter is required"})
		return
	}

	g, err := gridFromToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	body, err := encodeFromGrid(format, g)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"format": format, "body": body})
}

// -- grid <-> token/format plumbing -----------------------------------

func decodeToGrid(format, body string) (*grid.Grid, error) {
	switch format {
	case "s81":
		values, err := codec.DecodeS81(body)
		if err != nil {
			return nil, err
		}
		g := grid.New()
		if err := g.LoadGivens(values); err != nil {
			return nil, err
		}
		return g, nil
	case "csv":
		cells, err := codec.DecodeCSV(body)
		if err != nil {
			return nil, err
		}
		g := grid.New()
		g.LoadSnapshot(cells)
		return g, nil
	case "gvc":
		cells, err := codec.DecodeGVC(body)
		if err != nil {
			return nil, err
		}
		g := grid.New()
		g.LoadSnapshot(cells)
		return g, nil
	case "gridblock":
		cells, err := codec.DecodeGridBlock(body)
		if err != nil {
			return nil, err
		}
		g := grid.New()
		g.LoadSnapshot(cells)
		return g, nil
	case "clipboard":
		cells, err := codec.DecodeClipboard(body)
		if err != nil {
			return nil, err
		}
		g := grid.New()
		g.LoadSnapshot(cells)
		return g, nil
	default:
		return nil, sudokuerr.NewBadFormat(format, "unknown format")
	}
}

func encodeFromGrid(format string, g *grid.Grid) (string, error) {
	switch format {
	case "s81":
		return codec.EncodeS81(g), nil
	case "csv":
		return codec.EncodeCSV(g), nil
	case "gvc":
		return codec.EncodeGVC(g), nil
	case "gridblock":
		return codec.EncodeGridBlock(g), nil
	case "clipboard":
		return codec.EncodeClipboard(g), nil
	default:
		return "", sudokuerr.NewBadFormat(format, "unknown format")
	}
}

// signGrid encodes g losslessly via the gridblock codec (a format that
// carries candidates, not just givens) and signs it as a token.
func signGrid(g *grid.Grid) (string, error) {
	return createToken(cfg.SessionSecret, GridToken{
		State:     codec.EncodeGridBlock(g),
		ExpiresAt: time.Now().Add(tokenTTL),
	})
}

func gridFromToken(token string) (*grid.Grid, error) {
	t, err := verifyToken(cfg.SessionSecret, token)
	if err != nil {
		return nil, err
	}
	cells, err := codec.DecodeGridBlock(t.State)
	if err != nil {
		return nil, err
	}
	g := grid.New()
	g.LoadSnapshot(cells)
	return g, nil
}

func resolveStrategy(s string) (solver.Strategy, error) {
	if s == "" {
		s = cfg.DefaultStrategy
	}
	return solver.ParseStrategy(s)
}
