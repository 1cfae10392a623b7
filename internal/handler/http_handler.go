package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-live/ulid-udf/internal/generator"
	"github.com/weiawesome/wes-io-live/ulid-udf/internal/resolver"
	"github.com/weiawesome/wes-io-live/ulid-udf/internal/udf"
	"github.com/weiawesome/wes-io-live/ulid-udf/pkg/log"
	"github.com/weiawesome/wes-io-live/ulid-udf/pkg/response"
)

// Handler exposes the ulid() callable over HTTP.
type Handler struct {
	fn      *udf.Function
	maxRows int
}

// NewHandler creates a new HTTP handler.
func NewHandler(fn *udf.Function, maxRows int) *Handler {
	return &Handler{
		fn:      fn,
		maxRows: maxRows,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		ids := api.Group("/ulid")
		{
			ids.GET("", h.Generate)
			ids.POST("", h.Invoke)
			ids.GET("/:id", h.Parse)
		}
	}
}

// Generate calls ulid() with arguments taken from the query string: each
// "date" parameter is one argument, and null=true alone passes a null.
func (h *Handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var args []resolver.Arg
	for _, d := range c.QueryArray("date") {
		args = append(args, resolver.ValueArg(d))
	}
	if len(args) == 0 {
		if null, _ := strconv.ParseBool(c.Query("null")); null {
			args = append(args, resolver.NullArg())
		}
	}

	handle, err := h.fn.Init(ctx, args)
	if err != nil {
		writeInitError(c, err)
		return
	}

	response.Success(c, describe(handle))
}

// Invoke runs Init once with the posted argument list and Process once per
// requested row.
func (h *Handler) Invoke(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req InvokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind invoke request")
		response.BadRequest(c, response.CodeBadRequest, err.Error())
		return
	}

	rows := req.Rows
	if rows == 0 {
		rows = 1
	}
	if rows < 0 || rows > h.maxRows {
		response.BadRequest(c, response.CodeBadRequest, fmt.Sprintf("rows must be between 1 and %d, got %d", h.maxRows, req.Rows))
		return
	}

	args, err := req.CallArgs()
	if err != nil {
		response.BadRequest(c, response.CodeBadRequest, err.Error())
		return
	}

	handle, err := h.fn.Init(ctx, args)
	if err != nil {
		writeInitError(c, err)
		return
	}

	out := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		out = append(out, handle.Process())
	}
	l.Debug().Int(log.FieldRows, rows).Str(log.FieldULID, handle.Process()).Msg("ulid invoked")

	response.Success(c, InvokeResponse{
		Returns: h.fn.Returns(),
		Rows:    out,
	})
}

// Parse decodes an identifier into its timestamp and entropy.
func (h *Handler) Parse(c *gin.Context) {
	res, err := generator.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, response.CodeInvalidULID, err.Error())
		return
	}

	response.Success(c, toResponse(res))
}

func describe(h *udf.Handle) ULIDResponse {
	return toResponse(generator.Inspect(h.ULID()))
}

func toResponse(res *generator.ParseResult) ULIDResponse {
	return ULIDResponse{
		ULID:          res.ULID,
		TimestampMs:   res.TimestampMs,
		Time:          res.Time.Format(time.RFC3339Nano),
		RandomPayload: res.RandomPayload,
	}
}

func writeInitError(c *gin.Context, err error) {
	var arity *resolver.WrongArityError
	switch {
	case errors.As(err, &arity):
		response.BadRequest(c, response.CodeWrongArity, err.Error())
	case errors.Is(err, resolver.ErrUnparseableDate):
		response.BadRequest(c, response.CodeUnparseableDate, err.Error())
	default:
		l := log.Ctx(c.Request.Context())
		l.Error().Err(err).Msg("failed to initialize ulid")
		response.InternalError(c, "failed to generate ulid")
	}
}
