package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/chat"
	"smart-todo-backend/internal/middleware"
	pkgErrors "smart-todo-backend/pkg/errors"
	"smart-todo-backend/pkg/response"
)

type chatReq struct {
	Messages    []chat.Message         `json:"messages" binding:"required,min=1,dive"`
	TaskContext map[string]interface{} `json:"taskContext"`
}

type fallbackResp struct {
	Response string `json:"response"`
	Fallback bool   `json:"fallback"`
}

// Chat godoc
// @Summary     Chat with the assistant
// @Description Relays the conversation to the AI assistant and streams the
// @Description reply as plain text. Answers with a JSON fallback when the
// @Description assistant is unavailable.
// @Tags        AI
// @Accept      json
// @Produce     plain
// @Param       body body chatReq true "Conversation"
// @Success     200  {string} string "Streamed reply"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/ai/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Relay(ctx, sc, chat.RelayInput{
		Messages:    req.Messages,
		TaskContext: req.TaskContext,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Relay: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	if output.Fallback {
		c.JSON(http.StatusOK, fallbackResp{Response: output.Response, Fallback: true})
		return
	}
	defer output.Stream.Close()

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	buf := make([]byte, 4096)
	for {
		n, err := output.Stream.Read(buf)
		if n > 0 {
			if _, werr := c.Writer.Write(buf[:n]); werr != nil {
				return
			}
			c.Writer.Flush()
		}
		if err != nil {
			if err != io.EOF {
				h.l.Warnf(ctx, "chat stream interrupted: %v", err)
			}
			return
		}
	}
}

func (h *handler) mapError(err error) error {
	if errors.Is(err, chat.ErrNoMessages) {
		return pkgErrors.NewHTTPError(400, "messages are required")
	}
	return pkgErrors.NewHTTPError(500, "something went wrong, please try again")
}
