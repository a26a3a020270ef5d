package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/response"
)

// Parse godoc
// @Summary     Parse task text
// @Description Turns natural-language task input into structured attributes.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text and feature"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newParseResp(output))
}

// OpenSession godoc
// @Summary     Open a parse session
// @Description Starts a typing session for one input field.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body openSessionReq false "Optional feature override"
// @Success     200  {object} sessionResp
// @Router      /api/v1/ai/sessions [POST]
func (h *handler) OpenSession(c *gin.Context) {
	sc := middleware.ScopeFromContext(c)

	var req openSessionReq
	_ = c.ShouldBindJSON(&req)

	feature := model.Feature(req.Feature)
	if !feature.Valid() {
		feature = model.FeatureSmartParse
	}

	id := h.sessions.Open(sc, feature)
	response.OK(c, sessionResp{SessionID: id})
}

// Keystroke godoc
// @Summary     Report a keystroke
// @Description Updates the session text; a parse fires after the quiet period.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Session ID"
// @Param       body body sessionEventReq true "Current text"
// @Success     200  {object} response.Resp
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/ai/sessions/{id}/keystroke [POST]
func (h *handler) Keystroke(c *gin.Context) {
	req, err := h.processSessionEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.sessions.Keystroke(c.Param("id"), req.Text); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, nil)
}

// Blur godoc
// @Summary     Report field blur
// @Description Fires a parse immediately with the lower blur threshold.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Session ID"
// @Param       body body sessionEventReq true "Current text"
// @Success     200  {object} response.Resp
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/ai/sessions/{id}/blur [POST]
func (h *handler) Blur(c *gin.Context) {
	req, err := h.processSessionEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.sessions.Blur(c.Param("id"), req.Text); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, nil)
}

// SessionResult godoc
// @Summary     Poll the session result
// @Description Returns the latest applied parse result for the session.
// @Tags        AI
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResultResp
// @Router      /api/v1/ai/sessions/{id}/result [GET]
func (h *handler) SessionResult(c *gin.Context) {
	parsed, ok := h.sessions.Latest(c.Param("id"))
	if !ok {
		response.OK(c, sessionResultResp{Ready: false})
		return
	}
	response.OK(c, sessionResultResp{Parsed: &parsed, Ready: true})
}

// CloseSession godoc
// @Summary     Close a parse session
// @Description Drops the session and cancels any in-flight parse.
// @Tags        AI
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/ai/sessions/{id} [DELETE]
func (h *handler) CloseSession(c *gin.Context) {
	h.sessions.Close(c.Param("id"))
	response.OK(c, nil)
}
