package http

import (
	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/parse"
)

// --- Request DTOs ---

type parseReq struct {
	Text    string                 `json:"text" binding:"required"`
	Feature string                 `json:"feature"`
	Context map[string]interface{} `json:"context"`
}

func (r parseReq) toInput() parse.ParseInput {
	feature := model.Feature(r.Feature)
	if r.Feature == "" {
		feature = model.FeatureSmartParse
	}
	return parse.ParseInput{
		Text:    r.Text,
		Feature: feature,
		Context: r.Context,
	}
}

type openSessionReq struct {
	Feature string `json:"feature"`
}

type sessionEventReq struct {
	Text string `json:"text" binding:"required"`
}

// --- Response DTOs ---

type parseResp struct {
	Parsed model.ParsedTask `json:"parsed"`
}

func newParseResp(out parse.ParseOutput) parseResp {
	return parseResp{Parsed: out.Parsed}
}

type sessionResp struct {
	SessionID string `json:"sessionId"`
}

type sessionResultResp struct {
	Parsed *model.ParsedTask `json:"parsed"`
	Ready  bool              `json:"ready"`
}
