package usecase

import (
	"time"

	"smart-todo-backend/internal/chat"
	pkgLog "smart-todo-backend/pkg/log"
	"smart-todo-backend/pkg/modelclient"
)

type implUseCase struct {
	l       pkgLog.Logger
	model   modelclient.IModelClient
	timeout time.Duration
}

// New creates the chat UseCase. The model client may be nil; the relay then
// always answers with the fallback response.
func New(l pkgLog.Logger, mc modelclient.IModelClient, timeout time.Duration) chat.UseCase {
	if timeout <= 0 {
		timeout = modelclient.ChatTimeout
	}
	return implUseCase{l: l, model: mc, timeout: timeout}
}
