package services

import (
	"context"
	"time"
)

const compensationTimeout = 10 * time.Second

// compensation 是多步写入中某一步成功后登记的撤销动作。
type compensation struct {
	name string
	undo func(ctx context.Context) error
}

// compensations 按登记顺序保存撤销动作，失败时倒序执行。
type compensations []compensation

func (c *compensations) add(name string, undo func(ctx context.Context) error) {
	*c = append(*c, compensation{name: name, undo: undo})
}

// run 倒序执行全部撤销动作，返回失败项。使用独立的超时上下文，
// 请求上下文已取消时仍能完成清理。
func (c compensations) run(ctx context.Context) []error {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	var failed []error
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i].undo(cleanupCtx); err != nil {
			recordCompensationFailure(cleanupCtx, c[i].name)
			failed = append(failed, &compensationError{name: c[i].name, err: err})
		}
	}
	return failed
}

type compensationError struct {
	name string
	err  error
}

func (e *compensationError) Error() string {
	return e.name + ": " + e.err.Error()
}

func (e *compensationError) Unwrap() error {
	return e.err
}
