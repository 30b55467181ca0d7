package services_test

import (
	"context"
	"io"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5"
)

type fakeTxManager struct{}

type fakeSession struct{ ctx context.Context }

func (fakeTxManager) WithinTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, fakeSession{ctx: ctx})
}

func (fakeTxManager) WithinReadOnlyTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, fakeSession{ctx: ctx})
}

func (fakeSession) Tx() pgx.Tx { return nil }

func (s fakeSession) Context() context.Context { return s.ctx }

func ptrString(v string) *string { return &v }

func discardLogger() log.Logger { return log.NewStdLogger(io.Discard) }

// reasonOf 返回 kratos 错误的 reason 与 HTTP 状态码。
func reasonOf(err error) (string, int) {
	e := errors.FromError(err)
	if e == nil {
		return "", 0
	}
	return e.Reason, int(e.Code)
}
