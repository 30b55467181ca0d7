package controllers

import (
	stdhttp "net/http"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// Envelope 是所有 HTTP 响应的统一外层结构。
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
	Data    any    `json:"data"`
}

// Success 构造成功响应信封。
func Success(status int, message string, data any) *Envelope {
	return &Envelope{Code: status, Message: message, Data: data}
}

// EncodeResponse 在未被 Handler 包装时补齐信封，再按请求的 Accept 选择编解码器。
func EncodeResponse(w stdhttp.ResponseWriter, r *stdhttp.Request, v any) error {
	if v == nil {
		return nil
	}
	if rd, ok := v.(khttp.Redirector); ok {
		url, code := rd.Redirect()
		stdhttp.Redirect(w, r, url, code)
		return nil
	}
	env, ok := v.(*Envelope)
	if !ok {
		env = Success(stdhttp.StatusOK, "success", v)
	}
	codec, _ := khttp.CodecForRequest(r, "Accept")
	body, err := codec.Marshal(env)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/"+codec.Name())
	_, err = w.Write(body)
	return err
}

// NewErrorEncoder 把 kratos 错误写成信封。5xx 错误的内部原因只写日志，不返回给调用方。
func NewErrorEncoder(logger log.Logger) khttp.EncodeErrorFunc {
	helper := log.NewHelper(logger)
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
		se := errors.FromError(err)
		status := int(se.Code)
		message := se.Message
		if status >= stdhttp.StatusInternalServerError {
			helper.WithContext(r.Context()).Errorf("http %s %s: reason=%s err=%v", r.Method, r.URL.Path, se.Reason, err)
			if status == stdhttp.StatusInternalServerError {
				message = "internal server error"
			}
		}
		codec, _ := khttp.CodecForRequest(r, "Accept")
		body, mErr := codec.Marshal(&Envelope{Code: status, Message: message, Reason: se.Reason})
		if mErr != nil {
			w.WriteHeader(stdhttp.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/"+codec.Name())
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}
}
