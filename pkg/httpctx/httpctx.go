// Package httpctx holds utilities for working with HTTP protocol.
package httpctx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrHTTPReqRes occurs when there is any problem with HTTP(s) req/res.
var ErrHTTPReqRes = errors.New("something wrong with HTTP(s) request/response")

// ResponseBody returns bytes of resp body.
// internally function creates new NopCloser on resp so its body may be read again afterwards
func ResponseBody(resp *http.Response) ([]byte, error) {
	if resp == nil || resp.Body == nil {
		return nil, fmt.Errorf("%w: missing response body", ErrHTTPReqRes)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrHTTPReqRes, err.Error())
	}

	_ = resp.Body.Close()

	// response body may be read again
	resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	return bodyBytes, nil
}
