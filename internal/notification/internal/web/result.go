package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/mindblowndbs/mindblown/internal/notification/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.NotificationNotFound.Code,
		Msg:  errs.NotificationNotFound.Msg,
	}
)
